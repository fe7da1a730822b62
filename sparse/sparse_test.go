package sparse

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMatrixSetAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.sparse")
	defer teardown()
	//
	M := NewIntMatrix(10, 128, -1)
	M.Set(2, 'a', 4711).Set(0, 'z', 1).Set(2, ' ', 3).Set(9, 127, 9)
	if v := M.Value(2, 'a'); v != 4711 {
		t.Errorf("expected M(2,a) = 4711, is %d", v)
	}
	if v := M.Value(2, 'b'); v != -1 {
		t.Errorf("expected M(2,b) to be the null value, is %d", v)
	}
	if v := M.Value(9, 127); v != 9 {
		t.Errorf("expected M(9,127) = 9, is %d", v)
	}
	M.Set(2, 'a', 123)
	if M.ValueCount() != 4 {
		t.Errorf("expected 4 values, have %d", M.ValueCount())
	}
	if v := M.Value(2, 'a'); v != 123 {
		t.Errorf("expected M(2,a) = 123 after overwrite, is %d", v)
	}
	if M.M() != 10 || M.N() != 128 || M.NullValue() != -1 {
		t.Errorf("dimensions or null value wrong: %v", M)
	}
}

func TestMatrixRow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.sparse")
	defer teardown()
	//
	M := NewIntMatrix(3, 10, DefaultNullValue)
	M.Set(1, 7, 70).Set(1, 2, 20).Set(0, 5, 5).Set(2, 0, 0).Set(1, 4, DefaultNullValue)
	var cols []int
	M.Row(1, func(j int, v int32) {
		cols = append(cols, j)
		if int32(j*10) != v {
			t.Errorf("unexpected value %d in column %d", v, j)
		}
	})
	if len(cols) != 2 || cols[0] != 2 || cols[1] != 7 {
		t.Errorf("expected columns [2 7] in row 1, have %v", cols)
	}
}

func TestMatrixOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.sparse")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set outside of dimensions to panic")
		}
	}()
	NewIntMatrix(2, 2, -1).Set(2, 0, 1)
}
