package automaton

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLabelSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.automaton")
	defer teardown()
	//
	l := LabelOf('c', 'a', 'b', 'a')
	if l.Len() != 3 {
		t.Errorf("expected label to have 3 runes, has %d", l.Len())
	}
	if l.String() != "abc" {
		t.Errorf("expected label to be sorted, is %q", l.String())
	}
	for _, r := range "abc" {
		if !l.Contains(r) {
			t.Errorf("expected label to contain %#U", r)
		}
	}
	if l.Contains('d') || l.Contains(' ') {
		t.Errorf("label contains runes it should not contain")
	}
	u := l.Union(LabelOf('z', 'b'))
	if u.String() != "abcz" {
		t.Errorf("expected union to be 'abcz', is %q", u.String())
	}
	if l.String() != "abc" {
		t.Errorf("union has modified its receiver: %q", l.String())
	}
	if !LabelRange('a', 'e').Equals(LabelOf('a', 'b', 'c', 'd', 'e')) {
		t.Errorf("range a-e not expanded correctly")
	}
}

func TestLabelEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.automaton")
	defer teardown()
	//
	eps := Epsilon()
	if !eps.IsEpsilon() {
		t.Fatalf("epsilon label is not epsilon")
	}
	if eps.Contains(0) || eps.Contains('a') {
		t.Errorf("epsilon label should not match any rune")
	}
	if LabelOf().IsEpsilon() {
		t.Errorf("empty rune set should be distinguished from epsilon")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected union of epsilon and rune set to panic")
		}
	}()
	eps.Union(LabelOf('a'))
}

func TestLabelComplement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.automaton")
	defer teardown()
	//
	c := LabelOf('a').Complement(' ', '~')
	if c.Len() != 94 {
		t.Errorf("expected 94 printable runes except 'a', have %d", c.Len())
	}
	if c.Contains('a') || !c.Contains('b') || !c.Contains(' ') || !c.Contains('~') {
		t.Errorf("complement wrong: %q", c.String())
	}
}

func TestEdgeMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.automaton")
	defer teardown()
	//
	g := New()
	a := g.NewNode("a", false)
	b := g.NewNode("b", false)
	g.SetRoot(a)
	for _, r := range " \t\n\r" {
		g.AddEdge(a, b, LabelOf(r))
	}
	g.AddEdge(a, b, Epsilon())
	g.AddEdge(a, b, Epsilon())
	edges := g.Edges(a)
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges (runes + epsilon), have %d", len(edges))
	}
	if edges[0].Label.Len() != 4 {
		t.Errorf("expected rune edges to be merged into one label of 4, is %q", edges[0].Label)
	}
	if !edges[1].Label.IsEpsilon() {
		t.Errorf("expected second edge to be epsilon")
	}
}

func TestNodeLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.automaton")
	defer teardown()
	//
	g := New()
	id := g.NewNode("x", false)
	if n, err := g.Lookup(id); err != nil || n.ID != id {
		t.Errorf("cannot look up node %d", id)
	}
	_, err := g.Lookup(42)
	var gce *GraphConsistencyError
	if !errors.As(err, &gce) || gce.ID != 42 {
		t.Errorf("expected GraphConsistencyError for node 42, have %v", err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Node(42) to panic")
		}
	}()
	g.Node(42)
}

func TestTerminalRanks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.automaton")
	defer teardown()
	//
	g := New()
	x := g.NewNode("", false)
	y := g.NewNode("Y", true)
	g.MarkTerminal(x, "X")
	if g.Node(y).Rank != 0 || g.Node(x).Rank != 1 {
		t.Errorf("expected ranks in order of marking, have Y=%d, X=%d", g.Node(y).Rank, g.Node(x).Rank)
	}
	if g.Node(x).Name != "X" || !g.Node(x).Terminal {
		t.Errorf("terminal marking did not set name and flag")
	}
}

func TestFrozenGraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.automaton")
	defer teardown()
	//
	g := New()
	g.SetRoot(g.NewNode("r", false))
	g.Freeze()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected modification of frozen graph to panic")
		}
	}()
	g.NewNode("s", false)
}

func TestValidateAndReach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.automaton")
	defer teardown()
	//
	g := New()
	if err := g.Validate(); err == nil {
		t.Errorf("expected graph without root to be invalid")
	}
	r := g.NewNode("r", false)
	s := g.NewNode("s", false)
	g.NewNode("unreachable", false)
	g.SetRoot(r)
	g.AddEdge(r, s, LabelOf('x'))
	g.AddEdge(s, r, Epsilon()) // cycle
	if err := g.Validate(); err != nil {
		t.Errorf("expected graph to be valid, is: %v", err)
	}
	reach := g.Reachable()
	if len(reach) != 2 || reach[0] != r || reach[1] != s {
		t.Errorf("expected reachable nodes [r s], have %v", reach)
	}
}

func TestDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.automaton")
	defer teardown()
	//
	g := New()
	r := g.NewNode("NFA", false)
	s := g.NewNode("WS", true)
	g.SetRoot(r)
	g.AddEdge(r, s, LabelOf('\t', '"'))
	g.AddEdge(s, r, Epsilon())
	dot := Dot(g, "NFA")
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "digraph NFA {\n") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("unexpected frame of Dot output")
	}
	if !strings.Contains(dot, `0 -> 1 [label="\\t\""];`) {
		t.Errorf("expected escaped label for tab and quote")
	}
	if !strings.Contains(dot, `1 -> 0 [label="<λ>"];`) {
		t.Errorf("expected epsilon edge in Dot output")
	}
	if !strings.Contains(dot, `1 [shape=doublecircle, label="WS"];`) {
		t.Errorf("expected terminal node to be a double circle")
	}
	if strings.Count(dot, "->") != 2 {
		t.Errorf("expected each edge exactly once, despite the cycle")
	}
}
