package dfa

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/lexgen/automaton"
	"github.com/npillmayer/lexgen/nfa"
	"github.com/npillmayer/lexgen/rules"
	"github.com/npillmayer/lexgen/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var _ scanner.Automaton = (*DFA)(nil)
var _ scanner.Automaton = (*Table)(nil)

var testRules = []string{
	"a|b T",
	"ab ID\nabc KEYWORD",
	"ab*c* X",
	"if IF\n[a-z]+ ID\n[\\s]+ ;",
	"(a(b|c))+d? G\n[^a] NOTA",
	`"[^"]*" STRING` + "\n[0-9]+ INT",
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.dfa")
	defer teardown()
	//
	for i, rs := range testRules {
		d := Build(buildNFA(t, rs))
		if err := d.Graph().Validate(); err != nil {
			t.Errorf("test %d: %v", i, err)
		}
		if !d.Graph().Frozen() {
			t.Errorf("test %d: expected DFA graph to be frozen", i)
		}
		if len(d.Graph().Reachable()) != d.Size() {
			t.Errorf("test %d: expected every DFA state to be reachable from the root", i)
		}
		checkDeterministic(t, i, d)
	}
}

func TestStateDedup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.dfa")
	defer teardown()
	//
	for i, rs := range testRules {
		n := buildNFA(t, rs)
		d := Build(n)
		seen := make(map[string]automaton.NodeID)
		for s := 0; s < d.Size(); s++ {
			set := d.StateSet(automaton.NodeID(s))
			if len(set) == 0 {
				t.Errorf("test %d: DFA state %d represents an empty set", i, s)
			}
			key := fmt.Sprint(set)
			if other, found := seen[key]; found {
				t.Errorf("test %d: DFA states %d and %d represent the same set %s", i, other, s, key)
			}
			seen[key] = automaton.NodeID(s)
			terminal := false
			for _, id := range set {
				terminal = terminal || n.Graph().Node(id).Terminal
			}
			if _, accepting := d.Accepts(automaton.NodeID(s)); accepting != terminal {
				t.Errorf("test %d: DFA state %d accepting=%v, but NFA set terminal=%v", i, s, accepting, terminal)
			}
		}
		if d.StateSet(d.Root())[0] != n.Root() {
			t.Errorf("test %d: expected DFA root to contain the NFA root", i)
		}
	}
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.dfa")
	defer teardown()
	//
	for i, rs := range testRules {
		n := buildNFA(t, rs)
		d1, d2 := Build(n), Build(n)
		if diff := cmp.Diff(partition(d1), partition(d2)); diff != "" {
			t.Errorf("test %d: DFAs differ (-first +second):\n%s", i, diff)
		}
	}
}

func TestAcceptsNonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.dfa")
	defer teardown()
	//
	for i, rs := range testRules {
		d := Build(buildNFA(t, rs))
		for s := 0; s < d.Size(); s++ {
			id := automaton.NodeID(s)
			if d.Graph().Node(id).Terminal {
				continue
			}
			if name, ok := d.Accepts(id); ok || name != "" {
				t.Errorf("test %d: non-accepting state %d reports token type %q", i, s, name)
			}
		}
	}
}

func TestTieBreakNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.dfa")
	defer teardown()
	//
	n := buildNFA(t, "if IF\n[a-z]+ ID")
	for _, test := range []struct {
		tb       TieBreak
		expected string
	}{
		{FirstDeclared, "IF"},
		{LastDeclared, "ID"},
	} {
		d := Build(n, WithTieBreak(test.tb))
		s, _ := d.Step(d.Start(), 'i')
		s, _ = d.Step(s, 'f')
		if name, ok := d.Accepts(s); !ok || name != test.expected {
			t.Errorf("tie-break %v: expected %s for 'if', have %q", test.tb, test.expected, name)
		}
	}
	if tb, err := TieBreakFromString("LAST"); err != nil || tb != LastDeclared {
		t.Errorf("cannot read tie-break policy 'LAST'")
	}
	if _, err := TieBreakFromString("longest"); err == nil {
		t.Errorf("expected error for unknown tie-break policy")
	}
}

func TestTokenTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.dfa")
	defer teardown()
	//
	d := Build(buildNFA(t, "if IF\n[a-z]+ ID\n[\\s]+ ;\n[0-9]+ INT"))
	expected := []string{";", "ID", "IF", "INT"}
	if diff := cmp.Diff(expected, d.TokenTypes()); diff != "" {
		t.Errorf("token types mismatch (-want +got):\n%s", diff)
	}
}

func TestMinimize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.dfa")
	defer teardown()
	//
	d := Build(buildNFA(t, "ab|cb X"))
	if d.Size() != 5 {
		t.Errorf("expected plain DFA to have 5 states, has %d", d.Size())
	}
	m := Minimize(d)
	if m.Size() != 3 {
		t.Errorf("expected minimized DFA to have 3 states, has %d", m.Size())
	}
	if m.Root() != 0 {
		t.Errorf("expected root of minimized DFA to be state 0")
	}
	checkDeterministic(t, 0, m)
	for i, rs := range testRules {
		d := Build(buildNFA(t, rs))
		m := Minimize(d)
		if m.Size() > d.Size() {
			t.Errorf("test %d: minimized DFA is larger than the original", i)
		}
		if mm := Minimize(m); mm.Size() != m.Size() {
			t.Errorf("test %d: minimizing a minimal DFA changed its size from %d to %d", i, m.Size(), mm.Size())
		}
		checkDeterministic(t, i, m)
	}
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.dfa")
	defer teardown()
	//
	for i, rs := range testRules {
		d := Build(buildNFA(t, rs))
		table := Compile(d)
		if table.Size() != d.Size() || table.Start() != d.Start() {
			t.Errorf("test %d: table does not match DFA dimensions", i)
		}
		for s := 0; s < d.Size(); s++ {
			id := automaton.NodeID(s)
			for r := rune(0); r < 130; r++ {
				dt, dok := d.Step(id, r)
				tt, tok := table.Step(id, r)
				if dok != tok || dt != tt {
					t.Errorf("test %d: state %d on %#U: DFA -> %d, table -> %d", i, s, r, dt, tt)
				}
			}
			dn, dacc := d.Accepts(id)
			tn, tacc := table.Accepts(id)
			if dn != tn || dacc != tacc {
				t.Errorf("test %d: state %d: DFA accepts %q, table accepts %q", i, s, dn, tn)
			}
			count := 0
			table.Transitions(id, func(rune, automaton.NodeID) { count++ })
			expected := 0
			for _, e := range d.Graph().Edges(id) {
				expected += e.Label.Len()
			}
			if count != expected {
				t.Errorf("test %d: state %d has %d transitions in table, %d in DFA", i, s, count, expected)
			}
		}
	}
}

// ---------------------------------------------------------------------------

func buildNFA(t *testing.T, ruleText string) *nfa.NFA {
	rs, err := rules.ParseString("test.l", ruleText)
	if err != nil {
		t.Fatal(err)
	}
	n, err := nfa.Build(rs)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// checkDeterministic asserts that no rune labels more than one edge of a state.
func checkDeterministic(t *testing.T, i int, d *DFA) {
	d.Graph().Each(func(n *automaton.Node) {
		seen := make(map[rune]bool)
		for _, e := range n.Edges() {
			if e.Label.IsEpsilon() {
				t.Errorf("test %d: epsilon edge in DFA state %d", i, n.ID)
			}
			for _, r := range e.Label.Runes() {
				if seen[r] {
					t.Errorf("test %d: DFA state %d has more than one edge for %#U", i, n.ID, r)
				}
				seen[r] = true
			}
		}
	})
}

// partition describes a DFA by the NFA sets of its states and the transitions
// between them, independent of DFA state IDs.
func partition(d *DFA) map[string]map[string]string {
	p := make(map[string]map[string]string)
	d.Graph().Each(func(n *automaton.Node) {
		from := fmt.Sprint(d.StateSet(n.ID))
		p[from] = make(map[string]string)
		for _, e := range n.Edges() {
			p[from][e.Label.String()] = fmt.Sprint(d.StateSet(e.To))
		}
	})
	return p
}
