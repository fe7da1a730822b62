package dfa

import (
	"github.com/npillmayer/lexgen/automaton"
	"github.com/npillmayer/lexgen/sparse"
)

// Table is a compiled DFA: a transition table with states as rows and
// runes as columns. Lookups are independent of the number of outgoing
// edges of a state. A Table is read-only.
type Table struct {
	root    automaton.NodeID
	matrix  *sparse.IntMatrix
	accepts []string // token type per state, or ""
	final   []bool
}

// Compile creates a transition table for d.
func Compile(d *DFA) *Table {
	maxrune := rune(0)
	for _, r := range d.alphabet() {
		if r > maxrune {
			maxrune = r
		}
	}
	t := &Table{
		root:    d.Root(),
		matrix:  sparse.NewIntMatrix(d.Size(), int(maxrune)+1, sparse.DefaultNullValue),
		accepts: make([]string, d.Size()),
		final:   make([]bool, d.Size()),
	}
	d.g.Each(func(n *automaton.Node) {
		if n.Terminal {
			t.accepts[n.ID] = n.Name
			t.final[n.ID] = true
		}
		for _, e := range n.Edges() {
			for _, r := range e.Label.Runes() {
				t.matrix.Set(int(n.ID), int(r), int32(e.To))
			}
		}
	})
	tracer().Infof("transition table has %d entries for %d states", t.matrix.ValueCount(), d.Size())
	return t
}

// Start is part of interface scanner.Automaton.
func (t *Table) Start() automaton.NodeID {
	return t.root
}

// Step is part of interface scanner.Automaton.
func (t *Table) Step(state automaton.NodeID, r rune) (automaton.NodeID, bool) {
	if r < 0 || int(r) >= t.matrix.N() {
		return automaton.NoNode, false
	}
	v := t.matrix.Value(int(state), int(r))
	if v == t.matrix.NullValue() {
		return automaton.NoNode, false
	}
	return automaton.NodeID(v), true
}

// Accepts is part of interface scanner.Automaton.
func (t *Table) Accepts(state automaton.NodeID) (string, bool) {
	return t.accepts[state], t.final[state]
}

// Size returns the number of states.
func (t *Table) Size() int {
	return t.matrix.M()
}

// Transitions calls f for every transition out of state, in order of runes.
func (t *Table) Transitions(state automaton.NodeID, f func(r rune, to automaton.NodeID)) {
	t.matrix.Row(int(state), func(j int, v int32) {
		f(rune(j), automaton.NodeID(v))
	})
}
