/*
Package automaton implements storage for finite automata, used by NFAs as well
as by DFAs.

A Graph owns all of its nodes, which are addressed by identifiers. Nodes never
point to each other directly; edges carry the identifier of their destination
node. This tolerates the cyclic structure introduced by repetition operators
without any further bookkeeping.

Edges are labeled with sets of runes, not with single runes. This accomodates
bracket expressions and merged transitions. A reserved label denotes epsilon
(empty) transitions.

    g := automaton.New()
    s := g.NewNode("start", false)
    e := g.NewNode("ID", true)
    g.SetRoot(s)
    g.AddEdge(s, e, automaton.LabelOf('a', 'b'))
    g.AddEdge(s, e, automaton.LabelOf('c'))   // extends the label to {a,b,c}

Graphs may be exported to Graphviz's Dot-format for debugging.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexgen.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("lexgen.automaton")
}
