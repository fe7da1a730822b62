/*
Package nfa assembles a single nondeterministic finite automaton from an
ordered list of lexical rules.

Every rule's pattern is compiled by package regex, starting at the shared
root node of the NFA. The exit node of each rule becomes an accepting state,
named with the rule's token name. Rules are compiled in order, thus accepting
states are ranked by declaration order (see automaton.Node.Rank).

	rs, _ := rules.Load("oat.l")
	n, err := nfa.Build(rs)
	if err != nil {
		…
	}
	fmt.Println(automaton.Dot(n.Graph(), "NFA"))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexgen.nfa'.
func tracer() tracing.Trace {
	return tracing.Select("lexgen.nfa")
}
