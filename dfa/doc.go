/*
Package dfa converts NFAs into deterministic finite automata.

Conversion uses the classic subset construction: every DFA state represents
a distinct set of NFA states, closed under epsilon transitions. A DFA state is
accepting if one of its NFA states is accepting. If more than one rule accepts
in a DFA state, a tie-break policy decides which token type the state
reports (see TieBreak).

Two optional stages work on a constructed DFA:

■ Minimize merges equivalent states (Moore-style partition refinement).

■ Compile creates a transition table, backed by a sparse matrix.

Both the DFA and the compiled table are suitable to drive a scanner.Tokenizer.

	n, _ := nfa.Build(rs)
	d := dfa.Build(n, dfa.WithTieBreak(dfa.FirstDeclared))
	table := dfa.Compile(dfa.Minimize(d))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexgen.dfa'.
func tracer() tracing.Trace {
	return tracing.Select("lexgen.dfa")
}
