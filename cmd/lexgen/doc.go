/*
Command lexgen generates lexers from lex-style rule files and runs them.

	lexgen --rules oat.l lex program.oat       # print tokens as a table
	lexgen --rules oat.l dot --dfa -o dfa.dot  # export the DFA for Graphviz
	lexgen --rules oat.l check program.oat     # compare with lexmachine
	lexgen --rules oat.l repl                  # tokenize lines interactively

Global flags select the automaton variant (--minimize, --table), the policy
for overlapping rules (--tiebreak first|last), the policy for unmatched
input (--strict) and the trace level (--trace Debug|Info|Error).


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexgen.cli'
func tracer() tracing.Trace {
	return tracing.Select("lexgen.cli")
}
