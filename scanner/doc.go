/*
Package scanner defines an interface for scanners and implements a
maximal-munch scanner driven by a deterministic automaton.

Any automaton implementing interface Automaton may drive a scanner; package
dfa provides two of them, a plain DFA and a compiled transition table.
An adapter for lexmachine, living in sub-package `lexmach`, implements the
same Tokenizer interface and may be used for cross-checking.

	d := dfa.Build(n)
	scan := scanner.New(d, "if x1 then", scanner.Unmatched(scanner.Fail))
	for token := scan.NextToken(); !token.IsEOF(); token = scan.NextToken() {
		…
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexgen.scanner")
}
