/*
Package lexmach provides an adapter to use the lexmachine scanner generator
with the rules of lexgen.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The adapter translates every rule into lexmachine's regex syntax: character
classes are spelled out explicitly, negated classes are restricted to
printable ASCII, and punctuation is escaped. Rules named with the skip marker
are added with action Skip. lexmachine prefers the longest match and, for
matches of equal length, the rule added first. Scanners created by the
adapter thus should produce the same tokens as a scanner.DFAScanner with
tie-break policy dfa.FirstDeclared. This makes the adapter suitable for
cross-checking.

	LM, err := lexmach.NewLMAdapter(rs, lexgen.SkipMarker)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}

Like scanner.DFAScanner, unmatched input is skipped one character at a time.
lexmachine operates on bytes, thus rules must be restricted to ASCII.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
