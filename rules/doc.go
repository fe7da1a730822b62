/*
Package rules reads lexical rules from lex-style rule files.

A rule file is a sequence of lines. Lines starting with "%%" and blank lines
are ignored. Every other line holds a pattern followed by a token name,
separated by whitespace:

	%%
	if              "IF"
	[a-z][a-z0-9]*  "ID"
	[\t\n ]+        ;

The last field of a line is the token name, with quotes trimmed. All fields
before it, re-joined with single spaces, form the pattern. Rule order is
preserved.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rules

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexgen.rules'.
func tracer() tracing.Trace {
	return tracing.Select("lexgen.rules")
}
