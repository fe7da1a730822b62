/*
Package regex translates regular expressions into fragments of a finite automaton.

A pattern is compiled into an automaton.Graph, starting at a given node. The
compiler returns the exit node of the fragment. Clients usually compile a set of
patterns against one shared start node, thus constructing an NFA for all of them
(see package nfa).

Supported syntax:

    c        literal rune c
    \s       whitespace: space, tab, newline, carriage return
    \c       literal rune c, for any other c
    [abc]    bracket expression; ranges a-z; \s and \c as above
    [^abc]   negated bracket expression, relative to printable ASCII (space…tilde)
    (p)      group
    p|q      alternation
    p*       zero or more
    p+       one or more
    p?       zero or one

The dot is not special. Malformed patterns result in a *PatternError.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package regex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexgen.regex'.
func tracer() tracing.Trace {
	return tracing.Select("lexgen.regex")
}
