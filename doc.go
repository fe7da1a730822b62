/*
Package lexgen is a small lexer generator.

Lexical rules, each a regular expression paired with a token name, are
compiled into a minimal runtime capable of tokenizing source text. Package
structure is as follows:

■ automaton: Package automaton holds the node/edge store shared by NFAs and DFAs,
together with export to Graphviz's Dot-format.

■ regex: Package regex translates a single pattern into an automaton fragment.

■ rules: Package rules reads lex-style rule files.

■ nfa: Package nfa assembles all rules into one NFA under a shared start state.

■ dfa: Package dfa converts an NFA into a DFA by subset construction. It
offers DFA minimization and compiled transition tables as optional stages.

■ sparse: Package sparse holds the sparse matrix backing compiled transition tables.

■ scanner: Package scanner drives a DFA over input text using the maximal-munch
policy. Sub-package lexmach implements a cross-check scanner on top of lexmachine.

■ lexer: Package lexer wires everything together.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexgen
