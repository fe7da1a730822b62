/*
Package lexer puts together the stages of lexgen: rules are compiled into an
NFA, the NFA is converted to a DFA, and the DFA drives scanners.

	lx, err := lexer.Load("oat.l", lexer.Minimized(true), lexer.Strict(true))
	if err != nil {
		…
	}
	tokens, err := lx.Tokens(input)

A Lexer is read-only after creation and may be used by concurrent scanners.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/lexgen"
	"github.com/npillmayer/lexgen/dfa"
	"github.com/npillmayer/lexgen/nfa"
	"github.com/npillmayer/lexgen/rules"
	"github.com/npillmayer/lexgen/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexgen.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("lexgen.lexer")
}

// Lexer is a generated lexer for a set of rules.
type Lexer struct {
	rules     []rules.Rule
	nfa       *nfa.NFA
	dfa       *dfa.DFA
	automaton scanner.Automaton // drives the scanners
	config    config
}

type config struct {
	minimize       bool
	table          bool
	tieBreak       dfa.TieBreak
	strict         bool
	skipMarker     string
	skipSeparators bool
}

// Option configures a Lexer.
type Option func(c *config)

// Minimized sets or clears option Minimized: minimize the DFA.
func Minimized(b bool) Option {
	return func(c *config) {
		c.minimize = b
	}
}

// TableDriven sets or clears option TableDriven: compile the DFA into a
// transition table.
func TableDriven(b bool) Option {
	return func(c *config) {
		c.table = b
	}
}

// WithTieBreak sets the policy for overlapping rules.
func WithTieBreak(tb dfa.TieBreak) Option {
	return func(c *config) {
		c.tieBreak = tb
	}
}

// Strict sets or clears option Strict: fail on unmatched input instead of
// skipping it.
func Strict(b bool) Option {
	return func(c *config) {
		c.strict = b
	}
}

// WithSkipMarker sets the token type of rules whose matches are dropped.
func WithSkipMarker(name string) Option {
	return func(c *config) {
		c.skipMarker = name
	}
}

// SkipSeparators sets or clears option SkipSeparators: leave rules named
// with the skip marker out of the automaton altogether.
func SkipSeparators(b bool) Option {
	return func(c *config) {
		c.skipSeparators = b
	}
}

// New creates a lexer for a list of rules.
func New(rs []rules.Rule, opts ...Option) (*Lexer, error) {
	lx := &Lexer{rules: rs}
	lx.config.skipMarker = lexgen.SkipMarker
	for _, opt := range opts {
		opt(&lx.config)
	}
	var err error
	lx.nfa, err = nfa.Build(rs,
		nfa.SkipSeparators(lx.config.skipSeparators),
		nfa.WithSkipMarker(lx.config.skipMarker))
	if err != nil {
		return nil, err
	}
	lx.dfa = dfa.Build(lx.nfa, dfa.WithTieBreak(lx.config.tieBreak))
	if lx.config.minimize {
		lx.dfa = dfa.Minimize(lx.dfa)
	}
	lx.automaton = lx.dfa
	if lx.config.table {
		lx.automaton = dfa.Compile(lx.dfa)
	}
	tracer().Infof("lexer for %d rules: %d NFA states, %d DFA states",
		len(rs), lx.nfa.Graph().Size(), lx.dfa.Size())
	return lx, nil
}

// Load reads rules from a rule file and creates a lexer for them.
func Load(path string, opts ...Option) (*Lexer, error) {
	rs, err := rules.Load(path)
	if err != nil {
		return nil, err
	}
	return New(rs, opts...)
}

// Scanner creates a scanner for an input string.
func (lx *Lexer) Scanner(input string) *scanner.DFAScanner {
	return scanner.New(lx.automaton, input, lx.scannerOptions()...)
}

// Tokens scans a complete input. Under option Strict, unmatched input
// results in a *scanner.LexError.
func (lx *Lexer) Tokens(input string) ([]lexgen.Token, error) {
	return scanner.Tokens(lx.automaton, input, lx.scannerOptions()...)
}

func (lx *Lexer) scannerOptions() []scanner.Option {
	policy := scanner.Skip
	if lx.config.strict {
		policy = scanner.Fail
	}
	return []scanner.Option{
		scanner.SkipMarker(lx.config.skipMarker),
		scanner.Unmatched(policy),
	}
}

// Rules returns the rules of the lexer.
func (lx *Lexer) Rules() []rules.Rule {
	return lx.rules
}

// NFA returns the NFA the lexer has been built from.
func (lx *Lexer) NFA() *nfa.NFA {
	return lx.nfa
}

// DFA returns the DFA of the lexer. It is minimized if option Minimized is set.
func (lx *Lexer) DFA() *dfa.DFA {
	return lx.dfa
}

// Automaton returns the automaton driving the lexer's scanners.
func (lx *Lexer) Automaton() scanner.Automaton {
	return lx.automaton
}
