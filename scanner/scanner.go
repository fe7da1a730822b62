package scanner

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lexgen"
	"github.com/npillmayer/lexgen/automaton"
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lexgen.Token
	SetErrorHandler(func(error))
}

// Automaton is a deterministic automaton able to drive a scanner.
type Automaton interface {
	// Start returns the start state.
	Start() automaton.NodeID
	// Step returns the successor of state for input r, if any.
	Step(state automaton.NodeID, r rune) (automaton.NodeID, bool)
	// Accepts returns the token type for an accepting state.
	Accepts(state automaton.NodeID) (string, bool)
}

// LexError is reported for unmatched input if the scanner's policy is Fail.
type LexError struct {
	Char     rune
	Offset   int // rune offset within the input
	Position lexgen.Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%v: unexpected character %#U at offset %d", e.Position, e.Char, e.Offset)
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// DFAScanner is a scanner driven by an Automaton. Create one with New.
//
// DFAScanner implements the maximal munch policy: starting at the current input
// position, it follows the automaton's transitions as far as possible, while
// remembering the last accepting state it came across. The input up to this
// state is the next token. The scanner continues right after it.
type DFAScanner struct {
	a          Automaton
	input      []rune
	pos        int             // current rune offset
	at         lexgen.Position // line and column for pos
	skipMarker string
	unmatched  UnmatchedPolicy
	trim       bool
	failed     bool        // Fail policy has stopped the scanner
	Error      func(error) // error handler
}

var _ Tokenizer = (*DFAScanner)(nil)

// New creates a scanner for an input string.
func New(a Automaton, input string, opts ...Option) *DFAScanner {
	s := &DFAScanner{
		a:          a,
		input:      []rune(input),
		at:         lexgen.Position{Line: 1, Column: 1},
		skipMarker: lexgen.SkipMarker,
		trim:       true,
		Error:      logError,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetErrorHandler sets an error handler for the scanner.
func (s *DFAScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// At the end of input NextToken returns a token of type lexgen.EOF. If an
// unmatched character is encountered under policy Fail, NextToken reports a
// *LexError to the error handler and returns a token of type
// lexgen.ErrorType. After that, only EOF is returned.
func (s *DFAScanner) NextToken() lexgen.Token {
	for !s.failed && s.pos < len(s.input) {
		end, name := s.munch()
		if end < 0 {
			r := s.input[s.pos]
			if s.unmatched == Fail {
				err := &LexError{Char: r, Offset: s.pos, Position: s.at}
				token := lexgen.Token{
					Type:   lexgen.ErrorType,
					Lexeme: string(r),
					Span:   lexgen.Span{uint64(s.pos), uint64(s.pos + 1)},
					At:     s.at,
				}
				s.failed = true
				s.Error(err)
				return token
			}
			tracer().Debugf("skipping unmatched character %#U at %v", r, s.at)
			s.advance(s.pos + 1)
			continue
		}
		token := lexgen.Token{
			Type:   name,
			Lexeme: string(s.input[s.pos:end]),
			Span:   lexgen.Span{uint64(s.pos), uint64(end)},
			At:     s.at,
		}
		s.advance(end)
		if name == s.skipMarker {
			continue
		}
		if s.trim {
			token.Lexeme = strings.TrimSpace(token.Lexeme)
		}
		tracer().Debugf("token %v", token)
		return token
	}
	n := uint64(len(s.input))
	return lexgen.Token{Type: lexgen.EOF, Span: lexgen.Span{n, n}, At: s.at}
}

// munch walks the automaton from the current position. It returns the end
// position and token type of the longest match, or -1 if there is no match.
func (s *DFAScanner) munch() (int, string) {
	end, name := -1, ""
	state := s.a.Start()
	for i := s.pos; i < len(s.input); i++ {
		next, ok := s.a.Step(state, s.input[i])
		if !ok {
			break
		}
		state = next
		if typ, accepting := s.a.Accepts(state); accepting {
			end, name = i+1, typ
		}
	}
	return end, name
}

// advance moves the current position to offset to, tracking lines and columns.
func (s *DFAScanner) advance(to int) {
	for ; s.pos < to; s.pos++ {
		if s.input[s.pos] == '\n' {
			s.at.Line++
			s.at.Column = 1
		} else {
			s.at.Column++
		}
	}
}

// Tokens scans a complete input and returns all tokens, excluding EOF.
// Under policy Fail, scanning stops at the first unmatched character and
// Tokens returns the tokens up to this point together with a *LexError.
func Tokens(a Automaton, input string, opts ...Option) ([]lexgen.Token, error) {
	s := New(a, input, opts...)
	var lexerr error
	s.SetErrorHandler(func(e error) {
		lexerr = e
	})
	var tokens []lexgen.Token
	for token := s.NextToken(); !token.IsEOF(); token = s.NextToken() {
		if token.Type == lexgen.ErrorType {
			break
		}
		tokens = append(tokens, token)
	}
	return tokens, lexerr
}

// --- Scanner options -------------------------------------------------------

// Option configures a DFAScanner.
type Option func(s *DFAScanner)

// UnmatchedPolicy decides what to do with input no rule matches.
type UnmatchedPolicy int

const (
	// Skip drops one character and continues scanning.
	Skip UnmatchedPolicy = iota
	// Fail stops scanning with a *LexError.
	Fail
)

// Unmatched sets the policy for unmatched input. Default is Skip.
func Unmatched(p UnmatchedPolicy) Option {
	return func(s *DFAScanner) {
		s.unmatched = p
	}
}

// SkipMarker sets the token type of matches to be dropped. Default is ";".
func SkipMarker(name string) Option {
	return func(s *DFAScanner) {
		s.skipMarker = name
	}
}

// TrimLexemes sets or clears option TrimLexemes: remove leading and trailing
// whitespace from lexemes. Default is true.
func TrimLexemes(b bool) Option {
	return func(s *DFAScanner) {
		s.trim = b
	}
}
