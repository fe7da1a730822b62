package lexgen

import "fmt"

// --- Tokens ----------------------------------------------------------------

// Reserved token types. Token types produced from rule files are the rule names,
// thus applications are free to choose any names except these.
const (
	EOF       = "#eof"   // end of input
	ErrorType = "#error" // unmatched input under a strict scanning policy
)

// SkipMarker is the conventional name of rules whose matches are recognized
// but never emitted, e.g. whitespace.
const SkipMarker = ";"

// Token represents an input token, as produced by a scanner. It reflects a
// match of one of the lexical rules.
//
// An example would be a token for an identifier:
//
//    Type   = "ID"        // name of the rule which matched
//    Lexeme = "counter"   // lexeme, whitespace-trimmed
//    Span   = (67…74)     // rune positions in the input, untrimmed
//    At     = 3:12        // line and column of the first rune of the match
//
type Token struct {
	Type   string
	Lexeme string
	Span   Span
	At     Position
}

// IsEOF is a predicate for the end-of-input token.
func (t Token) IsEOF() bool {
	return t.Type == EOF
}

func (t Token) String() string {
	return fmt.Sprintf("<%s %q %v>", t.Type, t.Lexeme, t.Span)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input runes. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Positions --------------------------------------------------------

// Position is a line/column location in the input, both counting from 1.
// Columns count runes, not bytes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
