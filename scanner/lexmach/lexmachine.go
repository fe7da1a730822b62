package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lexgen"
	"github.com/npillmayer/lexgen/automaton"
	"github.com/npillmayer/lexgen/regex"
	"github.com/npillmayer/lexgen/rules"
	"github.com/npillmayer/lexgen/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'lexgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lexgen.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	types []string // token type per lexmachine token ID
}

// NewLMAdapter creates a new lexmachine adapter for a list of rules.
// Rules with token type skipMarker will be recognized, but dropped.
//
// NewLMAdapter will return an error if a pattern cannot be translated or
// if compiling the DFA failed.
func NewLMAdapter(rs []rules.Rule, skipMarker string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, r := range rs {
		if strings.TrimSpace(r.Pattern) == "" {
			continue
		}
		pattern, err := Translate(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s at line %d: %w", r.Name, r.Line, err)
		}
		tracer().Debugf("lexmachine pattern for %s: %s", r.Name, pattern)
		if r.Name == skipMarker {
			adapter.Lexer.Add([]byte(pattern), Skip)
			continue
		}
		adapter.Lexer.Add([]byte(pattern), MakeToken(r.Name, len(adapter.types)))
		adapter.types = append(adapter.types, r.Name)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, types: lm.types, Error: logError}, nil
}

// Tokens scans a complete input and returns all tokens, excluding EOF.
func (lm *LMAdapter) Tokens(input string) ([]lexgen.Token, error) {
	sc, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	sc.SetErrorHandler(func(e error) {
		tracer().Debugf("lexmachine: %v", e)
	})
	var tokens []lexgen.Token
	for token := sc.NextToken(); !token.IsEOF(); token = sc.NextToken() {
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	types   []string
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface.
//
// Unconsumed input is reported to the error handler and skipped by one
// character.
func (lms *LMScanner) NextToken() lexgen.Token {
	if lms.scanner == nil {
		return lexgen.Token{Type: lexgen.EOF}
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			return lexgen.Token{Type: lexgen.EOF}
		}
		lms.scanner.TC = ui.StartTC + 1
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		n := uint64(len(lms.scanner.Text))
		return lexgen.Token{Type: lexgen.EOF, Span: lexgen.Span{n, n}}
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return lexgen.Token{
		Type:   lms.types[token.Type],
		Lexeme: strings.TrimSpace(string(token.Lexeme)),
		Span:   lexgen.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		At:     lexgen.Position{Line: token.StartLine, Column: token.StartColumn},
	}
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// --- Pattern translation ---------------------------------------------------

// Translate converts a pattern into lexmachine's regex syntax.
func Translate(pattern string) (string, error) {
	rs := []rune(pattern)
	var b strings.Builder
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '\\':
			if i+1 >= len(rs) {
				return "", &regex.PatternError{Pattern: pattern, Pos: i, Msg: "trailing escape"}
			}
			i++
			if rs[i] == 's' {
				b.WriteString(class(regex.Whitespace()))
				continue
			}
			if err := writeChar(&b, rs[i]); err != nil {
				return "", err
			}
		case '[':
			k := i + 1
			for k < len(rs) && rs[k] != ']' {
				if rs[k] == '\\' {
					k++
				}
				k++
			}
			if k >= len(rs) {
				return "", &regex.PatternError{Pattern: pattern, Pos: i, Msg: "unterminated bracket expression"}
			}
			label, err := regex.ParseBracket(string(rs[i+1 : k]))
			if err != nil {
				return "", err
			}
			for _, r := range label.Runes() {
				if r > 127 {
					return "", fmt.Errorf("lexmachine: non-ASCII rune %#U in %q", r, pattern)
				}
			}
			b.WriteString(class(label))
			i = k
		case '(', ')', '|', '*', '+', '?':
			b.WriteRune(rs[i])
		default:
			if err := writeChar(&b, rs[i]); err != nil {
				return "", err
			}
		}
	}
	return b.String(), nil
}

// class spells out a set of runes as a lexmachine character class.
func class(label automaton.Label) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range label.Runes() {
		writeChar(&b, r)
	}
	b.WriteByte(']')
	return b.String()
}

func writeChar(b *strings.Builder, r rune) error {
	switch {
	case r > 127:
		return fmt.Errorf("lexmachine: non-ASCII rune %#U", r)
	case r == '\t':
		b.WriteString(`\t`)
	case r == '\n':
		b.WriteString(`\n`)
	case r == '\r':
		b.WriteString(`\r`)
	case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == ' ':
		b.WriteRune(r)
	default:
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return nil
}
