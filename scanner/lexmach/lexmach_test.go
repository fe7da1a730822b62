package lexmach

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/lexgen"
	"github.com/npillmayer/lexgen/dfa"
	"github.com/npillmayer/lexgen/nfa"
	"github.com/npillmayer/lexgen/rules"
	"github.com/npillmayer/lexgen/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTranslate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.scanner")
	defer teardown()
	//
	for i, test := range []struct {
		pattern, expected string
	}{
		{`abc`, `abc`},
		{`a|b*`, `a|b*`},
		{`\s+`, `[\t\n\r ]+`},
		{`\(\.`, `\(\.`},
		{`[a-c_]`, `[\_abc]`},
		{`[\]\-]`, `[\-\]]`},
		{`(x|y)?`, `(x|y)?`},
		{`[^ -y]`, `[z\{\|\}\~]`},
	} {
		lm, err := Translate(test.pattern)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if lm != test.expected {
			t.Errorf("test %d: expected %q to translate to %q, is %q", i, test.pattern, test.expected, lm)
		}
	}
	for _, bad := range []string{`ab\`, `[ab`, `[]`, `é`} {
		if _, err := Translate(bad); err == nil {
			t.Errorf("expected translation of %q to fail", bad)
		}
	}
}

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="my string" // commented `,
	"if iffy, else",
}

var TokenCounts = []int{1, 3, 2, 6, 3}

const testRules = `%%
if                       "IF"
else                     "ELSE"
[a-zA-Z_][a-zA-Z0-9_]*   "ID"
[1-9][0-9]*              "NUM"
"[^"]*"                  "STRING"
\+|=|/                   "OP"
[\s]+                    ;
`

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.scanner")
	defer teardown()
	//
	rs, err := rules.ParseString("test.l", testRules)
	if err != nil {
		t.Fatal(err)
	}
	LM, err := NewLMAdapter(rs, lexgen.SkipMarker)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		sc.SetErrorHandler(func(e error) {
			t.Logf("unconsumed input: %v", e)
		})
		token := sc.NextToken()
		count := 0
		for !token.IsEOF() {
			t.Logf(" %6s | %15s | @%5d", token.Type, token.Lexeme, token.Span.From())
			token = sc.NextToken()
			count++
		}
		if count != TokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, TokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestCrossCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexgen.scanner")
	defer teardown()
	//
	rs, err := rules.ParseString("test.l", testRules)
	if err != nil {
		t.Fatal(err)
	}
	LM, err := NewLMAdapter(rs, lexgen.SkipMarker)
	if err != nil {
		t.Fatal(err)
	}
	n, err := nfa.Build(rs)
	if err != nil {
		t.Fatal(err)
	}
	d := dfa.Build(n, dfa.WithTieBreak(dfa.FirstDeclared))
	for i, input := range inputStrings {
		expected, _ := scanner.Tokens(d, input)
		tokens, err := LM.Tokens(input)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(typesAndLexemes(expected), typesAndLexemes(tokens)); diff != "" {
			t.Errorf("test %d: lexmachine differs for %q (-dfa +lexmachine):\n%s", i, input, diff)
		}
	}
}

func typesAndLexemes(tokens []lexgen.Token) []string {
	var tl []string
	for _, token := range tokens {
		tl = append(tl, token.Type+" "+token.Lexeme)
	}
	return tl
}
