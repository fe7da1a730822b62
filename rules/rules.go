package rules

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Rule is a pair of pattern and token name.
type Rule struct {
	Pattern string
	Name    string
	Line    int // line number within the rule file, 1-based; 0 if unknown
}

func (r Rule) String() string {
	return fmt.Sprintf("%s %q", r.Pattern, r.Name)
}

// RuleFileError is returned for malformed rule lines.
type RuleFileError struct {
	File string
	Line int
	Msg  string
}

func (e *RuleFileError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// --- Grammar of rule files -------------------------------------------------

var ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Word", Pattern: `[^ \t\r\n]+`},
})

type ruleFile struct {
	Lines []*ruleLine `parser:"( @@ | EOL )*"`
}

type ruleLine struct {
	Pos   lexer.Position
	Words []string `parser:"@Word+ EOL?"`
}

var ruleParser = participle.MustBuild[ruleFile](
	participle.Lexer(ruleLexer),
	participle.Elide("Whitespace"),
)

// --- API -------------------------------------------------------------------

// Load reads the rules from a file.
func Load(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

// ParseString reads rules from a string. filename is used for error messages.
func ParseString(filename, input string) ([]Rule, error) {
	return Parse(filename, strings.NewReader(input))
}

// Parse reads rules from r. filename is used for error messages.
func Parse(filename string, r io.Reader) ([]Rule, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read rules from %s: %w", filename, err)
	}
	if strings.TrimSpace(string(input)) == "" {
		tracer().Infof("no rules in %s", filename)
		return nil, nil
	}
	file, err := ruleParser.ParseBytes(filename, input)
	if err != nil {
		tracer().Errorf("cannot parse rule file %s: %v", filename, err)
		return nil, err
	}
	rs := make([]Rule, 0, len(file.Lines))
	for _, line := range file.Lines {
		if strings.HasPrefix(line.Words[0], "%%") {
			continue
		}
		if len(line.Words) < 2 {
			err := &RuleFileError{File: filename, Line: line.Pos.Line, Msg: "missing token name"}
			tracer().Errorf("%v", err)
			return nil, err
		}
		last := len(line.Words) - 1
		rs = append(rs, Rule{
			Pattern: strings.Join(line.Words[:last], " "),
			Name:    strings.Trim(line.Words[last], `"`),
			Line:    line.Pos.Line,
		})
	}
	tracer().Infof("read %d rules from %s", len(rs), filename)
	return rs, nil
}
