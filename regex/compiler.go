package regex

import (
	"fmt"

	"github.com/npillmayer/lexgen/automaton"
)

// Bounds of the universe for negated bracket expressions.
const (
	PrintableFirst = ' '
	PrintableLast  = '~'
)

// whitespace is the rune class for \s
var whitespace = automaton.LabelOf(' ', '\t', '\n', '\r')

// PatternError is returned for malformed patterns.
type PatternError struct {
	Pattern string // the complete pattern
	Pos     int    // rune position of the error within the pattern
	Msg     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("malformed pattern %q at position %d: %s", e.Pattern, e.Pos, e.Msg)
}

// Compiler compiles patterns into fragments of a graph.
type Compiler struct {
	g *automaton.Graph
}

// NewCompiler creates a compiler which will add nodes and edges to g.
func NewCompiler(g *automaton.Graph) *Compiler {
	return &Compiler{g: g}
}

// Compile translates a pattern into a fragment of the compiler's graph, wired
// from node start. It returns the exit node of the fragment. If alternations
// occur at the top level of the pattern, the exit node is a node joining all
// the alternatives' exits.
//
// name is used to label the nodes created for the pattern. If markEnding is
// set, the exit node is marked as terminal with token type name.
//
// If pattern is malformed, a *PatternError is returned. Nodes created up to
// the point of failure are left in the graph; clients should discard the graph.
func (c *Compiler) Compile(pattern, name string, start automaton.NodeID, markEnding bool) (automaton.NodeID, error) {
	c.g.Node(start) // start must exist
	p := &parser{g: c.g, pattern: pattern, name: name}
	exit, err := p.sequence([]rune(pattern), 0, start)
	if err != nil {
		tracer().Debugf("cannot compile %q: %v", pattern, err)
		return automaton.NoNode, err
	}
	if markEnding {
		c.g.MarkTerminal(exit, name)
	}
	tracer().Debugf("compiled %q for %s: %d -> … -> %d", pattern, name, start, exit)
	return exit, nil
}

// ParseBracket resolves the body of a bracket expression, i.e. the text between
// '[' and ']', to a set of runes.
func ParseBracket(body string) (automaton.Label, error) {
	p := &parser{pattern: "[" + body + "]"}
	return p.bracket([]rune(body), 0)
}

// Whitespace returns the rune class for \s.
func Whitespace() automaton.Label {
	return whitespace
}

// --- Parser ----------------------------------------------------------------

type parser struct {
	g       *automaton.Graph
	pattern string
	name    string
}

// atom is a single unit of a pattern, i.e. the operand of a repetition operator.
type atom struct {
	label   automaton.Label // runes to match, if not a group
	isGroup bool
	group   []rune // inner pattern of a group
	offset  int    // position of group in pattern
}

func (p *parser) errorf(pos int, format string, args ...interface{}) error {
	return &PatternError{Pattern: p.pattern, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// sequence compiles a (sub-)pattern rs, starting at node start. rs occurs at
// position offset within the pattern.
//
// Every alternative starts at node start. A unit followed by repetition
// operators gets a private entry node, reached from the current node by an
// epsilon edge. Back-edges of repetitions then target this entry node only.
func (p *parser) sequence(rs []rune, offset int, start automaton.NodeID) (automaton.NodeID, error) {
	cur := start
	var alts []automaton.NodeID
	for i := 0; i < len(rs); {
		switch rs[i] {
		case '|':
			alts = append(alts, cur)
			cur = start
			i++
			continue
		case '*', '+', '?':
			return automaton.NoNode, p.errorf(offset+i, "%q without preceding expression", rs[i])
		case ')':
			return automaton.NoNode, p.errorf(offset+i, "unbalanced ')'")
		}
		a, n, err := p.atom(rs, i, offset)
		if err != nil {
			return automaton.NoNode, err
		}
		i += n
		j := i
		for j < len(rs) && isRepetition(rs[j]) {
			j++
		}
		if j == i { // no repetition
			if cur, err = p.emit(a, cur); err != nil {
				return automaton.NoNode, err
			}
			continue
		}
		entry := p.g.NewNode(p.name, false)
		p.g.AddEdge(cur, entry, automaton.Epsilon())
		exit, err := p.emit(a, entry)
		if err != nil {
			return automaton.NoNode, err
		}
		for _, op := range rs[i:j] {
			exit = p.repeat(op, entry, exit)
		}
		cur = exit
		i = j
	}
	if len(alts) > 0 {
		alts = append(alts, cur)
		merge := p.g.NewNode(p.name, false)
		for _, alt := range alts {
			p.g.AddEdge(alt, merge, automaton.Epsilon())
		}
		cur = merge
	}
	return cur, nil
}

func isRepetition(r rune) bool {
	return r == '*' || r == '+' || r == '?'
}

// atom reads the unit at rs[i]. It returns the unit and the number of runes
// it occupies.
func (p *parser) atom(rs []rune, i int, offset int) (atom, int, error) {
	switch rs[i] {
	case '\\':
		if i+1 >= len(rs) {
			return atom{}, 0, p.errorf(offset+i, "trailing escape")
		}
		if rs[i+1] == 's' {
			return atom{label: whitespace}, 2, nil
		}
		return atom{label: automaton.LabelOf(rs[i+1])}, 2, nil
	case '[':
		k := i + 1
		for k < len(rs) && rs[k] != ']' {
			if rs[k] == '\\' {
				k++
			}
			k++
		}
		if k >= len(rs) {
			return atom{}, 0, p.errorf(offset+i, "unterminated bracket expression")
		}
		label, err := p.bracket(rs[i+1:k], offset+i)
		if err != nil {
			return atom{}, 0, err
		}
		return atom{label: label}, k - i + 1, nil
	case '(':
		k := p.closingParen(rs, i)
		if k < 0 {
			return atom{}, 0, p.errorf(offset+i, "unterminated group")
		}
		a := atom{isGroup: true, group: rs[i+1 : k], offset: offset + i + 1}
		return a, k - i + 1, nil
	}
	return atom{label: automaton.LabelOf(rs[i])}, 1, nil
}

// closingParen finds the position of the ')' matching the '(' at rs[i].
// Escaped runes and bracket expressions are skipped. Returns -1 if there is
// no matching parenthesis.
func (p *parser) closingParen(rs []rune, i int) int {
	depth := 0
	for k := i; k < len(rs); k++ {
		switch rs[k] {
		case '\\':
			k++
		case '[':
			for k++; k < len(rs) && rs[k] != ']'; k++ {
				if rs[k] == '\\' {
					k++
				}
			}
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return k
			}
		}
	}
	return -1
}

// bracket resolves the body of a bracket expression to a set of runes.
// pos is the position of the opening '['.
func (p *parser) bracket(body []rune, pos int) (automaton.Label, error) {
	negate := false
	i := 0
	if len(body) > 0 && body[0] == '^' {
		negate = true
		i = 1
	}
	if i == len(body) {
		return automaton.Label{}, p.errorf(pos, "empty bracket expression")
	}
	set := automaton.LabelOf()
	var prev rune
	hasPrev := false // is prev available as the lower bound of a range?
	for i < len(body) {
		r := body[i]
		switch {
		case r == '\\':
			if i+1 >= len(body) {
				return automaton.Label{}, p.errorf(pos+1+i, "trailing escape")
			}
			e := body[i+1]
			i += 2
			if e == 's' {
				set = set.Union(whitespace)
				hasPrev = false
				continue
			}
			set = set.Union(automaton.LabelOf(e))
			prev, hasPrev = e, true
		case r == '-' && hasPrev && i+1 < len(body):
			hi, skip := body[i+1], 2
			if hi == '\\' {
				if i+2 >= len(body) {
					return automaton.Label{}, p.errorf(pos+1+i, "trailing escape")
				}
				hi, skip = body[i+2], 3
			}
			if hi < prev {
				return automaton.Label{}, p.errorf(pos+1+i, "invalid range %c-%c", prev, hi)
			}
			set = set.Union(automaton.LabelRange(prev, hi))
			hasPrev = false
			i += skip
		default:
			set = set.Union(automaton.LabelOf(r))
			prev, hasPrev = r, true
			i++
		}
	}
	if negate {
		set = set.Complement(PrintableFirst, PrintableLast)
	}
	return set, nil
}

// emit creates the nodes and edges for a unit, starting at node from.
// It returns the exit node of the unit.
func (p *parser) emit(a atom, from automaton.NodeID) (automaton.NodeID, error) {
	if a.isGroup {
		start := p.g.NewNode("(", false)
		p.g.AddEdge(from, start, automaton.Epsilon())
		return p.sequence(a.group, a.offset, start)
	}
	to := p.g.NewNode(p.name, false)
	p.g.AddEdge(from, to, a.label)
	return to, nil
}

// repeat wires a repetition operator around a unit with entry and exit nodes.
// It returns the new exit node.
func (p *parser) repeat(op rune, entry, exit automaton.NodeID) automaton.NodeID {
	switch op {
	case '*':
		merge := p.g.NewNode(p.name, false)
		p.g.AddEdge(entry, merge, automaton.Epsilon()) // skip the unit
		p.g.AddEdge(exit, merge, automaton.Epsilon())  // finalize one occurence
		p.g.AddEdge(merge, entry, automaton.Epsilon()) // allow repetition
		return merge
	case '+':
		p.g.AddEdge(exit, entry, automaton.Epsilon()) // allow repetition
		return exit
	case '?':
		merge := p.g.NewNode(p.name, false)
		p.g.AddEdge(entry, merge, automaton.Epsilon())
		p.g.AddEdge(exit, merge, automaton.Epsilon())
		return merge
	}
	panic(fmt.Sprintf("regex: not a repetition operator: %q", op))
}
