package nfa

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lexgen"
	"github.com/npillmayer/lexgen/automaton"
	"github.com/npillmayer/lexgen/regex"
	"github.com/npillmayer/lexgen/rules"
)

// NFA is a nondeterministic automaton for a set of rules. After construction
// the NFA is read-only.
type NFA struct {
	g     *automaton.Graph
	rules []rules.Rule // rules compiled into the automaton
}

// Option configures the NFA builder.
type Option func(b *builder)

type builder struct {
	skipSeparators bool
	skipMarker     string
}

// SkipSeparators sets or clears option SkipSeparators: leave rules named with the skip
// marker out of the automaton. Input matching these rules will then be handled as
// unmatched input by scanners.
func SkipSeparators(b bool) Option {
	return func(bld *builder) {
		bld.skipSeparators = b
	}
}

// WithSkipMarker sets the token name marking separator rules. Default is ";".
func WithSkipMarker(name string) Option {
	return func(bld *builder) {
		bld.skipMarker = name
	}
}

// Build compiles a list of rules into an NFA. Rules with empty patterns are skipped.
// If any pattern is malformed, Build returns an error wrapping a *regex.PatternError.
func Build(rs []rules.Rule, opts ...Option) (*NFA, error) {
	bld := &builder{skipMarker: lexgen.SkipMarker}
	for _, opt := range opts {
		opt(bld)
	}
	g := automaton.New()
	root := g.NewNode("NFA", false)
	g.SetRoot(root)
	n := &NFA{g: g}
	c := regex.NewCompiler(g)
	for _, r := range rs {
		if strings.TrimSpace(r.Pattern) == "" {
			tracer().Debugf("skipping empty pattern for %s (line %d)", r.Name, r.Line)
			continue
		}
		if bld.skipSeparators && r.Name == bld.skipMarker {
			tracer().Debugf("skipping separator %q (line %d)", r.Pattern, r.Line)
			continue
		}
		if _, err := c.Compile(r.Pattern, r.Name, root, true); err != nil {
			tracer().Errorf("rule %s at line %d: %v", r.Name, r.Line, err)
			return nil, fmt.Errorf("rule %s at line %d (%q): %w", r.Name, r.Line, r.Pattern, err)
		}
		n.rules = append(n.rules, r)
	}
	g.Freeze()
	tracer().Infof("NFA for %d rules has %d states", len(n.rules), g.Size())
	return n, nil
}

// Graph returns the underlying graph. It must not be modified.
func (n *NFA) Graph() *automaton.Graph {
	return n.g
}

// Root returns the start state.
func (n *NFA) Root() automaton.NodeID {
	return n.g.Root()
}

// Rules returns the rules which have been compiled into the NFA, in order.
func (n *NFA) Rules() []rules.Rule {
	return n.rules
}
