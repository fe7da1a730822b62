package dfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/lexgen/automaton"
	"github.com/npillmayer/lexgen/nfa"
	"golang.org/x/exp/maps"
)

// TieBreak is a policy for naming DFA states which contain more than one
// accepting NFA state, i.e. where rules overlap.
type TieBreak int

const (
	// FirstDeclared prefers the rule declared first.
	FirstDeclared TieBreak = iota
	// LastDeclared prefers the rule declared last.
	LastDeclared
)

func (tb TieBreak) String() string {
	switch tb {
	case FirstDeclared:
		return "first"
	case LastDeclared:
		return "last"
	}
	return fmt.Sprintf("TieBreak(%d)", int(tb))
}

// TieBreakFromString returns the policy for "first" or "last".
func TieBreakFromString(s string) (TieBreak, error) {
	switch strings.ToLower(s) {
	case "first", "":
		return FirstDeclared, nil
	case "last":
		return LastDeclared, nil
	}
	return FirstDeclared, fmt.Errorf("unknown tie-break policy %q", s)
}

// DFA is a deterministic finite automaton. A DFA is read-only and may be
// shared by any number of scanners.
type DFA struct {
	g    *automaton.Graph
	sets [][]automaton.NodeID // NFA states per DFA state, ascending
}

// Option configures the DFA builder.
type Option func(b *builder)

// WithTieBreak sets the policy for overlapping rules. Default is FirstDeclared.
func WithTieBreak(tb TieBreak) Option {
	return func(b *builder) {
		b.tieBreak = tb
	}
}

// Build constructs a DFA from an NFA.
func Build(n *nfa.NFA, opts ...Option) *DFA {
	b := &builder{
		nfa:   n.Graph(),
		d:     &DFA{g: automaton.New()},
		index: make(map[string][]automaton.NodeID),
	}
	for _, opt := range opts {
		opt(b)
	}
	tracer().Debugf("=== build DFA ===================================================")
	start := treeset.NewWith(nodeIDComparator)
	start.Add(n.Root())
	root, _ := b.stateFor(b.closure(start))
	b.d.g.SetRoot(root)
	worklist := arraylist.New()
	worklist.Add(root)
	for !worklist.Empty() {
		x, _ := worklist.Get(0)
		worklist.Remove(0)
		s := x.(automaton.NodeID)
		set := b.d.sets[s]
		for _, r := range b.symbols(set) {
			next := b.closure(b.move(set, r))
			if next.Empty() {
				continue
			}
			t, isNew := b.stateFor(next)
			if isNew {
				worklist.Add(t)
			}
			b.d.g.AddEdge(s, t, automaton.LabelOf(r))
		}
	}
	b.d.g.Freeze()
	tracer().Infof("DFA has %d states for %d NFA states", b.d.g.Size(), b.nfa.Size())
	return b.d
}

// Graph returns the underlying graph. It must not be modified.
func (d *DFA) Graph() *automaton.Graph {
	return d.g
}

// Root returns the start state.
func (d *DFA) Root() automaton.NodeID {
	return d.g.Root()
}

// Size returns the number of states.
func (d *DFA) Size() int {
	return d.g.Size()
}

// StateSet returns the set of NFA states a DFA state represents, in ascending order.
func (d *DFA) StateSet(id automaton.NodeID) []automaton.NodeID {
	d.g.Node(id)
	return d.sets[id]
}

// Start is part of interface scanner.Automaton.
func (d *DFA) Start() automaton.NodeID {
	return d.g.Root()
}

// Step is part of interface scanner.Automaton.
func (d *DFA) Step(state automaton.NodeID, r rune) (automaton.NodeID, bool) {
	for _, e := range d.g.Edges(state) {
		if e.Label.Contains(r) {
			return e.To, true
		}
	}
	return automaton.NoNode, false
}

// Accepts is part of interface scanner.Automaton.
func (d *DFA) Accepts(state automaton.NodeID) (string, bool) {
	n := d.g.Node(state)
	if !n.Terminal {
		return "", false
	}
	return n.Name, true
}

// TokenTypes returns the token types of all accepting states, sorted.
func (d *DFA) TokenTypes() []string {
	types := make(map[string]struct{})
	d.g.Each(func(n *automaton.Node) {
		if n.Terminal {
			types[n.Name] = struct{}{}
		}
	})
	names := maps.Keys(types)
	sort.Strings(names)
	return names
}

// --- Subset construction ---------------------------------------------------

type builder struct {
	nfa      *automaton.Graph
	d        *DFA
	index    map[string][]automaton.NodeID // fingerprint of NFA set -> DFA states
	tieBreak TieBreak
}

// We need this for sets of NFA states. It sorts states by ID.
func nodeIDComparator(a, b interface{}) int {
	return utils.IntComparator(int(a.(automaton.NodeID)), int(b.(automaton.NodeID)))
}

// closure extends a set of NFA states by every state reachable through
// epsilon transitions.
func (b *builder) closure(set *treeset.Set) *treeset.Set {
	stack := make([]automaton.NodeID, 0, set.Size())
	for _, x := range set.Values() {
		stack = append(stack, x.(automaton.NodeID))
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range b.nfa.Edges(id) {
			if e.Label.IsEpsilon() && !set.Contains(e.To) {
				set.Add(e.To)
				stack = append(stack, e.To)
			}
		}
	}
	return set
}

// move returns the NFA states reachable from set by consuming r.
func (b *builder) move(set []automaton.NodeID, r rune) *treeset.Set {
	result := treeset.NewWith(nodeIDComparator)
	for _, id := range set {
		for _, e := range b.nfa.Edges(id) {
			if !e.Label.IsEpsilon() && e.Label.Contains(r) {
				result.Add(e.To)
			}
		}
	}
	return result
}

// symbols collects the runes of all non-epsilon transitions leaving set.
func (b *builder) symbols(set []automaton.NodeID) []rune {
	label := automaton.LabelOf()
	for _, id := range set {
		for _, e := range b.nfa.Edges(id) {
			if !e.Label.IsEpsilon() {
				label = label.Union(e.Label)
			}
		}
	}
	return label.Runes()
}

type stateSetKey struct {
	States []int
}

// stateFor finds the DFA state for a set of NFA states, or creates a new one.
func (b *builder) stateFor(set *treeset.Set) (automaton.NodeID, bool) {
	ids := make([]automaton.NodeID, 0, set.Size())
	key := stateSetKey{States: make([]int, 0, set.Size())}
	it := set.Iterator()
	for it.Next() {
		id := it.Value().(automaton.NodeID)
		ids = append(ids, id)
		key.States = append(key.States, int(id))
	}
	fp := string(structhash.Sha1(key, 1))
	for _, s := range b.index[fp] {
		if equalSets(b.d.sets[s], ids) {
			return s, false
		}
	}
	s := b.d.g.NewNode(setName(ids), false)
	b.d.sets = append(b.d.sets, ids)
	b.index[fp] = append(b.index[fp], s)
	if name, ok := b.acceptingName(ids); ok {
		b.d.g.MarkTerminal(s, name)
	}
	tracer().Debugf("new DFA state %d = %s", s, setName(ids))
	return s, true
}

// acceptingName selects the token type for a set of NFA states, following the
// tie-break policy.
func (b *builder) acceptingName(ids []automaton.NodeID) (string, bool) {
	var winner *automaton.Node
	for _, id := range ids {
		n := b.nfa.Node(id)
		if !n.Terminal {
			continue
		}
		if winner == nil ||
			b.tieBreak == FirstDeclared && n.Rank < winner.Rank ||
			b.tieBreak == LastDeclared && n.Rank > winner.Rank {
			winner = n
		}
	}
	if winner == nil {
		return "", false
	}
	return winner.Name, true
}

func equalSets(a, b []automaton.NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func setName(ids []automaton.NodeID) string {
	var s strings.Builder
	s.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			s.WriteByte(',')
		}
		fmt.Fprintf(&s, "%d", id)
	}
	s.WriteByte('}')
	return s.String()
}
