package dfa

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/lexgen/automaton"
)

// Minimize creates an equivalent DFA with a minimal number of states.
// States are merged if they report the same token type and transition into
// equivalent states for every input rune. The result recognizes the same
// tokens as d; d itself is left untouched.
//
// The state set of a merged state is the union of its members' state sets.
func Minimize(d *DFA) *DFA {
	states := d.g.Reachable()
	alphabet := d.alphabet()
	// initial partition by token type
	block := make(map[automaton.NodeID]int, len(states))
	initial := make(map[string]int)
	for _, s := range states {
		name, ok := d.Accepts(s)
		key := "-"
		if ok {
			key = "+" + name
		}
		if _, found := initial[key]; !found {
			initial[key] = len(initial)
		}
		block[s] = initial[key]
	}
	count := len(initial)
	// refine until stable
	for {
		sigs := make(map[string]int)
		next := make(map[automaton.NodeID]int, len(states))
		for _, s := range states {
			sig := make([]int, 0, len(alphabet)+1)
			sig = append(sig, block[s])
			for _, r := range alphabet {
				if t, ok := d.Step(s, r); ok {
					sig = append(sig, block[t])
				} else {
					sig = append(sig, -1)
				}
			}
			key := fmt.Sprint(sig)
			if _, found := sigs[key]; !found {
				sigs[key] = len(sigs)
			}
			next[s] = sigs[key]
		}
		block = next
		if len(sigs) == count {
			break
		}
		count = len(sigs)
	}
	tracer().Infof("minimized DFA from %d to %d states", len(states), count)
	return d.quotient(states, block, count)
}

// alphabet collects all runes used in transitions.
func (d *DFA) alphabet() []rune {
	label := automaton.LabelOf()
	d.g.Each(func(n *automaton.Node) {
		for _, e := range n.Edges() {
			label = label.Union(e.Label)
		}
	})
	return label.Runes()
}

// quotient creates a DFA with one state per block. New state IDs are assigned in
// breadth-first order of the original states, so the root block will be state 0.
func (d *DFA) quotient(states []automaton.NodeID, block map[automaton.NodeID]int, count int) *DFA {
	m := &DFA{g: automaton.New(), sets: make([][]automaton.NodeID, count)}
	newID := make([]automaton.NodeID, count)
	for i := range newID {
		newID[i] = automaton.NoNode
	}
	var reps []automaton.NodeID // one representative per block
	members := make([]*treeset.Set, count)
	for _, s := range states {
		b := block[s]
		if newID[b] == automaton.NoNode {
			newID[b] = m.g.NewNode("", false)
			members[newID[b]] = treeset.NewWith(nodeIDComparator)
			if name, ok := d.Accepts(s); ok {
				m.g.MarkTerminal(newID[b], name)
			}
			reps = append(reps, s)
		}
		for _, id := range d.sets[s] {
			members[newID[b]].Add(id)
		}
	}
	for _, s := range reps {
		for _, e := range d.g.Edges(s) {
			m.g.AddEdge(newID[block[s]], newID[block[e.To]], e.Label)
		}
	}
	for i, set := range members {
		ids := make([]automaton.NodeID, 0, set.Size())
		for _, x := range set.Values() {
			ids = append(ids, x.(automaton.NodeID))
		}
		m.sets[i] = ids
		if !m.g.Node(automaton.NodeID(i)).Terminal {
			m.g.Node(automaton.NodeID(i)).Name = setName(ids)
		}
	}
	m.g.SetRoot(newID[block[d.g.Root()]])
	m.g.Freeze()
	return m
}
