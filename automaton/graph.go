package automaton

import (
	"fmt"
)

// NodeID identifies a node within its graph. IDs are allocated by the graph,
// starting at 0, and are never re-used.
type NodeID int

// NoNode is an invalid node ID.
const NoNode NodeID = -1

// Edge is a directed, labeled edge. Edges are owned by their source node.
type Edge struct {
	To    NodeID
	Label Label
}

// Node is a state of an automaton.
type Node struct {
	ID       NodeID
	Name     string // token type if terminal, an internal label otherwise
	Terminal bool   // is this an accepting state?
	Rank     int    // order of marking as terminal; -1 if never marked
	edges    []Edge
}

// Edges returns the outgoing edges of a node, in order of creation.
func (n *Node) Edges() []Edge {
	return n.edges
}

func (n *Node) String() string {
	if n.Terminal {
		return fmt.Sprintf("(%d %s|%d)", n.ID, n.Name, len(n.edges))
	}
	return fmt.Sprintf("(%d|%d)", n.ID, len(n.edges))
}

// GraphConsistencyError is raised whenever a node ID is referenced which does
// not belong to a graph. This indicates a programming error.
type GraphConsistencyError struct {
	ID  NodeID
	Msg string
}

func (e *GraphConsistencyError) Error() string {
	return fmt.Sprintf("automaton: node %d: %s", e.ID, e.Msg)
}

// Graph is an arena of nodes.
type Graph struct {
	nodes  []*Node
	root   NodeID
	ranks  int  // counter for terminal ranks
	frozen bool // no more mutations allowed
}

// New creates an empty graph. Clients have to create at least one node
// and set it as the root node.
func New() *Graph {
	return &Graph{root: NoNode}
}

// NewNode creates a node and returns its ID.
func (g *Graph) NewNode(name string, terminal bool) NodeID {
	g.mutating()
	id := NodeID(len(g.nodes))
	n := &Node{ID: id, Name: name, Rank: -1}
	g.nodes = append(g.nodes, n)
	if terminal {
		g.MarkTerminal(id, name)
	}
	return id
}

// Node returns the node for an ID. It panics with a *GraphConsistencyError if
// no such node exists.
func (g *Graph) Node(id NodeID) *Node {
	n, err := g.Lookup(id)
	if err != nil {
		panic(err)
	}
	return n
}

// Lookup returns the node for an ID, or an error if no such node exists.
func (g *Graph) Lookup(id NodeID) (*Node, error) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, &GraphConsistencyError{ID: id, Msg: "not found"}
	}
	return g.nodes[id], nil
}

// Edges returns the outgoing edges of a node.
func (g *Graph) Edges(id NodeID) []Edge {
	return g.Node(id).edges
}

// AddEdge adds an edge from one node to another. If there already is an edge
// between the two nodes of the same kind (epsilon or rune-set), the existing
// edge will be extended by the runes of label. Thus there will never be
// two rune-set edges between the same pair of nodes.
func (g *Graph) AddEdge(from, to NodeID, label Label) {
	g.mutating()
	src := g.Node(from)
	if _, err := g.Lookup(to); err != nil {
		panic(err)
	}
	for i, e := range src.edges {
		if e.To == to && e.Label.IsEpsilon() == label.IsEpsilon() {
			src.edges[i].Label = e.Label.Union(label)
			return
		}
	}
	src.edges = append(src.edges, Edge{To: to, Label: label})
}

// MarkTerminal makes a node an accepting state, naming it with a token type.
// Every call assigns the next rank to the node, thus ranks reflect the
// order in which terminals have been created.
func (g *Graph) MarkTerminal(id NodeID, name string) {
	g.mutating()
	n := g.Node(id)
	n.Terminal = true
	n.Name = name
	n.Rank = g.ranks
	g.ranks++
}

// Root returns the ID of the start node, or NoNode.
func (g *Graph) Root() NodeID {
	return g.root
}

// SetRoot sets the start node.
func (g *Graph) SetRoot(id NodeID) {
	g.mutating()
	g.Node(id)
	g.root = id
}

// Size returns the number of nodes.
func (g *Graph) Size() int {
	return len(g.nodes)
}

// Each calls f for every node, in order of IDs.
func (g *Graph) Each(f func(*Node)) {
	for _, n := range g.nodes {
		f(n)
	}
}

// Freeze prohibits further modifications of g. Graphs are frozen
// after construction has completed and are read-only from then on.
func (g *Graph) Freeze() {
	g.frozen = true
}

// Frozen is true if g is read-only.
func (g *Graph) Frozen() bool {
	return g.frozen
}

func (g *Graph) mutating() {
	if g.frozen {
		panic("automaton: attempt to modify a frozen graph")
	}
}

// Validate checks that the root exists and every edge points to an
// existing node.
func (g *Graph) Validate() error {
	if _, err := g.Lookup(g.root); err != nil {
		return &GraphConsistencyError{ID: g.root, Msg: "root node not found"}
	}
	for _, n := range g.nodes {
		for _, e := range n.edges {
			if _, err := g.Lookup(e.To); err != nil {
				return &GraphConsistencyError{
					ID:  e.To,
					Msg: fmt.Sprintf("dangling edge from node %d", n.ID),
				}
			}
		}
	}
	return nil
}

// Reachable returns the IDs of all nodes reachable from the root, in
// breadth-first order, starting with the root.
func (g *Graph) Reachable() []NodeID {
	if g.root == NoNode {
		return nil
	}
	seen := make([]bool, len(g.nodes))
	order := []NodeID{g.root}
	seen[g.root] = true
	for i := 0; i < len(order); i++ {
		for _, e := range g.Node(order[i]).edges {
			if !seen[e.To] {
				seen[e.To] = true
				order = append(order, e.To)
			}
		}
	}
	tracer().Debugf("%d of %d nodes reachable from root", len(order), len(g.nodes))
	return order
}
