package automaton

import (
	"fmt"
	"io"
	"strings"
)

var dotEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\t", `\\t`,
	"\n", `\\n`,
	"\r", `\\r`,
)

// Dot exports a graph to the Graphviz Dot format. Nodes are visited
// depth-first, starting at the root. Terminal nodes are drawn as double circles,
// labeled with their token type.
func Dot(g *Graph, title string) string {
	var b strings.Builder
	WriteDot(&b, g, title)
	return b.String()
}

// WriteDot writes a graph in Dot format to w.
func WriteDot(w io.Writer, g *Graph, title string) error {
	ew := &errWriter{w: w}
	ew.printf("digraph %s {\n", dotID(title))
	if g.Root() != NoNode {
		visited := make(map[NodeID]bool, g.Size())
		writeDotNode(ew, g, g.Root(), visited)
	}
	ew.printf("}\n")
	return ew.err
}

func writeDotNode(ew *errWriter, g *Graph, id NodeID, visited map[NodeID]bool) {
	if visited[id] {
		return
	}
	visited[id] = true
	n := g.Node(id)
	for _, e := range n.edges {
		ew.printf("    %d -> %d [label=\"%s\"];\n", n.ID, e.To, dotEscaper.Replace(e.Label.String()))
		writeDotNode(ew, g, e.To, visited)
	}
	if n.Terminal {
		ew.printf("    %d [shape=doublecircle, label=\"%s\"];\n", n.ID, dotEscaper.Replace(n.Name))
	}
}

// dotID makes a graph title usable as an unquoted Dot identifier.
func dotID(title string) string {
	if title == "" {
		return "G"
	}
	id := strings.Map(func(r rune) rune {
		if r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return r
		}
		return '_'
	}, title)
	if id[0] >= '0' && id[0] <= '9' {
		id = "G" + id
	}
	return id
}

// errWriter remembers the first write error and drops subsequent output.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
