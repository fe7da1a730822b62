package automaton

import (
	"sort"
	"strings"
)

// Label is the transition label of an edge. It is either the epsilon label or
// a set of runes. Labels are values; no operation modifies a label in place.
type Label struct {
	epsilon bool
	runes   []rune // sorted, no duplicates
}

// Epsilon returns the reserved label for empty transitions.
func Epsilon() Label {
	return Label{epsilon: true}
}

// LabelOf creates a label for a set of runes. Duplicates are allowed.
func LabelOf(runes ...rune) Label {
	l := Label{runes: make([]rune, len(runes))}
	copy(l.runes, runes)
	sort.Slice(l.runes, func(i, j int) bool { return l.runes[i] < l.runes[j] })
	l.runes = dedup(l.runes)
	return l
}

// LabelRange creates a label for all runes from..to, inclusive.
func LabelRange(from, to rune) Label {
	if to < from {
		return Label{}
	}
	l := Label{runes: make([]rune, 0, to-from+1)}
	for r := from; r <= to; r++ {
		l.runes = append(l.runes, r)
	}
	return l
}

// IsEpsilon is true for the empty-transition label.
func (l Label) IsEpsilon() bool {
	return l.epsilon
}

// Contains checks if r is matched by l. The epsilon label matches no rune.
func (l Label) Contains(r rune) bool {
	i := sort.Search(len(l.runes), func(i int) bool { return l.runes[i] >= r })
	return i < len(l.runes) && l.runes[i] == r
}

// Len returns the number of runes in l.
func (l Label) Len() int {
	return len(l.runes)
}

// Runes returns the runes of l in ascending order.
func (l Label) Runes() []rune {
	r := make([]rune, len(l.runes))
	copy(r, l.runes)
	return r
}

// Union returns a new label with all the runes of l and m.
// Unifying a rune set with epsilon is a programming error and will panic.
func (l Label) Union(m Label) Label {
	if l.epsilon || m.epsilon {
		if l.epsilon && m.epsilon {
			return l
		}
		panic("automaton: cannot unify epsilon label with rune set")
	}
	u := make([]rune, 0, len(l.runes)+len(m.runes))
	i, j := 0, 0
	for i < len(l.runes) && j < len(m.runes) {
		switch {
		case l.runes[i] < m.runes[j]:
			u = append(u, l.runes[i])
			i++
		case l.runes[i] > m.runes[j]:
			u = append(u, m.runes[j])
			j++
		default:
			u = append(u, l.runes[i])
			i++
			j++
		}
	}
	u = append(u, l.runes[i:]...)
	u = append(u, m.runes[j:]...)
	return Label{runes: u}
}

// Complement returns the runes of the range from..to which are not in l.
func (l Label) Complement(from, to rune) Label {
	c := Label{runes: make([]rune, 0, int(to-from+1))}
	for r := from; r <= to; r++ {
		if !l.Contains(r) {
			c.runes = append(c.runes, r)
		}
	}
	return c
}

// Equals compares two labels by value.
func (l Label) Equals(m Label) bool {
	if l.epsilon != m.epsilon || len(l.runes) != len(m.runes) {
		return false
	}
	for i, r := range l.runes {
		if m.runes[i] != r {
			return false
		}
	}
	return true
}

func (l Label) String() string {
	if l.epsilon {
		return "<λ>"
	}
	var b strings.Builder
	for _, r := range l.runes {
		b.WriteRune(r)
	}
	return b.String()
}

func dedup(runes []rune) []rune {
	if len(runes) < 2 {
		return runes
	}
	j := 0
	for i := 1; i < len(runes); i++ {
		if runes[j] == runes[i] {
			continue
		}
		j++
		runes[j] = runes[i]
	}
	return runes[:j+1]
}
