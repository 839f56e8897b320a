package graph

import "fmt"

// Node is a vertex with its display label.
// Labels are decorative and not guaranteed to be unique.
type Node struct {
	ID    int
	Label string
}

// Edge is a pair of node IDs. Generated edges always have From < To.
type Edge struct {
	From int
	To   int
}

// String renders the edge as "from -> to".
func (e Edge) String() string {
	return fmt.Sprintf("%d -> %d", e.From, e.To)
}

// Reverse returns the edge with its endpoints swapped.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// EdgeSet is an ordered collection of edges. Order carries no meaning for
// membership but is preserved for display.
type EdgeSet []Edge

// Contains reports whether the ordered tuple (from, to) is in the set.
// The scan is linear and does not treat (to, from) as equivalent.
func (s EdgeSet) Contains(from, to int) bool {
	for _, e := range s {
		if e.From == from && e.To == to {
			return true
		}
	}
	return false
}

// Symmetric returns a new set holding every edge of s followed by each
// missing reverse edge, so that every pair is traversable both ways.
func (s EdgeSet) Symmetric() EdgeSet {
	out := make(EdgeSet, len(s), 2*len(s))
	copy(out, s)
	for _, e := range s {
		if r := e.Reverse(); !out.Contains(r.From, r.To) {
			out = append(out, r)
		}
	}
	return out
}
