package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrSelfLoop is returned by [Graph.Validate] when an edge connects a
	// node to itself.
	ErrSelfLoop = errors.New("edge endpoints must be distinct")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge
	// references a node that doesn't exist in the graph.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrDuplicateEdge is returned by [Graph.Validate] when the same
	// unordered pair appears more than once.
	ErrDuplicateEdge = errors.New("duplicate edge")
)

// Graph maps node IDs 0..N-1 to labels.
//
// The zero value is an empty graph. Use [New] to create a populated one.
type Graph struct {
	labels []string
}

// New creates a graph whose node i carries labels[i].
// The slice is copied, so later changes to labels do not affect the graph.
func New(labels []string) *Graph {
	return &Graph{labels: slices.Clone(labels)}
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.labels) }

// Has reports whether id is a node of the graph.
func (g *Graph) Has(id int) bool { return id >= 0 && id < len(g.labels) }

// Label returns the label of node id, or false if id is not in the graph.
func (g *Graph) Label(id int) (string, bool) {
	if !g.Has(id) {
		return "", false
	}
	return g.labels[id], true
}

// IDs returns the node identifiers in ascending order.
func (g *Graph) IDs() []int {
	ids := make([]int, len(g.labels))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// Nodes returns every node with its label, in ID order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, len(g.labels))
	for i, l := range g.labels {
		nodes[i] = Node{ID: i, Label: l}
	}
	return nodes
}

// Validate checks that every edge joins two distinct nodes of g and that no
// unordered pair appears twice. Reverse tuples count as the same pair, so a
// [EdgeSet.Symmetric] set does not validate.
func (g *Graph) Validate(edges EdgeSet) error {
	seen := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		if !g.Has(e.From) || !g.Has(e.To) {
			return fmt.Errorf("%w: %s", ErrInvalidEdgeEndpoint, e)
		}
		if e.From == e.To {
			return fmt.Errorf("%w: %s", ErrSelfLoop, e)
		}
		key := Edge{From: min(e.From, e.To), To: max(e.From, e.To)}
		if seen[key] {
			return fmt.Errorf("%w: %s", ErrDuplicateEdge, e)
		}
		seen[key] = true
	}
	return nil
}
