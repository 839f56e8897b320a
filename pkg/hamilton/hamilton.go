package hamilton

import (
	"context"
	"iter"
	"slices"

	"github.com/matzehuels/adleman/pkg/graph"
	"github.com/matzehuels/adleman/pkg/graph/perm"
)

// pollInterval is how many orderings Search examines between context checks.
const pollInterval = 1 << 12

// IsPath reports whether every consecutive pair of path is an edge, tested as
// an ordered tuple. Paths of length 0 or 1 are vacuously valid.
//
// IsPath does not check that path covers any particular node set.
func IsPath(path []int, edges graph.EdgeSet) bool {
	for i := 0; i+1 < len(path); i++ {
		if !edges.Contains(path[i], path[i+1]) {
			return false
		}
	}
	return true
}

// All returns an iterator over every ordering of nodes that forms a path in
// edges, in lexicographic order of node positions. Each yielded slice is a
// fresh copy owned by the caller.
func All(nodes []int, edges graph.EdgeSet) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for p := range perm.Of(nodes) {
			if IsPath(p, edges) && !yield(slices.Clone(p)) {
				return
			}
		}
	}
}

// Enumerate returns every Hamiltonian path over nodes in edges.
// The result is empty (never nil) when no ordering qualifies.
func Enumerate(nodes []int, edges graph.EdgeSet) [][]int {
	paths := [][]int{}
	for p := range All(nodes, edges) {
		paths = append(paths, p)
	}
	return paths
}

// Count returns the number of Hamiltonian paths without retaining them.
func Count(nodes []int, edges graph.EdgeSet) int {
	n := 0
	for p := range perm.Of(nodes) {
		if IsPath(p, edges) {
			n++
		}
	}
	return n
}

// Search returns the same paths as [Enumerate], checking ctx periodically.
// If ctx is canceled mid-search, Search returns the context's error and no
// paths.
func Search(ctx context.Context, nodes []int, edges graph.EdgeSet) ([][]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	paths := [][]int{}
	visited := 0
	for p := range perm.Of(nodes) {
		visited++
		if visited%pollInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if IsPath(p, edges) {
			paths = append(paths, slices.Clone(p))
		}
	}
	return paths, nil
}
