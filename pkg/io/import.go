package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/matzehuels/adleman/pkg/graph"
	"github.com/matzehuels/adleman/pkg/hamilton"
)

var (
	// ErrNodeOrder is returned by [ReadJSON] when node IDs are not listed
	// as 0..N-1 in order.
	ErrNodeOrder = errors.New("node IDs must be 0..N-1 in order")

	// ErrInvalidPath is returned by [ReadJSON] when a path is not a
	// permutation of the nodes or steps along a missing edge.
	ErrInvalidPath = errors.New("invalid Hamiltonian path")
)

// ReadJSON decodes a run from r and validates it.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - Node IDs are not 0..N-1 in order ([ErrNodeOrder])
//   - An edge fails [graph.Graph.Validate]
//   - A path is not a permutation of the nodes or uses a missing edge
//     ([ErrInvalidPath])
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Run, error) {
	var data run
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	labels := make([]string, len(data.Nodes))
	for i, n := range data.Nodes {
		if n.ID != i {
			return nil, fmt.Errorf("node %d at position %d: %w", n.ID, i, ErrNodeOrder)
		}
		labels[i] = n.Label
	}
	g := graph.New(labels)

	edges := make(graph.EdgeSet, len(data.Edges))
	for i, e := range data.Edges {
		edges[i] = graph.Edge{From: e.From, To: e.To}
	}
	if err := g.Validate(edges); err != nil {
		return nil, err
	}

	ids := g.IDs()
	for _, p := range data.Paths {
		if !slices.Equal(slices.Sorted(slices.Values(p)), ids) {
			return nil, fmt.Errorf("%v is not a permutation of the nodes: %w", p, ErrInvalidPath)
		}
		if !hamilton.IsPath(p, edges) {
			return nil, fmt.Errorf("%v uses a missing edge: %w", p, ErrInvalidPath)
		}
	}

	paths := data.Paths
	if paths == nil {
		paths = [][]int{}
	}
	return &Run{
		ID:    data.ID,
		Seed:  data.Seed,
		Graph: g,
		Edges: edges,
		Paths: paths,
	}, nil
}

// ImportJSON reads a JSON file at path and returns the decoded run.
// It returns the same validation errors as [ReadJSON].
func ImportJSON(path string) (*Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
