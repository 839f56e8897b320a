package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/adleman/pkg/graph"
)

// Run is the complete result of one search.
type Run struct {
	ID    string
	Seed  uint64
	Graph *graph.Graph
	Edges graph.EdgeSet
	Paths [][]int
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string { return uuid.NewString() }

type run struct {
	ID    string  `json:"run_id"`
	Seed  uint64  `json:"seed"`
	Nodes []node  `json:"nodes"`
	Edges []edge  `json:"edges"`
	Paths [][]int `json:"paths"`
}

type node struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

type edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// WriteJSON encodes r as indented JSON and writes it to w.
// Empty sections are written as empty arrays, never null.
func WriteJSON(r Run, w io.Writer) error {
	out := run{
		ID:    r.ID,
		Seed:  r.Seed,
		Nodes: []node{},
		Edges: make([]edge, len(r.Edges)),
		Paths: [][]int{},
	}
	if r.Graph != nil {
		for _, n := range r.Graph.Nodes() {
			out.Nodes = append(out.Nodes, node{ID: n.ID, Label: n.Label})
		}
	}
	for i, e := range r.Edges {
		out.Edges[i] = edge{From: e.From, To: e.To}
	}
	if r.Paths != nil {
		out.Paths = r.Paths
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes r to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(r Run, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(r, f)
}
