package graph

import (
	"errors"
	"slices"
	"testing"
)

func TestNewCopiesLabels(t *testing.T) {
	labels := []string{"ACGT", "TTAA"}
	g := New(labels)
	labels[0] = "XXXX"

	if got, _ := g.Label(0); got != "ACGT" {
		t.Errorf("Label(0) = %q, want %q", got, "ACGT")
	}
}

func TestGraphAccessors(t *testing.T) {
	g := New([]string{"AAA", "CCC", "GGG"})

	if g.Len() != 3 {
		t.Errorf("Len() = %d, want 3", g.Len())
	}
	if want := []int{0, 1, 2}; !slices.Equal(g.IDs(), want) {
		t.Errorf("IDs() = %v, want %v", g.IDs(), want)
	}
	if _, ok := g.Label(3); ok {
		t.Error("Label(3) should report missing node")
	}
	if _, ok := g.Label(-1); ok {
		t.Error("Label(-1) should report missing node")
	}

	nodes := g.Nodes()
	if len(nodes) != 3 || nodes[2] != (Node{ID: 2, Label: "GGG"}) {
		t.Errorf("Nodes() = %v", nodes)
	}
}

func TestEmptyGraph(t *testing.T) {
	var g Graph
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
	if len(g.IDs()) != 0 {
		t.Errorf("IDs() = %v, want empty", g.IDs())
	}
}

func TestEdgeSetContainsIsDirectional(t *testing.T) {
	edges := EdgeSet{{From: 0, To: 1}, {From: 1, To: 2}}

	tests := []struct {
		from, to int
		want     bool
	}{
		{0, 1, true},
		{1, 2, true},
		{1, 0, false},
		{2, 1, false},
		{0, 2, false},
	}

	for _, tt := range tests {
		if got := edges.Contains(tt.from, tt.to); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestEdgeSetSymmetric(t *testing.T) {
	edges := EdgeSet{{From: 0, To: 1}, {From: 1, To: 0}, {From: 1, To: 2}}
	sym := edges.Symmetric()

	want := EdgeSet{{From: 0, To: 1}, {From: 1, To: 0}, {From: 1, To: 2}, {From: 2, To: 1}}
	if !slices.Equal(sym, want) {
		t.Errorf("Symmetric() = %v, want %v", sym, want)
	}
	if len(edges) != 3 {
		t.Error("Symmetric() must not modify the receiver")
	}
}

func TestEdgeString(t *testing.T) {
	if got := (Edge{From: 3, To: 4}).String(); got != "3 -> 4" {
		t.Errorf("String() = %q, want %q", got, "3 -> 4")
	}
}

func TestValidate(t *testing.T) {
	g := New([]string{"A", "C", "G"})

	tests := []struct {
		name    string
		edges   EdgeSet
		wantErr error
	}{
		{"empty", nil, nil},
		{"valid", EdgeSet{{0, 1}, {1, 2}, {0, 2}}, nil},
		{"out of range", EdgeSet{{0, 3}}, ErrInvalidEdgeEndpoint},
		{"negative", EdgeSet{{-1, 0}}, ErrInvalidEdgeEndpoint},
		{"self loop", EdgeSet{{1, 1}}, ErrSelfLoop},
		{"duplicate", EdgeSet{{0, 1}, {0, 1}}, ErrDuplicateEdge},
		{"reverse duplicate", EdgeSet{{0, 1}, {1, 0}}, ErrDuplicateEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Validate(tt.edges)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
