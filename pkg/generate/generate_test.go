package generate

import (
	"strings"
	"testing"

	"github.com/matzehuels/adleman/pkg/errors"
)

func TestLabel(t *testing.T) {
	rng := NewRand(1)

	for _, length := range []int{0, 1, 6, 32} {
		got, err := Label(rng, length, DNA)
		if err != nil {
			t.Fatalf("Label(%d) error: %v", length, err)
		}
		if len(got) != length {
			t.Errorf("len(Label(%d)) = %d", length, len(got))
		}
		for _, r := range got {
			if !strings.ContainsRune(DNA, r) {
				t.Errorf("Label(%d) = %q contains %q outside %s", length, got, r, DNA)
			}
		}
	}
}

func TestLabelCustomAlphabet(t *testing.T) {
	got, err := Label(NewRand(7), 50, "αβ")
	if err != nil {
		t.Fatalf("Label() error: %v", err)
	}
	if n := len([]rune(got)); n != 50 {
		t.Errorf("rune count = %d, want 50", n)
	}
	if strings.Trim(got, "αβ") != "" {
		t.Errorf("Label() = %q contains symbols outside alphabet", got)
	}
}

func TestLabelErrors(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		alphabet string
	}{
		{"negative length", -1, DNA},
		{"empty alphabet", 6, ""},
		{"repeated symbol", 6, "AAC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Label(NewRand(1), tt.length, tt.alphabet)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Label() error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestLabelUsesEverySymbol(t *testing.T) {
	got, err := Label(NewRand(3), 400, DNA)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range DNA {
		if !strings.ContainsRune(got, r) {
			t.Errorf("400 draws never produced %q", r)
		}
	}
}

func TestGraph(t *testing.T) {
	for _, n := range []int{0, 1, 5, 12} {
		g, err := Graph(NewRand(uint64(n)), n, DefaultOptions())
		if err != nil {
			t.Fatalf("Graph(%d) error: %v", n, err)
		}
		if g.Len() != n {
			t.Errorf("Graph(%d).Len() = %d", n, g.Len())
		}
		for i, node := range g.Nodes() {
			if node.ID != i {
				t.Errorf("node %d has ID %d", i, node.ID)
			}
			if len(node.Label) != DefaultLabelLength {
				t.Errorf("node %d label %q has length %d", i, node.Label, len(node.Label))
			}
			if strings.Trim(node.Label, DNA) != "" {
				t.Errorf("node %d label %q outside %s", i, node.Label, DNA)
			}
		}
	}
}

func TestGraphOptions(t *testing.T) {
	g, err := Graph(NewRand(9), 3, Options{LabelLength: 10, Alphabet: "01"})
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range g.Nodes() {
		if len(n.Label) != 10 || strings.Trim(n.Label, "01") != "" {
			t.Errorf("node %d label = %q, want 10 binary symbols", n.ID, n.Label)
		}
	}
}

func TestGraphZeroLengthLabels(t *testing.T) {
	g, err := Graph(NewRand(1), 3, Options{Alphabet: DNA})
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range g.Nodes() {
		if n.Label != "" {
			t.Errorf("node %d label = %q, want empty", n.ID, n.Label)
		}
	}
}

func TestGraphErrors(t *testing.T) {
	tests := []struct {
		name string
		n    int
		opts Options
	}{
		{"negative nodes", -1, DefaultOptions()},
		{"negative label length", 3, Options{LabelLength: -2, Alphabet: DNA}},
		{"empty alphabet", 3, Options{LabelLength: 6}},
		{"empty alphabet without nodes", 0, Options{LabelLength: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Graph(NewRand(1), tt.n, tt.opts)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Graph() error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestGraphDeterministic(t *testing.T) {
	a, _ := Graph(NewRand(42), 5, DefaultOptions())
	b, _ := Graph(NewRand(42), 5, DefaultOptions())
	for i := range a.Len() {
		la, _ := a.Label(i)
		lb, _ := b.Label(i)
		if la != lb {
			t.Errorf("node %d: %q != %q with equal seeds", i, la, lb)
		}
	}
}
