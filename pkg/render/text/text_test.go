package text

import (
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/adleman/pkg/graph"
)

func TestRender(t *testing.T) {
	g := graph.New([]string{"ACGTAC", "TTTTGA", "CAGATC"})
	edges := graph.EdgeSet{{From: 1, To: 2}, {From: 0, To: 1}}
	paths := [][]int{{0, 1, 2}}

	want := `Grafo generado:
Nodo 0: ACGTAC
Nodo 1: TTTTGA
Nodo 2: CAGATC

Conexiones:
1 -> 2
0 -> 1

Caminos Hamiltonianos encontrados:
0 -> 1 -> 2
`
	if got := Render(g, edges, paths); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	want := "Grafo generado:\n\nConexiones:\n\nCaminos Hamiltonianos encontrados:\n"
	if got := Render(graph.New(nil), nil, nil); got != want {
		t.Errorf("Render(empty) = %q, want %q", got, want)
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		path []int
		want string
	}{
		{nil, ""},
		{[]int{4}, "4"},
		{[]int{3, 0, 12}, "3 -> 0 -> 12"},
	}

	for _, tt := range tests {
		if got := FormatPath(tt.path); got != tt.want {
			t.Errorf("FormatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	g := graph.New([]string{strings.Repeat("A", 8192)})
	if err := Write(failWriter{}, g, nil, nil); err == nil {
		t.Error("Write() should report writer errors")
	}
}
