// Package text writes the plain-text search report.
//
// The report has three sections in fixed order, separated by blank lines:
//
//	Grafo generado:
//	Nodo 0: ACGTTA
//	...
//
//	Conexiones:
//	0 -> 3
//	...
//
//	Caminos Hamiltonianos encontrados:
//	0 -> 3 -> 1 -> 4 -> 2
//	...
//
// Nodes appear in ID order, edges in the order given, and paths in
// enumeration order. A section with no entries still prints its heading.
package text

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/adleman/pkg/graph"
)

// Section headings.
const (
	HeadingGraph = "Grafo generado:"
	HeadingEdges = "Conexiones:"
	HeadingPaths = "Caminos Hamiltonianos encontrados:"
)

const arrow = " -> "

// Write renders the report for g, edges and paths to w.
func Write(w io.Writer, g *graph.Graph, edges graph.EdgeSet, paths [][]int) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(HeadingGraph + "\n")
	for _, n := range g.Nodes() {
		bw.WriteString("Nodo " + strconv.Itoa(n.ID) + ": " + n.Label + "\n")
	}

	bw.WriteString("\n" + HeadingEdges + "\n")
	for _, e := range edges {
		bw.WriteString(e.String() + "\n")
	}

	bw.WriteString("\n" + HeadingPaths + "\n")
	for _, p := range paths {
		bw.WriteString(FormatPath(p) + "\n")
	}

	return bw.Flush()
}

// Render returns the report as a string.
func Render(g *graph.Graph, edges graph.EdgeSet, paths [][]int) string {
	var sb strings.Builder
	_ = Write(&sb, g, edges, paths)
	return sb.String()
}

// FormatPath joins node IDs with " -> ".
func FormatPath(path []int) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, arrow)
}
