// Package nodelink renders a generated graph as a node-link diagram.
//
// # Usage
//
// Convert a graph and its edge set to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(g, edges, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Set [Options].Highlight to a Hamiltonian path to draw its edges in bold.
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG] or [RenderPNG]
//   - Saved and processed with external Graphviz tools
//
// Node IDs are quoted decimal strings. Edges keep their stored direction.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
package nodelink
