package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/adleman/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the generated label under each node ID.
	// When false, only the node ID is shown.
	Detailed bool

	// Highlight, if non-empty, is a path whose edges are drawn in bold
	// color. Path steps that are not edges of the set are ignored.
	Highlight []int
}

// ToDOT converts a graph and its edge set to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Edges are drawn in the direction they are stored, matching how the search
// traverses them.
func ToDOT(g *graph.Graph, edges graph.EdgeSet, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontname=\"monospace\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", strconv.Itoa(n.ID), strings.Join(nodeAttrs(n, opts.Detailed), ", "))
	}

	onPath := pathEdges(opts.Highlight)
	buf.WriteString("\n")
	for _, e := range edges {
		attrs := ""
		if onPath[e] {
			attrs = " [color=\"#2a9d8f\", penwidth=3]"
		}
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", strconv.Itoa(e.From), strconv.Itoa(e.To), attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n graph.Node, detailed bool) []string {
	label := strconv.Itoa(n.ID)
	if detailed && n.Label != "" {
		label += "\n" + n.Label
		return []string{fmt.Sprintf("label=%q", label), "shape=box", "style=\"rounded,filled\""}
	}
	return []string{fmt.Sprintf("label=%q", label)}
}

func pathEdges(path []int) map[graph.Edge]bool {
	m := make(map[graph.Edge]bool, len(path))
	for i := 0; i+1 < len(path); i++ {
		m[graph.Edge{From: path[i], To: path[i+1]}] = true
	}
	return m
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
