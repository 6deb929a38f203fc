// Package render draws the road network as Graphviz DOT and SVG.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/core"
)

// Options configures DOT output.
type Options struct {
	// Title is shown as the graph label when non-empty.
	Title string

	// Highlight is a route (consecutive labels) drawn in bold.
	// For parallel roads only the cheapest one between two stops is highlighted.
	Highlight []string

	// Affected labels are filled to set them apart from plain junctions.
	Affected []string
}

// ToDOT converts g to an undirected DOT graph. Each AddEdge call becomes one
// edge labelled with its weight. Vertices are written in ascending order and
// edges in insertion order, so the output is deterministic.
func ToDOT(g *core.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
	}
	buf.WriteString("\n")

	onRoute := make(map[string]bool, len(opts.Highlight))
	for _, id := range opts.Highlight {
		onRoute[id] = true
	}
	affected := make(map[string]bool, len(opts.Affected))
	for _, id := range opts.Affected {
		affected[id] = true
	}

	for _, id := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(nodeAttrs(id, onRoute[id], affected[id]), ", "))
	}

	buf.WriteString("\n")
	edges := g.Edges()
	bold := routeEdges(edges, opts.Highlight)
	for i, e := range edges {
		attrs := []string{fmt.Sprintf("label=%q", fmt.Sprint(e.Weight))}
		if bold[i] {
			attrs = append(attrs, "color=firebrick", "penwidth=3")
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(id string, onRoute, affected bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", id)}
	if onRoute {
		attrs = append(attrs, "color=firebrick", "penwidth=2")
	}
	if affected {
		attrs = append(attrs, "fillcolor=lightgoldenrod")
	}
	return attrs
}

// routeEdges returns the indices of edges that lie on path, one per hop.
func routeEdges(edges []core.Edge, path []string) map[int]bool {
	out := make(map[int]bool, len(path))
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		best := -1
		for j, e := range edges {
			if !(e.From == a && e.To == b) && !(e.From == b && e.To == a) {
				continue
			}
			if best < 0 || e.Weight < edges[best].Weight {
				best = j
			}
		}
		if best >= 0 {
			out[best] = true
		}
	}
	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
