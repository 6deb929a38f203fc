package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/core"
	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/render"
)

func network(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("Depot", "Riverside", 7))
	require.NoError(t, g.AddEdge("Depot", "Hilltop", 2))
	require.NoError(t, g.AddEdge("Hilltop", "Riverside", 3))
	require.NoError(t, g.AddEdge("Hilltop", "Riverside", 1))
	return g
}

func TestToDOTPlain(t *testing.T) {
	dot := render.ToDOT(network(t), render.Options{})

	assert.True(t, strings.HasPrefix(dot, "graph G {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.NotContains(t, dot, "->")
	assert.Equal(t, 4, strings.Count(dot, " -- "))
	assert.Contains(t, dot, `"Depot" -- "Riverside" [label="7"];`)
	assert.NotContains(t, dot, "penwidth")

	// vertices in ascending order
	d := strings.Index(dot, `"Depot" [`)
	h := strings.Index(dot, `"Hilltop" [`)
	r := strings.Index(dot, `"Riverside" [`)
	assert.True(t, d < h && h < r)
}

func TestToDOTHighlight(t *testing.T) {
	dot := render.ToDOT(network(t), render.Options{
		Title:     "flood",
		Highlight: []string{"Depot", "Hilltop", "Riverside"},
		Affected:  []string{"Riverside"},
	})

	assert.Contains(t, dot, `label="flood";`)
	assert.Contains(t, dot, `"Depot" -- "Hilltop" [label="2", color=firebrick, penwidth=3];`)
	assert.Contains(t, dot, `"Hilltop" -- "Riverside" [label="1", color=firebrick, penwidth=3];`)
	assert.Contains(t, dot, `"Hilltop" -- "Riverside" [label="3"];`)
	assert.Contains(t, dot, `"Depot" -- "Riverside" [label="7"];`)
	assert.Contains(t, dot, `"Riverside" [label="Riverside", color=firebrick, penwidth=2, fillcolor=lightgoldenrod];`)
}

func TestToDOTEmpty(t *testing.T) {
	dot := render.ToDOT(core.NewGraph(), render.Options{})
	assert.NotContains(t, dot, "--")
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	svg, err := render.RenderSVG(context.Background(), render.ToDOT(network(t), render.Options{}))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "Riverside")
}
