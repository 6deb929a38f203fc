package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/core"
	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/dijkstra"
)

// BenchmarkDijkstra_Chain measures a linear chain where every vertex is settled once.
func BenchmarkDijkstra_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, dijkstra.Source("v0"))
	}
}

// BenchmarkDijkstra_Random measures a sparse random network with many stale heap entries.
func BenchmarkDijkstra_Random(b *testing.B) {
	const (
		V = 2000
		E = 8000
	)
	rng := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	for i := 0; i < E; i++ {
		u := fmt.Sprintf("v%d", rng.Intn(V))
		v := fmt.Sprintf("v%d", rng.Intn(V))
		_ = g.AddEdge(u, v, int64(rng.Intn(100)))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, dijkstra.Source("v0"), dijkstra.WithReturnPath())
	}
}
