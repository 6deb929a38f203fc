package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/bfs"
	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/core"
)

// roads builds an undirected unit-weight network from label pairs.
func roads(t testing.TB, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1], 1))
	}
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "")
	assert.ErrorIs(t, err, bfs.ErrEmptyStart)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(g, "A", bfs.WithAvoid("B", ""))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// The canonical A-B, A-C, B-D walk.
func TestBFS_InsertionOrder(t *testing.T) {
	g := roads(t, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"})

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, "B", res.Parent["D"])
	_, hasParent := res.Parent["A"]
	assert.False(t, hasParent)
}

func TestBFS_NeighborOrderIsInsertionNotAlphabetical(t *testing.T) {
	g := roads(t, [2]string{"S", "Z"}, [2]string{"S", "M"}, [2]string{"S", "A"})

	res, err := bfs.BFS(g, "S")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Z", "M", "A"}, res.Order)
}

// A label never used by an edge is an isolated vertex.
func TestBFS_UnknownStart(t *testing.T) {
	g := roads(t, [2]string{"A", "B"})

	res, err := bfs.BFS(g, "Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z"}, res.Order)
	assert.Equal(t, 0, res.Depth["Z"])
	assert.False(t, g.HasVertex("Z"), "BFS must not add the start label to the graph")
}

func TestBFS_CycleAndDepths(t *testing.T) {
	g := roads(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	// A's list is [B, D] in insertion order
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
}

func TestBFS_Disconnected(t *testing.T) {
	g := roads(t, [2]string{"X", "Y"}, [2]string{"P", "Q"})

	resX, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, resX.Order)
	assert.False(t, resX.Reached("P"))

	resP, err := bfs.BFS(g, "P")
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "Q"}, resP.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := roads(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	for _, tc := range []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}}, // explicit no limit
		{10, []string{"A", "B", "C"}},
	} {
		t.Run(fmt.Sprintf("depth=%d", tc.depth), func(t *testing.T) {
			res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(tc.depth))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Order)
		})
	}
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := roads(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	// B-C is a blocked road
	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_Avoid(t *testing.T) {
	// A-B-D and A-C-D: closing B still reaches D through C.
	g := roads(t,
		[2]string{"A", "B"}, [2]string{"A", "C"},
		[2]string{"B", "D"}, [2]string{"C", "D"},
		[2]string{"B", "E"},
	)

	res, err := bfs.BFS(g, "A", bfs.WithAvoid("B"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, res.Order)
	assert.False(t, res.Reached("E"), "E is only reachable through B")

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, path)

	// the start is visited even when listed
	res, err = bfs.BFS(g, "B", bfs.WithAvoid("B"))
	require.NoError(t, err)
	assert.Equal(t, "B", res.Order[0])
}

// Self-loops and parallel edges never queue a label twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "B", 3))

	var enqueued []string
	res, err := bfs.BFS(g, "A", bfs.WithOnEnqueue(func(id string, _ int) { enqueued = append(enqueued, id) }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.Equal(t, []string{"A", "B"}, enqueued)
}

func TestBFS_Hooks(t *testing.T) {
	g := roads(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	var events []string
	record := func(kind string) func(string, int) {
		return func(id string, d int) { events = append(events, fmt.Sprintf("%s:%s@%d", kind, id, d)) }
	}
	_, err := bfs.BFS(g, "A",
		bfs.WithOnEnqueue(record("e")),
		bfs.WithOnDequeue(record("d")),
		bfs.WithOnVisit(func(id string, d int) error { record("v")(id, d); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"e:A@0", "d:A@0", "v:A@0",
		"e:B@1", "d:B@1", "v:B@1",
		"e:C@2", "d:C@2", "v:C@2",
	}, events)
}

// A hook error stops the walk and is wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := roads(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	stop := errors.New("flooded")

	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestResult_PathTo(t *testing.T) {
	g := roads(t, [2]string{"X", "W"}, [2]string{"W", "V"})
	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)

	path, err := res.PathTo("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, path)

	path, err = res.PathTo("V")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "W", "V"}, path)

	_, err = res.PathTo("Y")
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestResult_Layers(t *testing.T) {
	g := roads(t,
		[2]string{"HQ", "N"}, [2]string{"HQ", "S"},
		[2]string{"N", "M"}, [2]string{"S", "M"}, [2]string{"S", "H"},
	)
	res, err := bfs.BFS(g, "HQ")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"HQ"}, {"N", "S"}, {"M", "H"}}, res.Layers())
}

func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "v0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// Concurrent walks over one graph do not interfere.
func TestBFS_ConcurrentWalks(t *testing.T) {
	g := roads(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := bfs.BFS(g, "A")
			assert.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C"}, res.Order)
		}()
	}
	wg.Wait()
}
