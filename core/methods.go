package core

import "fmt"

// AddEdge records an undirected edge u-v with weight w.
//
// Steps:
//  1. Reject empty labels (ErrEmptyVertexID) and w < 0 (ErrNegativeWeight).
//  2. Create adjacency lists for unseen labels.
//  3. Append (v, w) to u's list and (u, w) to v's list.
//
// A self-loop (u == v) appends two entries to the same list. Repeated calls
// create parallel edges. On error the graph is not modified.
//
// Complexity: O(log V) for the label index, O(1) amortized for the lists.
func (g *Graph) AddEdge(u, v string, w int64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if w < 0 {
		return fmt.Errorf("%w: %s-%s weight=%d", ErrNegativeWeight, u, v, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)
	g.adjacency[u] = append(g.adjacency[u], Neighbor{ID: v, Weight: w})
	g.adjacency[v] = append(g.adjacency[v], Neighbor{ID: u, Weight: w})
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})

	return nil
}

// ensureVertex registers id in the adjacency mapping and label index.
// Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = nil
	g.labels.ReplaceOrInsert(id)
}

// HasVertex reports whether id has been an endpoint of any edge.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]
	return ok
}

// Neighbors returns a copy of id's adjacency list in edge-insertion order.
// Unknown labels yield an empty, non-nil slice.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.adjacency[id]
	out := make([]Neighbor, len(src))
	copy(out, src)

	return out
}

// NeighborIDs returns the neighbor labels of id in edge-insertion order,
// including repeats for parallel edges.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.adjacency[id]
	out := make([]string, len(src))
	for i, n := range src {
		out[i] = n.ID
	}

	return out
}

// Degree returns the length of id's adjacency list (0 for unknown labels).
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// Vertices returns every known label in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, g.labels.Len())
	g.labels.Ascend(func(id string) bool {
		out = append(out, id)
		return true
	})

	return out
}

// VertexCount returns the number of known labels.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.labels.Len()
}

// Edges returns every AddEdge call as one Edge, in call order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of undirected edges added.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
