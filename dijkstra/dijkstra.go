package dijkstra

import (
	"container/heap"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g. It accepts functional options
// to customize behavior (ReturnPath, MaxDistance, InfEdgeThreshold).
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance. Every label known to g is
//     present; labels not reached keep the Unreachable marker. Source is
//     always present with distance 0, even when no edge touches it.
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v and for Source, prev[v] == "".
//   - err:  error if inputs or options are invalid.
//
// Preconditions and validation (in order):
//  1. Every Option must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//
// Edge weights are non-negative by construction (core.Graph.AddEdge rejects
// negative weights), which is what makes the greedy extraction order correct.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Prepare data structures for the algorithm.
	V := g.VertexCount() + 1

	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, V)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    prev,
		pq:      make(nodePQ, 0, V),
	}

	// 5) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options (Source, thresholds, etc.).
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the shortest path (nil unless ReturnPath).
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init marks every known label Unreachable, sets Source to zero, and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = ""
		}
	}

	// Source may be a label no edge touches; it still gets distance 0.
	r.dist[r.options.Source] = 0
	if r.prev != nil {
		r.prev[r.options.Source] = ""
	}

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// entry with the minimum tentative distance and relaxes its edges.
//
// Stale entries are left in the heap when a shorter distance is found and are
// discarded here on pop: an entry is stale when its distance exceeds the best
// distance recorded for its vertex. There is no decrease-key.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		if item.dist > r.dist[item.id] {
			continue // stale
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.relax(item.id, item.dist)
	}
}

// relax examines each edge of u and improves neighbor distances where the
// route through u is strictly shorter. Edges with weight ≥ InfEdgeThreshold
// are impassable. Candidates that would overflow or reach Unreachable are
// dropped.
func (r *runner) relax(u string, du int64) {
	for _, e := range r.g.Neighbors(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if e.Weight >= Unreachable-du {
			continue
		}

		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict "<": equal-cost alternatives do not push duplicates.
		// A label with no entry yet counts as unrecorded.
		if cur, ok := r.dist[e.ID]; ok && newDist >= cur {
			continue
		}

		r.dist[e.ID] = newDist
		if r.prev != nil {
			r.prev[e.ID] = u
		}

		// Lazy decrease-key: push a fresh entry, leave the old one to go stale.
		heap.Push(&r.pq, &nodeItem{id: e.ID, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
