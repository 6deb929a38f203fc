// Package core provides the weighted, undirected road-network store shared by
// the traversal (bfs) and shortest-path (dijkstra) packages.
//
// The Graph is an adjacency mapping: every label maps to the ordered list of
// (neighbor, weight) pairs recorded by AddEdge.
//
//   - Undirected: AddEdge(u, v, w) appends (v, w) to u and (u, w) to v.
//   - Ordered: each neighbor list keeps edge-insertion order, which makes
//     traversal results reproducible.
//   - Auto-vivifying: a label exists once it has been an endpoint of an edge;
//     there is no separate "add vertex" step.
//   - Parallel edges are kept as-is; nothing is deduplicated or merged.
//   - Append-only: no vertex or edge removal.
//
// Lookups on unknown labels are well defined rather than errors:
// Neighbors("missing") returns an empty slice and HasVertex reports false.
//
// Vertices() is served from an ordered label index (github.com/google/btree),
// so callers receive labels in ascending order without a sort per call.
//
// Errors:
//
//	ErrEmptyVertexID  - an endpoint label is the empty string.
//	ErrNegativeWeight - AddEdge was given w < 0; the graph is left unchanged.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency mapping. Reads take the read
//	lock, AddEdge takes the write lock, and every slice handed to a caller is
//	a copy.
package core
