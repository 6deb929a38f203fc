// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// over the non-negatively weighted road network in core.Graph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost route from one source label to every
//     reachable label in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a binary min-heap (container/heap) to always expand the
//     next-closest vertex.
//   - Supports optional path reconstruction, distance caps, and “impassable”
//     edge thresholds for closed roads.
//
// Lazy deletion:
//
//	When a shorter route to v is found, a new (distance, v) entry is pushed
//	and the old one stays in the heap. On pop, an entry whose distance is
//	greater than the best recorded for its vertex is stale and skipped.
//	This is deliberate: there is no decrease-key, and replacing it with one
//	would change which entries are seen on graphs with many equal-cost ties.
//
// Result policy:
//
//   - Every label known to the graph appears in dist. Labels the source cannot
//     reach keep the Unreachable marker (math.MaxInt64); use Reachable to drop them.
//   - The source always appears with distance 0. A source no edge touches is
//     an isolated vertex, not an error (the same policy as bfs).
//   - Additions never overflow: a candidate that would reach Unreachable is
//     discarded.
//
// Options:
//
//   - Source(id):                required, the starting label.
//   - WithReturnPath():          also return the predecessor map; see PathTo.
//   - WithMaxDistance(d):        do not settle labels farther than d (d ≥ 0).
//   - WithInfEdgeThreshold(t):   treat edges with weight ≥ t as closed (t > 0).
//
// Errors (sentinel):
//
//   - ErrEmptySource:     Source is "" or missing.
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrBadMaxDistance:  WithMaxDistance received a negative value.
//   - ErrBadInfThreshold: WithInfEdgeThreshold received a value ≤ 0.
//   - ErrNoPath:          PathTo could not connect source and dest.
//
// Preconditions:
//
//	Negative weights would break the greedy extraction order. core.Graph
//	rejects them at AddEdge, so Dijkstra does not rescan the edges.
//
// Thread safety:
//
//	Dijkstra only reads the graph. Concurrent runs on one graph are safe; a
//	graph mutated during a run yields distances for some snapshot in between.
package dijkstra
