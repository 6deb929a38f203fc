// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is first queued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor,
//     and closing whole places via WithAvoid.
//   - Result.Layers groups the visit order by hop depth.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Edge weights are ignored; every edge counts as one hop.
//
// Determinism
//
//	core.Graph keeps each adjacency list in edge-insertion order and BFS
//	enqueues neighbors in that order, so for a fixed sequence of AddEdge
//	calls the visit sequence is fully reproducible. Parallel edges and
//	self-loops never enqueue a vertex twice.
//
// Unknown start
//
//	A start label that no edge touches is an isolated vertex, not an error:
//	the result is Order == [start]. dijkstra applies the same policy.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(g, "Depot",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrEmptyStart       if the start label is "".
//   - ErrOptionViolation  if an Option is invalid (negative MaxDepth, empty avoid label).
//   - ctx.Err()           when the context is cancelled mid-traversal.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
