// Package response models a disaster-response coordination session.
//
// A System keeps two independent views of the affected region:
//
//   - the affected areas, stored in an avl.Tree and listed alphabetically;
//   - the road network, stored in a core.Graph with non-negative distances.
//
// Queries run the bfs and dijkstra packages over the road network:
//
//	sys := response.New(response.WithLogger(logger))
//	_ = sys.AddArea("Riverside")
//	_ = sys.AddRoute("Depot", "Riverside", 7)
//	order, _ := sys.BFSPath(ctx, "Depot")
//	dists, _ := sys.ShortestPaths("Depot")
//
// Areas and route endpoints are not cross-checked: a route may name a place
// that was never registered as affected, and an affected area may have no roads.
//
// Every mutation is logged at debug level and every query at info level,
// tagged with the session ID.
//
// A System is safe for concurrent use; the area index is guarded by a mutex
// and the road network carries its own lock.
package response
