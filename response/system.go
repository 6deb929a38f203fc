package response

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/avl"
	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/bfs"
	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/core"
	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/dijkstra"
)

// System holds the affected areas and the road network of one session.
type System struct {
	mu      sync.RWMutex
	areas   *avl.Tree[string]
	roads   *core.Graph
	logger  *log.Logger
	session uuid.UUID
}

// New returns an empty System.
func New(opts ...Option) *System {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &System{
		areas:   avl.New[string](),
		roads:   core.NewGraph(),
		logger:  o.logger,
		session: o.session,
	}
}

// debug and info tag records with the session ID. The logger is shared
// rather than derived with With, so level changes on it apply here too.
func (s *System) debug(msg string, kv ...any) {
	s.logger.Debug(msg, append([]any{"session", s.session.String()}, kv...)...)
}

func (s *System) info(msg string, kv ...any) {
	s.logger.Info(msg, append([]any{"session", s.session.String()}, kv...)...)
}

// Session returns the session ID.
func (s *System) Session() uuid.UUID {
	return s.session
}

// Roads returns the underlying road network for read-only use.
func (s *System) Roads() *core.Graph {
	return s.roads
}

// AddArea registers name as affected. Registering a name twice keeps both copies.
func (s *System) AddArea(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyArea
	}

	s.mu.Lock()
	s.areas.Insert(name)
	height := s.areas.Height()
	s.mu.Unlock()

	s.debug("area added", "area", name, "height", height)

	return nil
}

// Areas returns the affected areas in alphabetical order.
func (s *System) Areas() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	areas := s.areas.InOrder()
	s.info("areas listed", "count", len(areas))

	return areas
}

// AddRoute records a two-way road between from and to.
func (s *System) AddRoute(from, to string, distance int64) error {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return ErrEmptyArea
	}
	if distance < 0 {
		return fmt.Errorf("%w: %s -> %s distance=%d", ErrNegativeDistance, from, to, distance)
	}
	if err := s.roads.AddEdge(from, to, distance); err != nil {
		return fmt.Errorf("response: add route %s -> %s: %w", from, to, err)
	}

	s.debug("route added", "from", from, "to", to, "distance", distance)

	return nil
}

// BFSPath returns the places reachable from start in breadth-first order.
// Places listed in closed are never entered. An unknown start yields just [start].
func (s *System) BFSPath(ctx context.Context, start string, closed ...string) ([]string, error) {
	start = strings.TrimSpace(start)
	if start == "" {
		return nil, ErrEmptyArea
	}

	opts := []bfs.Option{bfs.WithContext(ctx)}
	if len(closed) > 0 {
		opts = append(opts, bfs.WithAvoid(closed...))
	}
	res, err := bfs.BFS(s.roads, start, opts...)
	if err != nil {
		return nil, fmt.Errorf("response: bfs from %s: %w", start, err)
	}
	s.info("bfs", "start", start, "closed", len(closed), "visited", len(res.Order))

	return res.Order, nil
}

// ShortestPaths returns the minimal route cost from start to every known
// place, sorted by place name. Places in other components are reported
// with Reachable false.
func (s *System) ShortestPaths(start string) ([]Distance, error) {
	start = strings.TrimSpace(start)
	if start == "" {
		return nil, ErrEmptyArea
	}

	dist, _, err := dijkstra.Dijkstra(s.roads, dijkstra.Source(start))
	if err != nil {
		return nil, fmt.Errorf("response: shortest paths from %s: %w", start, err)
	}

	out := make([]Distance, 0, len(dist))
	reachable := 0
	for area, d := range dist {
		row := Distance{Area: area}
		if d != dijkstra.Unreachable {
			row.Distance = d
			row.Reachable = true
			reachable++
		}
		out = append(out, row)
	}
	slices.SortFunc(out, func(a, b Distance) int { return strings.Compare(a.Area, b.Area) })

	s.info("shortest paths", "start", start, "places", len(out), "reachable", reachable)

	return out, nil
}

// Route returns one shortest route from from to to.
// It returns ErrNoRoute when to cannot be reached.
func (s *System) Route(from, to string) (Route, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return Route{}, ErrEmptyArea
	}

	dist, prev, err := dijkstra.Dijkstra(s.roads, dijkstra.Source(from), dijkstra.WithReturnPath())
	if err != nil {
		return Route{}, fmt.Errorf("response: route %s -> %s: %w", from, to, err)
	}

	d, ok := dist[to]
	if !ok || d == dijkstra.Unreachable {
		return Route{}, fmt.Errorf("%w from %s to %s", ErrNoRoute, from, to)
	}
	path, err := dijkstra.PathTo(prev, from, to)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return Route{}, fmt.Errorf("%w from %s to %s", ErrNoRoute, from, to)
	} else if err != nil {
		return Route{}, err
	}

	s.info("route", "from", from, "to", to, "distance", d, "hops", len(path)-1)

	return Route{From: from, To: to, Path: path, Distance: d}, nil
}

// Summary returns the current size of the session.
func (s *System) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Summary{
		Session:   s.session,
		Areas:     s.areas.Len(),
		Height:    s.areas.Height(),
		Rotations: s.areas.Stats(),
		Places:    s.roads.VertexCount(),
		Roads:     s.roads.EdgeCount(),
	}
}
