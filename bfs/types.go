package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrEmptyStart is returned when the start label is the empty string.
	ErrEmptyStart = errors.New("bfs: start vertex ID is empty")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by Result.PathTo for labels the walk never saw.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures a walk. Invalid values are recorded and reported
// by BFS as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters and callbacks of one walk.
type Options struct {
	// Ctx is checked once per dequeue and once per neighbor.
	Ctx context.Context

	// OnEnqueue fires when a label is first queued, with its hop depth.
	OnEnqueue func(id string, depth int)

	// OnDequeue fires right before a label is visited.
	OnDequeue func(id string, depth int)

	// OnVisit fires on visit; a non-nil error stops the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 bounds the hop depth; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor returning false skips the edge curr-neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// Avoid lists labels that are never entered (closed places).
	// The start label is always visited.
	Avoid map[string]struct{}

	err error
}

// DefaultOptions returns an unbounded walk with no hooks and no filter.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk after d hops. d == 0 removes the bound;
// a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithAvoid marks labels as closed: the walk never enters them, so places
// reachable only through them are not reached either. Empty labels are
// an ErrOptionViolation.
func WithAvoid(ids ...string) Option {
	return func(o *Options) {
		if o.Avoid == nil {
			o.Avoid = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			if id == "" {
				o.err = fmt.Errorf("%w: empty label in avoid list", ErrOptionViolation)
				return
			}
			o.Avoid[id] = struct{}{}
		}
	}
}

// Result is the outcome of a walk.
type Result struct {
	// Order lists labels in visit sequence; Order[0] is the start.
	Order []string

	// Depth maps each reached label to its hop count from the start.
	Depth map[string]int

	// Parent maps each reached label except the start to its BFS-tree parent.
	Parent map[string]string
}

// Reached reports whether id was reached by the walk.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// Layers groups Order by depth: Layers()[d] lists the labels d hops
// from the start, in visit order.
func (r *Result) Layers() [][]string {
	var layers [][]string
	for _, id := range r.Order {
		d := r.Depth[id]
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], id)
	}
	return layers
}

// PathTo returns a hop-minimal path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	path := make([]string, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	return path, nil
}
