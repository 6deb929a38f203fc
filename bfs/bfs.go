package bfs

import (
	"fmt"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/core"
)

// walker holds the state of one walk.
type walker struct {
	graph *core.Graph
	opts  Options

	queue []entry
	head  int // queue[head:] is pending
	seen  map[string]bool
	res   *Result
}

// entry is a queued label with its hop depth.
type entry struct {
	id    string
	depth int
}

// BFS walks g breadth-first from start and returns the visit order with
// hop depths and BFS-tree parents.
//
// Neighbors are taken in edge-insertion order, so a fixed sequence of
// AddEdge calls always produces the same Order. A label is marked seen when
// it is queued; the visit order equals the check-on-dequeue formulation.
//
// A start label that no edge touches is an isolated vertex: Order == [start].
//
// Errors: ErrGraphNil, ErrEmptyStart, ErrOptionViolation, the context error
// on cancellation, or a wrapped OnVisit error. On error the partial Result
// is still returned.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start == "" {
		return nil, ErrEmptyStart
	}

	// VertexCount is only a capacity hint; start may be unknown.
	n := g.VertexCount() + 1
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]entry, 0, n),
		seen:  make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.push(start, 0, "")
	return w.res, w.run()
}

// push marks id seen, records depth and parent, and queues it.
func (w *walker) push(id string, depth int, parent string) {
	w.seen[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, depth)
	w.queue = append(w.queue, entry{id: id, depth: depth})
}

// run drains the queue.
func (w *walker) run() error {
	ctx := w.opts.Ctx
	for w.head < len(w.queue) {
		if err := ctx.Err(); err != nil {
			return err
		}

		e := w.queue[w.head]
		w.head++
		w.opts.OnDequeue(e.id, e.depth)

		w.res.Order = append(w.res.Order, e.id)
		if err := w.opts.OnVisit(e.id, e.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", e.id, err)
		}

		if w.opts.MaxDepth > 0 && e.depth >= w.opts.MaxDepth {
			continue
		}
		if err := w.expand(e); err != nil {
			return err
		}
	}
	return nil
}

// expand queues every unseen, permitted neighbor of e.
func (w *walker) expand(e entry) error {
	ctx := w.opts.Ctx
	for _, nbr := range w.graph.NeighborIDs(e.id) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if w.seen[nbr] {
			continue
		}
		if _, closed := w.opts.Avoid[nbr]; closed {
			continue
		}
		if !w.opts.FilterNeighbor(e.id, nbr) {
			continue
		}
		w.push(nbr, e.depth+1, e.id)
	}
	return nil
}
