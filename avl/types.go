package avl

import "fmt"

// RotationCase names one of the four AVL imbalance shapes.
type RotationCase int

const (
	// LeftLeft is fixed by a single right rotation.
	LeftLeft RotationCase = iota + 1
	// RightRight is fixed by a single left rotation.
	RightRight
	// LeftRight is fixed by rotating the left child left, then the node right.
	LeftRight
	// RightLeft is fixed by rotating the right child right, then the node left.
	RightLeft
)

// String returns the conventional two-letter case name.
func (c RotationCase) String() string {
	switch c {
	case LeftLeft:
		return "LL"
	case RightRight:
		return "RR"
	case LeftRight:
		return "LR"
	case RightLeft:
		return "RL"
	default:
		return fmt.Sprintf("RotationCase(%d)", int(c))
	}
}

// Stats counts the rebalancing work performed since the tree was created.
type Stats struct {
	LeftLeft   int
	RightRight int
	LeftRight  int
	RightLeft  int
}

// Total returns the number of rebalancing events (a double rotation counts once).
func (s Stats) Total() int {
	return s.LeftLeft + s.RightRight + s.LeftRight + s.RightLeft
}

// Option configures a Tree at construction time.
type Option[K any] func(*Options[K])

// Options holds construction parameters for a Tree.
type Options[K any] struct {
	// Capacity pre-sizes the node arena.
	Capacity int

	// OnRotate is invoked once per rebalancing event with the case applied
	// and the key of the node that was out of balance.
	OnRotate func(c RotationCase, pivot K)
}

// DefaultOptions returns an empty arena hint and a no-op rotation hook.
func DefaultOptions[K any]() Options[K] {
	return Options[K]{
		Capacity: 0,
		OnRotate: func(RotationCase, K) {},
	}
}

// WithCapacity pre-allocates room for n nodes. Negative values are ignored.
func WithCapacity[K any](n int) Option[K] {
	return func(o *Options[K]) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithOnRotate registers a hook fired on every rebalancing event.
func WithOnRotate[K any](fn func(c RotationCase, pivot K)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnRotate = fn
		}
	}
}
