package avl

import (
	"cmp"
	"iter"
)

// empty is the arena index of the shared sentinel node (height 0, no children).
const empty int32 = 0

// node is one arena slot. Children are arena indices; empty means absent.
type node[K cmp.Ordered] struct {
	key    K
	left   int32
	right  int32
	height int32
}

// Tree is an AVL tree over keys of type K.
// The zero value is not usable; construct with New.
type Tree[K cmp.Ordered] struct {
	nodes []node[K] // nodes[0] is the sentinel
	root  int32
	opts  Options[K]
	stats Stats
}

// New returns an empty tree.
func New[K cmp.Ordered](opts ...Option[K]) *Tree[K] {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	nodes := make([]node[K], 1, o.Capacity+1)

	return &Tree[K]{nodes: nodes, root: empty, opts: o}
}

// Insert adds key to the tree and rebalances the path back to the root.
// Duplicate keys are kept and placed to the right of their equals.
//
// Complexity: O(log n).
func (t *Tree[K]) Insert(key K) {
	t.root = t.insert(t.root, key)
}

// insert places key under subtree n and returns the subtree's new root.
func (t *Tree[K]) insert(n int32, key K) int32 {
	if n == empty {
		t.nodes = append(t.nodes, node[K]{key: key, left: empty, right: empty, height: 1})
		return int32(len(t.nodes) - 1)
	}

	// The arena may grow during the recursive call, so the child index is
	// written back through a fresh slice lookup.
	if key < t.nodes[n].key {
		child := t.insert(t.nodes[n].left, key)
		t.nodes[n].left = child
	} else {
		child := t.insert(t.nodes[n].right, key)
		t.nodes[n].right = child
	}

	t.fixHeight(n)
	balance := t.balance(n)

	switch {
	case balance > 1 && key < t.nodes[t.nodes[n].left].key:
		t.record(LeftLeft, n)
		return t.rightRotate(n)

	case balance < -1 && key >= t.nodes[t.nodes[n].right].key:
		t.record(RightRight, n)
		return t.leftRotate(n)

	case balance > 1:
		t.record(LeftRight, n)
		left := t.leftRotate(t.nodes[n].left)
		t.nodes[n].left = left
		return t.rightRotate(n)

	case balance < -1:
		t.record(RightLeft, n)
		right := t.rightRotate(t.nodes[n].right)
		t.nodes[n].right = right
		return t.leftRotate(n)
	}

	return n
}

// leftRotate lifts z's right child above z and returns it.
//
//	  z                y
//	 / \              / \
//	a   y     =>     z   c
//	   / \          / \
//	  b   c        a   b
func (t *Tree[K]) leftRotate(z int32) int32 {
	y := t.nodes[z].right
	b := t.nodes[y].left

	t.nodes[y].left = z
	t.nodes[z].right = b

	t.fixHeight(z)
	t.fixHeight(y)

	return y
}

// rightRotate lifts z's left child above z and returns it.
//
//	    z            y
//	   / \          / \
//	  y   c   =>   a   z
//	 / \              / \
//	a   b            b   c
func (t *Tree[K]) rightRotate(z int32) int32 {
	y := t.nodes[z].left
	b := t.nodes[y].right

	t.nodes[y].right = z
	t.nodes[z].left = b

	t.fixHeight(z)
	t.fixHeight(y)

	return y
}

func (t *Tree[K]) fixHeight(n int32) {
	nd := &t.nodes[n]
	nd.height = 1 + max(t.nodes[nd.left].height, t.nodes[nd.right].height)
}

func (t *Tree[K]) balance(n int32) int32 {
	return t.nodes[t.nodes[n].left].height - t.nodes[t.nodes[n].right].height
}

func (t *Tree[K]) record(c RotationCase, pivot int32) {
	switch c {
	case LeftLeft:
		t.stats.LeftLeft++
	case RightRight:
		t.stats.RightRight++
	case LeftRight:
		t.stats.LeftRight++
	case RightLeft:
		t.stats.RightLeft++
	}
	t.opts.OnRotate(c, t.nodes[pivot].key)
}

// Len returns the number of keys stored, duplicates included.
func (t *Tree[K]) Len() int {
	return len(t.nodes) - 1
}

// Height returns the height of the tree; 0 when empty.
func (t *Tree[K]) Height() int {
	return int(t.nodes[t.root].height)
}

// Stats returns the rebalancing counters.
func (t *Tree[K]) Stats() Stats {
	return t.stats
}

// Root returns the key at the root, or false when the tree is empty.
func (t *Tree[K]) Root() (K, bool) {
	if t.root == empty {
		var zero K
		return zero, false
	}

	return t.nodes[t.root].key, true
}

// Contains reports whether at least one copy of key is stored.
func (t *Tree[K]) Contains(key K) bool {
	for n := t.root; n != empty; {
		switch c := cmp.Compare(key, t.nodes[n].key); {
		case c < 0:
			n = t.nodes[n].left
		case c > 0:
			n = t.nodes[n].right
		default:
			return true
		}
	}

	return false
}

// Min returns the smallest key, or false when the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	return t.edge(func(nd node[K]) int32 { return nd.left })
}

// Max returns the largest key, or false when the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	return t.edge(func(nd node[K]) int32 { return nd.right })
}

func (t *Tree[K]) edge(next func(node[K]) int32) (K, bool) {
	if t.root == empty {
		var zero K
		return zero, false
	}
	n := t.root
	for next(t.nodes[n]) != empty {
		n = next(t.nodes[n])
	}

	return t.nodes[n].key, true
}

// InOrder returns all keys in (left, self, right) order.
// The result is non-decreasing; equal keys are adjacent.
func (t *Tree[K]) InOrder() []K {
	keys := make([]K, 0, t.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}

	return keys
}

// All returns a read-only in-order iterator over the keys.
// Each call starts a fresh traversal. The tree must not be modified while
// the iterator is running.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.walk(t.root, yield)
	}
}

func (t *Tree[K]) walk(n int32, yield func(K) bool) bool {
	if n == empty {
		return true
	}

	return t.walk(t.nodes[n].left, yield) &&
		yield(t.nodes[n].key) &&
		t.walk(t.nodes[n].right, yield)
}
