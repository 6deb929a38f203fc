// Package avl provides a height-balanced binary search tree (AVL tree)
// over any cmp.Ordered key type, used to index affected-area labels.
//
// What
//
//   - Insert keeps the tree balanced after every call: for every node the
//     heights of its two subtrees differ by at most one.
//   - Duplicates are accepted and always routed to the right subtree, so a
//     tree built from k inserts holds exactly k nodes.
//   - InOrder / All enumerate keys left, self, right; the sequence is
//     non-decreasing in key order.
//
// Rebalancing
//
//	After the recursive insert returns, each node on the path recomputes its
//	height and balance factor (height(left) - height(right)). When the factor
//	leaves [-1, 1], the rotation case is chosen by comparing the inserted key
//	with the key of the immediate child on the heavy side, using the same
//	comparison that routed the key during descent:
//
//	  LL  balance > 1,  key <  left.key   -> rotate right
//	  LR  balance > 1,  key >= left.key   -> rotate left(child), rotate right
//	  RR  balance < -1, key >= right.key  -> rotate left
//	  RL  balance < -1, key <  right.key  -> rotate right(child), rotate left
//
//	Case selection trusts the inserted key, not the child's balance factor.
//	It is only valid at the moment a single insert introduced the imbalance;
//	Insert is not a general-purpose rebuild primitive.
//
// Storage
//
//	Nodes live in a growable arena and refer to their children by int32
//	index. Index 0 is the shared empty sentinel with height 0, so a missing
//	child needs no special case in height arithmetic. Rotations are index
//	reassignments and cost O(1). Nodes are never removed.
//
// Complexity
//
//   - Insert:   O(log n) time, O(log n) stack.
//   - InOrder:  O(n).
//   - Contains: O(log n).
//
// Concurrency
//
//	A Tree is not safe for concurrent mutation; callers that share one
//	across goroutines must serialize access themselves.
package avl
