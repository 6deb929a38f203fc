package core

import (
	"errors"
	"sync"

	"github.com/google/btree"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an endpoint label is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeWeight indicates AddEdge was called with a weight below zero.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")
)

// labelIndexDegree is the B-tree degree of the ordered label index.
const labelIndexDegree = 16

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	// ID is the label at the other end of the edge.
	ID string

	// Weight is the non-negative cost of traversing the edge.
	Weight int64
}

// Edge is an undirected connection as it was passed to AddEdge.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Graph is an undirected, non-negatively weighted multigraph over string labels.
type Graph struct {
	mu sync.RWMutex

	// adjacency[label] lists (neighbor, weight) pairs in insertion order.
	adjacency map[string][]Neighbor

	// labels is the ordered set of every key of adjacency.
	labels *btree.BTreeG[string]

	// edges records each AddEdge call once, in call order.
	edges []Edge
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]Neighbor),
		labels:    btree.NewOrderedG[string](labelIndexDegree),
	}
}
