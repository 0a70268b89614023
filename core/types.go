// Package core defines the central Graph type for friendship networks.
//
// This file declares the Graph struct, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates AddEdge(v, v) was attempted while self-loops
	// are disabled (the default).
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSelfLoops permits edges from a node to itself.
// A permitted loop stores the node once in its own neighbor set.
func WithSelfLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory friendship graph: undirected, unweighted,
// adjacency-set storage.
//
// adjacency[u] holds the neighbor set of u; order records each node ID
// at first appearance, giving Nodes() a stable enumeration. edgeCount
// counts distinct undirected edges (a self-loop counts once).
type Graph struct {
	mu sync.RWMutex

	allowLoops bool // self-loop policy, immutable after construction

	adjacency map[string]map[string]struct{} // node ID → neighbor set
	order     []string                       // node IDs in first-appearance order
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
