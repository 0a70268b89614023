// Package core provides the fundamental in-memory Graph implementation.
//
// It offers thread-safe methods to mutate and query nodes and edges.
// All mutations acquire the write lock; queries acquire the read lock.
package core

import "sort"

// register inserts id into the catalog and adjacency map if absent.
// Caller must hold the write lock.
func (g *Graph) register(id string) {
	if _, exists := g.adjacency[id]; exists {
		return
	}
	g.adjacency[id] = make(map[string]struct{})
	g.order = append(g.order, id)
}

// AddNode registers id as a node with no neighbors.
// If the node already exists, this is a no-op.
// Thread-safe: acquires the write lock.
//
// Complexity: O(1)
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.register(id)

	return nil
}

// AddEdge inserts the undirected edge {u, v}: u into v's neighbor set
// and v into u's. Unknown endpoints are auto-registered. Repeated
// insertion of the same pair is a no-op — adjacency is a set.
// AddEdge(v, v) returns ErrSelfLoop unless the graph was constructed
// with WithSelfLoops.
// Thread-safe: acquires the write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if u == v && !g.allowLoops {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.register(u)
	g.register(v)

	if _, dup := g.adjacency[u][v]; dup {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasNode reports whether id has appeared in any AddNode or AddEdge call.
// Thread-safe: acquires the read lock.
//
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether the undirected edge {u, v} exists.
// Thread-safe: acquires the read lock.
//
// Complexity: O(1)
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if nbrs, ok := g.adjacency[u]; ok {
		_, ok = nbrs[v]

		return ok
	}

	return false
}

// Nodes returns every registered node in first-appearance order.
// The returned slice is a copy; mutating it does not affect the graph.
// Thread-safe: acquires the read lock.
//
// Complexity: O(V)
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns the neighbor set of id as a sorted slice.
// Returns ErrNodeNotFound if id was never registered.
// Thread-safe: acquires the read lock.
//
// Complexity: O(d·log d) where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the cardinality of id's neighbor set.
// Returns ErrNodeNotFound if id was never registered.
// Thread-safe: acquires the read lock.
//
// Complexity: O(1)
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(nbrs), nil
}

// NodeCount returns the number of registered nodes.
// Thread-safe: acquires the read lock.
//
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of distinct undirected edges
// (a self-loop counts once).
// Thread-safe: acquires the read lock.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
