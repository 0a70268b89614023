// Package flow provides the residual Network representation consumed by
// the Edmonds–Karp solver.
package flow

// Network is a directed graph with mutable residual capacities between
// ordered node pairs.
//
// capacity[u][v] is the residual capacity of u→v. adjacency[u] lists
// every node u has ever been connected to, forward or reverse, and
// bounds the neighbor scan during augmenting-path search. seen dedupes
// adjacency registration so repeated AddEdge calls do not grow the
// lists.
//
// A Network is built once, then mutated in place by the solver. It is
// not synchronized: one owner per solver run.
type Network struct {
	capacity  map[string]map[string]int64
	adjacency map[string][]string
	seen      map[string]map[string]struct{}
}

// NewNetwork creates an empty flow network.
// Complexity: O(1)
func NewNetwork() *Network {
	return &Network{
		capacity:  make(map[string]map[string]int64),
		adjacency: make(map[string][]string),
		seen:      make(map[string]map[string]struct{}),
	}
}

// register ensures id has capacity/adjacency/seen entries.
func (n *Network) register(id string) {
	if _, ok := n.capacity[id]; ok {
		return
	}
	n.capacity[id] = make(map[string]int64)
	n.seen[id] = make(map[string]struct{})
	if _, ok := n.adjacency[id]; !ok {
		n.adjacency[id] = nil
	}
}

// link records v as an adjacency neighbor of u exactly once.
func (n *Network) link(u, v string) {
	if _, dup := n.seen[u][v]; dup {
		return
	}
	n.seen[u][v] = struct{}{}
	n.adjacency[u] = append(n.adjacency[u], v)
}

// AddEdge accumulates forward capacity c on the ordered pair (u,v) and
// ensures a (possibly zero) reverse entry (v,u) exists for flow
// cancellation. Both endpoints become mutual adjacency neighbors.
// Repeated calls for the same pair sum their capacities.
//
// Complexity: O(1) amortized.
func (n *Network) AddEdge(u, v string, c int64) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if c < 0 {
		return ErrNegativeCapacity
	}

	n.register(u)
	n.register(v)

	n.capacity[u][v] += c
	if _, ok := n.capacity[v][u]; !ok {
		n.capacity[v][u] = 0 // reverse entry
	}
	n.link(u, v)
	n.link(v, u)

	return nil
}

// Capacity returns the current residual capacity of the ordered pair
// (u,v); pairs never registered report 0.
//
// Complexity: O(1)
func (n *Network) Capacity(u, v string) int64 {
	if fwd, ok := n.capacity[u]; ok {
		return fwd[v]
	}

	return 0
}

// HasNode reports whether id has appeared in any AddEdge call.
//
// Complexity: O(1)
func (n *Network) HasNode(id string) bool {
	_, ok := n.capacity[id]

	return ok
}

// NodeCount returns the number of registered nodes.
//
// Complexity: O(1)
func (n *Network) NodeCount() int {
	return len(n.capacity)
}
