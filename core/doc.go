// Package core provides the fundamental in-memory friendship Graph:
// an unweighted, undirected graph stored as adjacency sets.
//
// The Graph G = (V,E) is deliberately small in surface:
//
//   - Nodes are opaque string IDs (user IDs); equality is string equality.
//   - Edges are undirected and unweighted; AddEdge always mirrors the
//     insertion, so v ∈ adjacency(u) ⇔ u ∈ adjacency(v) holds after
//     every mutation.
//   - Adjacency is a set: repeated AddEdge calls for the same pair are
//     no-ops and never inflate degree.
//   - The node catalog preserves first-appearance order, so Nodes()
//     is deterministic for a given insertion sequence. Rankings and
//     traversals downstream rely on exactly that order for tie-breaks.
//   - A single sync.RWMutex guards all state; mutations take the write
//     lock, queries the read lock.
//
// Self-loops are a policy decision, not an accident: by default
// AddEdge(v, v) returns ErrSelfLoop. Construct the graph with
// WithSelfLoops() to permit them; a permitted loop contributes one
// entry to the node's neighbor set (degree +1).
//
// Core Methods:
//
//	AddNode(id string) error                  // O(1)
//	AddEdge(u, v string) error                // O(1), symmetric, idempotent
//	HasNode(id string) bool                   // O(1)
//	HasEdge(u, v string) bool                 // O(1)
//	Nodes() []string                          // O(V), insertion order
//	Neighbors(id string) ([]string, error)    // O(d·log d), sorted
//	Degree(id string) (int, error)            // O(1)
//	NodeCount() int                           // O(1)
//	EdgeCount() int                           // O(1)
//
// Errors:
//
//	ErrEmptyNodeID – zero-length node ID
//	ErrNodeNotFound – query referenced a node never registered
//	ErrSelfLoop     – AddEdge(v, v) without WithSelfLoops
//
// There is no removal API: analysis graphs are built once by a loader
// and then only read.
package core
