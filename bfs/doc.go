// Package bfs provides single-source breadth-first search over a
// core.Graph, returning shortest-hop distances, parent links, and visit
// order.
//
// What
//
//   - Explore nodes in non-decreasing distance (hop count) from a
//     source node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Dist: map from node → hop distance from the source
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports an OnVisit hook (may abort with an error).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// A node is discovered exactly once — distance and parent are fixed the
// first time it is enqueued, never revisited. FIFO order then enforces
// non-decreasing distance across dequeues, which is exactly the
// shortest-hop guarantee for unweighted graphs.
//
// Dist and Parent cover exactly the connected component of the source:
// unreachable nodes are simply absent from both maps. That is defined
// partial-reachability semantics, not an error. A source with no
// friends yields the one-node result {source: 0}.
//
// Determinism
//
//	core.Neighbors returns sorted neighbor IDs and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible for a fixed
//	graph.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (queue, Dist map, Parent map, visited set)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS(g, "start")
//
//	// With functional options:
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrSourceNotFound    if the source node does not exist.
//   - ErrOptionViolation   if an invalid Option is supplied (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
