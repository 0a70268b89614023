// Package flow implements residual flow networks and the Edmonds–Karp
// maximum-flow algorithm, the engine behind bipartite matching in the
// matching package.
//
// # Network
//
// A Network is a directed graph with mutable residual capacities:
//
//   - cap(u,v) is a non-negative int64; AddEdge(u, v, c) accumulates
//     capacity on the ordered pair (repeated calls sum, never replace)
//     and guarantees a reverse entry cap(v,u) ≥ 0 exists, so flow can
//     later be canceled along it.
//   - Both endpoints register each other as adjacency neighbors; the
//     augmenting-path search walks that adjacency in both directions,
//     because residual reverse edges become traversable once flow is
//     pushed.
//
// Every augmentation decreases cap(u,v) and increases cap(v,u) by the
// same bottleneck, so cap(u,v)+cap(v,u) is conserved per edge pair.
//
// # Edmonds–Karp
//
// EdmondsKarp repeats until no augmenting path exists:
//
//  1. BFS from source over residual capacities (traverse u→v only when
//     cap(u,v) > 0), recording parents, stopping early at the sink.
//  2. No path → done; the accumulated total is the maximum flow.
//  3. Walk parents sink→source; the bottleneck is the minimum residual
//     capacity on the path (seeded with math.MaxInt64, overwritten by
//     the first real edge).
//  4. Augment: cap(u,v) -= bottleneck, cap(v,u) += bottleneck along the
//     path.
//  5. Accumulate the bottleneck into the total.
//
// Choosing BFS (fewest-edge augmenting paths) bounds the number of
// augmentations by O(V·E) — the Edmonds–Karp guarantee — where plain
// Ford–Fulkerson with arbitrary path choice may cycle badly. With
// integer capacities each augmentation adds ≥ 1 flow and total flow is
// bounded by the source's outgoing capacity, so termination is
// unconditional.
//
// A disconnected source/sink pair yields flow 0 after zero
// augmentations — not an error. A source or sink never registered in
// the network at all is rejected with ErrSourceNotFound/ErrSinkNotFound
// (strict API).
//
// Complexity: O(V·E²) time, O(V+E) memory.
//
// # Errors
//
//	ErrNetworkNil        – nil network pointer
//	ErrEmptyNodeID       – empty endpoint ID in AddEdge
//	ErrNegativeCapacity  – AddEdge with c < 0
//	ErrSourceNotFound    – source never registered
//	ErrSinkNotFound      – sink never registered
//	ErrSourceIsSink      – source == sink
//	context.Canceled / context.DeadlineExceeded via WithContext
//
// A Network is exclusively owned by its caller for the duration of one
// solver run; it is not synchronized for concurrent use.
package flow
