// Package linkpred predicts missing friendships with the
// common-neighbors heuristic: the more mutual friends two strangers
// share, the likelier they are to connect.
//
// CommonNeighbors(g, u, v) counts the intersection of two neighbor
// sets. Predict(g) scores every unordered pair of distinct,
// non-adjacent nodes, keeps strictly positive scores, and returns them
// ordered by score descending; ties keep the pair enumeration order
// (outer/inner loops over g.Nodes(), stable sort), so results are
// reproducible for a fixed insertion sequence. WithTopK truncates the
// list.
//
// Cost model: Predict is inherently quadratic — O(V²) candidate pairs,
// each intersected in O(min(d(u), d(v))). It is meant for moderate-size
// graphs; no approximation or indexing is attempted here, and callers
// with large graphs should pre-filter candidates themselves.
//
// Errors
//
//	ErrGraphNil        – nil graph pointer
//	ErrOptionViolation – WithTopK with k ≤ 0
//	core.ErrNodeNotFound (wrapped) – CommonNeighbors on missing nodes
//	context.Canceled / context.DeadlineExceeded via WithContext
package linkpred
