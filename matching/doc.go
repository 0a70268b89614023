// Package matching reduces bipartite maximum matching to unit-capacity
// maximum flow on a flow.Network.
//
// BuildNetwork assembles the standard reduction: a synthetic source
// feeds every left node with capacity 1, every right node drains into a
// synthetic sink with capacity 1, and each permissible (left, right)
// pair carries capacity 1. Running flow.EdmondsKarp on the result gives
// the maximum matching size — no left or right node can carry more than
// one unit, so augmenting paths correspond one-to-one with matched
// pairs. MaxMatching wraps the two steps.
//
// Synthetic node identity is structural, not conventional: source and
// sink IDs are derived from a NUL-prefixed namespace and extended until
// they collide with no caller-supplied ID, so a real user ID can never
// alias them. Callers receive both IDs back for use with the solver.
//
// Validation
//
//   - Empty node or pair IDs → ErrEmptyNodeID.
//   - A node listed on both sides → ErrSidesOverlap.
//   - A pair endpoint missing from its side's list → ErrUnknownPairNode.
//   - Duplicate entries within one side are deduplicated, keeping unit
//     capacities intact.
//
// Zero permissible pairs is not an error: the network is still valid
// and the maximum matching is 0.
package matching
