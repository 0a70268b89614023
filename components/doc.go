// Package components partitions a core.Graph into its connected
// components — maximal sets of nodes pairwise reachable via friendship
// edges.
//
// What
//
//   - Components(g) returns one slice per component; together the
//     slices cover every registered node exactly once (exhaustive,
//     pairwise-disjoint partition).
//   - An empty graph yields an empty partition, not an error.
//   - Isolated nodes form singleton components.
//
// The exploration is ITERATIVE by contract, not by taste: real
// friendship graphs reach depths that would overflow the call stack
// under recursion, so each component is collected with an explicit
// resizable stack. Nodes are marked visited at the moment they are
// pushed — never when popped — so no node ever sits on the stack twice.
//
// Determinism
//
//	Components are emitted in the order their first node appears in
//	g.Nodes() (first-appearance order), and membership order inside a
//	component follows the stack pop order over sorted neighbors. Both
//	are reproducible for a fixed insertion sequence.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the visited set and the stack.
//
// Errors
//
//   - ErrGraphNil if the graph pointer is nil.
//   - context.Canceled / context.DeadlineExceeded via WithContext.
package components
