// Package centrality measures node influence in a core.Graph by degree:
// the cardinality of a node's neighbor set, i.e. the number of direct
// friends.
//
// Degree(g) maps every node to its neighbor count — pure, O(1) per node
// on set-based adjacency. Rank(g) orders nodes by degree descending
// with a stable sort, so ties keep their first-appearance order from
// g.Nodes(); that tie-break is deliberate and pinned by tests. Top(g, k)
// truncates the ranking to the k most connected users.
//
// An empty graph yields an empty map and an empty ranking — not an
// error. Because adjacency is a set, adding the same friendship twice
// never inflates degree.
package centrality
