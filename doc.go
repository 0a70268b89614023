// Package sociograph analyzes social-friendship networks with classical
// graph algorithms — from the core adjacency primitives up to max-flow
// based matching and link prediction.
//
// 🚀 What is sociograph?
//
//	A small, focused library for in-memory friendship-graph analysis:
//		• Core primitives: undirected adjacency-set graph, safe under locks
//		• Traversal: BFS shortest-hop distances with parent links
//		• Structure: iterative connected-component decomposition
//		• Influence: degree centrality with stable ranking
//		• Matching: bipartite maximum matching via Edmonds–Karp max flow
//		• Prediction: common-neighbor link scoring
//
// ✨ Why choose sociograph?
//
//   - Minimal API, clear naming — one package per algorithm
//   - Well-defined degenerate behavior — empty graphs and unreachable
//     nodes yield empty results, not errors
//   - Deterministic — a fixed insertion sequence fixes every ranking
//     and traversal order
//   - Pure Go — no cgo
//
// Everything is organized under per-concern subpackages:
//
//	core/       — the undirected Graph type and its mutation/query API
//	bfs/        — single-source shortest-hop breadth-first search
//	components/ — iterative connected-component decomposition
//	centrality/ — degree centrality and influence ranking
//	flow/       — residual flow networks + Edmonds–Karp maximum flow
//	matching/   — bipartite matching networks on top of flow/
//	linkpred/   — common-neighbor link prediction
//	dataset/    — SNAP-style edge-list loading
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four users, four friendships: one component, all degrees equal 2.
//
// The cmd/sociograph CLI wires the pieces together over edge-list files.
package sociograph
