// Package bfs_test provides benchmarks for BFS traversal.
package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sociograph/bfs"
	"github.com/katalvlaran/sociograph/core"
)

// chainGraph builds a path of n nodes: N0—N1—…—N(n-1).
func chainGraph(n int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("N%d", i-1), fmt.Sprintf("N%d", i))
	}

	return g
}

// BenchmarkBFS_Chain1000 measures a full walk of a 1000-node path.
func BenchmarkBFS_Chain1000(b *testing.B) {
	g := chainGraph(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, "N0"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBFS_Star1000 measures a walk of a 1000-leaf star.
func BenchmarkBFS_Star1000(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge("Center", fmt.Sprintf("Leaf%d", i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, "Center"); err != nil {
			b.Fatal(err)
		}
	}
}
