// Package components_test provides benchmarks for component decomposition.
package components_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sociograph/components"
	"github.com/katalvlaran/sociograph/core"
)

// BenchmarkComponents_ManyIslands measures decomposition of 500 pair islands.
func BenchmarkComponents_ManyIslands(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 500; i++ {
		_ = g.AddEdge(fmt.Sprintf("L%d", i), fmt.Sprintf("R%d", i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := components.Components(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComponents_Chain measures one deep 10k-node component.
func BenchmarkComponents_Chain(b *testing.B) {
	g := core.NewGraph()
	for i := 1; i < 10_000; i++ {
		_ = g.AddEdge(fmt.Sprintf("N%d", i-1), fmt.Sprintf("N%d", i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := components.Components(g); err != nil {
			b.Fatal(err)
		}
	}
}
