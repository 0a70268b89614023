// Package flow_test provides benchmarks for the Edmonds–Karp solver.
package flow_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sociograph/flow"
)

// layeredNetwork builds s → layer1 → layer2 → t with unit capacities,
// width nodes per layer, fully connected between layers.
func layeredNetwork(width int) *flow.Network {
	n := flow.NewNetwork()
	for i := 0; i < width; i++ {
		_ = n.AddEdge("s", fmt.Sprintf("a%d", i), 1)
		_ = n.AddEdge(fmt.Sprintf("b%d", i), "t", 1)
		for j := 0; j < width; j++ {
			_ = n.AddEdge(fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", j), 1)
		}
	}

	return n
}

// BenchmarkEdmondsKarp_Layered50 measures a 50-wide unit-capacity network.
func BenchmarkEdmondsKarp_Layered50(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		n := layeredNetwork(50) // solver mutates the network, rebuild per run
		b.StartTimer()
		if _, err := flow.EdmondsKarp(n, "s", "t"); err != nil {
			b.Fatal(err)
		}
	}
}
