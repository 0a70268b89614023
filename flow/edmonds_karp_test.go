package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sociograph/flow"
)

// EdmondsKarpSuite groups tests for Edmonds–Karp.
type EdmondsKarpSuite struct {
	suite.Suite
}

// TestSimplePath: A→B (cap=5) => maxFlow = 5.
func (s *EdmondsKarpSuite) TestSimplePath() {
	n := flow.NewNetwork()
	require.NoError(s.T(), n.AddEdge("A", "B", 5))

	mf, err := flow.EdmondsKarp(n, "A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), mf, "max flow should match single-edge capacity")
	require.Equal(s.T(), int64(0), n.Capacity("A", "B"), "forward exhausted")
	require.Equal(s.T(), int64(5), n.Capacity("B", "A"), "reverse edge carries flow")
}

// TestMultiPath: two disjoint routes => flow sums them.
func (s *EdmondsKarpSuite) TestMultiPath() {
	n := flow.NewNetwork()
	require.NoError(s.T(), n.AddEdge("A", "B", 3))
	require.NoError(s.T(), n.AddEdge("A", "C", 4))
	require.NoError(s.T(), n.AddEdge("C", "B", 2))

	mf, err := flow.EdmondsKarp(n, "A", "B")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), mf, "flow should combine both paths (3 + 2)")
}

// TestFlowCancellation: the cross edge tempts an early path that must be
// undone through the residual reverse edge.
func (s *EdmondsKarpSuite) TestFlowCancellation() {
	n := flow.NewNetwork()
	require.NoError(s.T(), n.AddEdge("s", "a", 10))
	require.NoError(s.T(), n.AddEdge("s", "b", 10))
	require.NoError(s.T(), n.AddEdge("a", "t", 10))
	require.NoError(s.T(), n.AddEdge("b", "t", 10))
	require.NoError(s.T(), n.AddEdge("a", "b", 1))

	mf, err := flow.EdmondsKarp(n, "s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(20), mf)
}

// TestMinCutBound: max flow equals the known min cut, not the larger
// source capacity.
func (s *EdmondsKarpSuite) TestMinCutBound() {
	// s→m has capacity 7 but the m→t bottleneck (cut {m|t}) is 3.
	n := flow.NewNetwork()
	require.NoError(s.T(), n.AddEdge("s", "m", 7))
	require.NoError(s.T(), n.AddEdge("m", "t", 3))

	mf, err := flow.EdmondsKarp(n, "s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), mf, "flow must not exceed the min cut")
}

// TestConservation: cap(u,v)+cap(v,u) is conserved across augmentations.
func (s *EdmondsKarpSuite) TestConservation() {
	n := flow.NewNetwork()
	edges := [][2]string{{"s", "a"}, {"a", "b"}, {"b", "t"}, {"s", "b"}, {"a", "t"}}
	caps := []int64{4, 2, 5, 3, 1}
	for i, e := range edges {
		require.NoError(s.T(), n.AddEdge(e[0], e[1], caps[i]))
	}

	_, err := flow.EdmondsKarp(n, "s", "t")
	require.NoError(s.T(), err)
	for i, e := range edges {
		sum := n.Capacity(e[0], e[1]) + n.Capacity(e[1], e[0])
		require.Equal(s.T(), caps[i], sum,
			"pair (%s,%s): residual sum must equal original capacity", e[0], e[1])
	}
}

// TestDisconnected: registered but unreachable sink => flow 0, nil error.
func (s *EdmondsKarpSuite) TestDisconnected() {
	n := flow.NewNetwork()
	require.NoError(s.T(), n.AddEdge("s", "a", 5))
	require.NoError(s.T(), n.AddEdge("b", "t", 5))

	mf, err := flow.EdmondsKarp(n, "s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), mf)
}

// TestErrors covers nil network, missing endpoints, and source==sink.
func (s *EdmondsKarpSuite) TestErrors() {
	_, err := flow.EdmondsKarp(nil, "s", "t")
	require.ErrorIs(s.T(), err, flow.ErrNetworkNil)

	n := flow.NewNetwork()
	require.NoError(s.T(), n.AddEdge("A", "B", 1))

	_, err = flow.EdmondsKarp(n, "X", "B")
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)

	_, err = flow.EdmondsKarp(n, "A", "Z")
	require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)

	_, err = flow.EdmondsKarp(n, "A", "A")
	require.ErrorIs(s.T(), err, flow.ErrSourceIsSink)
}

// TestOnAugment: every reported path runs source→sink with positive flow.
func (s *EdmondsKarpSuite) TestOnAugment() {
	n := flow.NewNetwork()
	require.NoError(s.T(), n.AddEdge("s", "a", 2))
	require.NoError(s.T(), n.AddEdge("a", "t", 2))
	require.NoError(s.T(), n.AddEdge("s", "b", 1))
	require.NoError(s.T(), n.AddEdge("b", "t", 1))

	var augmentations int
	var total int64
	mf, err := flow.EdmondsKarp(n, "s", "t", flow.WithOnAugment(func(path []string, bottleneck int64) {
		augmentations++
		total += bottleneck
		require.Equal(s.T(), "s", path[0])
		require.Equal(s.T(), "t", path[len(path)-1])
		require.Positive(s.T(), bottleneck)
	}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), mf)
	require.Equal(s.T(), mf, total, "hook bottlenecks must sum to the max flow")
	require.Equal(s.T(), 2, augmentations)
}

// TestCancellation: a canceled context aborts the search.
func (s *EdmondsKarpSuite) TestCancellation() {
	n := flow.NewNetwork()
	require.NoError(s.T(), n.AddEdge("s", "t", 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := flow.EdmondsKarp(n, "s", "t", flow.WithContext(ctx))
	require.True(s.T(), errors.Is(err, context.Canceled))
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
