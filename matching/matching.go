// Package matching builds bipartite matching networks and solves them
// via Edmonds–Karp maximum flow.
package matching

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sociograph/flow"
)

// Sentinel errors for matching-network construction.
var (
	// ErrEmptyNodeID indicates an empty ID in a side list or pair.
	ErrEmptyNodeID = errors.New("matching: node ID is empty")

	// ErrSidesOverlap indicates a node listed on both sides.
	ErrSidesOverlap = errors.New("matching: left and right sides overlap")

	// ErrUnknownPairNode indicates a pair endpoint absent from its side.
	ErrUnknownPairNode = errors.New("matching: pair endpoint not in its side")
)

// Base names for the synthetic terminals; namespaced with a NUL prefix
// so no sanctioned user ID can collide (IDs are validated non-empty,
// and syntheticID extends until the namespace is free).
const (
	sourceBase = "source"
	sinkBase   = "sink"
)

// Pair is one permissible (left, right) pairing.
type Pair struct {
	Left  string
	Right string
}

// syntheticID returns a NUL-prefixed ID derived from base that collides
// with no ID in taken.
func syntheticID(base string, taken map[string]struct{}) string {
	id := "\x00" + base
	for {
		if _, clash := taken[id]; !clash {
			return id
		}
		id += "\x00"
	}
}

// dedupe validates the IDs of one side and returns them in first-appearance
// order with duplicates dropped.
func dedupe(side []string, seen map[string]struct{}) ([]string, error) {
	out := make([]string, 0, len(side))
	for _, id := range side {
		if id == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out, nil
}

// BuildNetwork constructs the unit-capacity flow network for the
// bipartite matching problem (left, right, pairs) and returns it along
// with the synthetic source and sink IDs.
//
// Emission order is deterministic: source→left edges in left order,
// right→sink edges in right order, then pair edges in pair order.
//
// Time: O(|left| + |right| + |pairs|).
func BuildNetwork(left, right []string, pairs []Pair) (n *flow.Network, source, sink string, err error) {
	leftSeen := make(map[string]struct{}, len(left))
	leftIDs, err := dedupe(left, leftSeen)
	if err != nil {
		return nil, "", "", err
	}
	rightSeen := make(map[string]struct{}, len(right))
	rightIDs, err := dedupe(right, rightSeen)
	if err != nil {
		return nil, "", "", err
	}
	for id := range rightSeen {
		if _, both := leftSeen[id]; both {
			return nil, "", "", fmt.Errorf("%w: %q", ErrSidesOverlap, id)
		}
	}

	// Reserve collision-free synthetic terminals against all real IDs.
	taken := make(map[string]struct{}, len(leftSeen)+len(rightSeen)+1)
	for id := range leftSeen {
		taken[id] = struct{}{}
	}
	for id := range rightSeen {
		taken[id] = struct{}{}
	}
	source = syntheticID(sourceBase, taken)
	taken[source] = struct{}{}
	sink = syntheticID(sinkBase, taken)

	n = flow.NewNetwork()
	// Zero-capacity spine registers both terminals even for empty sides.
	if err = n.AddEdge(source, sink, 0); err != nil {
		return nil, "", "", err
	}
	for _, u := range leftIDs {
		if err = n.AddEdge(source, u, 1); err != nil {
			return nil, "", "", err
		}
	}
	for _, v := range rightIDs {
		if err = n.AddEdge(v, sink, 1); err != nil {
			return nil, "", "", err
		}
	}
	for _, p := range pairs {
		if p.Left == "" || p.Right == "" {
			return nil, "", "", ErrEmptyNodeID
		}
		if _, ok := leftSeen[p.Left]; !ok {
			return nil, "", "", fmt.Errorf("%w: left %q", ErrUnknownPairNode, p.Left)
		}
		if _, ok := rightSeen[p.Right]; !ok {
			return nil, "", "", fmt.Errorf("%w: right %q", ErrUnknownPairNode, p.Right)
		}
		if err = n.AddEdge(p.Left, p.Right, 1); err != nil {
			return nil, "", "", err
		}
	}

	return n, source, sink, nil
}

// MaxMatching builds the matching network and returns the maximum
// bipartite matching size via Edmonds–Karp. Solver options (context,
// augmentation hook) pass through unchanged.
func MaxMatching(left, right []string, pairs []Pair, opts ...flow.Option) (int64, error) {
	n, source, sink, err := BuildNetwork(left, right, pairs)
	if err != nil {
		return 0, err
	}

	return flow.EdmondsKarp(n, source, sink, opts...)
}
