// Package centrality implements degree centrality and influence ranking.
package centrality

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/sociograph/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("centrality: graph is nil")

// NodeDegree pairs a node ID with its degree, one ranking entry.
type NodeDegree struct {
	ID     string
	Degree int
}

// Degree maps every registered node to the cardinality of its neighbor
// set. An empty graph yields an empty map.
//
// Time: O(V). Memory: O(V).
func Degree(g *core.Graph) (map[string]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nodes := g.Nodes()
	out := make(map[string]int, len(nodes))
	for _, id := range nodes {
		d, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("centrality: degree of %q: %w", id, err)
		}
		out[id] = d
	}

	return out, nil
}

// Rank returns every node ordered by degree descending. The sort is
// stable over g.Nodes() order, so equal degrees keep first-appearance
// order.
//
// Time: O(V·log V). Memory: O(V).
func Rank(g *core.Graph) ([]NodeDegree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nodes := g.Nodes()
	ranked := make([]NodeDegree, 0, len(nodes))
	for _, id := range nodes {
		d, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("centrality: degree of %q: %w", id, err)
		}
		ranked = append(ranked, NodeDegree{ID: id, Degree: d})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Degree > ranked[j].Degree
	})

	return ranked, nil
}

// Top returns the k highest-degree entries of Rank. k larger than the
// node count returns the full ranking; k ≤ 0 returns an empty slice.
func Top(g *core.Graph, k int) ([]NodeDegree, error) {
	ranked, err := Rank(g)
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		return []NodeDegree{}, nil
	}
	if k > len(ranked) {
		k = len(ranked)
	}

	return ranked[:k], nil
}
