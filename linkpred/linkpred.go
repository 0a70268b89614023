// Package linkpred implements common-neighbor link prediction over a
// core.Graph.
package linkpred

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sociograph/core"
)

// CommonNeighbors counts the mutual friends of u and v: the size of the
// intersection of their neighbor sets. Both nodes must be registered.
//
// Time: O(min(d(u), d(v))) given the set lookup.
func CommonNeighbors(g *core.Graph, u, v string) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	uN, err := g.Neighbors(u)
	if err != nil {
		return 0, fmt.Errorf("linkpred: neighbors of %q: %w", u, err)
	}
	vN, err := g.Neighbors(v)
	if err != nil {
		return 0, fmt.Errorf("linkpred: neighbors of %q: %w", v, err)
	}

	// intersect through the smaller side
	if len(vN) < len(uN) {
		uN, vN = vN, uN
	}
	idx := make(map[string]struct{}, len(vN))
	for _, n := range vN {
		idx[n] = struct{}{}
	}
	count := 0
	for _, n := range uN {
		if _, ok := idx[n]; ok {
			count++
		}
	}

	return count, nil
}

// Predict scores every unordered pair of distinct, non-adjacent nodes
// by common-neighbor count and returns the positive-score pairs ranked
// descending. Ties keep pair enumeration order (stable sort over the
// g.Nodes() double loop). WithTopK truncates the ranking.
//
// Time: O(V²·d) — quadratic by nature; see the package doc's cost model.
// Memory: O(V·d) for the neighbor-set index plus the output.
func Predict(g *core.Graph, opts ...Option) ([]Prediction, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	nodes := g.Nodes()
	// one neighbor-set index for all pair intersections
	sets := make(map[string]map[string]struct{}, len(nodes))
	for _, id := range nodes {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("linkpred: neighbors of %q: %w", id, err)
		}
		set := make(map[string]struct{}, len(nbrs))
		for _, n := range nbrs {
			set[n] = struct{}{}
		}
		sets[id] = set
	}

	scores := make([]Prediction, 0)
	for i := 0; i < len(nodes); i++ {
		// cancellation check once per outer node
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		u := nodes[i]
		uSet := sets[u]
		for j := i + 1; j < len(nodes); j++ {
			v := nodes[j]
			if _, adjacent := uSet[v]; adjacent {
				continue
			}
			score := 0
			vSet := sets[v]
			small, large := uSet, vSet
			if len(vSet) < len(uSet) {
				small, large = vSet, uSet
			}
			for n := range small {
				if _, ok := large[n]; ok {
					score++
				}
			}
			if score > 0 {
				scores = append(scores, Prediction{U: u, V: v, Score: score})
			}
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if o.TopK > 0 && len(scores) > o.TopK {
		scores = scores[:o.TopK]
	}

	return scores, nil
}
