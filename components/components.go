// Package components implements iterative connected-component
// decomposition over a core.Graph.
package components

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sociograph/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("components: graph is nil")

// Option configures component decomposition via functional arguments.
type Option func(*Options)

// Options holds parameters for the decomposition.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Components partitions every registered node of g into maximal
// connected subsets. Each component is explored with an explicit stack
// (depth-first, mark-on-push), bounding stack depth by one resizable
// buffer instead of call-stack frames.
//
// Components appear in first-appearance order of their seed node;
// membership order follows pop order over sorted neighbors. The union
// of all components is the full node set, each node exactly once.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and the stack.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nodes := g.Nodes()
	visited := make(map[string]bool, len(nodes))
	comps := make([][]string, 0)

	for _, seed := range nodes {
		if visited[seed] {
			continue
		}
		// cancellation check once per component
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		comp, err := explore(g, seed, visited)
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// explore collects the component containing seed via an explicit stack.
// visited is shared across calls; nodes are marked when pushed.
func explore(g *core.Graph, seed string, visited map[string]bool) ([]string, error) {
	stack := []string{seed}
	visited[seed] = true
	var comp []string

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp = append(comp, u)

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("components: neighbors of %q: %w", u, err)
		}
		for _, v := range nbrs {
			if !visited[v] {
				visited[v] = true
				stack = append(stack, v)
			}
		}
	}

	return comp, nil
}
