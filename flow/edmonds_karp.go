package flow

import "math"

// EdmondsKarp computes the maximum flow from source→sink over the
// residual capacities of n, using BFS to find shortest (fewest-edge)
// augmenting paths. The network is mutated in place: on return its
// capacities describe the residual graph after the full flow.
//
// Returns 0 with nil error when source and sink are registered but
// disconnected (zero augmentations). Missing endpoints are rejected
// with ErrSourceNotFound / ErrSinkNotFound.
//
// Complexity: O(V·E²)
// Memory:     O(V + E)
func EdmondsKarp(n *Network, source, sink string, opts ...Option) (int64, error) {
	if n == nil {
		return 0, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate presence of source/sink
	if !n.HasNode(source) {
		return 0, ErrSourceNotFound
	}
	if !n.HasNode(sink) {
		return 0, ErrSinkNotFound
	}
	if source == sink {
		return 0, ErrSourceIsSink
	}

	var maxFlow int64
	for {
		// 1) BFS for the shortest augmenting path
		parent, found, err := n.augmentingPath(o, source, sink)
		if err != nil {
			return maxFlow, err
		}
		// 2) No path → maximum reached
		if !found {
			return maxFlow, nil
		}

		// 3) Bottleneck: minimum residual capacity along the path,
		//    seeded with MaxInt64 and overwritten by the first edge.
		bottleneck := int64(math.MaxInt64)
		for v := sink; v != source; {
			u := parent[v]
			if c := n.capacity[u][v]; c < bottleneck {
				bottleneck = c
			}
			v = u
		}

		// 4) Augment: push bottleneck forward, refund it on reverse edges
		for v := sink; v != source; {
			u := parent[v]
			n.capacity[u][v] -= bottleneck
			n.capacity[v][u] += bottleneck
			v = u
		}

		// 5) Accumulate
		maxFlow += bottleneck
		if o.OnAugment != nil {
			o.OnAugment(pathOf(parent, source, sink), bottleneck)
		}
	}
}

// augmentingPath runs a BFS from source over edges with positive
// residual capacity, recording parent pointers and stopping early once
// the sink is discovered. found reports whether the sink was reached.
func (n *Network) augmentingPath(o Options, source, sink string) (parent map[string]string, found bool, err error) {
	parent = make(map[string]string, len(n.capacity))
	discovered := map[string]bool{source: true}
	queue := []string{source}

	for len(queue) > 0 && !found {
		// cancellation check (once per dequeue)
		select {
		case <-o.Ctx.Done():
			return nil, false, o.Ctx.Err()
		default:
		}

		u := queue[0]
		queue = queue[1:]
		for _, v := range n.adjacency[u] {
			if discovered[v] || n.capacity[u][v] <= 0 {
				continue
			}
			discovered[v] = true
			parent[v] = u
			if v == sink {
				found = true

				break
			}
			queue = append(queue, v)
		}
	}

	return parent, found, nil
}

// pathOf reconstructs the source→sink path from parent pointers.
func pathOf(parent map[string]string, source, sink string) []string {
	path := []string{sink}
	for cur := sink; cur != source; {
		cur = parent[cur]
		path = append(path, cur)
	}
	// reverse into source→sink order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
