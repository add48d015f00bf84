// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only configuration getters and the Stats snapshot.

package core

// Weighted reports the construction-time "weighted" flag.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Directed reports the default directedness of new edges.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// MixedEdges reports whether per-edge direction overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMixed
}

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	VertexCount       int
	EdgeCount         int
	DirectedEdgeCount int
	ParallelEdgeCount int // edges beyond the first between the same unordered pair
	LineCount         int // distinct non-zero LineID values
}

// Stats computes a GraphStats snapshot under one read lock.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	type pair struct{ a, b int }
	pairs := make(map[pair]int, len(g.edges))
	lines := make(map[int64]struct{})
	st := GraphStats{VertexCount: len(g.vertices), EdgeCount: len(g.edges)}
	for _, e := range g.edges {
		if e.Directed {
			st.DirectedEdgeCount++
		}
		if e.LineID != 0 {
			lines[e.LineID] = struct{}{}
		}
		p := pair{e.From, e.To}
		if p.a > p.b {
			p.a, p.b = p.b, p.a
		}
		pairs[p]++
	}
	for _, n := range pairs {
		st.ParallelEdgeCount += n - 1
	}
	st.LineCount = len(lines)

	return st
}
