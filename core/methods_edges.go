// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge lifecycle and lookups.
// Determinism: edge indices follow insertion order.

package core

import "fmt"

// AddEdge creates an edge from→to with the given weight and returns its
// index. Missing endpoints are added with an empty label; callers that must
// reject unknown stations check HasVertex first.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed, ErrMixedEdgesNotAllowed.
// Complexity: O(1) with multi-edges, O(d) otherwise.
func (g *Graph) AddEdge(from, to int64, weight int64, opts ...EdgeOption) (int, error) {
	// 1) Input validation
	if from == 0 || to == 0 {
		return -1, ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return -1, ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return -1, ErrLoopNotAllowed
	}

	// 2) Resolve per-edge options
	spec := edgeSpec{directed: g.directed}
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.dirOverride && !g.allowMixed && spec.directed != g.directed {
		return -1, ErrMixedEdgesNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Endpoints (idempotent)
	u := g.addVertexLocked(from, "")
	v := g.addVertexLocked(to, "")

	// 4) Parallel-edge policy
	if !g.allowMulti && g.hasEdgeLocked(u, v) {
		return -1, fmt.Errorf("%w: %d→%d", ErrMultiEdgeNotAllowed, from, to)
	}

	// 5) Append to the arena and both incidence lists
	eid := len(g.edges)
	g.edges = append(g.edges, Edge{
		Index:     eid,
		From:      u,
		To:        v,
		Weight:    weight,
		Directed:  spec.directed,
		LineID:    spec.lineID,
		SectionID: spec.sectionID,
	})
	g.adjacency[u] = append(g.adjacency[u], eid)
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], eid)
	}

	return eid, nil
}

// HasEdge reports whether at least one edge joins from and to, honoring
// direction for directed edges.
// Complexity: O(d).
func (g *Graph) HasEdge(from, to int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	u, ok := g.index[from]
	if !ok {
		return false
	}
	v, ok := g.index[to]
	if !ok {
		return false
	}

	return g.hasEdgeLocked(u, v)
}

// hasEdgeLocked requires g.mu held.
func (g *Graph) hasEdgeLocked(u, v int) bool {
	for _, eid := range g.adjacency[u] {
		e := g.edges[eid]
		if e.From == u && e.To == v {
			return true
		}
		if !e.Directed && e.From == v && e.To == u {
			return true
		}
	}

	return false
}

// Edge returns the edge stored at index.
// Complexity: O(1).
func (g *Graph) Edge(index int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if index < 0 || index >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: index %d", ErrEdgeNotFound, index)
	}

	return g.edges[index], nil
}

// Edges returns a copy of all edges in index order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
