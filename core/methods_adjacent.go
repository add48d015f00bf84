// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: neighborhood queries used by the search.
// Determinism: incident edges are returned in edge insertion order.

package core

import "fmt"

// Neighbors returns the edges that can be traversed out of vertex index v.
//
// Neighborhood policy:
//   - Directed edges: only edges with e.From == v.
//   - Undirected edges: every incident edge; self-loops appear once.
//   - Parallel edges appear once each, so every line serving a station pair
//     is visible to the caller.
//
// Complexity: O(d).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= len(g.vertices) {
		return nil, fmt.Errorf("%w: index %d", ErrVertexNotFound, v)
	}
	out := make([]Edge, 0, len(g.adjacency[v]))
	for _, eid := range g.adjacency[v] {
		e := g.edges[eid]
		if e.Directed && e.From != v {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}

// NeighborIDs returns the distinct station IDs reachable in one hop from the
// station id, in first-seen order.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id int64) ([]int64, error) {
	v, err := g.VertexIndex(id)
	if err != nil {
		return nil, err
	}
	edges, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	seen := make(map[int]struct{}, len(edges))
	ids := make([]int64, 0, len(edges))
	for _, e := range edges {
		w := e.Other(v)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		ids = append(ids, g.vertices[w].ID)
	}

	return ids, nil
}
