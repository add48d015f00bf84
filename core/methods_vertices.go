// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: vertex lifecycle and lookups.
// Determinism: indices are dense and assigned in insertion order.

package core

import "fmt"

// AddVertex inserts a station with the given ID and label and returns its
// vertex index. Adding an existing ID is a no-op that returns the existing
// index; the stored label is kept.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int64, label string) (int, error) {
	if id == 0 {
		return -1, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(id, label), nil
}

// addVertexLocked requires g.mu held for writing.
func (g *Graph) addVertexLocked(id int64, label string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.vertices)
	g.vertices = append(g.vertices, Vertex{Index: i, ID: id, Label: label})
	g.adjacency = append(g.adjacency, nil)
	g.index[id] = i

	return i
}

// HasVertex reports whether a station with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	if id == 0 {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// VertexIndex resolves a station ID to its vertex index.
// Complexity: O(1).
func (g *Graph) VertexIndex(id int64) (int, error) {
	if id == 0 {
		return -1, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: station %d", ErrVertexNotFound, id)
	}

	return i, nil
}

// Vertex returns the vertex stored at index.
// Complexity: O(1).
func (g *Graph) Vertex(index int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if index < 0 || index >= len(g.vertices) {
		return Vertex{}, fmt.Errorf("%w: index %d", ErrVertexNotFound, index)
	}

	return g.vertices[index], nil
}

// Vertices returns a copy of all vertices in index order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to the station, counting a
// self-loop once and every parallel edge separately.
// Complexity: O(1).
func (g *Graph) Degree(id int64) (int, error) {
	i, err := g.VertexIndex(id)
	if err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[i]), nil
}
