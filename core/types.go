// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, options, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates the zero station ID was used as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override without mixed mode.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex is a station in the graph arena.
type Vertex struct {
	// Index is the dense arena position, assigned in insertion order.
	Index int

	// ID is the external station ID.
	ID int64

	// Label is a display name (station name); informational only.
	Label string
}

// Edge is a track section in the graph arena.
//
// From and To are vertex indices, not station IDs. For undirected edges the
// pair keeps its up→down orientation.
type Edge struct {
	Index    int   // dense arena position
	From     int   // vertex index of the up-station
	To       int   // vertex index of the down-station
	Weight   int64 // section distance
	Directed bool  // one-way when true

	LineID    int64 // owning line, 0 when not set
	SectionID int64 // source section, 0 when not set
}

// Other returns the endpoint of e opposite to vertex index v.
func (e Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// WithCapacity pre-sizes the arena. Negative hints panic: they can only be
// a programming error.
func WithCapacity(vertices, edges int) GraphOption {
	if vertices < 0 || edges < 0 {
		panic("core: WithCapacity hints must be non-negative")
	}

	return func(g *Graph) {
		g.vertices = make([]Vertex, 0, vertices)
		g.adjacency = make([][]int, 0, vertices)
		g.index = make(map[int64]int, vertices)
		g.edges = make([]Edge, 0, edges)
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeSpec)

// edgeSpec collects per-edge overrides before the edge is stored.
type edgeSpec struct {
	directed    bool
	dirOverride bool
	lineID      int64
	sectionID   int64
}

// WithEdgeDirected overrides the Graph's default directedness for this edge
// (mixed mode only).
func WithEdgeDirected(directed bool) EdgeOption {
	return func(s *edgeSpec) {
		s.directed = directed
		s.dirOverride = true
	}
}

// WithLine tags the edge with its owning line.
func WithLine(lineID int64) EdgeOption {
	return func(s *edgeSpec) { s.lineID = lineID }
}

// WithSection tags the edge with the section it represents.
func WithSection(sectionID int64) EdgeOption {
	return func(s *edgeSpec) { s.sectionID = sectionID }
}

// Graph is the arena multigraph.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags
	directed   bool // default directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow per-edge direction overrides

	// Arena storage
	vertices  []Vertex      // vertex index → Vertex
	index     map[int64]int // station ID → vertex index
	edges     []Edge        // edge index → Edge
	adjacency [][]int       // vertex index → incident edge indices, insertion order
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[int64]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
