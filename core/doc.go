// Package core provides the in-memory network multigraph the route engine
// searches: vertices are stations, edges are track sections.
//
// Storage is arena style. Vertices and edges live in append-only slices and
// are addressed by dense int indices; a map resolves external station IDs
// to vertex indices once, and adjacency is a slice of incident edge indices
// per vertex. There are no pointer cycles, so building a graph is a handful
// of slice appends and the search code works on plain ints.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in mixed graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges between the same stations (WithMultiEdges); each keeps its
//     own line association, which the fare calculator needs
//   - Self-loops (WithLoops)
//
// Every edge carries the IDs of the line and section it was built from
// (WithLine, WithSection), so a path over edges maps straight back to
// domain sections.
//
// Core Methods:
//
//	AddVertex(id int64, label string) (index int, err error) // O(1), idempotent
//	HasVertex(id int64) bool                                 // O(1)
//	VertexIndex(id int64) (int, error)                       // O(1)
//	Vertex(index int) (Vertex, error)                        // O(1)
//	AddEdge(from, to int64, weight int64, opts ...EdgeOption) (index int, err error) // O(1)†
//	Edge(index int) (Edge, error)                            // O(1)
//	Neighbors(index int) ([]Edge, error)                     // O(d), insertion order
//	Vertices() []Vertex / Edges() []Edge                     // O(V) / O(E), index order
//	Degree(id int64) (int, error), VertexCount(), EdgeCount(), Stats()
//
// † O(d) when multi-edges are disabled (the parallel-edge check scans the
// smaller endpoint's incidence list).
//
// Determinism: indices are assigned in insertion order and every listing is
// in index order, so the same insertion sequence always yields the same graph.
//
// Concurrency: a single sync.RWMutex guards the arena. A fully built graph
// is safe for any number of concurrent readers.
//
// Errors:
//
//	ErrEmptyVertexID        - station ID 0 is reserved as "no station".
//	ErrVertexNotFound       - unknown station ID or vertex index.
//	ErrEdgeNotFound         - edge index out of range.
//	ErrBadWeight            - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled.
//	ErrMixedEdgesNotAllowed - per-edge direction override without mixed mode.
package core
