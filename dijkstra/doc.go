// Package dijkstra runs Dijkstra's single-source shortest-path search over a
// core.Graph with non-negative integer weights.
//
// Overview:
//
//   - Lazy decrease-key min-heap: improved distances are pushed again and stale
//     heap entries are skipped when popped.
//   - Predecessors are recorded per vertex as the *edge* that reached it, not
//     the previous vertex. With parallel edges from different lines between the
//     same stations, the edge is what tells the caller which line was ridden.
//   - Optional Target stops the search as soon as the target is settled.
//
// Options:
//
//   - Source(id):               required, station ID to start from.
//   - Target(id):               optional early stop; must exist when set.
//   - WithMaxDistance(d):       vertices farther than d are not explored.
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are impassable.
//   - WithMaxVisits(n):         abort with ErrSearchBudgetExceeded after n settled
//     vertices; a cost cap for very large networks.
//
// Determinism and tie-break:
//
//   - The heap orders by (distance, vertex index).
//   - Relaxation replaces a predecessor on a strictly shorter distance, or on
//     an equal distance when the new edge carries a lower SectionID.
//   - Incident edges are scanned in insertion order; among equal SectionIDs
//     (e.g. edges built without one) the first scanned edge is kept.
//
// Given the same graph, the same route is returned on every run. When two
// routes tie on distance, every vertex on the result is entered through the
// lowest-SectionID edge among its equal-distance predecessors. With positive
// weights this holds for parallel sections and for distinct intermediate
// stations alike.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (dist/prev arrays plus lazy heap entries)
//
// Errors (sentinel):
//
//	ErrEmptySource          - Source not given.
//	ErrNilGraph             - nil graph.
//	ErrUnweightedGraph      - graph built without core.WithWeighted().
//	ErrVertexNotFound       - Source or Target not in the graph.
//	ErrNegativeWeight       - a negative edge weight was found by the pre-scan.
//	ErrBadMaxDistance       - WithMaxDistance(<0)  (panics in the option constructor).
//	ErrBadInfThreshold      - WithInfEdgeThreshold(≤0)  (panics in the option constructor).
//	ErrBadMaxVisits         - WithMaxVisits(≤0)  (panics in the option constructor).
//	ErrSearchBudgetExceeded - WithMaxVisits cap reached before the search finished.
//
// Thread safety: Dijkstra only reads the graph; concurrent searches over one
// built graph are safe.
package dijkstra
