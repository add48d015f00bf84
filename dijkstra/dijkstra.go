package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/subway/core"
)

// Result holds the outcome of one search. Slices are indexed by vertex index.
type Result struct {
	g *core.Graph

	// Source is the vertex index the search started from.
	Source int

	// Dist[v] is the shortest distance to v, or Unreachable.
	Dist []int64

	// PrevEdge[v] is the index of the edge that reached v on a shortest
	// path, or -1 for the source and unreached vertices.
	PrevEdge []int

	// Visited counts settled vertices.
	Visited int
}

// Distance returns the shortest distance to the station id. ok is false when
// the station is unknown or was not reached.
func (r *Result) Distance(id int64) (d int64, ok bool) {
	v, err := r.g.VertexIndex(id)
	if err != nil || r.Dist[v] == Unreachable {
		return 0, false
	}

	return r.Dist[v], true
}

// PathTo returns the edges of the shortest path from the source to station
// id, in travel order. It returns nil when id is the source or unreachable.
func (r *Result) PathTo(id int64) ([]core.Edge, error) {
	v, err := r.g.VertexIndex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVertexNotFound, err)
	}
	if r.Dist[v] == Unreachable || v == r.Source {
		return nil, nil
	}

	var rev []core.Edge
	for cur := v; cur != r.Source; {
		eid := r.PrevEdge[cur]
		e, err := r.g.Edge(eid)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: broken predecessor chain at vertex %d: %w", cur, err)
		}
		rev = append(rev, e)
		cur = e.Other(cur)
		if len(rev) > len(r.Dist) {
			return nil, fmt.Errorf("dijkstra: predecessor cycle at vertex %d", cur)
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// Dijkstra computes shortest distances from Options.Source over the weighted
// graph g.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source, and Target when set (ErrVertexNotFound).
//  5. No edge may have a negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == 0 {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	src, err := g.VertexIndex(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	target := -1
	if cfg.Target != 0 {
		if target, err = g.VertexIndex(cfg.Target); err != nil {
			return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
		}
	}

	// 3) Pre-scan for negative weights
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d weight=%d", ErrNegativeWeight, e.Index, e.Weight)
		}
	}

	// 4) Run
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		target:  target,
		res: &Result{
			g:        g,
			Source:   src,
			Dist:     make([]int64, n),
			PrevEdge: make([]int, n),
		},
		visited: make([]bool, n),
		prevSec: make([]int64, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	target  int // vertex index or -1
	res     *Result
	visited []bool
	prevSec []int64 // SectionID of PrevEdge, for tie-breaks
	pq      nodePQ
}

// init sets every distance to Unreachable and seeds the heap with the source.
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = Unreachable
		r.res.PrevEdge[v] = -1
	}
	r.res.Dist[r.res.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{index: r.res.Source, dist: 0})
}

// process settles vertices in distance order until the heap is empty, the
// target is settled, MaxDistance is passed or the visit budget runs out.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.index
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		if r.options.MaxVisits > 0 && r.res.Visited >= r.options.MaxVisits {
			return fmt.Errorf("%w: %d vertices settled", ErrSearchBudgetExceeded, r.res.Visited)
		}
		r.visited[u] = true
		r.res.Visited++
		if u == r.target {
			break
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor reachable from u.
func (r *runner) relax(u int) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of vertex %d: %w", u, err)
	}
	for _, e := range edges {
		w := e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		v := e.Other(u)
		if r.visited[v] {
			continue
		}
		newDist := r.res.Dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist == r.res.Dist[v] {
			// Equal distance: the lower section ID into v wins; the heap
			// entry for v is already at newDist.
			if e.SectionID < r.prevSec[v] {
				r.res.PrevEdge[v] = e.Index
				r.prevSec[v] = e.SectionID
			}
			continue
		}
		if newDist > r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = newDist
		r.res.PrevEdge[v] = e.Index
		r.prevSec[v] = e.SectionID
		heap.Push(&r.pq, &nodeItem{index: v, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a vertex index and a tentative distance.
type nodeItem struct {
	index int
	dist  int64
}

// nodePQ is a min-heap ordered by (dist, index).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].index < pq[j].index
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
