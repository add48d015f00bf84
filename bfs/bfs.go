// Package bfs provides breadth-first search over the network graph,
// returning stop counts, parent links, and visit order.
//
// BFS ignores section distances: depth is the number of sections ridden.
// Neighbors are explored in section insertion order, so results are
// deterministic for a deterministically built graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/subway/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph, startID int64, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := g.VertexIndex(startID)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int64, 0, n),
			Depth:  make(map[int64]int, n),
			Parent: make(map[int64]int64, n),
		},
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// Components partitions the stations of g into groups reachable from one
// another; on the undirected network graph these are its connected
// components. Groups are ordered by their lowest vertex index and list
// station IDs in BFS order.
func Components(g *core.Graph) ([][]int64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[int64]bool, g.VertexCount())
	var groups [][]int64
	for _, v := range g.Vertices() {
		if seen[v.ID] {
			continue
		}
		res, err := BFS(g, v.ID)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		groups = append(groups, res.Order)
	}

	return groups, nil
}

// enqueue marks v visited at depth d, records its parent, and queues it.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	id := w.vertexID(v)
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = w.vertexID(parent)
	}
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

func (w *walker) vertexID(v int) int64 {
	vx, _ := w.graph.Vertex(v)
	return vx.ID
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the station in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	id := w.vertexID(item.v)
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: vertex %d: %v", ErrNeighbors, item.v, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		if !w.opts.FilterEdge(e) {
			continue
		}
		if nbr := e.Other(item.v); !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}

	return nil
}
