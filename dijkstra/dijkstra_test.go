// Package dijkstra_test validates the search under validation failures,
// undirected and directed graphs, parallel edges, caps and tie-breaks.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	weighted := core.NewGraph(core.WithWeighted())
	_, _ = weighted.AddEdge(1, 2, 1)

	_, err := dijkstra.Dijkstra(weighted)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource, "empty source has priority over nil graph")

	_, err = dijkstra.Dijkstra(nil, dijkstra.Source(1))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source(1))
	require.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)

	_, err = dijkstra.Dijkstra(weighted, dijkstra.Source(9))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra(weighted, dijkstra.Source(1), dijkstra.Target(9))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	negative := core.NewGraph(core.WithWeighted())
	_, _ = negative.AddEdge(1, 2, -5)
	_, err = dijkstra.Dijkstra(negative, dijkstra.Source(1))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.Panics(t, func() { dijkstra.WithMaxVisits(0) })
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// 1-2 (1), 2-3 (2), 1-3 (5)
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 2)
	_, _ = g.AddEdge(1, 3, 5)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)

	d, ok := res.Distance(3)
	require.True(t, ok)
	assert.Equal(t, int64(3), d)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, 0, path[0].Index)
	assert.Equal(t, 1, path[1].Index)

	none, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Nil(t, none, "path to the source is empty")
}

func TestDijkstra_UndirectedEdgesRideBothWays(t *testing.T) {
	// Sections are stored up→down; the search must ride them down→up too.
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(1, 2, 5)
	_, _ = g.AddEdge(2, 3, 4)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(3))
	require.NoError(t, err)
	d, ok := res.Distance(1)
	require.True(t, ok)
	assert.Equal(t, int64(9), d)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(1, 2, 5)
	_, _ = g.AddEdge(8, 9, 4)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)
	_, ok := res.Distance(9)
	assert.False(t, ok)
	path, err := res.PathTo(9)
	require.NoError(t, err)
	assert.Nil(t, path)

	_, err = res.PathTo(42)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_Directed(t *testing.T) {
	// 1→2(2), 1→3(1), 3→2(1), 2→4(3), 3→4(5)
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(1, 3, 1)
	_, _ = g.AddEdge(3, 2, 1)
	_, _ = g.AddEdge(2, 4, 3)
	_, _ = g.AddEdge(3, 4, 5)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)
	for id, want := range map[int64]int64{1: 0, 2: 2, 3: 1, 4: 5} {
		got, ok := res.Distance(id)
		require.True(t, ok)
		assert.Equal(t, want, got, "station %d", id)
	}

	back, err := dijkstra.Dijkstra(g, dijkstra.Source(4))
	require.NoError(t, err)
	_, ok := back.Distance(1)
	assert.False(t, ok, "directed edges are one-way")
}

// ------------------------------------------------------------------------
// 3. Parallel edges and tie-break
// ------------------------------------------------------------------------

func TestDijkstra_ParallelEdgesPickCheapestLine(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, _ = g.AddEdge(1, 2, 7, core.WithLine(10))
	_, _ = g.AddEdge(1, 2, 3, core.WithLine(20))
	_, _ = g.AddEdge(2, 1, 5, core.WithLine(30))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.Target(2))
	require.NoError(t, err)
	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, int64(20), path[0].LineID)
}

func TestDijkstra_TieBreakIsInsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, _ = g.AddEdge(1, 2, 4, core.WithLine(10))
	_, _ = g.AddEdge(1, 2, 4, core.WithLine(20))

	for i := 0; i < 10; i++ {
		res, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
		require.NoError(t, err)
		path, err := res.PathTo(2)
		require.NoError(t, err)
		require.Equal(t, int64(10), path[0].LineID)
	}
}

func TestDijkstra_TieBreakLowerSectionIntoVertex(t *testing.T) {
	// 2 settles before 3, yet 4 is entered through the lower section 2.
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, _ = g.AddEdge(1, 2, 5, core.WithSection(3))
	_, _ = g.AddEdge(1, 3, 5, core.WithSection(1))
	_, _ = g.AddEdge(2, 4, 5, core.WithSection(4))
	_, _ = g.AddEdge(3, 4, 5, core.WithSection(2))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)
	path, err := res.PathTo(4)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, int64(1), path[0].SectionID)
	assert.Equal(t, int64(2), path[1].SectionID)
}

// ------------------------------------------------------------------------
// 4. Caps
// ------------------------------------------------------------------------

func chain(n int64) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	for i := int64(1); i < n; i++ {
		_, _ = g.AddEdge(i, i+1, 1)
	}

	return g
}

func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra(chain(10), dijkstra.Source(1), dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	d, ok := res.Distance(4)
	require.True(t, ok)
	assert.Equal(t, int64(3), d)
	_, ok = res.Distance(5)
	assert.False(t, ok)
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 100)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(1), dijkstra.WithInfEdgeThreshold(100))
	require.NoError(t, err)
	_, ok := res.Distance(3)
	assert.False(t, ok)
}

func TestDijkstra_TargetStopsEarly(t *testing.T) {
	res, err := dijkstra.Dijkstra(chain(100), dijkstra.Source(1), dijkstra.Target(3))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Visited)
	_, ok := res.Distance(50)
	assert.False(t, ok)
}

func TestDijkstra_MaxVisits(t *testing.T) {
	_, err := dijkstra.Dijkstra(chain(100), dijkstra.Source(1), dijkstra.WithMaxVisits(10))
	require.ErrorIs(t, err, dijkstra.ErrSearchBudgetExceeded)

	res, err := dijkstra.Dijkstra(chain(5), dijkstra.Source(1), dijkstra.WithMaxVisits(10))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Visited)
}
