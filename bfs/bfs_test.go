package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subway/bfs"
	"github.com/katalvlaran/subway/builder"
	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/domain"
)

func sec(id, line, up, down int64, d int) domain.Section {
	return domain.Section{ID: id, LineID: line, SectionEdge: domain.SectionEdge{
		UpStationID: up, DownStationID: down, Distance: d,
	}}
}

// line 1: 1-2-3-4 (long sections); line 2: 1-5-4 (short); 6-7 on line 3.
func network(t *testing.T) *core.Graph {
	t.Helper()
	var stations []domain.Station
	for id := int64(1); id <= 7; id++ {
		stations = append(stations, domain.Station{ID: id, Name: "s"})
	}
	g, err := builder.NetworkGraph(stations, []domain.Section{
		sec(1, 1, 1, 2, 9),
		sec(2, 1, 2, 3, 9),
		sec(3, 1, 3, 4, 9),
		sec(4, 2, 1, 5, 1),
		sec(5, 2, 5, 4, 1),
		sec(6, 3, 6, 7, 2),
	})
	require.NoError(t, err)

	return g
}

func TestBFS_FewestStops(t *testing.T) {
	res, err := bfs.BFS(network(t), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 5, 3, 4}, res.Order)
	assert.Equal(t, 2, res.Depth[4])

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 5, 4}, path)

	_, err = res.PathTo(6)
	require.Error(t, err)
}

func TestBFS_WithLines(t *testing.T) {
	res, err := bfs.BFS(network(t), 1, bfs.WithLines(1))
	require.NoError(t, err)
	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, path)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(network(t), 1, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 5}, res.Order)

	_, err = bfs.BFS(network(t), 1, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(network(t), 1, bfs.WithOnVisit(func(id int64, _ int) error {
		if id == 5 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(network(t), 1, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.BFS(network(t), 99)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestComponents(t *testing.T) {
	groups, err := bfs.Components(network(t))
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5}, groups[0])
	assert.Equal(t, []int64{6, 7}, groups[1])

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}
