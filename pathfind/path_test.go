package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subway/builder"
	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/dijkstra"
	"github.com/katalvlaran/subway/domain"
	"github.com/katalvlaran/subway/pathfind"
)

func sec(id, line, up, down int64, d int) domain.Section {
	return domain.Section{ID: id, LineID: line, SectionEdge: domain.SectionEdge{
		UpStationID: up, DownStationID: down, Distance: d,
	}}
}

func stations(ids ...int64) []domain.Station {
	out := make([]domain.Station, len(ids))
	for i, id := range ids {
		out[i] = domain.Station{ID: id, Name: string(rune('A' + id - 1))}
	}

	return out
}

// network: 1-2 (5, line 1), 2-3 (4, line 1), 2-4 (3, line 2); 5 isolated.
func network(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.NetworkGraph(stations(1, 2, 3, 4, 5), []domain.Section{
		sec(1, 1, 1, 2, 5),
		sec(2, 1, 2, 3, 4),
		sec(3, 2, 2, 4, 3),
	})
	require.NoError(t, err)

	return g
}

func TestFind_Forward(t *testing.T) {
	p, err := pathfind.Find(network(t), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, p.StationIDs())
	assert.Equal(t, 9, p.Distance)
	assert.Equal(t, []int64{1}, p.LineIDs())
	assert.Equal(t, "A", p.Stations[0].Name)
}

func TestFind_AgainstDirectionKeepsOrientation(t *testing.T) {
	p, err := pathfind.Find(network(t), 4, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 2, 1}, p.StationIDs())
	assert.Equal(t, 8, p.Distance)
	assert.Equal(t, []int64{2, 1}, p.LineIDs())

	require.Len(t, p.Sections, 2)
	assert.Equal(t, int64(2), p.Sections[0].UpStationID)
	assert.Equal(t, int64(4), p.Sections[0].DownStationID)
	assert.Equal(t, int64(3), p.Sections[0].ID)
}

func TestFind_DistanceIsSectionSum(t *testing.T) {
	g := network(t)
	for _, pair := range [][2]int64{{1, 2}, {1, 3}, {1, 4}, {3, 4}, {4, 3}} {
		p, err := pathfind.Find(g, pair[0], pair[1])
		require.NoError(t, err)
		sum := 0
		for _, s := range p.Sections {
			sum += s.Distance
		}
		assert.Equal(t, sum, p.Distance, "pair %v", pair)
		assert.Len(t, p.Stations, len(p.Sections)+1)
	}
}

func TestFind_EmptyPaths(t *testing.T) {
	g := network(t)

	p, err := pathfind.Find(g, 2, 2)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.Stations)

	p, err = pathfind.Find(g, 1, 5)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
	assert.Zero(t, p.Distance)
	assert.Empty(t, p.LineIDs())
}

func TestFind_Errors(t *testing.T) {
	_, err := pathfind.Find(nil, 1, 2)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = pathfind.Find(network(t), 1, 42)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = pathfind.Find(network(t), 42, 42)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestFind_ParallelPrefersShorterLine(t *testing.T) {
	g, err := builder.NetworkGraph(stations(1, 2), []domain.Section{
		sec(1, 1, 1, 2, 7),
		sec(2, 2, 2, 1, 4),
	})
	require.NoError(t, err)

	p, err := pathfind.Find(g, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Distance)
	assert.Equal(t, []int64{2}, p.LineIDs())
}

func TestFind_TieBreakLowestSectionWins(t *testing.T) {
	// two equal-length parallel sections: the lower section id wins
	g, err := builder.NetworkGraph(stations(1, 2), []domain.Section{
		sec(8, 2, 1, 2, 5),
		sec(3, 1, 1, 2, 5),
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		p, err := pathfind.Find(g, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), p.Sections[0].ID)
	}
}

func TestFind_TieBreakDiamond(t *testing.T) {
	// 1-3-4 on line 1 (sections 1, 2) and 1-2-4 on line 2 (sections 3, 4)
	// are both 10 long; station 2 settles before 3 but loses the tie at 4.
	g, err := builder.NetworkGraph(stations(1, 2, 3, 4), []domain.Section{
		sec(1, 1, 1, 3, 5),
		sec(2, 1, 3, 4, 5),
		sec(3, 2, 1, 2, 5),
		sec(4, 2, 2, 4, 5),
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		p, err := pathfind.Find(g, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 3, 4}, p.StationIDs())
		require.Len(t, p.Sections, 2)
		assert.Equal(t, int64(1), p.Sections[0].ID)
		assert.Equal(t, int64(2), p.Sections[1].ID)
		assert.Equal(t, []int64{1}, p.LineIDs())
		assert.Equal(t, 10, p.Distance)
	}
}

func TestFind_SearchBudget(t *testing.T) {
	_, err := pathfind.Find(network(t), 1, 3, dijkstra.WithMaxVisits(1))
	require.ErrorIs(t, err, dijkstra.ErrSearchBudgetExceeded)
}
