package section_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/subway/domain"
	"github.com/katalvlaran/subway/section"
)

func edge(up, down int64, d int) domain.SectionEdge {
	return domain.SectionEdge{UpStationID: up, DownStationID: down, Distance: d}
}

type SectionsSuite struct {
	suite.Suite
	s *section.Sections
}

// SetupTest seeds the line 1 ─10─ 2 ─10─ 3.
func (s *SectionsSuite) SetupTest() {
	var err error
	s.s, err = section.New(edge(2, 3, 10), edge(1, 2, 10))
	s.Require().NoError(err)
}

func (s *SectionsSuite) TestNewOrdersChain() {
	s.Equal([]int64{1, 2, 3}, s.s.Stations())
	s.Equal(20, s.s.TotalDistance())
	up, _ := s.s.UpTerminus()
	down, _ := s.s.DownTerminus()
	s.Equal(int64(1), up)
	s.Equal(int64(3), down)
}

func (s *SectionsSuite) TestAddFirstSectionToEmptyLine() {
	var empty section.Sections
	s.Require().NoError(empty.Add(edge(7, 8, 3)))
	s.Equal([]int64{7, 8}, empty.Stations())
}

func (s *SectionsSuite) TestAddExtendsDownTerminus() {
	s.Require().NoError(s.s.Add(edge(3, 4, 5)))
	s.Equal([]int64{1, 2, 3, 4}, s.s.Stations())
}

func (s *SectionsSuite) TestAddExtendsUpTerminus() {
	s.Require().NoError(s.s.Add(edge(9, 1, 5)))
	s.Equal([]int64{9, 1, 2, 3}, s.s.Stations())
}

func (s *SectionsSuite) TestAddSplitsFromUpStation() {
	s.Require().NoError(s.s.Add(edge(1, 5, 4)))
	s.Equal([]int64{1, 5, 2, 3}, s.s.Stations())
	edges := s.s.Edges()
	s.Equal(edge(1, 5, 4), edges[0])
	s.Equal(edge(5, 2, 6), edges[1])
	s.Equal(20, s.s.TotalDistance())
}

func (s *SectionsSuite) TestAddSplitsFromDownStation() {
	s.Require().NoError(s.s.Add(edge(5, 3, 3)))
	s.Equal([]int64{1, 2, 5, 3}, s.s.Stations())
	edges := s.s.Edges()
	s.Equal(edge(2, 5, 7), edges[1])
	s.Equal(edge(5, 3, 3), edges[2])
}

func (s *SectionsSuite) TestAddSplitAtUpTerminusSplitsFirstSection() {
	// 1 is the up-terminus; 1→5 subdivides 1→2 instead of branching.
	s.Require().NoError(s.s.Add(edge(1, 5, 9)))
	s.Equal([]int64{1, 5, 2, 3}, s.s.Stations())
}

func (s *SectionsSuite) TestAddSplitTooLong() {
	for _, d := range []int{10, 11} {
		err := s.s.Add(edge(1, 5, d))
		s.ErrorIs(err, section.ErrSectionNotAddable)
		s.ErrorIs(err, section.ErrSectionSplitInvalid)
	}
	s.Equal([]int64{1, 2, 3}, s.s.Stations(), "failed split must leave the line untouched")
}

func (s *SectionsSuite) TestAddBothStationsKnown() {
	s.ErrorIs(s.s.Add(edge(1, 3, 2)), section.ErrSectionNotAddable)
	s.ErrorIs(s.s.Add(edge(3, 1, 2)), section.ErrSectionNotAddable)
}

func (s *SectionsSuite) TestAddNeitherStationKnown() {
	s.ErrorIs(s.s.Add(edge(8, 9, 2)), section.ErrSectionNotAddable)
}

func (s *SectionsSuite) TestAddRejectsBadEdge() {
	s.ErrorIs(s.s.Add(edge(3, 3, 2)), section.ErrSectionNotAddable)
	s.ErrorIs(s.s.Add(edge(3, 4, 0)), section.ErrSectionNotAddable)
}

func (s *SectionsSuite) TestRemoveUpTerminus() {
	s.Require().NoError(s.s.Remove(1))
	s.Equal([]int64{2, 3}, s.s.Stations())
}

func (s *SectionsSuite) TestRemoveDownTerminus() {
	s.Require().NoError(s.s.Remove(3))
	s.Equal([]int64{1, 2}, s.s.Stations())
}

func (s *SectionsSuite) TestRemoveInteriorMerges() {
	s.Require().NoError(s.s.Remove(2))
	s.Equal([]domain.SectionEdge{edge(1, 3, 20)}, s.s.Edges())
}

func (s *SectionsSuite) TestRemoveLastSection() {
	s.Require().NoError(s.s.Remove(3))
	err := s.s.Remove(1)
	s.ErrorIs(err, section.ErrSectionNotDeletable)
	s.Equal(1, s.s.Len())
}

func (s *SectionsSuite) TestRemoveUnknownStation() {
	err := s.s.Remove(42)
	s.ErrorIs(err, section.ErrSectionNotDeletable)
	s.ErrorIs(err, section.ErrStationNotOnLine)
}

func (s *SectionsSuite) TestCloneIsIndependent() {
	c := s.s.Clone()
	s.Require().NoError(c.Add(edge(3, 4, 1)))
	s.Equal(2, s.s.Len())
	s.Equal(3, c.Len())
}

func TestSectionsSuite(t *testing.T) {
	suite.Run(t, new(SectionsSuite))
}

func TestNew_InvalidChains(t *testing.T) {
	cases := map[string][]domain.SectionEdge{
		"branch down":  {edge(1, 2, 1), edge(1, 3, 1)},
		"branch up":    {edge(1, 3, 1), edge(2, 3, 1)},
		"cycle":        {edge(1, 2, 1), edge(2, 3, 1), edge(3, 1, 1)},
		"disconnected": {edge(1, 2, 1), edge(3, 4, 1)},
		"self loop":    {edge(1, 1, 1)},
		"zero length":  {edge(1, 2, 0)},
		"tail cycle":   {edge(1, 2, 1), edge(2, 3, 1), edge(3, 4, 1), edge(4, 2, 1)},
	}
	for name, edges := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := section.New(edges...)
			require.ErrorIs(t, err, section.ErrInvalidChain)
		})
	}
}

func TestNew_Empty(t *testing.T) {
	s, err := section.New()
	require.NoError(t, err)
	require.Zero(t, s.Len())
	require.Nil(t, s.Stations())
	_, ok := s.UpTerminus()
	require.False(t, ok)
	require.ErrorIs(t, s.Remove(1), section.ErrSectionNotDeletable)
}

// TestRandomEditsKeepSimplePath applies random add/remove requests and checks
// that every successful edit leaves one simple path with a conserved length
// for splits and merges.
func TestRandomEditsKeepSimplePath(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s, err := section.New(edge(1, 2, 50))
	require.NoError(t, err)
	nextID := int64(3)

	for i := 0; i < 500; i++ {
		stations := s.Stations()
		before := s.TotalDistance()
		if rng.Intn(3) == 0 {
			target := stations[rng.Intn(len(stations))]
			interior := target != stations[0] && target != stations[len(stations)-1]
			if err := s.Remove(target); err == nil && interior {
				require.Equal(t, before, s.TotalDistance(), "merge must conserve distance")
			}
		} else {
			known := stations[rng.Intn(len(stations))]
			e := edge(known, nextID, 1+rng.Intn(20))
			if rng.Intn(2) == 0 {
				e = edge(nextID, known, 1+rng.Intn(20))
			}
			if err := s.Add(e); err == nil {
				nextID++
			}
		}

		// Rebuilding from the unordered edge set proves the chain is one simple path.
		rebuilt, err := section.New(s.Edges()...)
		require.NoError(t, err, "step %d", i)
		require.Equal(t, s.Stations(), rebuilt.Stations())
		require.GreaterOrEqual(t, s.Len(), 1)
	}
}
