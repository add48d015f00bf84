package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/subway/domain"
	"github.com/katalvlaran/subway/section"
	"github.com/katalvlaran/subway/store"
)

type MemorySuite struct {
	suite.Suite
	ctx  context.Context
	m    *store.Memory
	line domain.Line
}

func (s *MemorySuite) SetupTest() {
	s.ctx = context.Background()
	s.m = store.NewMemory()
	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := s.m.CreateStation(s.ctx, name)
		s.Require().NoError(err)
	}
	var err error
	s.line, err = s.m.CreateLine(s.ctx, domain.Line{Name: "one", Color: "red", ExtraFare: 100},
		domain.SectionEdge{UpStationID: 1, DownStationID: 2, Distance: 10})
	s.Require().NoError(err)
}

func (s *MemorySuite) TestCreateAssignsIDs() {
	s.Equal(int64(1), s.line.ID)
	st, err := s.m.Stations().FindByID(s.ctx, 4)
	s.Require().NoError(err)
	s.Equal("d", st.Name)

	all, err := s.m.Stations().FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 4)
	s.Equal(int64(1), all[0].ID)
}

func (s *MemorySuite) TestCreateValidation() {
	_, err := s.m.CreateStation(s.ctx, "  ")
	s.ErrorIs(err, domain.ErrBlankArgument)

	_, err = s.m.CreateLine(s.ctx, domain.Line{Name: "x", Color: ""},
		domain.SectionEdge{UpStationID: 1, DownStationID: 2, Distance: 1})
	s.ErrorIs(err, domain.ErrBlankArgument)

	_, err = s.m.CreateLine(s.ctx, domain.Line{Name: "x", Color: "blue"},
		domain.SectionEdge{UpStationID: 1, DownStationID: 99, Distance: 1})
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = s.m.CreateLine(s.ctx, domain.Line{Name: "x", Color: "blue"},
		domain.SectionEdge{UpStationID: 1, DownStationID: 1, Distance: 1})
	s.ErrorIs(err, domain.ErrInvalidRecord)
}

func (s *MemorySuite) TestCreateLineRejectsDuplicateName() {
	_, err := s.m.CreateLine(s.ctx, domain.Line{Name: "one", Color: "blue"},
		domain.SectionEdge{UpStationID: 3, DownStationID: 4, Distance: 2})
	s.ErrorIs(err, domain.ErrDuplicate)

	all, err := s.m.Lines().FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
	s.Equal(uint64(5), s.m.Revision(), "rejected create does not move the revision")
}

func (s *MemorySuite) TestFindByIDMissing() {
	_, err := s.m.Stations().FindByID(s.ctx, 42)
	s.ErrorIs(err, domain.ErrNotFound)
	_, err = s.m.Lines().FindByID(s.ctx, 42)
	s.ErrorIs(err, domain.ErrNotFound)
	_, err = s.m.LineSections(s.ctx, 42)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *MemorySuite) TestUpdateSectionsSplitKeepsUntouchedIDs() {
	s.Require().NoError(s.m.UpdateSections(s.ctx, s.line.ID, func(sec *section.Sections) error {
		return sec.Add(domain.SectionEdge{UpStationID: 2, DownStationID: 3, Distance: 4})
	}))
	before, err := s.m.Sections().FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(before, 2)

	// split 1-2 with 4
	s.Require().NoError(s.m.UpdateSections(s.ctx, s.line.ID, func(sec *section.Sections) error {
		return sec.Add(domain.SectionEdge{UpStationID: 1, DownStationID: 4, Distance: 3})
	}))
	after, err := s.m.Sections().FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(after, 3)

	s.Equal(before[1], after[2]) // 2-3 untouched
	s.NotEqual(before[0].ID, after[0].ID)
	s.Equal(int64(4), after[0].DownStationID)
	s.Equal(7, after[1].Distance)
	for _, sec := range after {
		s.Equal(s.line.ID, sec.LineID)
	}

	chain, err := s.m.LineSections(s.ctx, s.line.ID)
	s.Require().NoError(err)
	s.Equal([]int64{1, 4, 2, 3}, chain.Stations())
}

func (s *MemorySuite) TestUpdateSectionsRollsBack() {
	rev := s.m.Revision()
	boom := errors.New("boom")
	err := s.m.UpdateSections(s.ctx, s.line.ID, func(sec *section.Sections) error {
		s.Require().NoError(sec.Add(domain.SectionEdge{UpStationID: 2, DownStationID: 3, Distance: 4}))
		return boom
	})
	s.ErrorIs(err, boom)
	s.Equal(rev, s.m.Revision())

	all, err := s.m.Sections().FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *MemorySuite) TestUpdateSectionsUnknownStation() {
	rev := s.m.Revision()
	err := s.m.UpdateSections(s.ctx, s.line.ID, func(sec *section.Sections) error {
		return sec.Add(domain.SectionEdge{UpStationID: 2, DownStationID: 77, Distance: 4})
	})
	s.ErrorIs(err, domain.ErrNotFound)
	s.Equal(rev, s.m.Revision())
}

func (s *MemorySuite) TestUpdateSectionsUnknownLine() {
	err := s.m.UpdateSections(s.ctx, 9, func(*section.Sections) error { return nil })
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *MemorySuite) TestRevisionMoves() {
	rev := s.m.Revision()
	s.Require().NoError(s.m.UpdateSections(s.ctx, s.line.ID, func(sec *section.Sections) error {
		return sec.Add(domain.SectionEdge{UpStationID: 3, DownStationID: 1, Distance: 2})
	}))
	s.Greater(s.m.Revision(), rev)
	s.Equal(s.m.Revision(), s.m.Sections().Revision())
}

func (s *MemorySuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.m.Stations().FindAll(ctx)
	s.ErrorIs(err, context.Canceled)
	err = s.m.UpdateSections(ctx, s.line.ID, func(*section.Sections) error { return nil })
	s.ErrorIs(err, context.Canceled)
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(MemorySuite))
}

func TestMemory_ConcurrentReadersAndWriter(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	for i := 0; i < 20; i++ {
		_, err := m.CreateStation(ctx, "s")
		require.NoError(t, err)
	}
	line, err := m.CreateLine(ctx, domain.Line{Name: "l", Color: "c"},
		domain.SectionEdge{UpStationID: 1, DownStationID: 2, Distance: 3})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for id := int64(3); id <= 20; id++ {
			err := m.UpdateSections(ctx, line.ID, func(sec *section.Sections) error {
				down, _ := sec.DownTerminus()
				return sec.Add(domain.SectionEdge{UpStationID: down, DownStationID: id, Distance: 1})
			})
			assert.NoError(t, err)
		}
	}()
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				all, err := m.Sections().FindAll(ctx)
				assert.NoError(t, err)
				assert.NotEmpty(t, all)
			}
		}()
	}
	wg.Wait()

	chain, err := m.LineSections(ctx, line.ID)
	require.NoError(t, err)
	assert.Equal(t, 19, chain.Len())
}
