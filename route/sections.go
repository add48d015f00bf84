// SPDX-License-Identifier: MIT
//
// File: sections.go
// Role: section edits and the line view.

package route

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/subway/domain"
	"github.com/katalvlaran/subway/section"
)

type addSectionRequest struct {
	LineID int64 `validate:"gt=0"`
	domain.SectionEdge
}

type removeSectionRequest struct {
	LineID    int64 `validate:"gt=0"`
	StationID int64 `validate:"gt=0"`
}

// AddSection attaches up→down (distance km) to the line, extending a
// terminus or splitting an existing section.
//
// Errors: ErrInvalidRequest, ErrLineNotFound, ErrStationNotFound and the
// section package errors (ErrSectionNotAddable, ErrSectionSplitInvalid).
func (s *Service) AddSection(ctx context.Context, lineID, up, down int64, distance int) error {
	req := addSectionRequest{LineID: lineID, SectionEdge: domain.SectionEdge{
		UpStationID: up, DownStationID: down, Distance: distance,
	}}
	if err := domain.Validator().Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if _, err := s.requireLine(ctx, lineID); err != nil {
		return err
	}
	for _, id := range []int64{up, down} {
		if err := s.requireStation(ctx, id); err != nil {
			return err
		}
	}

	err := s.repos.Store.UpdateSections(ctx, lineID, func(chain *section.Sections) error {
		return chain.Add(req.SectionEdge)
	})
	if err != nil {
		return s.storeError(lineID, err)
	}
	s.afterWrite()
	s.log.InfoContext(ctx, "section added",
		slog.Int64("line", lineID),
		slog.Int64("up", up),
		slog.Int64("down", down),
		slog.Int("distance", distance),
	)

	return nil
}

// RemoveSection takes stationID off the line, merging the sections around
// an interior station.
//
// Errors: ErrInvalidRequest, ErrLineNotFound, ErrStationNotFound and the
// section package errors (ErrSectionNotDeletable, ErrStationNotOnLine,
// ErrSectionMergeInvalid).
func (s *Service) RemoveSection(ctx context.Context, lineID, stationID int64) error {
	req := removeSectionRequest{LineID: lineID, StationID: stationID}
	if err := domain.Validator().Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if _, err := s.requireLine(ctx, lineID); err != nil {
		return err
	}
	if err := s.requireStation(ctx, stationID); err != nil {
		return err
	}

	err := s.repos.Store.UpdateSections(ctx, lineID, func(chain *section.Sections) error {
		return chain.Remove(stationID)
	})
	if err != nil {
		return s.storeError(lineID, err)
	}
	s.afterWrite()
	s.log.InfoContext(ctx, "section removed",
		slog.Int64("line", lineID),
		slog.Int64("station", stationID),
	)

	return nil
}

// LineStations returns the line with its stations in travel order.
// Errors: ErrLineNotFound.
func (s *Service) LineStations(ctx context.Context, lineID int64) (LineView, error) {
	line, err := s.requireLine(ctx, lineID)
	if err != nil {
		return LineView{}, err
	}
	chain, err := s.repos.Store.LineSections(ctx, lineID)
	if err != nil {
		return LineView{}, s.storeError(lineID, err)
	}
	all, err := s.repos.Stations.FindAll(ctx)
	if err != nil {
		return LineView{}, fmt.Errorf("route: load stations: %w", err)
	}
	byID := make(map[int64]domain.Station, len(all))
	for _, st := range all {
		byID[st.ID] = st
	}

	view := LineView{Line: line}
	for _, id := range chain.Stations() {
		st, ok := byID[id]
		if !ok {
			return LineView{}, fmt.Errorf("%w: %d on line %d", ErrStationNotFound, id, lineID)
		}
		view.Stations = append(view.Stations, st)
	}

	return view, nil
}

// storeError keeps section errors as they are and maps a vanished line.
func (s *Service) storeError(lineID int64, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: line %d: %w", ErrLineNotFound, lineID, err)
	}

	return fmt.Errorf("route: line %d: %w", lineID, err)
}

// afterWrite drops graphs of superseded revisions.
func (s *Service) afterWrite() {
	if s.graphs != nil {
		s.graphs.Flush()
	}
}
