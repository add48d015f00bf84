// SPDX-License-Identifier: MIT
//
// File: reachable.go
// Role: fewest-stops reachability from one station.

package route

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/subway/bfs"
	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/domain"
)

// Reach is a station reachable from the origin of a Reachable query.
type Reach struct {
	Station domain.Station `json:"station"`

	// Stops is the fewest number of sections ridden from the origin.
	Stops int `json:"stops"`

	// Via lists station IDs on one fewest-stops walk, origin first.
	Via []int64 `json:"via"`
}

type reachableRequest struct {
	StationID int64   `validate:"gt=0"`
	MaxStops  int     `validate:"gte=0"`
	LineIDs   []int64 `validate:"dive,gt=0"`
}

// Reachable lists the stations reachable from stationID within maxStops
// sections (0 means no limit), nearest first. With lineIDs given, only
// sections of those lines are ridden. Section distances are ignored.
// The origin itself is not listed.
//
// Errors: ErrInvalidRequest, ErrStationNotFound, ErrLineNotFound, and
// ctx cancellation.
func (s *Service) Reachable(ctx context.Context, stationID int64, maxStops int, lineIDs ...int64) ([]Reach, error) {
	req := reachableRequest{StationID: stationID, MaxStops: maxStops, LineIDs: lineIDs}
	if err := domain.Validator().Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if err := s.requireStation(ctx, stationID); err != nil {
		return nil, err
	}
	for _, id := range lineIDs {
		if _, err := s.requireLine(ctx, id); err != nil {
			return nil, err
		}
	}

	g, err := s.graph(ctx)
	if err != nil {
		return nil, err
	}
	var out []Reach
	opts := []bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(maxStops),
		bfs.WithOnVisit(func(id int64, depth int) error {
			if depth > 0 {
				out = append(out, Reach{Station: domain.Station{ID: id}, Stops: depth})
			}
			return nil
		}),
	}
	if len(lineIDs) > 0 {
		opts = append(opts, bfs.WithLines(lineIDs...))
	}
	res, err := bfs.BFS(g, stationID, opts...)
	if err != nil {
		return nil, fmt.Errorf("route: reachable from %d: %w", stationID, err)
	}

	for i := range out {
		r := &out[i]
		if r.Via, err = res.PathTo(r.Station.ID); err != nil {
			return nil, fmt.Errorf("route: reachable from %d: %w", stationID, err)
		}
		if r.Station.Name, err = stationName(g, r.Station.ID); err != nil {
			return nil, err
		}
	}
	s.log.DebugContext(ctx, "reachable stations",
		slog.Int64("station", stationID),
		slog.Int("maxStops", maxStops),
		slog.Any("lines", lineIDs),
		slog.Int("found", len(out)),
	)

	return out, nil
}

func stationName(g *core.Graph, id int64) (string, error) {
	idx, err := g.VertexIndex(id)
	if err != nil {
		return "", fmt.Errorf("route: station %d: %w", id, err)
	}
	v, err := g.Vertex(idx)
	if err != nil {
		return "", fmt.Errorf("route: station %d: %w", id, err)
	}

	return v.Label, nil
}
