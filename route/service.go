// SPDX-License-Identifier: MIT
//
// File: service.go
// Role: Service construction, FindRoute and the graph cache.

package route

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/subway/builder"
	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/dijkstra"
	"github.com/katalvlaran/subway/domain"
	"github.com/katalvlaran/subway/fare"
	"github.com/katalvlaran/subway/pathfind"
)

// Service answers route queries and applies section edits.
// It is safe for concurrent use.
type Service struct {
	repos Repositories
	log   *slog.Logger

	cacheTTL  time.Duration
	graphs    *cache.Cache // nil when caching is off
	revision  Revisioner   // nil when caching is off
	maxVisits int
}

// New returns a Service over repos.
func New(repos Repositories, opts ...Option) (*Service, error) {
	if repos.Stations == nil || repos.Sections == nil || repos.Lines == nil || repos.Store == nil {
		return nil, ErrNilRepository
	}
	s := &Service{repos: repos, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	if s.cacheTTL > 0 {
		if rev, ok := repos.Sections.(Revisioner); ok {
			s.revision = rev
			s.graphs = cache.New(s.cacheTTL, 2*s.cacheTTL)
		} else {
			s.log.Warn("graph cache disabled: section repository has no revision")
		}
	}

	return s, nil
}

// FindRoute returns the shortest route from source to target priced for a
// passenger of the given age.
//
// Errors: ErrInvalidAge, ErrStationNotFound, ErrUnreachableRoute, and
// wrapped repository or search failures.
func (s *Service) FindRoute(ctx context.Context, source, target int64, age int) (Result, error) {
	if _, err := fare.GroupOf(age); err != nil {
		return Result{}, fmt.Errorf("route: %w", err)
	}
	for _, id := range []int64{source, target} {
		if err := s.requireStation(ctx, id); err != nil {
			return Result{}, err
		}
	}

	g, err := s.graph(ctx)
	if err != nil {
		return Result{}, err
	}
	var opts []dijkstra.Option
	if s.maxVisits > 0 {
		opts = append(opts, dijkstra.WithMaxVisits(s.maxVisits))
	}
	path, err := pathfind.Find(g, source, target, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("route: search %d→%d: %w", source, target, err)
	}
	if path.IsEmpty() {
		return Result{}, fmt.Errorf("%w: %d→%d", ErrUnreachableRoute, source, target)
	}

	calc, err := s.calculator(ctx, age)
	if err != nil {
		return Result{}, err
	}
	lines := path.LineIDs()
	quote, err := calc.Quote(path.Distance, lines)
	if err != nil {
		return Result{}, fmt.Errorf("route: fare: %w", err)
	}
	s.log.DebugContext(ctx, "route found",
		slog.Int64("source", source),
		slog.Int64("target", target),
		slog.Int("distance", path.Distance),
		slog.Int("fare", quote.Total),
		slog.Any("lines", lines),
	)

	return Result{
		Stations: path.Stations,
		Distance: path.Distance,
		Fare:     quote.Total,
		Quote:    quote,
		Lines:    lines,
	}, nil
}

func (s *Service) requireStation(ctx context.Context, id int64) error {
	if _, err := s.repos.Stations.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: %d", ErrStationNotFound, id)
		}
		return fmt.Errorf("route: station %d: %w", id, err)
	}

	return nil
}

func (s *Service) requireLine(ctx context.Context, id int64) (domain.Line, error) {
	l, err := s.repos.Lines.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Line{}, fmt.Errorf("%w: %d", ErrLineNotFound, id)
		}
		return domain.Line{}, fmt.Errorf("route: line %d: %w", id, err)
	}

	return l, nil
}

func (s *Service) calculator(ctx context.Context, age int) (*fare.Calculator, error) {
	lines, err := s.repos.Lines.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("route: load lines: %w", err)
	}
	extra := make(map[int64]int, len(lines))
	for _, l := range lines {
		extra[l.ID] = l.ExtraFare
	}
	calc, err := fare.NewCalculator(extra, age)
	if err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}

	return calc, nil
}

// graph returns the network graph for the current snapshot, from the cache
// when the revision has not moved.
func (s *Service) graph(ctx context.Context) (*core.Graph, error) {
	if s.graphs == nil {
		return s.buildGraph(ctx)
	}

	rev := s.revision.Revision()
	key := fmt.Sprintf("graph:%d", rev)
	if cached, ok := s.graphs.Get(key); ok {
		return cached.(*core.Graph), nil
	}
	g, err := s.buildGraph(ctx)
	if err != nil {
		return nil, err
	}
	// a write raced the snapshot; serve it but do not cache it under rev
	if s.revision.Revision() == rev {
		s.graphs.Set(key, g, cache.DefaultExpiration)
	}

	return g, nil
}

func (s *Service) buildGraph(ctx context.Context) (*core.Graph, error) {
	stations, err := s.repos.Stations.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("route: load stations: %w", err)
	}
	sections, err := s.repos.Sections.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("route: load sections: %w", err)
	}
	g, err := builder.NetworkGraph(stations, sections)
	if err != nil {
		return nil, fmt.Errorf("route: build network: %w", err)
	}
	s.log.DebugContext(ctx, "network graph built",
		slog.Int("stations", g.VertexCount()),
		slog.Int("sections", g.EdgeCount()),
	)

	return g, nil
}
