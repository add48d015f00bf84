// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: repository contracts, results, options and sentinel errors.

package route

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/subway/domain"
	"github.com/katalvlaran/subway/fare"
	"github.com/katalvlaran/subway/section"
)

var (
	// ErrInvalidAge indicates an age ≤ 0. It is fare.ErrInvalidAge.
	ErrInvalidAge = fare.ErrInvalidAge

	// ErrStationNotFound indicates a station ID with no station on record.
	ErrStationNotFound = errors.New("route: station not found")

	// ErrLineNotFound indicates a line ID with no line on record.
	ErrLineNotFound = errors.New("route: line not found")

	// ErrUnreachableRoute indicates source equals target or no route connects them.
	ErrUnreachableRoute = errors.New("route: unreachable route")

	// ErrInvalidRequest indicates request arguments failed validation.
	ErrInvalidRequest = errors.New("route: invalid request")

	// ErrNilRepository indicates New was given an incomplete Repositories.
	ErrNilRepository = errors.New("route: nil repository")
)

// StationRepository reads stations. FindByID wraps domain.ErrNotFound for
// a missing station.
type StationRepository interface {
	FindAll(ctx context.Context) ([]domain.Station, error)
	FindByID(ctx context.Context, id int64) (domain.Station, error)
}

// SectionRepository reads the sections of every line.
type SectionRepository interface {
	FindAll(ctx context.Context) ([]domain.Section, error)
}

// LineRepository reads lines. FindByID wraps domain.ErrNotFound for a
// missing line.
type LineRepository interface {
	FindAll(ctx context.Context) ([]domain.Line, error)
	FindByID(ctx context.Context, id int64) (domain.Line, error)
}

// SectionStore owns section mutation. UpdateSections must run fn on a copy
// of the line's chain and commit it only when fn returns nil.
type SectionStore interface {
	UpdateSections(ctx context.Context, lineID int64, fn func(*section.Sections) error) error
	LineSections(ctx context.Context, lineID int64) (*section.Sections, error)
}

// Revisioner is implemented by section repositories whose content changes
// only together with a monotonically increasing revision.
type Revisioner interface {
	Revision() uint64
}

// Repositories bundles the collaborators of a Service. All are required.
type Repositories struct {
	Stations StationRepository
	Sections SectionRepository
	Lines    LineRepository
	Store    SectionStore
}

// Result is a priced route.
type Result struct {
	Stations []domain.Station `json:"stations"`
	Distance int              `json:"distance"`
	Fare     int              `json:"fare"`

	// Quote is the fare breakdown behind Fare.
	Quote fare.Quote `json:"-"`
	// Lines ridden, in order of first use.
	Lines []int64 `json:"-"`
}

// LineView is a line with its stations in travel order.
type LineView struct {
	domain.Line
	Stations []domain.Station `json:"stations"`
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithGraphCache reuses the built network graph for ttl while the section
// revision is unchanged. ttl ≤ 0 disables caching.
func WithGraphCache(ttl time.Duration) Option {
	return func(s *Service) {
		s.cacheTTL = ttl
	}
}

// WithMaxSearchVisits caps the stations a single search may settle.
// Zero means no cap; negative values panic.
func WithMaxSearchVisits(n int) Option {
	if n < 0 {
		panic("route: WithMaxSearchVisits(n) requires n ≥ 0")
	}

	return func(s *Service) {
		s.maxVisits = n
	}
}
