// SPDX-License-Identifier: MIT
//
// File: repos.go
// Role: read-side repository views over Memory.

package store

import (
	"context"
	"fmt"

	"github.com/katalvlaran/subway/domain"
)

// StationRepo reads stations from a Memory store.
type StationRepo struct{ m *Memory }

// LineRepo reads lines from a Memory store.
type LineRepo struct{ m *Memory }

// SectionRepo reads sections from a Memory store.
type SectionRepo struct{ m *Memory }

// Stations returns the station view.
func (m *Memory) Stations() StationRepo { return StationRepo{m} }

// Lines returns the line view.
func (m *Memory) Lines() LineRepo { return LineRepo{m} }

// Sections returns the section view.
func (m *Memory) Sections() SectionRepo { return SectionRepo{m} }

// FindAll returns every station, ordered by ID.
func (r StationRepo) FindAll(ctx context.Context) ([]domain.Station, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	out := make([]domain.Station, 0, len(r.m.stations))
	for _, id := range sortedKeys(r.m.stations) {
		out = append(out, r.m.stations[id])
	}

	return out, nil
}

// FindByID returns the station or an error wrapping domain.ErrNotFound.
func (r StationRepo) FindByID(ctx context.Context, id int64) (domain.Station, error) {
	if err := ctx.Err(); err != nil {
		return domain.Station{}, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	st, ok := r.m.stations[id]
	if !ok {
		return domain.Station{}, fmt.Errorf("store: station %d: %w", id, domain.ErrNotFound)
	}

	return st, nil
}

// FindAll returns every line, ordered by ID.
func (r LineRepo) FindAll(ctx context.Context) ([]domain.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	out := make([]domain.Line, 0, len(r.m.lines))
	for _, id := range sortedKeys(r.m.lines) {
		out = append(out, r.m.lines[id])
	}

	return out, nil
}

// FindByID returns the line or an error wrapping domain.ErrNotFound.
func (r LineRepo) FindByID(ctx context.Context, id int64) (domain.Line, error) {
	if err := ctx.Err(); err != nil {
		return domain.Line{}, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	l, ok := r.m.lines[id]
	if !ok {
		return domain.Line{}, fmt.Errorf("store: line %d: %w", id, domain.ErrNotFound)
	}

	return l, nil
}

// FindAll returns the sections of every line: lines by ID, each in chain order.
func (r SectionRepo) FindAll(ctx context.Context) ([]domain.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	var out []domain.Section
	for _, id := range sortedKeys(r.m.chains) {
		out = append(out, r.m.chains[id]...)
	}

	return out, nil
}

// Revision forwards to Memory.Revision so a section view can key caches.
func (r SectionRepo) Revision() uint64 { return r.m.Revision() }
