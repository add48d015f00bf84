// SPDX-License-Identifier: MIT
//
// File: memory.go
// Role: Memory store, station/line creation and the section transaction.

package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/katalvlaran/subway/domain"
	"github.com/katalvlaran/subway/section"
)

// Memory is a concurrency-safe in-memory network store.
type Memory struct {
	mu       sync.RWMutex
	revision uint64

	stations map[int64]domain.Station
	lines    map[int64]domain.Line
	chains   map[int64][]domain.Section // per line, up-terminus first

	nextStation int64
	nextLine    int64
	nextSection int64
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		stations: make(map[int64]domain.Station),
		lines:    make(map[int64]domain.Line),
		chains:   make(map[int64][]domain.Section),
	}
}

// Revision returns a counter that increases on every successful write.
func (m *Memory) Revision() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.revision
}

// CreateStation stores a new station and returns it with its assigned ID.
// Errors: domain.ErrBlankArgument.
func (m *Memory) CreateStation(ctx context.Context, name string) (domain.Station, error) {
	if err := ctx.Err(); err != nil {
		return domain.Station{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	st := domain.Station{ID: m.nextStation + 1, Name: name}
	if err := domain.Validate(st); err != nil {
		return domain.Station{}, fmt.Errorf("store: create station: %w", err)
	}
	m.nextStation++
	m.stations[st.ID] = st
	m.revision++

	return st, nil
}

// CreateLine stores a new line with its first section. line.ID is ignored
// and the assigned ID is returned.
//
// Errors: domain.ErrBlankArgument, domain.ErrInvalidRecord, domain.ErrNotFound
// (unknown station), domain.ErrDuplicate (line name taken).
func (m *Memory) CreateLine(ctx context.Context, line domain.Line, first domain.SectionEdge) (domain.Line, error) {
	if err := ctx.Err(); err != nil {
		return domain.Line{}, err
	}
	if err := domain.Validate(line); err != nil {
		return domain.Line{}, fmt.Errorf("store: create line: %w", err)
	}
	if err := domain.Validate(first); err != nil {
		return domain.Line{}, fmt.Errorf("store: create line: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasLineNamed(line.Name) {
		return domain.Line{}, fmt.Errorf("store: create line %q: %w", line.Name, domain.ErrDuplicate)
	}
	if err := m.requireStations(first.UpStationID, first.DownStationID); err != nil {
		return domain.Line{}, fmt.Errorf("store: create line: %w", err)
	}
	m.nextLine++
	line.ID = m.nextLine
	m.lines[line.ID] = line
	m.chains[line.ID] = m.assignIDs(line.ID, nil, []domain.SectionEdge{first})
	m.revision++

	return line, nil
}

func (m *Memory) hasLineNamed(name string) bool {
	for _, l := range m.lines {
		if l.Name == name {
			return true
		}
	}

	return false
}

// UpdateSections runs fn on a copy of the line's chain and commits the copy
// when fn returns nil. Stations added by fn must already exist.
//
// Errors: domain.ErrNotFound for an unknown line or station, plus whatever
// fn returns (unwrapped).
func (m *Memory) UpdateSections(ctx context.Context, lineID int64, fn func(*section.Sections) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	prev, ok := m.chains[lineID]
	if !ok {
		return fmt.Errorf("store: line %d: %w", lineID, domain.ErrNotFound)
	}
	work, err := section.New(edgesOf(prev)...)
	if err != nil {
		return fmt.Errorf("store: line %d holds a broken chain: %w", lineID, err)
	}
	if err := fn(work); err != nil {
		return err
	}
	next := work.Edges()
	if err := m.requireStations(work.Stations()...); err != nil {
		return fmt.Errorf("store: line %d: %w", lineID, err)
	}
	m.chains[lineID] = m.assignIDs(lineID, prev, next)
	m.revision++

	return nil
}

// LineSections returns a copy of the line's ordered chain.
// Errors: domain.ErrNotFound.
func (m *Memory) LineSections(ctx context.Context, lineID int64) (*section.Sections, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	chain, ok := m.chains[lineID]
	if !ok {
		return nil, fmt.Errorf("store: line %d: %w", lineID, domain.ErrNotFound)
	}

	return section.New(edgesOf(chain)...)
}

// requireStations reports the first unknown station. Caller holds mu.
func (m *Memory) requireStations(ids ...int64) error {
	for _, id := range ids {
		if _, ok := m.stations[id]; !ok {
			return fmt.Errorf("station %d: %w", id, domain.ErrNotFound)
		}
	}

	return nil
}

// assignIDs keeps the ID of every unchanged edge and numbers the rest.
// Caller holds mu.
func (m *Memory) assignIDs(lineID int64, prev []domain.Section, next []domain.SectionEdge) []domain.Section {
	known := make(map[domain.SectionEdge]int64, len(prev))
	for _, s := range prev {
		known[s.SectionEdge] = s.ID
	}
	out := make([]domain.Section, len(next))
	for i, e := range next {
		id, ok := known[e]
		if !ok {
			m.nextSection++
			id = m.nextSection
		}
		out[i] = domain.Section{ID: id, LineID: lineID, SectionEdge: e}
	}

	return out
}

func edgesOf(chain []domain.Section) []domain.SectionEdge {
	edges := make([]domain.SectionEdge, len(chain))
	for i, s := range chain {
		edges[i] = s.SectionEdge
	}

	return edges
}

// sortedKeys returns map keys in ascending order for deterministic listings.
func sortedKeys[V any](m map[int64]V) []int64 {
	return slices.Sorted(maps.Keys(m))
}
