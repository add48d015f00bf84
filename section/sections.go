// SPDX-License-Identifier: MIT

package section

import (
	"fmt"

	"github.com/katalvlaran/subway/domain"
)

// Sections is the ordered chain of a line, up-terminus first.
// The zero value is an empty line ready for its first Add.
type Sections struct {
	edges []domain.SectionEdge
}

// New orders an unordered edge set into a chain. It fails with
// ErrInvalidChain on branches, cycles, disconnected pieces or bad edges.
// Complexity: O(n).
func New(edges ...domain.SectionEdge) (*Sections, error) {
	if len(edges) == 0 {
		return &Sections{}, nil
	}
	byUp := make(map[int64]domain.SectionEdge, len(edges))
	downs := make(map[int64]struct{}, len(edges))
	for _, e := range edges {
		if err := checkEdge(e); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidChain, err)
		}
		if _, dup := byUp[e.UpStationID]; dup {
			return nil, fmt.Errorf("%w: station %d branches downwards", ErrInvalidChain, e.UpStationID)
		}
		if _, dup := downs[e.DownStationID]; dup {
			return nil, fmt.Errorf("%w: station %d branches upwards", ErrInvalidChain, e.DownStationID)
		}
		byUp[e.UpStationID] = e
		downs[e.DownStationID] = struct{}{}
	}

	// The up-terminus is the only up-station that never appears as a down-station.
	var start int64
	starts := 0
	for _, e := range edges {
		if _, ok := downs[e.UpStationID]; !ok {
			start = e.UpStationID
			starts++
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d up-termini", ErrInvalidChain, starts)
	}

	ordered := make([]domain.SectionEdge, 0, len(edges))
	for cur, ok := byUp[start]; ok; cur, ok = byUp[cur.DownStationID] {
		ordered = append(ordered, cur)
		if len(ordered) > len(edges) {
			break
		}
	}
	if len(ordered) != len(edges) {
		return nil, fmt.Errorf("%w: chain covers %d of %d sections", ErrInvalidChain, len(ordered), len(edges))
	}
	if err := verify(ordered); err != nil {
		return nil, err
	}

	return &Sections{edges: ordered}, nil
}

// Len returns the number of sections.
func (s *Sections) Len() int { return len(s.edges) }

// Edges returns a copy of the ordered chain.
func (s *Sections) Edges() []domain.SectionEdge {
	out := make([]domain.SectionEdge, len(s.edges))
	copy(out, s.edges)

	return out
}

// Stations returns station IDs in travel order from the up-terminus.
func (s *Sections) Stations() []int64 {
	if len(s.edges) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(s.edges)+1)
	ids = append(ids, s.edges[0].UpStationID)
	for _, e := range s.edges {
		ids = append(ids, e.DownStationID)
	}

	return ids
}

// UpTerminus returns the first station; ok is false for an empty line.
func (s *Sections) UpTerminus() (id int64, ok bool) {
	if len(s.edges) == 0 {
		return 0, false
	}

	return s.edges[0].UpStationID, true
}

// DownTerminus returns the last station; ok is false for an empty line.
func (s *Sections) DownTerminus() (id int64, ok bool) {
	if len(s.edges) == 0 {
		return 0, false
	}

	return s.edges[len(s.edges)-1].DownStationID, true
}

// Contains reports whether stationID is on the line.
func (s *Sections) Contains(stationID int64) bool {
	for _, e := range s.edges {
		if e.Has(stationID) {
			return true
		}
	}

	return false
}

// TotalDistance is the end-to-end length of the line.
func (s *Sections) TotalDistance() int {
	total := 0
	for _, e := range s.edges {
		total += e.Distance
	}

	return total
}

// Clone returns an independent copy.
func (s *Sections) Clone() *Sections {
	return &Sections{edges: s.Edges()}
}

// Add inserts edge while keeping the chain a single simple path.
func (s *Sections) Add(edge domain.SectionEdge) error {
	if err := checkEdge(edge); err != nil {
		return fmt.Errorf("%w: %v", ErrSectionNotAddable, err)
	}
	if len(s.edges) == 0 {
		s.edges = []domain.SectionEdge{edge}
		return nil
	}

	hasUp, hasDown := s.Contains(edge.UpStationID), s.Contains(edge.DownStationID)
	switch {
	case hasUp && hasDown:
		return fmt.Errorf("%w: stations %d and %d are both on the line",
			ErrSectionNotAddable, edge.UpStationID, edge.DownStationID)
	case !hasUp && !hasDown:
		return fmt.Errorf("%w: neither station %d nor %d is on the line",
			ErrSectionNotAddable, edge.UpStationID, edge.DownStationID)
	}

	up, _ := s.UpTerminus()
	down, _ := s.DownTerminus()
	next := s.Edges()
	var err error
	switch {
	case edge.UpStationID == down:
		next = append(next, edge)
	case edge.DownStationID == up:
		next = append([]domain.SectionEdge{edge}, next...)
	case hasUp:
		next, err = splitFromUp(next, edge)
	default:
		next, err = splitFromDown(next, edge)
	}
	if err != nil {
		return err
	}

	return s.commit(next)
}

// Remove takes stationID off the line: a terminus drops its section, an
// interior station merges its two sections into one.
func (s *Sections) Remove(stationID int64) error {
	if len(s.edges) <= 1 {
		return fmt.Errorf("%w: a line keeps at least one section", ErrSectionNotDeletable)
	}
	if !s.Contains(stationID) {
		return fmt.Errorf("%w: %w: %d", ErrSectionNotDeletable, ErrStationNotOnLine, stationID)
	}

	last := len(s.edges) - 1
	next := s.Edges()
	switch stationID {
	case next[0].UpStationID:
		next = next[1:]
	case next[last].DownStationID:
		next = next[:last]
	default:
		i := indexByDown(next, stationID)
		merged, err := merge(next[i], next[i+1], stationID)
		if err != nil {
			return err
		}
		next = append(next[:i], append([]domain.SectionEdge{merged}, next[i+2:]...)...)
	}

	return s.commit(next)
}

// commit swaps in next only when it still satisfies the chain invariant.
func (s *Sections) commit(next []domain.SectionEdge) error {
	if err := verify(next); err != nil {
		return err
	}
	s.edges = next

	return nil
}

// splitFromUp replaces A→B(d0) with A→X(d) + X→B(d0-d) for edge A→X.
func splitFromUp(edges []domain.SectionEdge, edge domain.SectionEdge) ([]domain.SectionEdge, error) {
	i := indexByUp(edges, edge.UpStationID)
	old := edges[i]
	if old.Distance <= edge.Distance {
		return nil, splitError(old, edge)
	}
	rest := domain.SectionEdge{
		UpStationID:   edge.DownStationID,
		DownStationID: old.DownStationID,
		Distance:      old.Distance - edge.Distance,
	}

	return replaceAt(edges, i, edge, rest), nil
}

// splitFromDown replaces A→B(d0) with A→X(d0-d) + X→B(d) for edge X→B.
func splitFromDown(edges []domain.SectionEdge, edge domain.SectionEdge) ([]domain.SectionEdge, error) {
	i := indexByDown(edges, edge.DownStationID)
	old := edges[i]
	if old.Distance <= edge.Distance {
		return nil, splitError(old, edge)
	}
	head := domain.SectionEdge{
		UpStationID:   old.UpStationID,
		DownStationID: edge.UpStationID,
		Distance:      old.Distance - edge.Distance,
	}

	return replaceAt(edges, i, head, edge), nil
}

func splitError(old, edge domain.SectionEdge) error {
	return fmt.Errorf("%w: %w: existing %d→%d is %d, new section is %d",
		ErrSectionNotAddable, ErrSectionSplitInvalid,
		old.UpStationID, old.DownStationID, old.Distance, edge.Distance)
}

func merge(a, b domain.SectionEdge, via int64) (domain.SectionEdge, error) {
	if a.DownStationID != via || b.UpStationID != via {
		return domain.SectionEdge{}, fmt.Errorf("%w: %d→%d and %d→%d at %d",
			ErrSectionMergeInvalid, a.UpStationID, a.DownStationID, b.UpStationID, b.DownStationID, via)
	}

	return domain.SectionEdge{
		UpStationID:   a.UpStationID,
		DownStationID: b.DownStationID,
		Distance:      a.Distance + b.Distance,
	}, nil
}

// replaceAt returns edges with position i replaced by first, second.
func replaceAt(edges []domain.SectionEdge, i int, first, second domain.SectionEdge) []domain.SectionEdge {
	out := make([]domain.SectionEdge, 0, len(edges)+1)
	out = append(out, edges[:i]...)
	out = append(out, first, second)

	return append(out, edges[i+1:]...)
}

func indexByUp(edges []domain.SectionEdge, id int64) int {
	for i, e := range edges {
		if e.UpStationID == id {
			return i
		}
	}

	return -1
}

func indexByDown(edges []domain.SectionEdge, id int64) int {
	for i, e := range edges {
		if e.DownStationID == id {
			return i
		}
	}

	return -1
}

func checkEdge(e domain.SectionEdge) error {
	if e.Distance <= 0 {
		return fmt.Errorf("distance %d must be positive", e.Distance)
	}
	if e.UpStationID == e.DownStationID {
		return fmt.Errorf("section %d→%d loops on itself", e.UpStationID, e.DownStationID)
	}

	return nil
}

// verify checks the ordered chain: consecutive sections meet, no station
// repeats, every distance is positive. One section is a valid line.
func verify(edges []domain.SectionEdge) error {
	if len(edges) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(edges)+1)
	seen[edges[0].UpStationID] = struct{}{}
	for i, e := range edges {
		if err := checkEdge(e); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidChain, err)
		}
		if i > 0 && edges[i-1].DownStationID != e.UpStationID {
			return fmt.Errorf("%w: gap between %d and %d", ErrInvalidChain, edges[i-1].DownStationID, e.UpStationID)
		}
		if _, dup := seen[e.DownStationID]; dup {
			return fmt.Errorf("%w: station %d repeats", ErrInvalidChain, e.DownStationID)
		}
		seen[e.DownStationID] = struct{}{}
	}

	return nil
}
