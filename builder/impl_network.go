// SPDX-License-Identifier: MIT
// Package: subway/builder
//
// impl_network.go - Stations and Sections constructors.
//
// Contract:
//   - Stations: one vertex per station, ascending ID order, label = name.
//   - Sections: one edge per section, ascending section ID order
//     (ties by line ID, then endpoints), weight = distance, tagged with
//     line and section IDs. Orientation up→down is preserved on the edge.

package builder

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/domain"
)

const (
	methodStations = "Stations"
	methodSections = "Sections"
)

// Stations returns a Constructor adding every station as a vertex.
func Stations(stations []domain.Station) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		sorted := slices.Clone(stations)
		slices.SortFunc(sorted, func(a, b domain.Station) int { return cmp.Compare(a.ID, b.ID) })
		for i, st := range sorted {
			if i > 0 && sorted[i-1].ID == st.ID {
				return fmt.Errorf("%s: station %d: %w", methodStations, st.ID, ErrDuplicateStation)
			}
			if _, err := g.AddVertex(st.ID, st.Name); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w: %w", methodStations, st.ID, ErrConstructFailed, err)
			}
		}

		return nil
	}
}

// Sections returns a Constructor adding every section as an edge.
func Sections(sections []domain.Section) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		sorted := slices.Clone(sections)
		slices.SortFunc(sorted, compareSections)
		for _, s := range sorted {
			if s.Distance <= 0 {
				return fmt.Errorf("%s: section %d distance=%d: %w", methodSections, s.ID, s.Distance, ErrBadDistance)
			}
			if !cfg.lenientStations {
				for _, id := range []int64{s.UpStationID, s.DownStationID} {
					if !g.HasVertex(id) {
						return fmt.Errorf("%s: section %d station %d: %w", methodSections, s.ID, id, ErrUnknownStation)
					}
				}
			}
			_, err := g.AddEdge(s.UpStationID, s.DownStationID, int64(s.Distance),
				core.WithLine(s.LineID), core.WithSection(s.ID))
			if err != nil {
				return fmt.Errorf("%s: AddEdge(section %d): %w: %w", methodSections, s.ID, ErrConstructFailed, err)
			}
		}

		return nil
	}
}

func compareSections(a, b domain.Section) int {
	if c := cmp.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.LineID, b.LineID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.UpStationID, b.UpStationID); c != 0 {
		return c
	}

	return cmp.Compare(a.DownStationID, b.DownStationID)
}

// Network composes Stations and Sections into one Constructor.
func Network(stations []domain.Station, sections []domain.Section) Constructor {
	addStations, addSections := Stations(stations), Sections(sections)

	return func(g *core.Graph, cfg builderConfig) error {
		if err := addStations(g, cfg); err != nil {
			return err
		}

		return addSections(g, cfg)
	}
}
