package pathfind

import (
	"fmt"

	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/dijkstra"
	"github.com/katalvlaran/subway/domain"
)

// Path is a route through the network. The zero value is the empty path.
type Path struct {
	// Stations in travel order, source first. Empty or at least two long.
	Stations []domain.Station

	// Sections in travel order. Each keeps its stored orientation, so a
	// section ridden against its direction has DownStationID first in
	// travel order.
	Sections []domain.Section

	// Distance is the sum of section distances.
	Distance int
}

// IsEmpty reports whether the path has no sections.
func (p Path) IsEmpty() bool { return len(p.Sections) == 0 }

// LineIDs returns the distinct lines ridden, in order of first use.
func (p Path) LineIDs() []int64 {
	seen := make(map[int64]struct{}, len(p.Sections))
	ids := make([]int64, 0, len(p.Sections))
	for _, s := range p.Sections {
		if _, ok := seen[s.LineID]; ok {
			continue
		}
		seen[s.LineID] = struct{}{}
		ids = append(ids, s.LineID)
	}

	return ids
}

// StationIDs returns the station IDs in travel order.
func (p Path) StationIDs() []int64 {
	ids := make([]int64, len(p.Stations))
	for i, st := range p.Stations {
		ids[i] = st.ID
	}

	return ids
}

// Find returns the shortest path from source to target in g.
//
// Extra dijkstra options (WithMaxVisits, WithMaxDistance, ...) are applied
// after Source and Target. Ties between equal-distance routes resolve the
// same way for the same graph: see package dijkstra.
//
// Errors: dijkstra.ErrNilGraph, dijkstra.ErrVertexNotFound and anything
// the search itself reports, such as dijkstra.ErrSearchBudgetExceeded.
func Find(g *core.Graph, source, target int64, opts ...dijkstra.Option) (Path, error) {
	if g == nil {
		return Path{}, dijkstra.ErrNilGraph
	}
	for _, id := range []int64{source, target} {
		if !g.HasVertex(id) {
			return Path{}, fmt.Errorf("pathfind: station %d: %w", id, dijkstra.ErrVertexNotFound)
		}
	}
	if source == target {
		return Path{}, nil
	}

	all := make([]dijkstra.Option, 0, len(opts)+2)
	all = append(all, dijkstra.Source(source), dijkstra.Target(target))
	all = append(all, opts...)
	res, err := dijkstra.Dijkstra(g, all...)
	if err != nil {
		return Path{}, fmt.Errorf("pathfind: %w", err)
	}
	edges, err := res.PathTo(target)
	if err != nil {
		return Path{}, fmt.Errorf("pathfind: %w", err)
	}
	if len(edges) == 0 {
		return Path{}, nil
	}

	return shape(g, source, edges)
}

// shape walks the edge sequence from source, emitting stations and sections.
func shape(g *core.Graph, source int64, edges []core.Edge) (Path, error) {
	cur, err := g.VertexIndex(source)
	if err != nil {
		return Path{}, err
	}
	first, err := g.Vertex(cur)
	if err != nil {
		return Path{}, err
	}

	p := Path{
		Stations: make([]domain.Station, 0, len(edges)+1),
		Sections: make([]domain.Section, 0, len(edges)),
	}
	p.Stations = append(p.Stations, domain.Station{ID: first.ID, Name: first.Label})
	for _, e := range edges {
		up, err := g.Vertex(e.From)
		if err != nil {
			return Path{}, err
		}
		down, err := g.Vertex(e.To)
		if err != nil {
			return Path{}, err
		}
		next := down
		if e.From != cur {
			next = up
		}
		p.Sections = append(p.Sections, domain.Section{
			ID:     e.SectionID,
			LineID: e.LineID,
			SectionEdge: domain.SectionEdge{
				UpStationID:   up.ID,
				DownStationID: down.ID,
				Distance:      int(e.Weight),
			},
		})
		p.Stations = append(p.Stations, domain.Station{ID: next.ID, Name: next.Label})
		p.Distance += int(e.Weight)
		cur = next.Index
	}

	return p, nil
}
