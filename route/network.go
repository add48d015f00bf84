// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: network summary over the current snapshot.

package route

import (
	"context"
	"fmt"

	"github.com/katalvlaran/subway/bfs"
)

// NetworkSummary describes the current network graph.
type NetworkSummary struct {
	Stations         int `json:"stations"`
	Sections         int `json:"sections"`
	Lines            int `json:"lines"`
	ParallelSections int `json:"parallelSections"`

	// Components lists station IDs per connected group; a fully connected
	// network has exactly one.
	Components [][]int64 `json:"components"`
}

// Connected reports whether every station can reach every other.
func (n NetworkSummary) Connected() bool { return len(n.Components) <= 1 }

// Network summarizes the graph FindRoute would search right now.
func (s *Service) Network(ctx context.Context) (NetworkSummary, error) {
	g, err := s.graph(ctx)
	if err != nil {
		return NetworkSummary{}, err
	}
	groups, err := bfs.Components(g)
	if err != nil {
		return NetworkSummary{}, fmt.Errorf("route: components: %w", err)
	}
	st := g.Stats()

	return NetworkSummary{
		Stations:         st.VertexCount,
		Sections:         st.EdgeCount,
		Lines:            st.LineCount,
		ParallelSections: st.ParallelEdgeCount,
		Components:       groups,
	}, nil
}
