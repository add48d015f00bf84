// SPDX-License-Identifier: MIT
// Package: subway/builder
//
// api.go - public entry points: BuildGraph orchestrator and NetworkGraph shortcut.

package builder

import (
	"fmt"

	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/domain"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate early and return sentinel errors;
// they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w"; no partial graph
// is returned.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// NetworkGraphOptions returns the graph mode the route engine searches:
// undirected (lines are ridden both ways), weighted, with parallel edges.
func NetworkGraphOptions(extra ...core.GraphOption) []core.GraphOption {
	opts := make([]core.GraphOption, 0, len(extra)+2)
	opts = append(opts, core.WithWeighted(), core.WithMultiEdges())

	return append(opts, extra...)
}

// NetworkGraph builds the network graph for a station/section snapshot.
// Complexity: O(V log V + E log E) for the deterministic ordering.
func NetworkGraph(stations []domain.Station, sections []domain.Section, bopts ...BuilderOption) (*core.Graph, error) {
	gopts := NetworkGraphOptions(core.WithCapacity(len(stations), len(sections)))

	return BuildGraph(gopts, bopts, Network(stations, sections))
}
