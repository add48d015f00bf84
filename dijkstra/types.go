package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source station was given.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source or target does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadMaxVisits indicates that MaxVisits was set to zero or negative.
	ErrBadMaxVisits = errors.New("dijkstra: MaxVisits must be positive")

	// ErrSearchBudgetExceeded indicates the search settled MaxVisits vertices
	// without finishing.
	ErrSearchBudgetExceeded = errors.New("dijkstra: search budget exceeded")
)

// Unreachable is the distance reported for vertices the search never reached.
const Unreachable int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting station ID (required).
// Target           – optional station ID; 0 means "search everything".
// MaxDistance      – cap on explored distance. Default math.MaxInt64.
// InfEdgeThreshold – edges with weight ≥ threshold are impassable. Default math.MaxInt64.
// MaxVisits        – cap on settled vertices. Default 0 (no cap).
type Options struct {
	Source           int64
	Target           int64
	MaxDistance      int64
	InfEdgeThreshold int64
	MaxVisits        int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting station ID. Must be called.
func Source(id int64) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target lets the search stop once the target's distance is final.
func Target(id int64) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithMaxVisits caps the number of vertices the search may settle.
// Zero or negative values panic with ErrBadMaxVisits.
func WithMaxVisits(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxVisits.Error())
	}

	return func(o *Options) {
		o.MaxVisits = n
	}
}

// DefaultOptions returns Options with no caps for the given source.
func DefaultOptions(source int64) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
