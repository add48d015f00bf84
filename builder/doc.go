// Package builder assembles the network multigraph searched by the route
// engine from a snapshot of stations and sections.
//
// Construction is composed from Constructor closures applied in order by
// BuildGraph, so fixtures and production graphs go through one code path:
//
//	g, err := builder.BuildGraph(builder.NetworkGraphOptions(), nil,
//	    builder.Network(stations, sections),
//	)
//
// or, equivalently, builder.NetworkGraph(stations, sections).
//
// Guarantees:
//
//   - Pure: no I/O, no globals; the inputs are not mutated.
//   - Deterministic: stations are added in ascending ID order and sections in
//     ascending section ID order, whatever order the snapshot arrived in, so
//     equal snapshots yield identical vertex/edge indices.
//   - Lossless: parallel sections from different lines become distinct edges,
//     each tagged with its line and section ID.
//
// Errors:
//
//	ErrDuplicateStation - two stations share an ID.
//	ErrUnknownStation   - a section references a station missing from the snapshot
//	                      (strict default; WithLenientStations adds it instead).
//	ErrBadDistance      - a section distance is not positive.
//	ErrConstructFailed  - nil constructor, or the core graph rejected a vertex/edge.
package builder
