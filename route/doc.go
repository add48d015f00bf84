// Package route is the query facade of the subway engine. It reads a
// snapshot of stations, sections and lines from repositories, finds the
// shortest route between two stations, and prices it for the passenger.
//
// FindRoute checks, in order:
//
//  1. age > 0                              (ErrInvalidAge)
//  2. source and target exist              (ErrStationNotFound)
//  3. a route connects two distinct stops  (ErrUnreachableRoute)
//
// and never returns a partial Result. Section edits go through AddSection and
// RemoveSection, which validate the request and then run the topology change
// inside the SectionStore transaction.
//
// The network graph is a pure function of the snapshot. When the section
// repository reports a revision (see Revisioner) and WithGraphCache is set,
// the graph is built once per revision and shared between queries.
package route
