// Package subway is a route-and-fare engine for multi-line transit
// networks: it finds the shortest route between two stations across all
// lines and prices it for a passenger of a given age.
//
// The engine is split into small packages, leaves first:
//
//	domain/   - Station, Line, Section records and their validation
//	section/  - a line's ordered section chain; split on add, merge on remove
//	core/     - thread-safe arena multigraph (stations × sections, line-tagged edges)
//	builder/  - deterministic network graph construction from a snapshot
//	dijkstra/ - shortest-path search with a lazy decrease-key heap
//	pathfind/ - search results shaped into rider-facing paths
//	fare/     - distance tiers, line surcharge, age discounts
//	bfs/      - fewest-stops reachability and connected components
//	route/    - the query facade: FindRoute, AddSection, RemoveSection, LineStations, Network, Reachable
//
// Adapters around the core:
//
//	store/         - in-memory repositories with YAML seeding
//	config/        - YAML configuration with validation and defaults
//	httpapi/       - gorilla/mux HTTP API
//	cmd/subwayctl/ - cobra CLI: route, line, network, reachable, serve
//
// Quick example:
//
//	st1 --5-- st2 --4-- st3     line A, no surcharge
//	           \
//	            3               line B, +500
//	             \
//	             st4
//
//	route st1 → st4, age 21: st1, st2, st4; 8 km; fare 1750
//	route st2 → st4, age 15: 3 km; fare 1120
//
//	go run ./cmd/subwayctl --network network.yml route --from 1 --to 4 --age 21
package subway
