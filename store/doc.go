// Package store is the in-memory reference adapter for the repositories the
// route facade reads from and the section store it mutates through.
//
// Memory keeps every line's sections as an ordered chain. Each successful
// write bumps a revision counter; readers key derived data (such as the
// network graph) on Revision and rebuild only when it moves.
//
// Section edits run through UpdateSections: the callback receives a private
// copy of the line's chain, and the copy is committed only when the callback
// returns nil. Section IDs survive edits for every section whose endpoints
// and distance did not change; split and merged sections get fresh IDs.
//
// A network can be seeded from YAML with LoadSeed:
//
//	stations:
//	  - {id: 1, name: Gangnam}
//	  - {id: 2, name: Yeoksam}
//	lines:
//	  - id: 2
//	    name: Line 2
//	    color: green
//	    extraFare: 0
//	    sections:
//	      - {up: 1, down: 2, distance: 5}
package store
