// Package pathfind turns a shortest-path search over the network graph into
// a rider-facing Path: the ordered stations, the sections ridden (in their
// stored up→down orientation, tagged with their line) and the total
// distance.
//
// An empty Path is a valid answer. It is returned when the source and
// target coincide and when no route connects them; errors are reserved for
// a nil graph, stations missing from the graph and search failures.
package pathfind
