// Package httpapi exposes the route facade over HTTP with gorilla/mux.
//
//	GET    /paths?source={id}&target={id}&age={n}   priced shortest route
//	GET    /network                                 station/section counts and components
//	GET    /stations/{id}/reachable?maxStops={n}&line={id}
//	                                                stations within n stops, optionally per line
//	GET    /lines/{id}                              line with ordered stations
//	POST   /lines/{id}/sections                     add a section (JSON body)
//	DELETE /lines/{id}/sections?stationId={id}      remove a station from a line
//
// Failures are JSON {"message": "..."}: 404 for unknown stations and lines,
// 400 for every other expected rejection, 500 otherwise.
package httpapi
