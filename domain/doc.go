// Package domain declares the records shared by every layer of the subway
// engine: stations, lines and the sections that chain stations into a line.
//
// Records are plain values. They carry yaml/json tags for the adapters and
// validator tags checked by Validate; no method here performs I/O.
//
// Errors:
//
//	ErrBlankArgument - a required name or color is empty or whitespace only.
//	ErrInvalidRecord - any other struct-tag violation (negative fare, zero distance, up == down).
//	ErrNotFound      - a repository lookup found no record; wrapped with the kind and ID.
package domain
