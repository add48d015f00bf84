// SPDX-License-Identifier: MIT
// Package: subway/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site, never baked into the sentinel.

package builder

import "errors"

// ErrDuplicateStation indicates two stations in the snapshot share an ID.
var ErrDuplicateStation = errors.New("builder: duplicate station")

// ErrUnknownStation indicates a section endpoint is not in the station snapshot.
var ErrUnknownStation = errors.New("builder: section references unknown station")

// ErrBadDistance indicates a section with a non-positive distance.
var ErrBadDistance = errors.New("builder: section distance must be positive")

// ErrConstructFailed indicates the graph could not be constructed
// (nil constructor, or the core graph rejected an insertion).
var ErrConstructFailed = errors.New("builder: construction failed")
