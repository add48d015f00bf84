// SPDX-License-Identifier: MIT

package domain

import "errors"

var (
	// ErrBlankArgument indicates a required text field is empty or whitespace only.
	ErrBlankArgument = errors.New("domain: blank argument")

	// ErrInvalidRecord indicates a record failed struct-tag validation.
	ErrInvalidRecord = errors.New("domain: invalid record")

	// ErrNotFound is returned, wrapped, by repositories for a missing record.
	ErrNotFound = errors.New("domain: not found")

	// ErrDuplicate is returned, wrapped, when a record's unique name is taken.
	ErrDuplicate = errors.New("domain: duplicate")
)
