// SPDX-License-Identifier: MIT

package section

import "errors"

// Sentinel errors; branch with errors.Is. Split and removal failures match
// two sentinels at once (the user-facing class and the precise cause).
var (
	ErrSectionNotAddable   = errors.New("section: section cannot be added")
	ErrSectionNotDeletable = errors.New("section: section cannot be deleted")
	ErrSectionSplitInvalid = errors.New("section: split distance must be shorter than the existing section")
	ErrSectionMergeInvalid = errors.New("section: sections do not meet at the merge station")
	ErrStationNotOnLine    = errors.New("section: station is not on the line")
	ErrInvalidChain        = errors.New("section: sections do not form one simple path")
)
