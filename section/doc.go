// Package section guards the topology of a single line: its sections always
// form exactly one simple path from an up-terminus to a down-terminus.
//
// A line is stored as an ordered slice of domain.SectionEdge, so terminus
// checks are O(1) and split/merge are O(n) in the line length:
//
//	[A]──5──[B]──4──[C]        Add(B→X, 1)   ⇒  [A]──5──[B]──1──[X]──3──[C]
//	[A]──5──[B]──4──[C]        Remove(B)     ⇒  [A]──9──[C]
//
// Add accepts a new section when it extends a terminus (U == down-terminus
// or D == up-terminus) or subdivides an existing section that shares its
// up-station (or its down-station) with the new one. Remove drops a terminus
// section or merges the two sections around an interior station.
//
// Every mutation runs on a working copy which is re-verified before it
// replaces the chain, so a failed Add or Remove leaves the line untouched.
//
// Errors:
//
//	ErrSectionNotAddable   - endpoints fit no attach or split position.
//	ErrSectionNotDeletable - removing the last section, or a station that is not on the line.
//	ErrSectionSplitInvalid - split distance is not strictly shorter than the split section.
//	ErrSectionMergeInvalid - the sections around the station do not meet there.
//	ErrStationNotOnLine    - station is not part of the line (wrapped with ErrSectionNotDeletable).
//	ErrInvalidChain        - an edge set handed to New is not one simple path.
//
// Sections is not safe for concurrent mutation; callers serialize writes per
// line (see store.Store.UpdateSections).
package section
