// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package gfa

import "errors"

// Sentinel errors for the graph store and codec. Callers wrap these with
// fmt.Errorf("%w: ...") to add context; callers of this package should test
// against the sentinel with errors.Is.
var (
	// ErrPathologicalOverlap is returned/warned when start_overlap >=
	// segment_length(end) for a link (spec.md §3, §7 kind 3).
	ErrPathologicalOverlap = errors.New("gfa: pathological overlap")

	// ErrDuplicateSegment is returned when a GFA S-record repeats a
	// segment name already seen in the same file.
	ErrDuplicateSegment = errors.New("gfa: duplicate segment name")

	// ErrUnknownSegmentRef is returned when an L-record names a segment
	// not present among the file's S-records (links are resolved only
	// after every S-record has been read).
	ErrUnknownSegmentRef = errors.New("gfa: link references unknown segment")

	// ErrDeadLinkInvariant is returned by CheckNoDeadLinks-backed
	// assertions when cleanup failed to restore the symmetric-link
	// invariant (spec.md §7 kind 4 — internal assertion, fatal).
	ErrDeadLinkInvariant = errors.New("gfa: dead link invariant violated after cleanup")

	// ErrMissingCoverageFile is returned at CLI argument validation when
	// a coverage-dependent flag is set without --coverage (spec.md §7
	// kind 2, exit code 2 per §6).
	ErrMissingCoverageFile = errors.New("gfa: coverage file required but not provided")

	// ErrNoSuperbubble is the uniform failure signal for every
	// superbubble search failure mode (spec.md §4.3 Failure modes):
	// unreachable end, threshold exceeded, count exceeded, strand clash.
	ErrNoSuperbubble = errors.New("gfa: no superbubble from this source")

	// ErrDBGOverlapMismatch is returned by the compactor in DBG-k mode
	// when an internal arc's EndOverlap does not equal k (spec.md §4.4
	// step 3, "asserts end_overlap == k on every arc").
	ErrDBGOverlapMismatch = errors.New("gfa: dbg-k mode requires every internal overlap to equal k")
)
