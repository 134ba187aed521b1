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

// LinkID identifies a twin pair: a link and its reverse-complement share
// one LinkID.
type LinkID int

// Link is an overlap arc between two directed segments. Every link has a
// twin: for link (v->w, ov, ow) the twin is (w.Complement()->v.Complement(),
// ow, ov). The twin pair shares a LinkID.
type Link struct {
	ID           LinkID
	Start        DirectedSegment
	End          DirectedSegment
	StartOverlap int
	EndOverlap   int
	Removed      bool
}

// Complement returns this link's reverse-complement twin. It shares the
// same LinkID; Graph stores both halves of the pair as distinct *Link
// values so each can carry its own Removed flag, but Cleanup keeps them in
// lockstep (the symmetric-link invariant).
func (l Link) Complement() Link {
	return Link{
		ID:           l.ID,
		Start:        l.End.Complement(),
		End:          l.Start.Complement(),
		StartOverlap: l.EndOverlap,
		EndOverlap:   l.StartOverlap,
		Removed:      l.Removed,
	}
}

// Overlap returns min(StartOverlap, EndOverlap), the value compaction uses
// when emitting a collapsed link (spec.md §4.4).
func (l Link) Overlap() int {
	if l.StartOverlap < l.EndOverlap {
		return l.StartOverlap
	}
	return l.EndOverlap
}

// linkLess is the fixed total order over (start inner-index, end
// inner-index, start_overlap, end_overlap) used to pick the canonical half
// of a twin pair (SPEC_FULL.md §9).
func linkLess(a, b Link) bool {
	if a.Start.InnerIndex() != b.Start.InnerIndex() {
		return a.Start.InnerIndex() < b.Start.InnerIndex()
	}
	if a.End.InnerIndex() != b.End.InnerIndex() {
		return a.End.InnerIndex() < b.End.InnerIndex()
	}
	if a.StartOverlap != b.StartOverlap {
		return a.StartOverlap < b.StartOverlap
	}
	return a.EndOverlap < b.EndOverlap
}

// IsCanonical reports whether l is the canonical representative of its
// twin pair: l <= l.Complement() under linkLess. A self-complementary link
// (l.Complement() == l, a palindromic self-loop) is canonical by
// convention, since there is only one side to draw.
func (l Link) IsCanonical() bool {
	c := l.Complement()
	return !linkLess(c, l)
}
