// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package pruners

import "github.com/AleutianAI/gfaclean/pkg/gfa"

// ShortcutOptions configures RemoveShortcuts (spec.md §4.5 Shortcut
// remover).
type ShortcutOptions struct {
	MaxBaseCoverage float64
	MinPathCoverage float64
}

// unambiguousBackwardPathCovered walks backward from w while unique_incoming
// holds and every internal vertex's coverage stays at or above
// minPathCoverage, succeeding only if it reaches v (grounded on
// original_source/src/shortcut_remover.cpp's UnambiguousBackwardPath, which
// gates the walk on coverage rather than just uniqueness like
// gfa.UnambiguousBackwardPath does).
func unambiguousBackwardPathCovered(g *gfa.Graph, w, v gfa.DirectedSegment, cov gfa.Coverage, minPathCoverage float64) bool {
	used := make(map[gfa.LinkID]bool)
	for w != v {
		if cov.Value(g.SegmentName(w.ID)) < minPathCoverage {
			return false
		}
		l, ok := g.UniqueIncoming(w)
		if !ok {
			return false
		}
		if used[l.ID] {
			return false
		}
		used[l.ID] = true
		w = l.Start
	}
	return true
}

// unambiguousBackwardAlternative looks for a sibling of w (neither v nor
// reached via more than one outgoing arc) from which an unambiguous,
// sufficiently-covered backward path reaches v.
func unambiguousBackwardAlternative(g *gfa.Graph, w, v gfa.DirectedSegment, cov gfa.Coverage, minPathCoverage float64) bool {
	for _, l := range g.IncomingLinks(w) {
		w1 := l.Start
		if w1 == v || g.OutgoingLinkCount(w1) > 1 {
			continue
		}
		if unambiguousBackwardPathCovered(g, w1, v, cov, minPathCoverage) {
			return true
		}
	}
	return false
}

// RemoveShortcuts deletes an outgoing arc v->w when both v and w have low
// coverage and w is also unambiguously reachable from v through an
// alternative, well-covered path (spec.md §4.5 Shortcut remover).
func RemoveShortcuts(g *gfa.Graph, cov gfa.Coverage, opts ShortcutOptions) Result {
	var res Result
	for _, v := range g.DirectedSegments() {
		if g.Segment(v.ID).Removed {
			continue
		}
		if g.OutgoingLinkCount(v) < 2 {
			continue
		}
		if cov.Value(g.SegmentName(v.ID)) >= opts.MaxBaseCoverage {
			continue
		}

		for _, l := range g.OutgoingLinks(v) {
			w := l.End
			if cov.Value(g.SegmentName(w.ID)) >= opts.MaxBaseCoverage {
				continue
			}
			if unambiguousBackwardAlternative(g, w, v, cov, opts.MinPathCoverage) {
				res.link(g, l)
			}
		}
	}
	g.Cleanup()
	return res
}
