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

// nongenomicCoverageEpsilon mirrors original_source's nongenomic_link_removal.cpp,
// which uses a literal +/-1e-5 tolerance around its coverage thresholds
// (distinct from simple_bulge_removal.cpp's apparent `1e5` typo).
const nongenomicCoverageEpsilon = 1e-5

// NongenomicOptions configures RemoveNongenomicLinks (spec.md §4.5
// Non-genomic link removal).
type NongenomicOptions struct {
	UniqueLen int

	HaveCoverage bool
	MaxUniqueCov float64

	ReliableLen int
	ReliableOvl int

	HaveReliableCov bool
	ReliableCov     float64

	RequireBothSides bool
}

// NongenomicResult extends Result with the dead-end segments that appeared
// as a side effect of this pass, for the caller to warn about (spec.md
// §4.5: "Warn if new deadends appear").
type NongenomicResult struct {
	Result
	NewDeadends []string
}

func findDeadends(g *gfa.Graph) map[gfa.SegmentID]bool {
	out := make(map[gfa.SegmentID]bool)
	for _, v := range g.DirectedSegments() {
		if g.Segment(v.ID).Removed {
			continue
		}
		if g.NoOutgoing(v) {
			out[v.ID] = true
		}
	}
	return out
}

// RemoveNongenomicLinks implements spec.md §4.5's classify-then-prune
// pass. uniqueness is computed with a closure whose suspected-repeat set
// starts empty and stays empty for the whole classification scan below;
// the scan's repeat/false-unique verdicts are collected into local sets
// and only merged into suspectedRepeats/suspectedFalse once the scan over
// every directed segment has finished, so no segment's classification can
// be perturbed by an earlier segment's verdict within the same pass
// (grounded on original_source/src/nongenomic_link_removal.cpp:68-134,
// whose FindSuspicious builds its own local suspected_repeats set and
// only assigns it to the outer set uniqueness_f reads after the full scan
// returns — "NB. From here on uniqueness_f starts to check suspected
// repeats").
func RemoveNongenomicLinks(g *gfa.Graph, cov gfa.Coverage, opts NongenomicOptions) NongenomicResult {
	initialDeadends := findDeadends(g)

	suspectedRepeats := make(map[gfa.SegmentID]bool)
	suspectedFalse := make(map[gfa.SegmentID]bool)

	uniqueness := func(s gfa.SegmentID) bool {
		if g.SegmentLength(s) > opts.UniqueLen {
			return true
		}
		if opts.HaveCoverage && !suspectedRepeats[s] {
			if cov.Value(g.SegmentName(s)) < opts.MaxUniqueCov+nongenomicCoverageEpsilon {
				return true
			}
		}
		return false
	}

	newRepeats := make(map[gfa.SegmentID]bool)
	newFalse := make(map[gfa.SegmentID]bool)
	for _, w := range g.DirectedSegments() {
		if g.Segment(w.ID).Removed || !uniqueness(w.ID) {
			continue
		}
		var unambiguouslyIncoming []gfa.DirectedSegment
		for _, l := range g.IncomingLinks(w) {
			if _, ok := g.UniqueOutgoing(l.Start); ok {
				unambiguouslyIncoming = append(unambiguouslyIncoming, l.Start)
			}
		}
		if len(unambiguouslyIncoming) > 1 {
			for _, v := range unambiguouslyIncoming {
				newFalse[v.ID] = true
			}
			newRepeats[w.ID] = true
		}
	}
	for s := range newRepeats {
		suspectedRepeats[s] = true
	}
	for s := range newFalse {
		suspectedFalse[s] = true
	}

	checkReliableExt := func(l gfa.Link) bool {
		w := l.End
		if l.Overlap() < opts.ReliableOvl {
			return false
		}
		if g.SegmentLength(w.ID) >= opts.ReliableLen {
			return true
		}
		if opts.HaveReliableCov && !suspectedFalse[w.ID] {
			if cov.Value(g.SegmentName(w.ID)) > opts.ReliableCov-nongenomicCoverageEpsilon {
				return true
			}
		}
		return false
	}

	hasNongenomicStart := func(l gfa.Link) bool {
		v, w := l.Start, l.End
		if _, ok := g.UniqueIncoming(w); ok {
			return false
		}
		if !uniqueness(v.ID) {
			return false
		}
		for _, l1 := range g.OutgoingLinks(v) {
			if l1.End == w {
				continue
			}
			if _, ok := g.UniqueIncoming(l1.End); ok && checkReliableExt(l1) {
				return true
			}
		}
		return false
	}

	var res Result
	for _, v := range g.DirectedSegments() {
		if g.Segment(v.ID).Removed {
			continue
		}
		for _, l := range g.OutgoingLinks(v) {
			if !hasNongenomicStart(l) {
				continue
			}
			if !opts.RequireBothSides || hasNongenomicStart(l.Complement()) {
				res.link(g, l)
			}
		}
	}

	if res.LinksDeleted > 0 {
		g.Cleanup()
	}

	var newDeadends []string
	for s := range findDeadends(g) {
		if !initialDeadends[s] {
			newDeadends = append(newDeadends, g.SegmentName(s))
		}
	}

	return NongenomicResult{Result: res, NewDeadends: newDeadends}
}
