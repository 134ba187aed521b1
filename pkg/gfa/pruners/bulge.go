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

import (
	"math"
	"sort"

	"github.com/AleutianAI/gfaclean/pkg/gfa"
)

// bulgeCoverageEpsilon guards the alt-path coverage ratio against division
// by (near) zero; resolved per SPEC_FULL.md §9 as the tightest sane value
// rather than guessing at the source's apparent `1e5` typo.
const bulgeCoverageEpsilon = 1e-9

// BulgeOptions configures RemoveSimpleBulges (spec.md §4.5 Simple bulge
// removal).
type BulgeOptions struct {
	MaxLength        int
	MaxDiff          int
	MaxShortening    int
	MinAltOverlap    int
	UseCoverage      bool // sort candidates by coverage instead of overlap
	HaveCoverage     bool // coverage-gated acceptance checks are active
	MaxUniqueCov     float64
	MaxCoverageRatio float64
}

// formsSimpleBulge tests whether n (exactly one incoming, one outgoing arc)
// forms a simple bulge against some alternative path reaching back from
// w = base path's last vertex to v = base path's first vertex, without
// passing through n or its complement. On acceptance it marks every
// alt-path vertex protected and returns true (spec.md §4.5).
func formsSimpleBulge(g *gfa.Graph, n gfa.DirectedSegment, cov gfa.Coverage, opts BulgeOptions, protected map[gfa.SegmentID]bool) bool {
	lin, okIn := g.UniqueIncoming(n)
	lout, okOut := g.UniqueOutgoing(n)
	if !okIn || !okOut {
		return false
	}

	base := gfa.NewPath(lin.Start).Extend(lin).Extend(lout)
	v := base.First()
	w := base.Last()

	if v == n || v == n.Complement() || w == n || w == n.Complement() {
		return false
	}

	totalLen := base.TotalLength(g)
	vLen, wLen := g.SegmentLength(v.ID), g.SegmentLength(w.ID)
	if totalLen > vLen+wLen && totalLen-vLen-wLen > opts.MaxLength {
		return false
	}

	for _, l := range g.IncomingLinks(w) {
		w1 := l.Start
		if w1 == n || w1 == v || w1 == n.Complement() {
			continue
		}
		altPrefix, ok := gfa.UnambiguousBackwardPath(g, v, w1)
		if !ok {
			continue
		}
		if pathHitsNode(altPrefix, n) {
			continue
		}
		alt := altPrefix.Extend(l)

		if !acceptBulge(g, base, alt, cov, opts) {
			continue
		}

		for _, seg := range alt.Segments {
			protected[seg.ID] = true
		}
		return true
	}
	return false
}

func pathHitsNode(p gfa.Path, n gfa.DirectedSegment) bool {
	for _, seg := range p.Segments {
		if seg == n || seg == n.Complement() {
			return true
		}
	}
	return false
}

// acceptBulge applies the length, overlap, and (if enabled) coverage
// acceptance thresholds of spec.md §4.5.
func acceptBulge(g *gfa.Graph, base, alt gfa.Path, cov gfa.Coverage, opts BulgeOptions) bool {
	baseLen, altLen := base.TotalLength(g), alt.TotalLength(g)
	diff := altLen - baseLen
	if diff < 0 {
		diff = -diff
	}
	if diff > opts.MaxDiff {
		return false
	}
	if baseLen > altLen && baseLen-altLen > opts.MaxShortening {
		return false
	}

	altMinOvl, baseMinOvl := alt.MinOverlap(), base.MinOverlap()
	if altMinOvl < baseMinOvl && altMinOvl < opts.MinAltOverlap {
		return false
	}

	if !opts.HaveCoverage {
		return true
	}

	v, w := base.First(), base.Last()
	if cov.Value(g.SegmentName(v.ID)) > opts.MaxUniqueCov || cov.Value(g.SegmentName(w.ID)) > opts.MaxUniqueCov {
		return false
	}

	baseInner := minInnerCoverage(g, base, cov)
	altInner := minInnerCoverage(g, alt, cov)
	if altInner < bulgeCoverageEpsilon {
		return false
	}
	if baseInner/altInner > opts.MaxCoverageRatio {
		return false
	}
	return true
}

func minInnerCoverage(g *gfa.Graph, p gfa.Path, cov gfa.Coverage) float64 {
	min := math.MaxFloat64
	for _, seg := range p.Segments[1 : len(p.Segments)-1] {
		if c := cov.Value(g.SegmentName(seg.ID)); c < min {
			min = c
		}
	}
	return min
}

// RemoveSimpleBulges removes every single-vertex bulge it finds, processing
// candidates in increasing order of their min(incoming, outgoing) overlap
// (or by coverage, if UseCoverage is set) so weaker bulges are resolved
// first; a vertex on an accepted alternative path is protected from
// removal for the rest of the pass (spec.md §4.5).
func RemoveSimpleBulges(g *gfa.Graph, cov gfa.Coverage, opts BulgeOptions) Result {
	var res Result

	type candidate struct {
		minOvl int
		id     gfa.SegmentID
	}
	var candidates []candidate
	for id := 0; id < g.SegmentCount(); id++ {
		sid := gfa.SegmentID(id)
		if g.Segment(sid).Removed {
			continue
		}
		v := gfa.DS(sid, gfa.Forward)
		lout, okOut := g.UniqueOutgoing(v)
		lin, okIn := g.UniqueIncoming(v)
		if !okOut || !okIn {
			continue
		}
		minOvl := lout.StartOverlap
		if lin.EndOverlap < minOvl {
			minOvl = lin.EndOverlap
		}
		candidates = append(candidates, candidate{minOvl: minOvl, id: sid})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if opts.UseCoverage {
			return cov.Value(g.SegmentName(candidates[i].id)) < cov.Value(g.SegmentName(candidates[j].id))
		}
		return candidates[i].minOvl < candidates[j].minOvl
	})

	protected := make(map[gfa.SegmentID]bool)
	for _, c := range candidates {
		if g.Segment(c.id).Removed || protected[c.id] {
			continue
		}
		if formsSimpleBulge(g, gfa.DS(c.id, gfa.Forward), cov, opts, protected) ||
			formsSimpleBulge(g, gfa.DS(c.id, gfa.Reverse), cov, opts, protected) {
			res.segment(g, c.id)
		}
	}
	g.Cleanup()
	return res
}
