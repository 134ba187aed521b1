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

// UnbalancedOptions configures RemoveUnbalancedLinks (spec.md §4.5
// Unbalanced-link removal).
type UnbalancedOptions struct {
	CoverageRatio float64
}

// RemoveUnbalancedLinks deletes an outgoing arc v->w when w's coverage is
// at or below CoverageRatio times v's coverage, unless w happens to be the
// most-covered of v's outgoing neighbours (spec.md §4.5: "Delete each
// outgoing arc whose coverage(end) ≤ coverage_ratio * c_v unless
// coverage(end) == max_out_nb_cov").
func RemoveUnbalancedLinks(g *gfa.Graph, cov gfa.Coverage, opts UnbalancedOptions) Result {
	var res Result
	for _, v := range g.DirectedSegments() {
		if g.Segment(v.ID).Removed {
			continue
		}
		out := g.OutgoingLinks(v)
		if len(out) == 0 {
			continue
		}

		maxNbCov := cov.Value(g.SegmentName(out[0].End.ID))
		for _, l := range out[1:] {
			if c := cov.Value(g.SegmentName(l.End.ID)); c > maxNbCov {
				maxNbCov = c
			}
		}

		baseline := cov.Value(g.SegmentName(v.ID))
		threshold := opts.CoverageRatio * baseline

		for _, l := range out {
			c := cov.Value(g.SegmentName(l.End.ID))
			if c > threshold {
				continue
			}
			if c == maxNbCov {
				continue
			}
			res.link(g, l)
		}
	}
	g.Cleanup()
	return res
}
