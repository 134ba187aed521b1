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

// TipClipOptions configures ClipTips (spec.md §4.5 Tip clipper).
type TipClipOptions struct {
	// MaxLength bounds the tip's own contributed length.
	MaxLength int

	// MaxReadCnt, if > 0, keeps any segment whose read count exceeds it
	// (a tip made of too many reads is unlikely to be spurious).
	MaxReadCnt int

	// ReadCounts is the optional external read-count map consulted when
	// MaxReadCnt > 0 (grounded on original_source's cnt_aware_tip_clipper.cpp,
	// which reads per-segment read counts from a side file analogous to
	// the coverage file).
	ReadCounts gfa.Coverage

	// UseCovThr enables the "coverage < CovThr" filter.
	UseCovThr bool
	CovThr    float64
}

// isTip implements spec.md §4.5: "A directed vertex v is a tip iff
// no_incoming(v) ∧ outgoing_link_cnt(v) == 1 ∧ incoming_link_cnt(l.end) ≥ 2
// ∧ segment_length(v) < max_length + l.start_overlap."
func isTip(g *gfa.Graph, v gfa.DirectedSegment, maxLength int) (gfa.Link, bool) {
	if !g.NoIncoming(v) {
		return gfa.Link{}, false
	}
	l, ok := g.UniqueOutgoing(v)
	if !ok {
		return gfa.Link{}, false
	}
	if g.IncomingLinkCount(l.End) < 2 {
		return gfa.Link{}, false
	}
	if g.SegmentLength(v.ID) >= maxLength+l.StartOverlap {
		return gfa.Link{}, false
	}
	return l, true
}

// ClipTips removes every tip in g, both strands, per TipClipOptions. It
// finishes with a single Cleanup (spec.md §4.5).
func ClipTips(g *gfa.Graph, cov gfa.Coverage, opts TipClipOptions) Result {
	var res Result
	for _, v := range g.DirectedSegments() {
		if g.Segment(v.ID).Removed {
			continue
		}
		name := g.SegmentName(v.ID)
		if opts.MaxReadCnt > 0 {
			if cnt, ok := opts.ReadCounts.Get(name); ok && cnt > float64(opts.MaxReadCnt) {
				continue
			}
		}
		if _, ok := isTip(g, v, opts.MaxLength); !ok {
			continue
		}
		if opts.UseCovThr {
			if c, ok := cov.Get(name); ok && c >= opts.CovThr {
				continue
			}
		}
		res.segment(g, v.ID)
	}
	g.Cleanup()
	return res
}
