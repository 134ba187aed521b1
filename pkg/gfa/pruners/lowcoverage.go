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

// LowCoverageOptions configures RemoveLowCoverage (spec.md §4.5 Low-coverage
// remover).
type LowCoverageOptions struct {
	MaxLength int
	CovThr    float64
}

// RemoveLowCoverage deletes every FORWARD segment at or below MaxLength
// whose coverage is below CovThr (spec.md: "For each FORWARD v with
// segment_length(v) ≤ max_length and coverage < cov_thr, delete v").
// Segments absent from cov are treated as having no coverage evidence and
// are left alone.
func RemoveLowCoverage(g *gfa.Graph, cov gfa.Coverage, opts LowCoverageOptions) Result {
	var res Result
	for id := 0; id < g.SegmentCount(); id++ {
		sid := gfa.SegmentID(id)
		if g.Segment(sid).Removed {
			continue
		}
		if g.SegmentLength(sid) > opts.MaxLength {
			continue
		}
		c, ok := cov.Get(g.SegmentName(sid))
		if !ok || c >= opts.CovThr {
			continue
		}
		res.segment(g, sid)
	}
	g.Cleanup()
	return res
}
