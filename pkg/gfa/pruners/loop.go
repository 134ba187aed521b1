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

// LoopKillOptions configures KillLoops (spec.md §4.5 Loop killer).
type LoopKillOptions struct {
	MaxBaseCoverage float64
}

// KillLoops deletes self-loop arcs at branching vertices whose coverage is
// low enough to be a spurious artifact (spec.md: "For each FORWARD v with
// in_cnt ≥ 2 ∧ out_cnt ≥ 2, delete every self-loop arc (l.end == v)
// provided coverage(v) ≤ max_base_coverage").
func KillLoops(g *gfa.Graph, cov gfa.Coverage, opts LoopKillOptions) Result {
	var res Result
	for id := 0; id < g.SegmentCount(); id++ {
		sid := gfa.SegmentID(id)
		if g.Segment(sid).Removed {
			continue
		}
		v := gfa.DS(sid, gfa.Forward)
		if g.IncomingLinkCount(v) < 2 || g.OutgoingLinkCount(v) < 2 {
			continue
		}
		if cov.Value(g.SegmentName(sid)) > opts.MaxBaseCoverage {
			continue
		}
		for _, l := range g.OutgoingLinks(v) {
			if l.End == v {
				res.link(g, l)
			}
		}
	}
	g.Cleanup()
	return res
}
