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

// IsolatedOptions configures RemoveIsolated (spec.md §4.5 Isolated remover).
type IsolatedOptions struct {
	MaxLength int
	UseCovThr bool
	CovThr    float64
}

// RemoveIsolated deletes every segment with no incident arcs at all and a
// length below MaxLength (spec.md: "Remove v iff no_incoming(v) ∧
// no_outgoing(v) ∧ segment_length(v) < max_length"). Checking the FORWARD
// strand alone suffices: no_incoming(Forward)/no_outgoing(Forward) are
// equivalent to no_outgoing(Reverse)/no_incoming(Reverse) by the twin
// relationship, so a segment isolated on one strand is isolated on both.
func RemoveIsolated(g *gfa.Graph, cov gfa.Coverage, opts IsolatedOptions) Result {
	var res Result
	for id := 0; id < g.SegmentCount(); id++ {
		sid := gfa.SegmentID(id)
		if g.Segment(sid).Removed {
			continue
		}
		v := gfa.DS(sid, gfa.Forward)
		if !g.NoIncoming(v) || !g.NoOutgoing(v) {
			continue
		}
		if g.SegmentLength(sid) >= opts.MaxLength {
			continue
		}
		if opts.UseCovThr {
			if c, ok := cov.Get(g.SegmentName(sid)); ok && c >= opts.CovThr {
				continue
			}
		}
		res.segment(g, sid)
	}
	g.Cleanup()
	return res
}
