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

// WeakLinkOptions configures RemoveWeakLinks (spec.md §4.5 Weak-link
// removal).
type WeakLinkOptions struct {
	MinOverlap      int
	PreventDeadends bool
}

func strongestOverlap(l gfa.Link) int {
	if l.StartOverlap > l.EndOverlap {
		return l.StartOverlap
	}
	return l.EndOverlap
}

// wouldBeDeadend reports whether deleting l would leave its target with no
// incoming arcs at all.
func wouldBeDeadend(g *gfa.Graph, l gfa.Link) bool {
	return g.IncomingLinkCount(l.End) == 1
}

// RemoveWeakLinks deletes every outgoing arc of v whose stronger-side
// overlap falls below MinOverlap, except that v always keeps its single
// strongest outgoing arc even if that arc is itself below threshold
// (spec.md §4.5: "keep at least one").
func RemoveWeakLinks(g *gfa.Graph, opts WeakLinkOptions) Result {
	var res Result
	for _, v := range g.DirectedSegments() {
		if g.Segment(v.ID).Removed {
			continue
		}
		out := g.OutgoingLinks(v)
		if len(out) == 0 {
			continue
		}

		maxOvl := strongestOverlap(out[0])
		strongest := 0
		for i, l := range out[1:] {
			if ovl := strongestOverlap(l); ovl > maxOvl {
				maxOvl = ovl
				strongest = i + 1
			}
		}

		for i, l := range out {
			if strongestOverlap(l) >= opts.MinOverlap {
				continue
			}
			if maxOvl < opts.MinOverlap && i == strongest {
				continue
			}
			if opts.PreventDeadends && wouldBeDeadend(g, l) {
				continue
			}
			res.link(g, l)
		}
	}
	g.Cleanup()
	return res
}
