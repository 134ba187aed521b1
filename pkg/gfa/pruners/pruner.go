// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package pruners implements the structural cleaning policies of spec.md
// §4.5: tip clipping, isolated-segment removal, low-coverage removal, loop
// killing, shortcut removal, simple bulge removal, non-genomic link removal,
// weak-overlap removal, and unbalanced-link removal. Every pruner follows
// the same shape: iterate segments or links, apply a local predicate, call
// gfa.Graph's delete_link/delete_segment, and finish with a single Cleanup
// (spec.md §9: "each pruner is a pair (predicate on local subgraph,
// side-effect on graph)").
package pruners

import "github.com/AleutianAI/gfaclean/pkg/gfa"

// Decision names the three outcomes a single pruner check can produce for
// one candidate vertex or arc (spec.md §9 Pruner abstraction). It exists
// for documentation parity with the spec; individual pruners below apply
// the deletion directly rather than routing through a dispatch table,
// since each predicate's shape differs too much to share one signature.
type Decision int

const (
	Keep Decision = iota
	DeleteArc
	DeleteVertex
)

// Result accumulates the deletion counts a pruning pass reports (spec.md
// §4.5: "They accumulate a deletion counter used only for reporting").
type Result struct {
	LinksDeleted    int
	SegmentsDeleted int
}

func (r *Result) link(g *gfa.Graph, l gfa.Link) {
	g.DeleteLink(l)
	r.LinksDeleted++
}

func (r *Result) segment(g *gfa.Graph, id gfa.SegmentID) {
	g.DeleteSegment(id)
	r.SegmentsDeleted++
}
