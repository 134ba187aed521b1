// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package gfa_test

import (
	"testing"

	"github.com/AleutianAI/gfaclean/pkg/gfa"
	"github.com/stretchr/testify/assert"
)

// buildChain builds A -> B -> C, each link with a 50-base overlap.
func buildChain(t *testing.T) (*gfa.Graph, map[string]gfa.SegmentID) {
	t.Helper()
	g := gfa.NewGraph()
	ids := make(map[string]gfa.SegmentID)
	for name, length := range map[string]int{"A": 100, "B": 100, "C": 100} {
		ids[name] = g.AddSegment(gfa.Segment{Name: name, Length: length})
	}
	g.AddLink(gfa.DS(ids["A"], gfa.Forward), gfa.DS(ids["B"], gfa.Forward), 50, 50)
	g.AddLink(gfa.DS(ids["B"], gfa.Forward), gfa.DS(ids["C"], gfa.Forward), 50, 50)
	g.Reindex()
	return g, ids
}

func TestNonBranchingForward_FollowsChain(t *testing.T) {
	g, ids := buildChain(t)

	path := gfa.NonBranchingForward(g, gfa.DS(ids["A"], gfa.Forward))

	assert.Equal(t, []gfa.DirectedSegment{
		gfa.DS(ids["A"], gfa.Forward),
		gfa.DS(ids["B"], gfa.Forward),
		gfa.DS(ids["C"], gfa.Forward),
	}, path.Segments)
}

func TestNonBranchingExtension_StopsAtBranch(t *testing.T) {
	g, ids := buildChain(t)
	d := g.AddSegment(gfa.Segment{Name: "D", Length: 100})
	g.AddLink(gfa.DS(ids["A"], gfa.Forward), gfa.DS(d, gfa.Forward), 50, 50)
	g.Reindex()

	_, ok := gfa.NonBranchingExtension(g, gfa.DS(ids["A"], gfa.Forward))
	assert.False(t, ok, "A now has two outgoing arcs, no longer a non-branching extension")
}

func TestUnambiguousBackwardPath_FindsPath(t *testing.T) {
	g, ids := buildChain(t)

	path, ok := gfa.UnambiguousBackwardPath(g, gfa.DS(ids["A"], gfa.Forward), gfa.DS(ids["C"], gfa.Forward))
	assert.True(t, ok)
	assert.Equal(t, []gfa.DirectedSegment{
		gfa.DS(ids["A"], gfa.Forward),
		gfa.DS(ids["B"], gfa.Forward),
		gfa.DS(ids["C"], gfa.Forward),
	}, path.Segments)
}

func TestUnambiguousBackwardPath_FailsOnBranch(t *testing.T) {
	g, ids := buildChain(t)
	d := g.AddSegment(gfa.Segment{Name: "D", Length: 100})
	g.AddLink(gfa.DS(d, gfa.Forward), gfa.DS(ids["C"], gfa.Forward), 50, 50)
	g.Reindex()

	_, ok := gfa.UnambiguousBackwardPath(g, gfa.DS(ids["A"], gfa.Forward), gfa.DS(ids["C"], gfa.Forward))
	assert.False(t, ok, "C now has two incoming arcs, backward walk is ambiguous")
}
