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
	"github.com/stretchr/testify/require"
)

// buildDiamond constructs A -> {B, C} -> D with the given B/C lengths,
// the shape used by spec.md §8 scenarios 1 and 6.
func buildDiamond(t *testing.T, bLen, cLen int) (*gfa.Graph, map[string]gfa.SegmentID) {
	t.Helper()
	g := gfa.NewGraph()
	ids := make(map[string]gfa.SegmentID)
	for name, length := range map[string]int{"A": 100, "B": bLen, "C": cLen, "D": 100} {
		ids[name] = g.AddSegment(gfa.Segment{Name: name, Length: length})
	}
	g.AddLink(gfa.DS(ids["A"], gfa.Forward), gfa.DS(ids["B"], gfa.Forward), 50, 50)
	g.AddLink(gfa.DS(ids["A"], gfa.Forward), gfa.DS(ids["C"], gfa.Forward), 50, 50)
	g.AddLink(gfa.DS(ids["B"], gfa.Forward), gfa.DS(ids["D"], gfa.Forward), 50, 50)
	g.AddLink(gfa.DS(ids["C"], gfa.Forward), gfa.DS(ids["D"], gfa.Forward), 50, 50)
	g.Reindex()
	return g, ids
}

// TestFindSuperbubble_Trivial mirrors spec.md §8 scenario 1: a 100-base
// diamond succeeds with start A+, end D+, all four vertices dominated, and
// the heaviest path picked by source-order tie-break.
func TestFindSuperbubble_Trivial(t *testing.T) {
	g, ids := buildDiamond(t, 100, 100)

	result, err := gfa.FindSuperbubble(g, gfa.MinOverlapWeight{}, gfa.DS(ids["A"], gfa.Forward), 10000, 2000, 1000)
	require.NoError(t, err)

	assert.Equal(t, gfa.DS(ids["A"], gfa.Forward), result.Start)
	assert.Equal(t, gfa.DS(ids["D"], gfa.Forward), result.End)
	assert.Len(t, result.Vertices, 4)
	assert.Equal(t, []gfa.DirectedSegment{
		gfa.DS(ids["A"], gfa.Forward),
		gfa.DS(ids["B"], gfa.Forward),
		gfa.DS(ids["D"], gfa.Forward),
	}, result.Path.Segments)
}

// TestFindSuperbubble_MaxDiffExceeded mirrors spec.md §8 scenario 6: B at
// length 100 and C at length 2500 spreads the end vertex's distance range
// past max_diff=2000, so no superbubble is reported.
func TestFindSuperbubble_MaxDiffExceeded(t *testing.T) {
	g, ids := buildDiamond(t, 100, 2500)

	_, err := gfa.FindSuperbubble(g, gfa.MinOverlapWeight{}, gfa.DS(ids["A"], gfa.Forward), 10000, 2000, 1000)
	assert.ErrorIs(t, err, gfa.ErrNoSuperbubble)
}

// TestFindSuperbubble_RequiresMultipleOutgoing checks spec.md §4.3's
// precondition: a source with a single outgoing arc can never anchor a
// superbubble search.
func TestFindSuperbubble_RequiresMultipleOutgoing(t *testing.T) {
	g := gfa.NewGraph()
	a := g.AddSegment(gfa.Segment{Name: "A", Length: 100})
	b := g.AddSegment(gfa.Segment{Name: "B", Length: 100})
	g.AddLink(gfa.DS(a, gfa.Forward), gfa.DS(b, gfa.Forward), 50, 50)
	g.Reindex()

	_, err := gfa.FindSuperbubble(g, gfa.MinOverlapWeight{}, gfa.DS(a, gfa.Forward), 10000, 2000, 1000)
	assert.ErrorIs(t, err, gfa.ErrNoSuperbubble)
}
