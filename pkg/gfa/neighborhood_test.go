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

// buildLine builds A -> B -> C -> D, each link with a 50-base overlap.
func buildLine(t *testing.T) *gfa.Graph {
	t.Helper()
	g := gfa.NewGraph()
	ids := make(map[string]gfa.SegmentID)
	for name, length := range map[string]int{"A": 100, "B": 100, "C": 100, "D": 100} {
		ids[name] = g.AddSegment(gfa.Segment{Name: name, Length: length})
	}
	g.AddLink(gfa.DS(ids["A"], gfa.Forward), gfa.DS(ids["B"], gfa.Forward), 50, 50)
	g.AddLink(gfa.DS(ids["B"], gfa.Forward), gfa.DS(ids["C"], gfa.Forward), 50, 50)
	g.AddLink(gfa.DS(ids["C"], gfa.Forward), gfa.DS(ids["D"], gfa.Forward), 50, 50)
	g.Reindex()
	return g
}

// TestExtractNeighborhood_RadiusZero mirrors spec.md §8 property 8: radius
// 0 returns exactly the seed set.
func TestExtractNeighborhood_RadiusZero(t *testing.T) {
	g := buildLine(t)

	sub, err := gfa.ExtractNeighborhood(g, []string{"B"}, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, sub.SegmentCount())
	assert.Equal(t, 0, sub.LinkCount())
	_, ok := sub.SegmentIDByName("B")
	assert.True(t, ok)
}

func TestExtractNeighborhood_ExpandsBothDirections(t *testing.T) {
	g := buildLine(t)

	sub, err := gfa.ExtractNeighborhood(g, []string{"B"}, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, sub.SegmentCount(), "A, B, C are within radius 1 of B")
	for _, name := range []string{"A", "B", "C"} {
		_, ok := sub.SegmentIDByName(name)
		assert.True(t, ok, "%s should be present", name)
	}
	_, ok := sub.SegmentIDByName("D")
	assert.False(t, ok, "D is at distance 2, outside radius 1")
}

func TestExtractNeighborhood_UnknownSeed(t *testing.T) {
	g := buildLine(t)

	_, err := gfa.ExtractNeighborhood(g, []string{"nonexistent"}, 1)
	assert.ErrorIs(t, err, gfa.ErrUnknownSegmentRef)
}
