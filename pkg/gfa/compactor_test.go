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

func TestCompact_MergesNonBranchingChain(t *testing.T) {
	g := gfa.NewGraph()
	a := g.AddSegment(gfa.Segment{Name: "A", Length: 10, Sequence: "ACGTACGTAC"})
	b := g.AddSegment(gfa.Segment{Name: "B", Length: 10, Sequence: "TACGTACGTA"})
	g.AddLink(gfa.DS(a, gfa.Forward), gfa.DS(b, gfa.Forward), 5, 5)
	g.Reindex()

	out, mapping, err := gfa.Compact(g, gfa.CompactOptions{Prefix: "m_"})
	require.NoError(t, err)

	require.Equal(t, 1, out.SegmentCount())
	require.Equal(t, 0, out.LinkCount())

	newID, ok := out.SegmentIDByName("m_1")
	require.True(t, ok)
	seg := out.Segment(newID)
	assert.Equal(t, 15, seg.Length)
	assert.Equal(t, "ACGTACGTACACGTA", seg.Sequence)
	require.Len(t, mapping, 1)
	assert.Equal(t, "m_1", mapping[0].NewName)
	assert.Equal(t, []string{"A", "B"}, mapping[0].Orig)
}

func TestCompact_TrivialPathKeepsOriginalName(t *testing.T) {
	g := gfa.NewGraph()
	a := g.AddSegment(gfa.Segment{Name: "A", Length: 100})
	b := g.AddSegment(gfa.Segment{Name: "B", Length: 100})
	c := g.AddSegment(gfa.Segment{Name: "C", Length: 100})
	// A branches to both B and C, so A itself is a trivial one-vertex path.
	g.AddLink(gfa.DS(a, gfa.Forward), gfa.DS(b, gfa.Forward), 50, 50)
	g.AddLink(gfa.DS(a, gfa.Forward), gfa.DS(c, gfa.Forward), 50, 50)
	g.Reindex()

	out, _, err := gfa.Compact(g, gfa.CompactOptions{Prefix: "m_"})
	require.NoError(t, err)

	_, ok := out.SegmentIDByName("A")
	assert.True(t, ok, "a trivial single-vertex path keeps its original name")
}

func TestCompact_RenameAllForcesPrefixedNames(t *testing.T) {
	g := gfa.NewGraph()
	a := g.AddSegment(gfa.Segment{Name: "A", Length: 100})
	b := g.AddSegment(gfa.Segment{Name: "B", Length: 100})
	c := g.AddSegment(gfa.Segment{Name: "C", Length: 100})
	g.AddLink(gfa.DS(a, gfa.Forward), gfa.DS(b, gfa.Forward), 50, 50)
	g.AddLink(gfa.DS(a, gfa.Forward), gfa.DS(c, gfa.Forward), 50, 50)
	g.Reindex()

	out, _, err := gfa.Compact(g, gfa.CompactOptions{Prefix: "m_", RenameAll: true})
	require.NoError(t, err)

	_, ok := out.SegmentIDByName("A")
	assert.False(t, ok, "RenameAll forces even trivial paths to a prefixed name")
}

func TestAccumulateCoverage_WeightedByLength(t *testing.T) {
	g := gfa.NewGraph()
	a := g.AddSegment(gfa.Segment{Name: "A", Length: 10})
	b := g.AddSegment(gfa.Segment{Name: "B", Length: 30})
	g.AddLink(gfa.DS(a, gfa.Forward), gfa.DS(b, gfa.Forward), 5, 5)
	g.Reindex()

	cov := gfa.NewCoverage(map[string]float64{"A": 10, "B": 20})
	link := g.OutgoingLinks(gfa.DS(a, gfa.Forward))[0]
	path := gfa.NewPath(gfa.DS(a, gfa.Forward)).Extend(link)

	got := gfa.AccumulateCoverage(g, path, cov, 0)
	assert.InDelta(t, 17.5, got, 1e-9) // (10*10 + 30*20) / 40
}
