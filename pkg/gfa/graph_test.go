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

func TestAddLink_SymmetricTwin(t *testing.T) {
	g := gfa.NewGraph()
	a := g.AddSegment(gfa.Segment{Name: "A", Length: 100})
	b := g.AddSegment(gfa.Segment{Name: "B", Length: 100})
	g.AddLink(gfa.DS(a, gfa.Forward), gfa.DS(b, gfa.Forward), 30, 40)
	g.Reindex()

	out, ok := g.UniqueOutgoing(gfa.DS(a, gfa.Forward))
	require.True(t, ok)
	assert.Equal(t, gfa.DS(b, gfa.Forward), out.End)

	twinOut, ok := g.UniqueOutgoing(gfa.DS(b, gfa.Reverse))
	require.True(t, ok)
	assert.Equal(t, gfa.DS(a, gfa.Reverse), twinOut.End)
	assert.Equal(t, out.ID, twinOut.ID, "a link and its reverse-complement twin share a LinkID")
}

func TestDeleteSegment_PropagatesToIncomingSide(t *testing.T) {
	g := gfa.NewGraph()
	a := g.AddSegment(gfa.Segment{Name: "A", Length: 100})
	b := g.AddSegment(gfa.Segment{Name: "B", Length: 100})
	g.AddLink(gfa.DS(a, gfa.Forward), gfa.DS(b, gfa.Forward), 50, 50)
	g.Reindex()

	g.DeleteSegment(b)
	assert.False(t, g.CheckNoDeadLinks(), "A's outgoing half isn't marked by DeleteSegment(B) alone")

	g.FixSymmetricDeletion()
	assert.Equal(t, 0, g.OutgoingLinkCount(gfa.DS(a, gfa.Forward)))
}

func TestCleanup_PhysicallyDropsRemoved(t *testing.T) {
	g := gfa.NewGraph()
	a := g.AddSegment(gfa.Segment{Name: "A", Length: 100})
	b := g.AddSegment(gfa.Segment{Name: "B", Length: 100})
	c := g.AddSegment(gfa.Segment{Name: "C", Length: 100})
	g.AddLink(gfa.DS(a, gfa.Forward), gfa.DS(b, gfa.Forward), 50, 50)
	g.AddLink(gfa.DS(b, gfa.Forward), gfa.DS(c, gfa.Forward), 50, 50)
	g.Reindex()

	g.DeleteSegment(b)
	g.Cleanup()

	assert.Equal(t, 2, g.SegmentCount())
	assert.True(t, g.CheckNoDeadLinks())
	_, ok := g.SegmentIDByName("B")
	assert.False(t, ok)
	newA, ok := g.SegmentIDByName("A")
	require.True(t, ok)
	assert.Equal(t, 0, g.OutgoingLinkCount(gfa.DS(newA, gfa.Forward)))
}

func TestCanonicalLinks_OnePerTwinPair(t *testing.T) {
	g := gfa.NewGraph()
	a := g.AddSegment(gfa.Segment{Name: "A", Length: 100})
	b := g.AddSegment(gfa.Segment{Name: "B", Length: 100})
	g.AddLink(gfa.DS(a, gfa.Forward), gfa.DS(b, gfa.Forward), 50, 50)
	g.Reindex()

	canonical := g.CanonicalLinks()
	assert.Len(t, canonical, 1)
	assert.Equal(t, 1, g.LinkCount())
}
