// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package gfaio

import (
	"strings"
	"testing"

	"github.com/AleutianAI/gfaclean/pkg/gfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "H\tVN:Z:1.0\n" +
	"S\ts1\tACGTACGTAC\tLN:i:10\n" +
	"S\ts2\tTTTTTCCCCC\tLN:i:10\n" +
	"L\ts1\t+\ts2\t+\t4M\n"

func TestReadGraph_Basic(t *testing.T) {
	g, warnings, err := ReadGraph(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 2, g.SegmentCount())
	assert.Equal(t, 1, g.LinkCount())

	s1, ok := g.SegmentIDByName("s1")
	require.True(t, ok)
	out := g.OutgoingLinks(gfa.DS(s1, gfa.Forward))
	require.Len(t, out, 1)
	assert.Equal(t, 4, out[0].StartOverlap)
}

func TestReadGraph_DuplicateSegmentWarns(t *testing.T) {
	input := "H\tVN:Z:1.0\n" +
		"S\ts1\tACGT\tLN:i:4\n" +
		"S\ts1\tTTTT\tLN:i:4\n"
	g, warnings, err := ReadGraph(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], gfa.ErrDuplicateSegment)
	assert.Equal(t, 1, g.SegmentCount())
}

func TestReadGraph_UnknownSegmentRefWarns(t *testing.T) {
	input := "H\tVN:Z:1.0\n" +
		"S\ts1\tACGT\tLN:i:4\n" +
		"L\ts1\t+\tmissing\t+\t2M\n"
	_, warnings, err := ReadGraph(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], gfa.ErrUnknownSegmentRef)
}

func TestReadGraph_PathologicalOverlapWarns(t *testing.T) {
	input := "H\tVN:Z:1.0\n" +
		"S\ts1\tACGT\tLN:i:4\n" +
		"S\ts2\tACGT\tLN:i:4\n" +
		"L\ts1\t+\ts2\t+\t4M\n"
	g, warnings, err := ReadGraph(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], gfa.ErrPathologicalOverlap)
	assert.Equal(t, 1, g.LinkCount(), "the pathological link is still added, just warned about")
}

// TestWriteThenReadRoundTrip exercises spec.md §8's GFA round-trip law:
// write then read back yields an isomorphic graph.
func TestWriteThenReadRoundTrip(t *testing.T) {
	g, _, err := ReadGraph(strings.NewReader(sample))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteGraph(&buf, g, WriteOptions{}))

	g2, warnings, err := ReadGraph(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, g.SegmentCount(), g2.SegmentCount())
	assert.Equal(t, g.LinkCount(), g2.LinkCount())
	for id := 0; id < g.SegmentCount(); id++ {
		sid := gfa.SegmentID(id)
		name := g.SegmentName(sid)
		sid2, ok := g2.SegmentIDByName(name)
		require.True(t, ok)
		assert.Equal(t, g.SegmentLength(sid), g2.SegmentLength(sid2))
	}
}

func TestWriteGraph_DropSequence(t *testing.T) {
	g, _, err := ReadGraph(strings.NewReader(sample))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteGraph(&buf, g, WriteOptions{DropSequence: true}))
	assert.Contains(t, buf.String(), "S\ts1\t*\tLN:i:10")
}

func TestWriteGraph_CoverageTags(t *testing.T) {
	g, _, err := ReadGraph(strings.NewReader(sample))
	require.NoError(t, err)
	cov := gfa.NewCoverage(map[string]float64{"s1": 12.3456, "s2": 5})

	var buf strings.Builder
	require.NoError(t, WriteGraph(&buf, g, WriteOptions{HaveCoverage: true, Coverage: cov}))
	out := buf.String()
	assert.Contains(t, out, "RC:i:123\tll:f:12.346")
}

func TestWriteGraph_NormalizeOvls(t *testing.T) {
	input := "H\tVN:Z:1.0\n" +
		"S\ts1\tACGT\tLN:i:4\n" +
		"S\ts2\tACGT\tLN:i:4\n" +
		"L\ts1\t+\ts2\t+\t4M\n"
	g, _, err := ReadGraph(strings.NewReader(input))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteGraph(&buf, g, WriteOptions{NormalizeOvls: true}))
	assert.Contains(t, buf.String(), "L\ts1\t+\ts2\t+\t3M")
}
