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
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/AleutianAI/gfaclean/pkg/gfa"
)

// WriteOptions configures WriteGraph (spec.md §6).
type WriteOptions struct {
	// DropSequence replaces every segment's sequence with "*" on output.
	DropSequence bool

	// Coverage, when non-zero-valued (HaveCoverage true), drives the
	// optional RC/ll tags on S records.
	HaveCoverage bool
	Coverage     gfa.Coverage

	// NormalizeOvls clamps an overlap to one less than the shorter
	// endpoint's length instead of writing a pathological value verbatim
	// (spec.md §7 kind 3).
	NormalizeOvls bool
}

// WriteGraph serializes g as GFA 1.0: an H record, then one S record per
// live segment in storage order, then one L record per live canonical link
// (spec.md §6). Only canonical links are emitted — the reader reconstructs
// both strands on load, so writing both halves would duplicate every arc.
func WriteGraph(w io.Writer, g *gfa.Graph, opts WriteOptions) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "H\tVN:Z:1.0"); err != nil {
		return err
	}

	for id := 0; id < g.SegmentCount(); id++ {
		sid := gfa.SegmentID(id)
		seg := g.Segment(sid)
		if seg.Removed {
			continue
		}
		if err := writeSegment(bw, g, sid, opts); err != nil {
			return err
		}
	}

	for _, l := range g.CanonicalLinks() {
		if err := writeLink(bw, g, l, opts); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeSegment(bw *bufio.Writer, g *gfa.Graph, sid gfa.SegmentID, opts WriteOptions) error {
	seg := g.Segment(sid)
	seq := "*"
	if seg.HasSequence() && !opts.DropSequence {
		seq = seg.Sequence
	}

	line := fmt.Sprintf("S\t%s\t%s\tLN:i:%d", seg.Name, seq, seg.Length)
	if opts.HaveCoverage {
		if cov, ok := opts.Coverage.Get(seg.Name); ok {
			rc := int64(math.Round(cov * float64(seg.Length)))
			line += fmt.Sprintf("\tRC:i:%d\tll:f:%.3f", rc, round3dp(cov))
		}
	}
	_, err := fmt.Fprintln(bw, line)
	return err
}

func writeLink(bw *bufio.Writer, g *gfa.Graph, l gfa.Link, opts WriteOptions) error {
	overlap := l.Overlap()
	if opts.NormalizeOvls {
		overlap = clampOverlap(g, l, overlap)
	}
	_, err := fmt.Fprintf(bw, "L\t%s\t%s\t%s\t%s\t%dM\n",
		g.SegmentName(l.Start.ID), l.Start.Dir, g.SegmentName(l.End.ID), l.End.Dir, overlap)
	return err
}

// clampOverlap bounds overlap to at most one less than the shorter
// endpoint's length, so a pathological input never round-trips into an
// equally pathological output (spec.md §7 kind 3).
func clampOverlap(g *gfa.Graph, l gfa.Link, overlap int) int {
	max := g.SegmentLength(l.Start.ID) - 1
	if end := g.SegmentLength(l.End.ID) - 1; end < max {
		max = end
	}
	if max < 0 {
		max = 0
	}
	if overlap > max {
		return max
	}
	return overlap
}

func round3dp(v float64) float64 {
	return math.Round(v*1000) / 1000
}
