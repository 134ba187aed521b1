// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package gfa

import "fmt"

// CompactOptions configures Compact (spec.md §4.4, §6 common CLI flags).
type CompactOptions struct {
	// Prefix names newly created segments "<Prefix><counter>". "_" means
	// empty prefix. Default "m_".
	Prefix string

	// RenameAll forces every output segment (even trivial, single-vertex
	// paths) to take a prefixed name instead of keeping its original one.
	RenameAll bool

	// DropSequence suppresses sequence output; segments are written as
	// length-only ("*").
	DropSequence bool

	// NormalizeOvls clamps an inter-path link's overlap to
	// min(length(start), length(end)) - 1.
	NormalizeOvls bool

	// DBGK, if non-zero, enables De Bruijn graph coverage-accumulation
	// mode: the weight per internal segment is length-k instead of
	// length, and every internal arc's EndOverlap must equal k exactly.
	DBGK int

	// Coverage is optional. Compact does not read it: the graph it returns
	// carries no per-segment coverage. AccumulateCoverage computes the
	// weighted coverage of a single path on request.
	Coverage Coverage
}

// IDMappingEntry records one newly emitted segment's original segment
// names (spec.md §4.4 "Output": the optional new_name -> orig1,orig2,...
// side file).
type IDMappingEntry struct {
	NewName string
	Orig    []string
}

// IDMapping is an ordered list of IDMappingEntry, in the same forward
// discovery order Compact finds each non-branching path (spec.md §5
// "Ordering guarantees"), so that WriteIDMapping produces byte-identical
// output across runs on identical input, matching
// original_source/src/compact.hpp:356-358's single deterministic forward
// pass that writes each mapping line as its path is discovered. A plain
// map here would let Go's randomized map iteration reorder the file from
// run to run.
type IDMapping []IDMappingEntry

// Compact collapses every maximal non-branching path of g into a single
// new segment, returning a freshly built Graph and the name mapping. g is
// read but not mutated.
func Compact(g *Graph, opts CompactOptions) (*Graph, IDMapping, error) {
	prefix := opts.Prefix
	if prefix == "_" {
		prefix = ""
	} else if prefix == "" {
		prefix = "m_"
	}

	out := NewGraph()
	var mapping IDMapping
	endpoint := make(map[DirectedSegment]DirectedSegment)
	absorbed := make(map[LinkID]bool)
	used := make(map[SegmentID]bool)
	counter := 1

	record := func(v DirectedSegment, newDS DirectedSegment) {
		endpoint[v] = newDS
		endpoint[v.Complement()] = newDS.Complement()
	}

	for id := 0; id < g.SegmentCount(); id++ {
		sid := SegmentID(id)
		if g.Segment(sid).Removed || used[sid] {
			continue
		}

		v := DS(sid, Forward)
		p := NonBranchingPath(g, v)
		for _, seg := range p.Segments {
			used[seg.ID] = true
		}
		for _, l := range p.Links {
			absorbed[l.ID] = true
		}

		trivial := len(p.Segments) == 1
		var name string
		if trivial && !opts.RenameAll {
			name = g.SegmentName(p.Segments[0].ID)
		} else {
			name = fmt.Sprintf("%s%d", prefix, counter)
			counter++
		}

		sequence, length, err := accumulateSequence(g, p, opts)
		if err != nil {
			return nil, nil, err
		}
		if opts.DropSequence {
			sequence = ""
		}

		newID := out.AddSegment(Segment{Name: name, Length: length, Sequence: sequence})

		origNames := make([]string, len(p.Segments))
		for i, seg := range p.Segments {
			origNames[i] = g.SegmentName(seg.ID)
		}
		mapping = append(mapping, IDMappingEntry{NewName: name, Orig: origNames})

		record(p.First(), DS(newID, Forward))
		record(p.Last(), DS(newID, Forward))
	}

	for _, l := range g.CanonicalLinks() {
		if absorbed[l.ID] {
			continue
		}
		newStart, ok1 := endpoint[l.Start]
		newEnd, ok2 := endpoint[l.End]
		if !ok1 || !ok2 {
			continue
		}

		overlap := l.Overlap()
		if opts.NormalizeOvls {
			cap := out.SegmentLength(newStart.ID)
			if el := out.SegmentLength(newEnd.ID); el < cap {
				cap = el
			}
			cap--
			if overlap > cap {
				overlap = cap
			}
		}
		out.AddLink(newStart, newEnd, overlap, overlap)
	}

	out.Reindex()
	return out, mapping, nil
}

// accumulateSequence implements the sequence and length parts of spec.md
// §4.4 step 3. It does not compute coverage; Compact does not call
// AccumulateCoverage either.
func accumulateSequence(g *Graph, p Path, opts CompactOptions) (string, int, error) {
	length := g.SegmentLength(p.Segments[0].ID)
	haveSeq := g.Segment(p.Segments[0].ID).HasSequence()
	sequence := g.Segment(p.Segments[0].ID).DirectedSequence(p.Segments[0].Dir)

	for _, l := range p.Links {
		if opts.DBGK != 0 && l.EndOverlap != opts.DBGK {
			return "", 0, fmt.Errorf("%w: got %d, want %d", ErrDBGOverlapMismatch, l.EndOverlap, opts.DBGK)
		}

		seg := g.Segment(l.End.ID)
		length += seg.Length - l.EndOverlap

		if !haveSeq || !seg.HasSequence() {
			haveSeq = false
			continue
		}
		next := seg.DirectedSequence(l.End.Dir)
		if l.EndOverlap <= len(next) {
			sequence += next[l.EndOverlap:]
		}
	}

	if !haveSeq {
		return "", length, nil
	}
	return sequence, length, nil
}

// AccumulateCoverage implements spec.md §4.4 step 3's coverage rule:
// weighted mean of per-segment coverage, weighted by segment length (or
// length-k in DBG mode, with the divisor also reduced by k).
func AccumulateCoverage(g *Graph, p Path, cov Coverage, dbgK int) float64 {
	var weightedSum, totalWeight float64
	for _, seg := range p.Segments {
		length := g.SegmentLength(seg.ID)
		weight := float64(length)
		if dbgK != 0 {
			weight = float64(length - dbgK)
		}
		weightedSum += weight * cov.Value(g.SegmentName(seg.ID))
		totalWeight += weight
	}
	if totalWeight <= 0 {
		return 0
	}
	return weightedSum / totalWeight
}
