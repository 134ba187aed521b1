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

import "math"

// Path is an ordered sequence of n DirectedSegments joined by n-1 Links:
// Links[i].Start == Segments[i] and Links[i].End == Segments[i+1].
type Path struct {
	Segments []DirectedSegment
	Links    []Link
}

// NewPath constructs a single-vertex path with no links.
func NewPath(v DirectedSegment) Path {
	return Path{Segments: []DirectedSegment{v}}
}

// Extend appends (l.End, l) to the path. The caller guarantees
// l.Start == p.Last().
func (p Path) Extend(l Link) Path {
	segments := make([]DirectedSegment, len(p.Segments)+1)
	copy(segments, p.Segments)
	segments[len(p.Segments)] = l.End

	links := make([]Link, len(p.Links)+1)
	copy(links, p.Links)
	links[len(p.Links)] = l

	return Path{Segments: segments, Links: links}
}

// Last returns the final vertex on the path.
func (p Path) Last() DirectedSegment {
	return p.Segments[len(p.Segments)-1]
}

// First returns the initial vertex on the path.
func (p Path) First() DirectedSegment {
	return p.Segments[0]
}

// TotalLength is length(first) + sum(length(links[i].End) -
// links[i].EndOverlap), the base count the path actually spans
// (spec.md §3).
func (p Path) TotalLength(g *Graph) int {
	total := g.SegmentLength(p.Segments[0].ID)
	for _, l := range p.Links {
		total += g.SegmentLength(l.End.ID) - l.EndOverlap
	}
	return total
}

// MinOverlap returns the minimum EndOverlap across the path's links, or
// MaxInt if the path has no links (a single-segment path), matching
// property test 4 in spec.md §8: MinOverlap() >= 0 unless len(Segments)==1.
func (p Path) MinOverlap() int {
	if len(p.Links) == 0 {
		return math.MaxInt
	}
	min := p.Links[0].EndOverlap
	for _, l := range p.Links[1:] {
		if l.EndOverlap < min {
			min = l.EndOverlap
		}
	}
	return min
}

// Complement reverses the order of the path and complements every
// element, so that g.TotalLength(p.Complement()) == g.TotalLength(p)
// (spec.md §8 property 3).
func (p Path) Complement() Path {
	n := len(p.Segments)
	segments := make([]DirectedSegment, n)
	for i, v := range p.Segments {
		segments[n-1-i] = v.Complement()
	}

	links := make([]Link, len(p.Links))
	for i, l := range p.Links {
		links[len(p.Links)-1-i] = l.Complement()
	}

	return Path{Segments: segments, Links: links}
}
