// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package gfa implements the bidirected assembly-graph state machine: the
// Segment/Link store, its traversal primitives, the superbubble finder, the
// compactor, and the structural pruners built on top of them.
package gfa

// Direction is the two-valued strand tag of a DirectedSegment.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

// Complement flips Forward<->Reverse.
func (d Direction) Complement() Direction {
	if d == Forward {
		return Reverse
	}
	return Forward
}

func (d Direction) String() string {
	if d == Forward {
		return "+"
	}
	return "-"
}

// SegmentID identifies a Segment within a Graph's segment sequence.
type SegmentID int

// DirectedSegment is a (segment, strand) pair — one of the two bidirected
// vertices a Segment contributes to the graph.
type DirectedSegment struct {
	ID  SegmentID
	Dir Direction
}

// DS is a small constructor for readability at call sites.
func DS(id SegmentID, dir Direction) DirectedSegment {
	return DirectedSegment{ID: id, Dir: dir}
}

// Complement returns the other strand of the same segment.
func (v DirectedSegment) Complement() DirectedSegment {
	return DirectedSegment{ID: v.ID, Dir: v.Dir.Complement()}
}

// InnerIndex is the dense key id*2 + (Dir==Reverse ? 1 : 0) used to index
// the flat sorted arc list.
func (v DirectedSegment) InnerIndex() int {
	if v.Dir == Reverse {
		return int(v.ID)*2 + 1
	}
	return int(v.ID) * 2
}

// DirectedSegmentFromInnerIndex inverts InnerIndex.
func DirectedSegmentFromInnerIndex(idx int) DirectedSegment {
	id := SegmentID(idx / 2)
	if idx%2 == 1 {
		return DirectedSegment{ID: id, Dir: Reverse}
	}
	return DirectedSegment{ID: id, Dir: Forward}
}
