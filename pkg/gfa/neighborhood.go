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

// ExtractNeighborhood runs the bounded bidirected BFS of spec.md §4.6: it
// seeds both directed vertices of every named segment, expands along both
// outgoing and incoming neighbors up to radius, and re-expands a vertex
// whenever it is reached at a strictly lower depth than previously
// recorded. g is read but not mutated; the result is the induced subgraph
// (every visited segment as an S-record, every canonical link with both
// endpoints visited as an L-record).
func ExtractNeighborhood(g *Graph, names []string, radius int) (*Graph, error) {
	depth := make(map[DirectedSegment]int)
	var queue []DirectedSegment

	for _, name := range names {
		id, ok := g.SegmentIDByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSegmentRef, name)
		}
		for _, dir := range [2]Direction{Forward, Reverse} {
			v := DS(id, dir)
			depth[v] = 0
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		d := depth[v]
		if d >= radius {
			continue
		}

		var neighbors []DirectedSegment
		for _, l := range g.OutgoingLinks(v) {
			neighbors = append(neighbors, l.End)
		}
		for _, l := range g.IncomingLinks(v) {
			neighbors = append(neighbors, l.Start)
		}

		for _, w := range neighbors {
			nd := d + 1
			if existing, ok := depth[w]; !ok || nd < existing {
				depth[w] = nd
				queue = append(queue, w)
			}
		}
	}

	segmentIDs := make(map[SegmentID]bool)
	for v := range depth {
		segmentIDs[v.ID] = true
	}

	out := NewGraph()
	oldToNew := make(map[SegmentID]SegmentID, len(segmentIDs))
	for id := 0; id < g.SegmentCount(); id++ {
		sid := SegmentID(id)
		if !segmentIDs[sid] {
			continue
		}
		seg := *g.Segment(sid)
		oldToNew[sid] = out.AddSegment(seg)
	}

	for _, l := range g.CanonicalLinks() {
		if _, ok := depth[l.Start]; !ok {
			continue
		}
		if _, ok := depth[l.End]; !ok {
			continue
		}
		newStart := DS(oldToNew[l.Start.ID], l.Start.Dir)
		newEnd := DS(oldToNew[l.End.ID], l.End.Dir)
		out.AddLink(newStart, newEnd, l.StartOverlap, l.EndOverlap)
	}

	out.Reindex()
	return out, nil
}
