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

import "sort"

// Graph is the bidirected assembly-graph store: segments in an ordered
// sequence indexed by SegmentID, and arcs in a single flat list sorted and
// indexed by the inner vertex id of each arc's Start (spec.md §4.1).
//
// Readers populate both strands of every link (spec.md §6): AddLink
// appends both a link and its twin, so Outgoing(v) is always a direct
// slice lookup and Incoming(v) is derived lazily as the complement view
// of Outgoing(v.Complement()) — there is exactly one physical arc list,
// which is what guarantees the symmetric-link invariant by construction.
//
// Graph is not safe for concurrent use (spec.md §5); it is owned
// exclusively by its driver for the duration of one tool invocation.
type Graph struct {
	segments []Segment
	arcs     []Link

	offsets    []int // len 2*len(segments)+1; outgoing range for inner vertex v is arcs[offsets[v]:offsets[v+1]]
	idIndex    map[LinkID][2]int
	nameIndex  map[string]SegmentID
	nextLinkID LinkID
}

// NewGraph returns an empty, unindexed Graph ready for AddSegment/AddLink.
func NewGraph() *Graph {
	return &Graph{nameIndex: make(map[string]SegmentID)}
}

// AddSegment appends a new segment and returns its id. Invalidates the
// index; call Reindex before querying or traversing.
func (g *Graph) AddSegment(seg Segment) SegmentID {
	id := SegmentID(len(g.segments))
	g.segments = append(g.segments, seg)
	g.nameIndex[seg.Name] = id
	g.offsets = nil
	return id
}

// AddLink appends a link and its reverse-complement twin, sharing a new
// LinkID. Invalidates the index; call Reindex before querying or
// traversing.
func (g *Graph) AddLink(start, end DirectedSegment, startOverlap, endOverlap int) LinkID {
	id := g.nextLinkID
	g.nextLinkID++
	l := Link{ID: id, Start: start, End: end, StartOverlap: startOverlap, EndOverlap: endOverlap}
	g.arcs = append(g.arcs, l, l.Complement())
	g.offsets = nil
	return id
}

// Reindex (re)builds the sorted-by-start offset table and the LinkID
// lookup used by DeleteLink and FixSymmetricDeletion. It must be called
// after the last AddSegment/AddLink and again after Cleanup's physical
// compaction; it is idempotent otherwise.
func (g *Graph) Reindex() {
	sort.SliceStable(g.arcs, func(i, j int) bool {
		return g.arcs[i].Start.InnerIndex() < g.arcs[j].Start.InnerIndex()
	})

	n := len(g.segments)
	g.offsets = make([]int, 2*n+1)
	vi := 0
	for i, a := range g.arcs {
		for vi < a.Start.InnerIndex() {
			vi++
			g.offsets[vi] = i
		}
	}
	for vi < 2*n {
		vi++
		g.offsets[vi] = len(g.arcs)
	}

	g.idIndex = make(map[LinkID][2]int, len(g.arcs)/2+1)
	seen := make(map[LinkID]int, len(g.arcs)/2+1)
	for i, a := range g.arcs {
		if first, ok := seen[a.ID]; ok {
			g.idIndex[a.ID] = [2]int{first, i}
		} else {
			seen[a.ID] = i
		}
	}
}

func (g *Graph) ensureIndexed() {
	if g.offsets == nil {
		g.Reindex()
	}
}

// SegmentCount returns the number of segment slots, including those
// logically removed but not yet compacted away by Cleanup.
func (g *Graph) SegmentCount() int { return len(g.segments) }

// LinkCount returns the number of twin pairs, including those logically
// removed but not yet compacted away by Cleanup.
func (g *Graph) LinkCount() int { return len(g.arcs) / 2 }

// Segment returns the segment record for id.
func (g *Graph) Segment(id SegmentID) *Segment { return &g.segments[id] }

// SegmentName returns the name of segment id.
func (g *Graph) SegmentName(id SegmentID) string { return g.segments[id].Name }

// SegmentLength returns the length in bases of segment id.
func (g *Graph) SegmentLength(id SegmentID) int { return g.segments[id].Length }

// SegmentIDByName looks up a segment by its GFA name.
func (g *Graph) SegmentIDByName(name string) (SegmentID, bool) {
	id, ok := g.nameIndex[name]
	return id, ok
}

// DirectedSegments yields all 2*SegmentCount() directed vertices in
// ascending inner index order. Removed segments still appear; callers
// filter with Segment(v.ID).Removed. Safe across DeleteSegment/DeleteLink
// as long as no Cleanup (structural reindex) occurs mid-iteration.
func (g *Graph) DirectedSegments() []DirectedSegment {
	out := make([]DirectedSegment, 2*len(g.segments))
	for i := range out {
		out[i] = DirectedSegmentFromInnerIndex(i)
	}
	return out
}

func (g *Graph) outRange(v DirectedSegment) (int, int) {
	g.ensureIndexed()
	idx := v.InnerIndex()
	return g.offsets[idx], g.offsets[idx+1]
}

// RawOutgoing returns every physical outgoing arc of v, live or removed,
// in deterministic insertion order (the order the adjacency list was
// built in, preserved by the stable sort in Reindex).
func (g *Graph) RawOutgoing(v DirectedSegment) []Link {
	lo, hi := g.outRange(v)
	return g.arcs[lo:hi]
}

// OutgoingLinks returns the live outgoing arcs of v.
func (g *Graph) OutgoingLinks(v DirectedSegment) []Link {
	raw := g.RawOutgoing(v)
	out := make([]Link, 0, len(raw))
	for _, l := range raw {
		if !l.Removed {
			out = append(out, l)
		}
	}
	return out
}

// RawIncoming returns every physical incoming arc of v, live or removed,
// derived as the complement view of RawOutgoing(v.Complement()).
func (g *Graph) RawIncoming(v DirectedSegment) []Link {
	raw := g.RawOutgoing(v.Complement())
	out := make([]Link, len(raw))
	for i, p := range raw {
		out[i] = p.Complement()
	}
	return out
}

// IncomingLinks returns the live incoming arcs of v.
func (g *Graph) IncomingLinks(v DirectedSegment) []Link {
	raw := g.RawIncoming(v)
	out := make([]Link, 0, len(raw))
	for _, l := range raw {
		if !l.Removed {
			out = append(out, l)
		}
	}
	return out
}

// OutgoingLinkCount returns the number of live outgoing arcs of v.
func (g *Graph) OutgoingLinkCount(v DirectedSegment) int {
	return len(g.OutgoingLinks(v))
}

// IncomingLinkCount returns the number of live incoming arcs of v.
func (g *Graph) IncomingLinkCount(v DirectedSegment) int {
	return len(g.IncomingLinks(v))
}

// NoOutgoing reports whether v has zero live outgoing arcs.
func (g *Graph) NoOutgoing(v DirectedSegment) bool { return g.OutgoingLinkCount(v) == 0 }

// NoIncoming reports whether v has zero live incoming arcs.
func (g *Graph) NoIncoming(v DirectedSegment) bool { return g.IncomingLinkCount(v) == 0 }

// UniqueOutgoing returns v's sole live outgoing arc, if there is exactly
// one.
func (g *Graph) UniqueOutgoing(v DirectedSegment) (Link, bool) {
	out := g.OutgoingLinks(v)
	if len(out) != 1 {
		return Link{}, false
	}
	return out[0], true
}

// UniqueIncoming returns v's sole live incoming arc, if there is exactly
// one.
func (g *Graph) UniqueIncoming(v DirectedSegment) (Link, bool) {
	in := g.IncomingLinks(v)
	if len(in) != 1 {
		return Link{}, false
	}
	return in[0], true
}

// DeleteSegment marks a segment removed. Its incident arcs (as seen from
// this segment's own two directed vertices) are marked removed too; the
// arcs stored at the *other* endpoint of an incoming link are only
// guaranteed removed after Cleanup/FixSymmetricDeletion runs (spec.md §3
// segment-removal propagation, §4.1 fix_symmetric_deletion).
func (g *Graph) DeleteSegment(id SegmentID) {
	if g.segments[id].Removed {
		return
	}
	g.segments[id].Removed = true
	for _, dir := range [2]Direction{Forward, Reverse} {
		lo, hi := g.outRange(DS(id, dir))
		for i := lo; i < hi; i++ {
			g.arcs[i].Removed = true
		}
	}
}

// DeleteLink marks l and its twin removed, wherever each half is
// physically stored.
func (g *Graph) DeleteLink(l Link) {
	g.ensureIndexed()
	pair, ok := g.idIndex[l.ID]
	if !ok {
		return
	}
	g.arcs[pair[0]].Removed = true
	g.arcs[pair[1]].Removed = true
}

// FixSymmetricDeletion walks every live arc and marks it removed if its
// twin is already removed, restoring the symmetric-link invariant after a
// caller broke it on only one side (e.g. via DeleteSegment).
func (g *Graph) FixSymmetricDeletion() {
	g.ensureIndexed()
	for id, pair := range g.idIndex {
		a, b := g.arcs[pair[0]], g.arcs[pair[1]]
		if a.Removed != b.Removed {
			g.arcs[pair[0]].Removed = true
			g.arcs[pair[1]].Removed = true
		}
		_ = id
	}
}

// CheckNoDeadLinks is a diagnostic: it returns true iff no arc has the
// removed flag set. It is meaningful right after Cleanup, which is
// expected to have physically dropped every removed arc.
func (g *Graph) CheckNoDeadLinks() bool {
	for _, a := range g.arcs {
		if a.Removed {
			return false
		}
	}
	return true
}

// Cleanup compacts storage: it restores the symmetric-link invariant,
// drops every logically removed segment and arc, and rebuilds the index.
// SegmentID and LinkID values held from before Cleanup are invalid
// afterwards — callers must finish all iteration before calling it
// (spec.md §5).
func (g *Graph) Cleanup() {
	g.FixSymmetricDeletion()

	oldToNew := make(map[SegmentID]SegmentID, len(g.segments))
	newSegments := make([]Segment, 0, len(g.segments))
	for id, seg := range g.segments {
		if seg.Removed {
			continue
		}
		oldToNew[SegmentID(id)] = SegmentID(len(newSegments))
		newSegments = append(newSegments, seg)
	}

	remap := func(v DirectedSegment) (DirectedSegment, bool) {
		newID, ok := oldToNew[v.ID]
		if !ok {
			return DirectedSegment{}, false
		}
		return DS(newID, v.Dir), true
	}

	newArcs := make([]Link, 0, len(g.arcs))
	for _, a := range g.arcs {
		if a.Removed {
			continue
		}
		start, ok1 := remap(a.Start)
		end, ok2 := remap(a.End)
		if !ok1 || !ok2 {
			continue
		}
		a.Start, a.End = start, end
		newArcs = append(newArcs, a)
	}

	g.segments = newSegments
	g.arcs = newArcs
	g.nameIndex = make(map[string]SegmentID, len(newSegments))
	for id, seg := range g.segments {
		g.nameIndex[seg.Name] = SegmentID(id)
	}
	g.Reindex()
}

// CanonicalLinks returns every canonical live link in the graph (one per
// twin pair), in ascending arc-storage order. Writers and inner-link
// counting use this to avoid double-counting (spec.md §3).
func (g *Graph) CanonicalLinks() []Link {
	g.ensureIndexed()
	out := make([]Link, 0, len(g.arcs)/2)
	for _, a := range g.arcs {
		if a.Removed {
			continue
		}
		if a.IsCanonical() {
			out = append(out, a)
		}
	}
	return out
}
