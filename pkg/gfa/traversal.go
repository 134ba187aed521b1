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

// NonBranchingExtension returns the unique outgoing arc of v if v has
// exactly one live outgoing arc and that arc's end has exactly one live
// incoming arc; otherwise it returns ok=false (spec.md §4.2).
func NonBranchingExtension(g *Graph, v DirectedSegment) (Link, bool) {
	l, ok := g.UniqueOutgoing(v)
	if !ok {
		return Link{}, false
	}
	if _, ok := g.UniqueIncoming(l.End); !ok {
		return Link{}, false
	}
	return l, true
}

// NonBranchingForward returns the maximal path starting at v, extended
// repeatedly by NonBranchingExtension, stopping when a segment id would be
// revisited (a cycle) rather than relying on any length bound.
func NonBranchingForward(g *Graph, v DirectedSegment) Path {
	path := NewPath(v)
	visited := map[SegmentID]bool{v.ID: true}

	cur := v
	for {
		l, ok := NonBranchingExtension(g, cur)
		if !ok {
			break
		}
		if visited[l.End.ID] {
			break
		}
		path = path.Extend(l)
		visited[l.End.ID] = true
		cur = l.End
	}
	return path
}

// UnambiguousBackwardPath walks backward from w while UniqueIncoming
// holds, stopping when it reaches v (success, path from v to w returned)
// or when backward walking becomes ambiguous or loops (failure, ok=false).
// Loops are detected via the set of arcs already used, per spec.md §4.2.
func UnambiguousBackwardPath(g *Graph, v, w DirectedSegment) (Path, bool) {
	if v == w {
		return NewPath(v), true
	}

	var links []Link
	usedArcs := make(map[LinkID]bool)
	cur := w
	for cur != v {
		l, ok := g.UniqueIncoming(cur)
		if !ok {
			return Path{}, false
		}
		if usedArcs[l.ID] {
			return Path{}, false
		}
		usedArcs[l.ID] = true
		links = append(links, l)
		cur = l.Start
	}

	// links were collected backward (w -> ... -> v); reverse to v -> ... -> w.
	path := NewPath(v)
	for i := len(links) - 1; i >= 0; i-- {
		path = path.Extend(links[i])
	}
	return path, true
}

// UniqueOutgoingForward walks forward from v while UniqueOutgoing holds
// (a weaker condition than NonBranchingExtension: it ignores the
// destination's incoming arity), stopping on a cycle.
func UniqueOutgoingForward(g *Graph, v DirectedSegment) Path {
	path := NewPath(v)
	visited := map[SegmentID]bool{v.ID: true}

	cur := v
	for {
		l, ok := g.UniqueOutgoing(cur)
		if !ok {
			break
		}
		if visited[l.End.ID] {
			break
		}
		path = path.Extend(l)
		visited[l.End.ID] = true
		cur = l.End
	}
	return path
}

// NonBranchingPath computes the maximal non-branching path through v: the
// forward walk from v, preceded by the reversed-and-complemented backward
// walk from v.Complement() (spec.md §4.2). v is the meeting point. If the
// backward walk would form a simple loop back to the forward walk's own
// start, the backward half is skipped to avoid duplicating the loop.
func NonBranchingPath(g *Graph, v DirectedSegment) Path {
	forward := NonBranchingForward(g, v)
	backward := NonBranchingForward(g, v.Complement())
	backwardAsForwardPrefix := backward.Complement()

	if len(backwardAsForwardPrefix.Segments) <= 1 {
		return forward
	}

	// backwardAsForwardPrefix ends at v; drop its last vertex (v itself,
	// already forward's first) before splicing the two halves together.
	prefixSegments := backwardAsForwardPrefix.Segments[:len(backwardAsForwardPrefix.Segments)-1]
	prefixLinks := backwardAsForwardPrefix.Links

	if lastOfPrefix := prefixSegments[len(prefixSegments)-1]; forwardLoopsTo(forward, lastOfPrefix) {
		return forward
	}

	segments := append(append([]DirectedSegment{}, prefixSegments...), forward.Segments...)
	links := append(append([]Link{}, prefixLinks...), forward.Links...)
	return Path{Segments: segments, Links: links}
}

func forwardLoopsTo(forward Path, v DirectedSegment) bool {
	for _, seg := range forward.Segments {
		if seg.ID == v.ID {
			return true
		}
	}
	return false
}
