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

// SuperbubbleResult is a successfully found superbubble: its source and
// sink, the set of dominated vertices, and the heaviest s->t path.
type SuperbubbleResult struct {
	Start    DirectedSegment
	End      DirectedSegment
	Vertices map[DirectedSegment]bool
	Path     Path
}

type domEntry struct {
	weight    float64
	rng       Range
	hasBack   bool
	backtrace Link
}

// FindSuperbubble runs the length-bounded, weight-maximizing dominator
// search of spec.md §4.3 from source s. It never mutates g. All failure
// modes (unreachable end, threshold exceeded, count exceeded, strand
// clash) are reported uniformly as ErrNoSuperbubble.
func FindSuperbubble(g *Graph, policy WeightPolicy, s DirectedSegment, maxLength, maxDiff, maxCount int) (SuperbubbleResult, error) {
	if g.OutgoingLinkCount(s) < 2 {
		return SuperbubbleResult{}, fmt.Errorf("%w: source has fewer than 2 outgoing arcs", ErrNoSuperbubble)
	}

	dom := map[DirectedSegment]*domEntry{s: {weight: policy.InitialWeight(), rng: NewRange(0, 0)}}

	border := make(map[DirectedSegment]bool)
	var canProcess []DirectedSegment
	canProcessSet := make(map[DirectedSegment]bool)

	updateCanBeProcessed := func(v DirectedSegment) {
		for _, l := range g.OutgoingLinks(v) {
			w := l.End
			if w == s {
				continue
			}
			border[w] = true
			if canProcessSet[w] {
				continue
			}
			allResolved := true
			for _, in := range g.IncomingLinks(w) {
				if _, ok := dom[in.Start]; !ok {
					allResolved = false
					break
				}
			}
			if allResolved {
				canProcessSet[w] = true
				canProcess = append(canProcess, w)
			}
		}
	}

	updateCanBeProcessed(s)

	nontrivial := false
	visitedCount := 0

	for {
		isEnd := len(border) == 1

		var v DirectedSegment
		if !isEnd {
			if len(canProcess) == 0 {
				return SuperbubbleResult{}, fmt.Errorf("%w: can-process set exhausted before reaching an end", ErrNoSuperbubble)
			}
			v = canProcess[0]
			canProcess = canProcess[1:]
		} else {
			for w := range border {
				v = w
			}
		}

		visitedCount++
		if visitedCount > maxCount {
			return SuperbubbleResult{}, fmt.Errorf("%w: visited count exceeded max_count", ErrNoSuperbubble)
		}

		minD, maxD := 0, 0
		var maxW float64
		haveArc := false
		var bestArc Link

		for _, l := range g.IncomingLinks(v) {
			pred, ok := dom[l.Start]
			if !ok {
				continue
			}
			shiftBy := g.SegmentLength(v.ID) - l.EndOverlap
			if shiftBy <= 0 {
				shiftBy = 1
			}
			shifted := pred.rng.Shift(shiftBy)

			if !haveArc {
				minD, maxD = shifted.Lo, shifted.Hi
			} else {
				if shifted.Lo < minD {
					minD = shifted.Lo
				}
				if shifted.Hi > maxD {
					maxD = shifted.Hi
				}
			}

			candidate := policy.StepWeight(pred.weight, l, g)
			if !haveArc || candidate > maxW {
				maxW = candidate
				bestArc = l
			}
			haveArc = true
		}

		usedCount := 0
		for _, l := range g.IncomingLinks(v) {
			if _, ok := dom[l.Start]; ok {
				usedCount++
			}
		}
		if usedCount > 1 {
			nontrivial = true
		}

		if !isEnd {
			if g.NoOutgoing(v) {
				return SuperbubbleResult{}, fmt.Errorf("%w: dead end reached", ErrNoSuperbubble)
			}
			if hasArcTo(g, v, s) {
				return SuperbubbleResult{}, fmt.Errorf("%w: cycle back to source", ErrNoSuperbubble)
			}
		}
		if _, ok := dom[v.Complement()]; ok {
			return SuperbubbleResult{}, fmt.Errorf("%w: strand clash", ErrNoSuperbubble)
		}

		entry := &domEntry{weight: maxW, rng: NewRange(minD, maxD), hasBack: haveArc, backtrace: bestArc}
		dom[v] = entry
		delete(border, v)

		if isEnd {
			if !nontrivial {
				return SuperbubbleResult{}, fmt.Errorf("%w: trivial bubble", ErrNoSuperbubble)
			}
			if minD-g.SegmentLength(v.ID) > maxLength {
				return SuperbubbleResult{}, fmt.Errorf("%w: length threshold exceeded", ErrNoSuperbubble)
			}
			if maxD-minD > maxDiff {
				return SuperbubbleResult{}, fmt.Errorf("%w: diff threshold exceeded", ErrNoSuperbubble)
			}

			path := heaviestPath(dom, s, v)
			vertices := make(map[DirectedSegment]bool, len(dom))
			for k := range dom {
				vertices[k] = true
			}
			return SuperbubbleResult{Start: s, End: v, Vertices: vertices, Path: path}, nil
		}

		updateCanBeProcessed(v)
	}
}

func hasArcTo(g *Graph, v, target DirectedSegment) bool {
	for _, l := range g.OutgoingLinks(v) {
		if l.End == target {
			return true
		}
	}
	return false
}

// heaviestPath walks the backtrace chain from t back to s and reverses it.
func heaviestPath(dom map[DirectedSegment]*domEntry, s, t DirectedSegment) Path {
	var links []Link
	cur := t
	for cur != s {
		entry := dom[cur]
		if !entry.hasBack {
			break
		}
		links = append(links, entry.backtrace)
		cur = entry.backtrace.Start
	}

	path := NewPath(s)
	for i := len(links) - 1; i >= 0; i-- {
		path = path.Extend(links[i])
	}
	return path
}
