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

// WeightPolicy abstracts the per-step metric the superbubble finder
// maximizes along a path (spec.md §9 design notes): both variants share
// the "minimum of a per-step metric" combination law, so the finder is
// generic over the policy rather than branching on a lambda-captured
// coverage map.
type WeightPolicy interface {
	// InitialWeight is the weight installed at the search source.
	InitialWeight() float64

	// StepWeight folds arc l (whose End is the vertex being reached) into
	// the running weight prevWeight of its predecessor, returning the new
	// weight of the path through l.
	StepWeight(prevWeight float64, l Link, g *Graph) float64
}

// MinOverlapWeight is the default policy: the weight of a path is the
// minimum EndOverlap of its arcs (spec.md §4.3).
type MinOverlapWeight struct{}

func (MinOverlapWeight) InitialWeight() float64 { return math.MaxFloat64 }

func (MinOverlapWeight) StepWeight(prevWeight float64, l Link, g *Graph) float64 {
	return math.Min(prevWeight, float64(l.EndOverlap))
}

// MinCoverageWeight uses the minimum coverage over the vertices of the path
// prefix after the source instead of minimum overlap, selected when a
// coverage map is supplied (spec.md §4.3). The vertex being reached counts
// too, so the end vertex's own coverage enters the final weight; the
// source's coverage does not.
type MinCoverageWeight struct {
	Coverage Coverage
}

func (MinCoverageWeight) InitialWeight() float64 { return math.MaxFloat64 }

func (p MinCoverageWeight) StepWeight(prevWeight float64, l Link, g *Graph) float64 {
	cov := p.Coverage.Value(g.SegmentName(l.End.ID))
	return math.Min(prevWeight, cov)
}
