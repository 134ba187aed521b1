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

// Range is a half-open interval [Lo, Hi) over non-negative integers, used
// by the superbubble finder to track the minimum/maximum distance from the
// search source to a dominated vertex.
type Range struct {
	Lo int
	Hi int
}

// NewRange constructs [lo, hi); callers in this package always keep lo <= hi.
func NewRange(lo, hi int) Range {
	return Range{Lo: lo, Hi: hi}
}

// Shift returns the range translated by delta.
func (r Range) Shift(delta int) Range {
	return Range{Lo: r.Lo + delta, Hi: r.Hi + delta}
}

// Size returns Hi - Lo.
func (r Range) Size() int {
	return r.Hi - r.Lo
}

// Empty reports whether the range contains no integers.
func (r Range) Empty() bool {
	return r.Hi <= r.Lo
}

// Contains reports whether x lies in [Lo, Hi).
func (r Range) Contains(x int) bool {
	return x >= r.Lo && x < r.Hi
}
