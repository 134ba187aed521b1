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

// Coverage is a read-only mapping from segment name to a non-negative
// sequencing-depth estimate (spec.md §3). It is constructed once per tool
// invocation and passed by shared reference to every pruner and the
// compactor; nothing in this package mutates it.
type Coverage struct {
	byName map[string]float64
}

// NewCoverage wraps a name->value map as a Coverage. The caller must not
// mutate m afterwards.
func NewCoverage(m map[string]float64) Coverage {
	return Coverage{byName: m}
}

// Get returns the coverage for name and whether it was present.
func (c Coverage) Get(name string) (float64, bool) {
	if c.byName == nil {
		return 0, false
	}
	v, ok := c.byName[name]
	return v, ok
}

// Value returns the coverage for name, or 0 if absent.
func (c Coverage) Value(name string) float64 {
	v, _ := c.Get(name)
	return v
}

// Len reports how many segment names carry a coverage entry.
func (c Coverage) Len() int {
	return len(c.byName)
}
