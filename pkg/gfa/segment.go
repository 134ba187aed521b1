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

// Segment is a node of the assembly graph: a stable textual name, a 1-based
// length in bases, an optional sequence ("" means unknown, written as "*" in
// GFA), and a logical removed flag. Segments are created on load and are
// mutated only by marking removed; they are physically dropped only by
// Graph.Cleanup.
type Segment struct {
	Name     string
	Length   int
	Sequence string // empty means unknown ("*" on disk)
	Removed  bool
}

// HasSequence reports whether the segment carries actual bases rather than
// a length-only placeholder.
func (s *Segment) HasSequence() bool {
	return s.Sequence != ""
}

var complementBase = map[byte]byte{
	'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C',
	'a': 't', 't': 'a', 'c': 'g', 'g': 'c',
	'N': 'N', 'n': 'n',
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// Bases outside ACGTNacgtn pass through unchanged (reversed only), since
// this toolkit never error-corrects sequence content (spec.md §1
// Non-goals).
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	n := len(seq)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		if c, ok := complementBase[b]; ok {
			out[i] = c
		} else {
			out[i] = b
		}
	}
	return string(out)
}

// DirectedSequence returns the segment's sequence as seen from direction
// dir: the stored sequence unchanged for Forward, its reverse complement
// for Reverse. Returns "" if the segment has no sequence.
func (s *Segment) DirectedSequence(dir Direction) string {
	if !s.HasSequence() {
		return ""
	}
	if dir == Forward {
		return s.Sequence
	}
	return ReverseComplement(s.Sequence)
}
