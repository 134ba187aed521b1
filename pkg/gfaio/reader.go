// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package gfaio implements the GFA 1.0 textual codec: ReadGraph parses the
// H/S/L record subset spec.md §6 defines into a *gfa.Graph, and WriteGraph
// serializes one back out in canonical form.
package gfaio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AleutianAI/gfaclean/pkg/gfa"
)

// pendingLink defers link construction until every S record has been read,
// since an L record may reference a segment that appears later in the
// file.
type pendingLink struct {
	fromName, toName string
	fromDir, toDir   gfa.Direction
	overlap          int
	lineNo           int
}

// ReadGraph parses a GFA 1.0 stream into a Graph (spec.md §6). Line kinds
// other than H/S/L are ignored. Pathological records — a duplicate segment
// name, a link referencing an unknown segment, or an overlap at least as
// long as one of its endpoints — are reported as warnings rather than
// aborting the read (spec.md §7 kind 3); the caller decides what to do
// with them.
func ReadGraph(r io.Reader) (*gfa.Graph, []error, error) {
	g := gfa.NewGraph()
	var warnings []error
	var pending []pendingLink

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		switch fields[0] {
		case "H":
			// VN:Z:1.0 header; nothing else to validate.
		case "S":
			if err := readSegment(g, fields, lineNo); err != nil {
				warnings = append(warnings, err)
			}
		case "L":
			pl, err := parsePendingLink(fields, lineNo)
			if err != nil {
				warnings = append(warnings, err)
				continue
			}
			pending = append(pending, pl)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, err
	}

	g.Reindex()
	for _, pl := range pending {
		w, err := resolveLink(g, pl)
		if err != nil {
			warnings = append(warnings, err)
			continue
		}
		warnings = append(warnings, w...)
	}
	g.Reindex()

	return g, warnings, nil
}

func readSegment(g *gfa.Graph, fields []string, lineNo int) error {
	if len(fields) < 3 {
		return fmt.Errorf("gfaio: line %d: malformed S record", lineNo)
	}
	name := fields[1]
	if _, exists := g.SegmentIDByName(name); exists {
		return fmt.Errorf("%w: %s (line %d)", gfa.ErrDuplicateSegment, name, lineNo)
	}
	seq := fields[2]
	if seq == "*" {
		seq = ""
	}
	length := len(seq)
	for _, tag := range fields[3:] {
		if v, ok := strings.CutPrefix(tag, "LN:i:"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				length = n
			}
		}
	}
	g.AddSegment(gfa.Segment{Name: name, Length: length, Sequence: seq})
	return nil
}

func parsePendingLink(fields []string, lineNo int) (pendingLink, error) {
	if len(fields) < 6 {
		return pendingLink{}, fmt.Errorf("gfaio: line %d: malformed L record", lineNo)
	}
	fromDir, err := parseStrand(fields[2])
	if err != nil {
		return pendingLink{}, fmt.Errorf("gfaio: line %d: %w", lineNo, err)
	}
	toDir, err := parseStrand(fields[4])
	if err != nil {
		return pendingLink{}, fmt.Errorf("gfaio: line %d: %w", lineNo, err)
	}
	overlap, err := parseCigarM(fields[5])
	if err != nil {
		return pendingLink{}, fmt.Errorf("gfaio: line %d: %w", lineNo, err)
	}
	return pendingLink{
		fromName: fields[1], fromDir: fromDir,
		toName: fields[3], toDir: toDir,
		overlap: overlap, lineNo: lineNo,
	}, nil
}

// resolveLink looks up both endpoints by name and adds the link, returning
// a pathological-overlap warning (not an error) when the overlap is at
// least as long as either endpoint.
func resolveLink(g *gfa.Graph, pl pendingLink) ([]error, error) {
	fromID, ok1 := g.SegmentIDByName(pl.fromName)
	toID, ok2 := g.SegmentIDByName(pl.toName)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("%w: %s -> %s (line %d)", gfa.ErrUnknownSegmentRef, pl.fromName, pl.toName, pl.lineNo)
	}
	var warnings []error
	if pl.overlap >= g.SegmentLength(fromID) || pl.overlap >= g.SegmentLength(toID) {
		warnings = append(warnings, fmt.Errorf("%w: %s -> %s, overlap %d (line %d)",
			gfa.ErrPathologicalOverlap, pl.fromName, pl.toName, pl.overlap, pl.lineNo))
	}
	g.AddLink(gfa.DS(fromID, pl.fromDir), gfa.DS(toID, pl.toDir), pl.overlap, pl.overlap)
	return warnings, nil
}

func parseStrand(s string) (gfa.Direction, error) {
	switch s {
	case "+":
		return gfa.Forward, nil
	case "-":
		return gfa.Reverse, nil
	default:
		return gfa.Forward, fmt.Errorf("invalid strand %q", s)
	}
}

// parseCigarM accepts only the "<int>M" CIGAR restriction spec.md §6
// requires of link overlaps.
func parseCigarM(s string) (int, error) {
	if !strings.HasSuffix(s, "M") {
		return 0, fmt.Errorf("unsupported CIGAR %q (only <int>M is supported)", s)
	}
	return strconv.Atoi(strings.TrimSuffix(s, "M"))
}
