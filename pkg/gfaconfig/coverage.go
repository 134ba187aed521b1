// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package gfaconfig

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AleutianAI/gfaclean/pkg/gfa"
)

// LoadCoverage reads a "segment-name\tnumber" per-line file into a
// gfa.Coverage (spec.md §6: "--coverage <file> (segment-name \t number per
// line)").
func LoadCoverage(path string) (gfa.Coverage, error) {
	f, err := os.Open(path)
	if err != nil {
		return gfa.Coverage{}, fmt.Errorf("gfaconfig: opening coverage file %s: %w", path, err)
	}
	defer f.Close()

	m := make(map[string]float64)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return gfa.Coverage{}, fmt.Errorf("gfaconfig: coverage file %s line %d: expected name and value", path, lineNo)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return gfa.Coverage{}, fmt.Errorf("gfaconfig: coverage file %s line %d: %w", path, lineNo, err)
		}
		m[fields[0]] = v
	}
	if err := scanner.Err(); err != nil {
		return gfa.Coverage{}, fmt.Errorf("gfaconfig: reading coverage file %s: %w", path, err)
	}
	return gfa.NewCoverage(m), nil
}

// WriteIDMapping appends an IDMapping to the file at path, one "new_name\t
// orig1,orig2,..." line per entry (spec.md §4.4, §6 "--id-mapping <file>
// (appended)").
func WriteIDMapping(path string, mapping gfa.IDMapping) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("gfaconfig: opening id-mapping file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range mapping {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", entry.NewName, strings.Join(entry.Orig, ",")); err != nil {
			return err
		}
	}
	return w.Flush()
}
