// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package gfaconfig provides the CLI option set shared by every gfaclean
// tool, and the validation and coverage/id-mapping loading that goes with
// it (spec.md §6 CLI surface; grounded on the teacher's
// cmd/aleutian/config package for the load-from-YAML-then-apply-defaults
// shape).
package gfaconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/gfaclean/pkg/gfa"
)

// Common holds the flags every gfaclean tool accepts in addition to its
// own pruner-specific options (spec.md §6): input/output paths, the
// optional coverage file, post-clean compaction, id-mapping output, the
// compacted-segment prefix, sequence dropping, uniform renaming, and the
// De Bruijn k used by the compactor's DBG-k mode.
type Common struct {
	GraphIn  string `yaml:"graph_in"`
	GraphOut string `yaml:"graph_out"`

	CoveragePath string `yaml:"coverage,omitempty"`

	Compact         bool   `yaml:"compact"`
	IDMappingPath   string `yaml:"id_mapping,omitempty"`
	CompactedPrefix string `yaml:"prefix"`
	DropSequence    bool   `yaml:"drop_sequence"`
	RenameAll       bool   `yaml:"rename_all"`
	DBGK            int    `yaml:"dbg_k,omitempty"`
	NormalizeOvls   bool   `yaml:"normalize_ovls"`
}

// DefaultCommon returns Common with spec.md §6's documented defaults
// applied: a "m_" compacted-segment prefix, everything else off.
func DefaultCommon() Common {
	return Common{CompactedPrefix: "m_"}
}

// LoadYAML merges an optional YAML companion file (the --config flag) over
// defaults; fields absent from the file keep their current value, so this
// is safe to call after flag parsing has already populated Common from the
// command line.
func (c *Common) LoadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("gfaconfig: reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("gfaconfig: parsing config %s: %w", path, err)
	}
	return nil
}

// Prefix resolves the compacted-segment prefix convention: "_" means an
// empty prefix (spec.md §6: "--prefix <string> (default m_, _ means
// empty)").
func (c *Common) Prefix() string {
	if c.CompactedPrefix == "_" {
		return ""
	}
	return c.CompactedPrefix
}

// ExtractConfigFlag scans args for "--config <path>" or "--config=<path>"
// without otherwise parsing the command line, so a YAML companion file
// (spec.md §6) can be loaded before cobra's own flags are bound and take
// their defaults from it.
func ExtractConfigFlag(args []string) string {
	for i, a := range args {
		if v, ok := cutFlagValue(a, "--config"); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func cutFlagValue(arg, name string) (string, bool) {
	prefix := name + "="
	if len(arg) > len(prefix) && arg[:len(prefix)] == prefix {
		return arg[len(prefix):], true
	}
	return "", false
}

// ValidateCoverageRequired returns ErrMissingCoverageFile when a
// coverage-dependent flag was set but no --coverage file was given
// (spec.md §7 kind 2, exit code 2 per §6). Callers invoke this once they
// know whether their specific tool's coverage-gated flags are active.
func (c *Common) ValidateCoverageRequired(needed bool) error {
	if needed && c.CoveragePath == "" {
		return gfa.ErrMissingCoverageFile
	}
	return nil
}
