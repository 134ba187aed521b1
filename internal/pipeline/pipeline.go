// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package pipeline is the common read-clean-write glue every cmd/* tool
// drives: open the input GFA, load optional coverage, hand the graph to
// the caller's pruner, optionally compact, and write the output GFA
// (spec.md §6, grounded on original_source's tooling.hpp OutputGraph,
// which plays the same "compact-then-write or just-write" role around
// every cleaning tool's cmd_cfg_base).
package pipeline

import (
	"fmt"
	"os"

	"github.com/AleutianAI/gfaclean/pkg/gfa"
	"github.com/AleutianAI/gfaclean/pkg/gfa/pruners"
	"github.com/AleutianAI/gfaclean/pkg/gfaconfig"
	"github.com/AleutianAI/gfaclean/pkg/gfaio"
	"github.com/AleutianAI/gfaclean/pkg/gfalog"
)

// Exit codes (spec.md §6).
const (
	ExitSuccess            = 0
	ExitArgError           = 1
	ExitMissingSupportFile = 2
)

// Input is the graph plus whatever coverage map was loaded for it.
type Input struct {
	Graph    *gfa.Graph
	Coverage gfa.Coverage
}

// Load reads the input GFA named by common.GraphIn and, if set, the
// coverage file at common.CoveragePath (spec.md §6). Read warnings are
// logged but never abort the run (spec.md §7 kind 3).
func Load(common gfaconfig.Common, log *gfalog.Logger) (Input, error) {
	f, err := os.Open(common.GraphIn)
	if err != nil {
		return Input{}, fmt.Errorf("pipeline: opening input graph %s: %w", common.GraphIn, err)
	}
	defer f.Close()

	g, warnings, err := gfaio.ReadGraph(f)
	if err != nil {
		return Input{}, fmt.Errorf("pipeline: reading input graph %s: %w", common.GraphIn, err)
	}
	for _, w := range warnings {
		log.Warn("pathological input record", "error", w)
	}

	var cov gfa.Coverage
	if common.CoveragePath != "" {
		cov, err = gfaconfig.LoadCoverage(common.CoveragePath)
		if err != nil {
			return Input{}, err
		}
	}

	log.Info("graph loaded", "segments", g.SegmentCount(), "links", g.LinkCount())
	return Input{Graph: g, Coverage: cov}, nil
}

// Finish optionally compacts g, then writes it (or the compacted result)
// to common.GraphOut, appending an id-mapping file if requested
// (spec.md §4.4, §6). cov is the coverage map loaded by Load, if any; when
// the caller skipped compaction it drives the output's RC/ll tags. Compact
// does not compute coverage for the segments it creates, so a compacted
// output carries no RC/ll tags.
func Finish(g *gfa.Graph, cov gfa.Coverage, common gfaconfig.Common, log *gfalog.Logger) error {
	out := g
	haveCoverage := cov.Len() > 0

	if common.Compact {
		compacted, mapping, err := gfa.Compact(g, gfa.CompactOptions{
			Prefix:        common.Prefix(),
			RenameAll:     common.RenameAll,
			DropSequence:  common.DropSequence,
			NormalizeOvls: common.NormalizeOvls,
			DBGK:          common.DBGK,
			Coverage:      cov,
		})
		if err != nil {
			return fmt.Errorf("pipeline: compacting graph: %w", err)
		}
		out = compacted
		log.Info("compacted graph", "segments", out.SegmentCount(), "links", out.LinkCount())

		if common.IDMappingPath != "" {
			if err := gfaconfig.WriteIDMapping(common.IDMappingPath, mapping); err != nil {
				return err
			}
		}
	}

	if !out.CheckNoDeadLinks() {
		return fmt.Errorf("pipeline: %w", gfa.ErrDeadLinkInvariant)
	}

	f, err := os.Create(common.GraphOut)
	if err != nil {
		return fmt.Errorf("pipeline: creating output graph %s: %w", common.GraphOut, err)
	}
	defer f.Close()

	writeOpts := gfaio.WriteOptions{
		DropSequence:  common.DropSequence,
		NormalizeOvls: common.NormalizeOvls,
		HaveCoverage:  haveCoverage && !common.Compact,
		Coverage:      cov,
	}
	log.Info("output written", "path", common.GraphOut)
	return gfaio.WriteGraph(f, out, writeOpts)
}

// Clean is the signature every pruner-shaped cmd/* main adapts its pruner
// call to: given the loaded graph and coverage, mutate g in place and
// return a deletion-count Result for reporting.
type Clean func(g *gfa.Graph, cov gfa.Coverage) pruners.Result

// RunTool drives the full read -> clean -> (optional compact) -> write
// pipeline for one tool invocation (spec.md §4.5 "All pruners share the
// pattern ... at the end invoke cleanup"; cleanup itself runs inside each
// Clean function, since it is pruner-specific how many passes precede it).
func RunTool(tool string, common gfaconfig.Common, clean Clean) error {
	log := gfalog.New(gfalog.Config{Tool: tool})
	defer log.Close()

	in, err := Load(common, log)
	if err != nil {
		return err
	}

	res := clean(in.Graph, in.Coverage)
	log.Info("pruning complete", "segments_deleted", res.SegmentsDeleted, "links_deleted", res.LinksDeleted)

	return Finish(in.Graph, in.Coverage, common, log)
}
