// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command bulgeremove collapses simple bulges in a GFA assembly graph
// (spec.md §4.5 Simple bulge removal).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/gfaclean/internal/pipeline"
	"github.com/AleutianAI/gfaclean/pkg/gfa"
	"github.com/AleutianAI/gfaclean/pkg/gfa/pruners"
	"github.com/AleutianAI/gfaclean/pkg/gfaconfig"
)

func main() {
	common := gfaconfig.DefaultCommon()
	if path := gfaconfig.ExtractConfigFlag(os.Args[1:]); path != "" {
		if err := common.LoadYAML(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(pipeline.ExitArgError)
		}
	}

	var opts pruners.BulgeOptions

	cmd := pipeline.NewRootCommand("bulgeremove", "Collapse simple bulges in a GFA graph", &common)
	flags := cmd.Flags()
	flags.IntVar(&opts.MaxLength, "max-length", 1000, "maximum base-path length eligible for bulge removal")
	flags.IntVar(&opts.MaxDiff, "max-diff", 200, "maximum length difference between base and alternative path")
	flags.IntVar(&opts.MaxShortening, "max-shortening", 200, "maximum amount the alternative path may be shorter")
	flags.IntVar(&opts.MinAltOverlap, "min-alt-ovl", 0, "minimum overlap accepted on a weaker alternative path")
	flags.BoolVar(&opts.UseCoverage, "use-coverage", false, "sort candidates by coverage instead of overlap")
	flags.BoolVar(&opts.HaveCoverage, "have-coverage", false, "gate acceptance on --max-unique-cov and --max-cov-ratio")
	flags.Float64Var(&opts.MaxUniqueCov, "max-unique-cov", 0, "endpoints above this coverage are never absorbed")
	flags.Float64Var(&opts.MaxCoverageRatio, "max-cov-ratio", 0, "maximum base/alt internal coverage ratio accepted")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := common.ValidateCoverageRequired(opts.HaveCoverage || opts.UseCoverage); err != nil {
			os.Exit(pipeline.ExitMissingSupportFile)
		}
		return pipeline.RunTool("bulgeremove", common, func(g *gfa.Graph, cov gfa.Coverage) pruners.Result {
			return pruners.RemoveSimpleBulges(g, cov, opts)
		})
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(pipeline.ExitArgError)
	}
}
