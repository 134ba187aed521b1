// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command isolatedremove deletes isolated segments from a GFA assembly
// graph (spec.md §4.5 Isolated remover).
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

	var opts pruners.IsolatedOptions

	cmd := pipeline.NewRootCommand("isolatedremove", "Remove isolated segments from a GFA graph", &common)
	flags := cmd.Flags()
	flags.IntVar(&opts.MaxLength, "max-length", 1000, "isolated segments shorter than this are removed")
	flags.BoolVar(&opts.UseCovThr, "use-cov-thr", false, "also require coverage below --cov-thr")
	flags.Float64Var(&opts.CovThr, "cov-thr", 0, "coverage threshold when --use-cov-thr is set")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := common.ValidateCoverageRequired(opts.UseCovThr); err != nil {
			os.Exit(pipeline.ExitMissingSupportFile)
		}
		return pipeline.RunTool("isolatedremove", common, func(g *gfa.Graph, cov gfa.Coverage) pruners.Result {
			return pruners.RemoveIsolated(g, cov, opts)
		})
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(pipeline.ExitArgError)
	}
}
