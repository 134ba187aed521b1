// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command unbalancedremove deletes outgoing arcs whose target coverage is
// at or below a fixed fraction of the source vertex's own coverage,
// keeping the best-covered branch at each vertex
// (spec.md §4.5 Unbalanced-link removal).
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

	var opts pruners.UnbalancedOptions

	cmd := pipeline.NewRootCommand("unbalancedremove", "Remove unbalanced outgoing arcs from a GFA graph", &common)
	cmd.Flags().Float64Var(&opts.CoverageRatio, "cov-ratio", 0.1, "arcs whose target coverage is at or below this fraction of the source vertex's coverage are removed")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := common.ValidateCoverageRequired(true); err != nil {
			os.Exit(pipeline.ExitMissingSupportFile)
		}
		return pipeline.RunTool("unbalancedremove", common, func(g *gfa.Graph, cov gfa.Coverage) pruners.Result {
			return pruners.RemoveUnbalancedLinks(g, cov, opts)
		})
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(pipeline.ExitArgError)
	}
}
