// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command compact collapses every maximal non-branching path of a GFA
// graph into a single segment, with no pruning step (spec.md §4.4 Graph
// compaction).
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

	cmd := pipeline.NewRootCommand("compact", "Collapse non-branching paths of a GFA graph into single segments", &common)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		common.Compact = true
		return pipeline.RunTool("compact", common, func(g *gfa.Graph, cov gfa.Coverage) pruners.Result {
			return pruners.Result{}
		})
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(pipeline.ExitArgError)
	}
}
