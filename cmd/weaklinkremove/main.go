// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command weaklinkremove deletes weakly-overlapping arcs from a GFA
// assembly graph, always keeping each vertex's strongest outgoing arc
// (spec.md §4.5 Weak-link removal).
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

	var opts pruners.WeakLinkOptions

	cmd := pipeline.NewRootCommand("weaklinkremove", "Remove weakly-overlapping arcs from a GFA graph", &common)
	flags := cmd.Flags()
	flags.IntVar(&opts.MinOverlap, "min-overlap", 100, "minimum overlap an arc must have to survive")
	flags.BoolVar(&opts.PreventDeadends, "prevent-deadends", false, "skip a deletion that would leave the target with no incoming arcs")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return pipeline.RunTool("weaklinkremove", common, func(g *gfa.Graph, cov gfa.Coverage) pruners.Result {
			return pruners.RemoveWeakLinks(g, opts)
		})
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(pipeline.ExitArgError)
	}
}
