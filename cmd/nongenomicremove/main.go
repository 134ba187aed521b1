// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command nongenomicremove deletes arcs classified as non-genomic
// (spec.md §4.5 Non-genomic link removal).
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

	var opts pruners.NongenomicOptions

	cmd := pipeline.NewRootCommand("nongenomicremove", "Remove non-genomic arcs from a GFA graph", &common)
	flags := cmd.Flags()
	flags.IntVar(&opts.UniqueLen, "unique-len", 1000, "length above which a segment is unique regardless of coverage")
	flags.BoolVar(&opts.HaveCoverage, "have-coverage", false, "gate uniqueness on --max-unique-cov")
	flags.Float64Var(&opts.MaxUniqueCov, "max-unique-cov", 0, "coverage below which a short segment is still unique")
	flags.IntVar(&opts.ReliableLen, "reliable-len", 1000, "length above which an extension is reliable regardless of coverage")
	flags.IntVar(&opts.ReliableOvl, "reliable-ovl", 0, "minimum overlap for an extension to be considered reliable")
	flags.BoolVar(&opts.HaveReliableCov, "have-reliable-cov", false, "gate reliability on --reliable-cov")
	flags.Float64Var(&opts.ReliableCov, "reliable-cov", 0, "coverage above which a short extension is still reliable")
	flags.BoolVar(&opts.RequireBothSides, "both-sides", false, "require both strands of an arc to classify as non-genomic")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := common.ValidateCoverageRequired(opts.HaveCoverage || opts.HaveReliableCov); err != nil {
			os.Exit(pipeline.ExitMissingSupportFile)
		}
		return pipeline.RunTool("nongenomicremove", common, func(g *gfa.Graph, cov gfa.Coverage) pruners.Result {
			res := pruners.RemoveNongenomicLinks(g, cov, opts)
			for _, name := range res.NewDeadends {
				fmt.Fprintf(os.Stderr, "warning: %s is now a deadend\n", name)
			}
			return res.Result
		})
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(pipeline.ExitArgError)
	}
}
