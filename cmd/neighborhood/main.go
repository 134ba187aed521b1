// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command neighborhood extracts the bounded BFS neighborhood of a set of
// seed segments from a GFA graph (spec.md §4.6 Neighborhood extractor).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/gfaclean/internal/pipeline"
	"github.com/AleutianAI/gfaclean/pkg/gfa"
	"github.com/AleutianAI/gfaclean/pkg/gfaconfig"
	"github.com/AleutianAI/gfaclean/pkg/gfaio"
	"github.com/AleutianAI/gfaclean/pkg/gfalog"
)

func main() {
	common := gfaconfig.DefaultCommon()
	if path := gfaconfig.ExtractConfigFlag(os.Args[1:]); path != "" {
		if err := common.LoadYAML(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(pipeline.ExitArgError)
		}
	}

	var radius int

	cmd := &cobra.Command{
		Use:          "neighborhood <gfa-in> <gfa-out> <seed-segment>...",
		Short:        "Extract the bounded-radius neighborhood of seed segments from a GFA graph",
		Args:         cobra.MinimumNArgs(3),
		SilenceUsage: true,
	}
	flags := cmd.Flags()
	flags.IntVar(&radius, "radius", 1, "maximum BFS depth from the seed segments")
	flags.BoolVar(&common.DropSequence, "drop-sequence", common.DropSequence,
		"replace all sequences with * on output")
	flags.BoolVar(&common.NormalizeOvls, "normalize-ovls", common.NormalizeOvls,
		"clamp pathological overlaps on output instead of writing them verbatim")
	flags.String("config", "", "optional YAML file of defaults for these flags")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		common.GraphIn = args[0]
		common.GraphOut = args[1]
		seeds := args[2:]

		log := gfalog.New(gfalog.Config{Tool: "neighborhood"})
		defer log.Close()

		in, err := pipeline.Load(common, log)
		if err != nil {
			return err
		}

		sub, err := gfa.ExtractNeighborhood(in.Graph, seeds, radius)
		if err != nil {
			return fmt.Errorf("neighborhood: %w", err)
		}
		log.Info("neighborhood extracted", "segments", sub.SegmentCount(), "links", sub.LinkCount())

		f, err := os.Create(common.GraphOut)
		if err != nil {
			return fmt.Errorf("neighborhood: creating output graph %s: %w", common.GraphOut, err)
		}
		defer f.Close()

		return gfaio.WriteGraph(f, sub, gfaio.WriteOptions{
			DropSequence:  common.DropSequence,
			NormalizeOvls: common.NormalizeOvls,
			HaveCoverage:  in.Coverage.Len() > 0,
			Coverage:      in.Coverage,
		})
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(pipeline.ExitArgError)
	}
}
