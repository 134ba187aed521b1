// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command superbubble searches for a single superbubble from a seed
// vertex and prints a text report instead of writing an output GFA
// (spec.md §4.3 Superbubble finder).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/gfaclean/internal/pipeline"
	"github.com/AleutianAI/gfaclean/pkg/gfa"
	"github.com/AleutianAI/gfaclean/pkg/gfaconfig"
	"github.com/AleutianAI/gfaclean/pkg/gfalog"
)

func main() {
	var (
		maxLength    int
		maxDiff      int
		maxCount     int
		coveragePath string
	)

	cmd := &cobra.Command{
		Use:          "superbubble <gfa-in> <seed-segment><+|-> ",
		Short:        "Report the superbubble rooted at a seed directed segment",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
	}
	flags := cmd.Flags()
	flags.IntVar(&maxLength, "max-length", 10000, "maximum shortest distance from the seed to the end vertex, not counting the end vertex's own length")
	flags.IntVar(&maxDiff, "max-diff", 2000, "maximum distance-range spread allowed at the end vertex")
	flags.IntVar(&maxCount, "max-count", 1000, "maximum number of vertices visited before giving up")
	flags.StringVar(&coveragePath, "coverage", "", "optional per-segment coverage file, switches the weight policy to minimum coverage")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		graphIn := args[0]
		seed := args[1]

		var dir gfa.Direction
		switch {
		case strings.HasSuffix(seed, "+"):
			dir = gfa.Forward
		case strings.HasSuffix(seed, "-"):
			dir = gfa.Reverse
		default:
			return fmt.Errorf("superbubble: seed %q must end in + or -", seed)
		}
		name := seed[:len(seed)-1]

		log := gfalog.New(gfalog.Config{Tool: "superbubble"})
		defer log.Close()

		common := gfaconfig.DefaultCommon()
		common.GraphIn = graphIn
		common.CoveragePath = coveragePath

		in, err := pipeline.Load(common, log)
		if err != nil {
			return err
		}

		id, ok := in.Graph.SegmentIDByName(name)
		if !ok {
			return fmt.Errorf("superbubble: %w: %s", gfa.ErrUnknownSegmentRef, name)
		}
		s := gfa.DS(id, dir)

		var policy gfa.WeightPolicy = gfa.MinOverlapWeight{}
		if coveragePath != "" {
			policy = gfa.MinCoverageWeight{Coverage: in.Coverage}
		}

		result, err := gfa.FindSuperbubble(in.Graph, policy, s, maxLength, maxDiff, maxCount)
		if err != nil {
			fmt.Printf("no superbubble from %s: %v\n", seed, err)
			return nil
		}

		fmt.Printf("superbubble: %s -> %s%s\n", seed, in.Graph.SegmentName(result.End.ID), result.End.Dir)
		fmt.Printf("vertices: %d\n", len(result.Vertices))
		var path []string
		for _, v := range result.Path.Segments {
			path = append(path, fmt.Sprintf("%s%s", in.Graph.SegmentName(v.ID), v.Dir))
		}
		fmt.Printf("heaviest path: %s\n", strings.Join(path, " "))
		return nil
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(pipeline.ExitArgError)
	}
}
