// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package pipeline

import (
	"github.com/spf13/cobra"

	"github.com/AleutianAI/gfaclean/pkg/gfaconfig"
)

// NewRootCommand builds the cobra.Command scaffolding every gfaclean tool
// shares: positional <gfa-in> <gfa-out> arguments and the common flags of
// spec.md §6 (grounded on the teacher's cmd_graph.go init()-registers-flags
// idiom). Callers add their own pruner-specific flags to cmd.Flags() and
// set cmd.RunE before executing it. common should already carry any values
// loaded from a --config companion file (spec.md §6) so CLI flags layer on
// top rather than the other way around.
func NewRootCommand(use, short string, common *gfaconfig.Common) *cobra.Command {
	cmd := &cobra.Command{
		Use:          use + " <gfa-in> <gfa-out>",
		Short:        short,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			common.GraphIn = args[0]
			common.GraphOut = args[1]
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&common.CoveragePath, "coverage", common.CoveragePath,
		`per-segment coverage file ("name\tvalue" per line)`)
	flags.BoolVar(&common.Compact, "compact", common.Compact,
		"compact the graph after cleaning")
	flags.StringVar(&common.IDMappingPath, "id-mapping", common.IDMappingPath,
		"append new-segment -> original-segments mapping to this file")
	flags.StringVar(&common.CompactedPrefix, "prefix", common.CompactedPrefix,
		`prefix for compacted segment names ("_" means empty)`)
	flags.BoolVar(&common.DropSequence, "drop-sequence", common.DropSequence,
		"replace all sequences with * on output")
	flags.BoolVar(&common.RenameAll, "rename-all", common.RenameAll,
		"rename every compacted segment, even trivial single-vertex ones")
	flags.IntVar(&common.DBGK, "dbg-k", common.DBGK,
		"De Bruijn k for DBG-aware compaction (0 disables)")
	flags.BoolVar(&common.NormalizeOvls, "normalize-ovls", common.NormalizeOvls,
		"clamp pathological overlaps on output instead of writing them verbatim")
	flags.String("config", "", "optional YAML file of defaults for these flags")

	return cmd
}
