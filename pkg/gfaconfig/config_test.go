// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package gfaconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AleutianAI/gfaclean/pkg/gfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCommon_Prefix(t *testing.T) {
	c := DefaultCommon()
	assert.Equal(t, "m_", c.Prefix())
}

func TestCommon_Prefix_EmptyConvention(t *testing.T) {
	c := Common{CompactedPrefix: "_"}
	assert.Equal(t, "", c.Prefix())
}

func TestCommon_ValidateCoverageRequired(t *testing.T) {
	var c Common
	assert.ErrorIs(t, c.ValidateCoverageRequired(true), gfa.ErrMissingCoverageFile)
	assert.NoError(t, c.ValidateCoverageRequired(false))

	c.CoveragePath = "coverage.tsv"
	assert.NoError(t, c.ValidateCoverageRequired(true))
}

func TestLoadCoverage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cov.tsv")
	require.NoError(t, os.WriteFile(path, []byte("s1\t12.5\ns2\t0\n"), 0644))

	cov, err := LoadCoverage(path)
	require.NoError(t, err)
	assert.Equal(t, 12.5, cov.Value("s1"))
	assert.Equal(t, 2, cov.Len())
}

func TestLoadCoverage_MalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cov.tsv")
	require.NoError(t, os.WriteFile(path, []byte("s1 12.5 extra\n"), 0644))

	_, err := LoadCoverage(path)
	assert.Error(t, err)
}

func TestWriteIDMapping(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.tsv")
	mapping := gfa.IDMapping{{NewName: "m_1", Orig: []string{"s1", "s2", "s3"}}}

	require.NoError(t, WriteIDMapping(path, mapping))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "m_1\ts1,s2,s3\n")
}

func TestLoadYAML_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prefix: scaffold_\ncompact: true\n"), 0644))

	c := DefaultCommon()
	require.NoError(t, c.LoadYAML(path))
	assert.Equal(t, "scaffold_", c.CompactedPrefix)
	assert.True(t, c.Compact)
}
