// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Defaults.Format)
	assert.Equal(t, "all", cfg.Defaults.Strategies)
	assert.Contains(t, cfg.Profiles, "pipeline")

	dc := cfg.DetectorConfig()
	assert.Equal(t, 0.5, dc.AcceptanceThreshold)
	assert.Equal(t, 40, dc.ContextWindow)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
defaults:
  format: json
  no_color: true
extraction:
  acceptance_threshold: 0.65
  context_window: 60
profiles:
  strict:
    format: csv
    strategies: pattern,table
    description: High-precision extraction
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Defaults.Format)
	assert.True(t, cfg.Defaults.NoColor)

	dc := cfg.DetectorConfig()
	assert.Equal(t, 0.65, dc.AcceptanceThreshold)
	assert.Equal(t, 60, dc.ContextWindow)
	assert.Equal(t, 6, dc.NarrativeTokenWindow, "unset fields keep engine defaults")

	strict := cfg.GetProfile("strict")
	require.NotNil(t, strict)
	assert.Equal(t, "pattern,table", strict.Strategies)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "defaults: [not a mapping")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadThreshold(t *testing.T) {
	path := writeConfig(t, "extraction:\n  acceptance_threshold: 1.5\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acceptance_threshold")
}

func TestLoadConfigOrDefaultFallsBack(t *testing.T) {
	cfg := LoadConfigOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NotNil(t, cfg)
	assert.Equal(t, "text", cfg.Defaults.Format)
}

func TestGetProfileUnknown(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Nil(t, cfg.GetProfile("does-not-exist"))
}
