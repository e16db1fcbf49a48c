// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package positional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labscan/internal/detector"
	"labscan/internal/registry"
)

func scanOne(t *testing.T, text string) []detector.Candidate {
	t.Helper()
	return New().Scan(text, registry.Default(), detector.DefaultConfig())
}

func byKey(cands []detector.Candidate) map[string]detector.Candidate {
	m := make(map[string]detector.Candidate)
	for _, c := range cands {
		m[c.ParameterKey] = c
	}
	return m
}

func TestScanAlignedColumns(t *testing.T) {
	text := "Vitamin D    25     ng/mL\n" +
		"Ferritin     12     ng/mL\n" +
		"Glucose      95     mg/dL"

	m := byKey(scanOne(t, text))
	require.Len(t, m, 3)

	d := m["vitamin_d"]
	assert.Equal(t, 25.0, d.Value)
	assert.Equal(t, "ng/mL", d.NormalizedUnit)
	assert.InDelta(t, confBase+unitBoost, d.Confidence, 0.001)
	assert.Equal(t, detector.StrategyPositional, d.Strategy)

	assert.Equal(t, 12.0, m["ferritin"].Value)
	assert.Equal(t, 95.0, m["glucose"].Value)
}

func TestScanToleratesSmallDrift(t *testing.T) {
	// Value columns start at offsets 13 and 15, inside the +/-3 tolerance.
	text := "Vitamin D    25\n" +
		"Iron           85"

	m := byKey(scanOne(t, text))
	require.Len(t, m, 2)
	assert.InDelta(t, confBase-noUnitPenalty, m["vitamin_d"].Confidence, 0.001)
}

func TestScanRejectsMisalignedRows(t *testing.T) {
	// Second value sits far right of the first; no column is shared.
	text := "Vitamin D    25\n" +
		"Iron                                 85"

	assert.Empty(t, scanOne(t, text))
}

func TestScanLoneRowNeverMatches(t *testing.T) {
	assert.Empty(t, scanOne(t, "Vitamin D    25"))
}

func TestScanSkipsDelimitedBlocks(t *testing.T) {
	text := "| Glucose | 95 | mg/dL |\n| Sodium | 140 | mEq/L |"
	assert.Empty(t, scanOne(t, text))
}

func TestScanBlankLineSplitsBlocks(t *testing.T) {
	text := "Vitamin D    25\n\nIron         85"
	assert.Empty(t, scanOne(t, text), "rows in different blocks cannot align")
}

func TestScanSpanPointsIntoSource(t *testing.T) {
	text := "Ferritin     12     ng/mL\nGlucose      95     mg/dL"

	m := byKey(scanOne(t, text))
	require.Contains(t, m, "glucose")
	c := m["glucose"]
	assert.Equal(t, "Glucose      95", text[c.Span.Start:c.Span.End])
}

func TestName(t *testing.T) {
	assert.Equal(t, detector.StrategyPositional, New().Name())
}
