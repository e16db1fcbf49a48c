// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package table

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

func TestScanPipeTable(t *testing.T) {
	text := "| Test | Result | Unit |\n" +
		"| Glucose | 95 | mg/dL |\n" +
		"| Hemoglobin | 13.5 | g/dL |"

	cands := scanOne(t, text)
	require.Len(t, cands, 2)

	m := byKey(cands)
	assert.Equal(t, 95.0, m["glucose"].Value)
	assert.Equal(t, "mg/dL", m["glucose"].NormalizedUnit)
	assert.InDelta(t, 0.80, m["glucose"].Confidence, 0.001)

	assert.Equal(t, 13.5, m["hemoglobin"].Value)
	assert.Equal(t, "g/dL", m["hemoglobin"].NormalizedUnit)
}

func TestScanTabTable(t *testing.T) {
	text := "Sodium\t140\tmEq/L\nPotassium\t4.2\tmEq/L"

	m := byKey(scanOne(t, text))
	require.Len(t, m, 2)
	assert.Equal(t, 140.0, m["sodium"].Value)
	assert.Equal(t, 4.2, m["potassium"].Value)
	assert.Equal(t, "mEq/L", m["potassium"].NormalizedUnit)
}

func TestScanWideSpaceColumns(t *testing.T) {
	text := "Test                Result      Reference\n" +
		"Vitamin D           25          30-100 ng/mL\n" +
		"Vitamin B12         350         200-900 pg/mL"

	m := byKey(scanOne(t, text))
	require.Len(t, m, 2)

	d := m["vitamin_d"]
	assert.Equal(t, 25.0, d.Value)
	assert.Equal(t, "ng/mL", d.NormalizedUnit, "reference range cell lends its unit")
	assert.InDelta(t, 0.80, d.Confidence, 0.001)

	assert.Equal(t, 350.0, m["vitamin_b12"].Value)
}

func TestScanValueCellWithEmbeddedUnit(t *testing.T) {
	text := "Ferritin     12 ng/mL\nIron         85 mcg/dL"

	m := byKey(scanOne(t, text))
	require.Len(t, m, 2)
	assert.Equal(t, 12.0, m["ferritin"].Value)
	assert.Equal(t, "ng/mL", m["ferritin"].NormalizedUnit)
	assert.Equal(t, 85.0, m["iron"].Value)
}

func TestScanFootnotedValues(t *testing.T) {
	text := "| Test | Result |\n| Ferritin | 12* |\n| TSH | 5.5† |"

	m := byKey(scanOne(t, text))
	require.Len(t, m, 2)
	assert.Equal(t, 12.0, m["ferritin"].Value)
	assert.Equal(t, 5.5, m["tsh"].Value)
	// No unit cell anywhere in the block.
	assert.InDelta(t, confBase-noUnitPenalty, m["tsh"].Confidence, 0.001)
}

func TestScanSingleLineIsNotATable(t *testing.T) {
	assert.Empty(t, scanOne(t, "| Glucose | 95 | mg/dL |"))
}

func TestScanRaggedBlockPenalty(t *testing.T) {
	text := "| Glucose | 95 | mg/dL |\n" +
		"| Hemoglobin | 13.5 | g/dL | H | flagged |"

	m := byKey(scanOne(t, text))
	require.Contains(t, m, "glucose")
	assert.InDelta(t, confBase-raggedPenalty, m["glucose"].Confidence, 0.001)
}

func TestScanSeparatorRowsIgnored(t *testing.T) {
	text := "| Test | Result | Unit |\n" +
		"|------|--------|------|\n" +
		"| Glucose | 95 | mg/dL |"

	m := byKey(scanOne(t, text))
	require.Len(t, m, 1)
	assert.Contains(t, m, "glucose")
}

func TestScanSpanPointsIntoSource(t *testing.T) {
	text := "header line\n| Glucose | 95 | mg/dL |\n| Sodium | 140 | mEq/L |"

	m := byKey(scanOne(t, text))
	require.Contains(t, m, "sodium")
	c := m["sodium"]
	assert.Equal(t, "Sodium | 140 | mEq/L", text[c.Span.Start:c.Span.End])
}

func TestDelimitedLineRanges(t *testing.T) {
	text := "prose before\n| Glucose | 95 |\n| Sodium | 140 |\nprose after"

	spans := DelimitedLineRanges(text)
	require.Len(t, spans, 1)
	assert.Equal(t, "| Glucose | 95 |\n| Sodium | 140 |", text[spans[0].Start:spans[0].End])
}

func TestName(t *testing.T) {
	assert.Equal(t, detector.StrategyTable, New().Name())
}
