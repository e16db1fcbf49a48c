// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pattern

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

func TestScanColonDelimited(t *testing.T) {
	cands := scanOne(t, "Vitamin D: 25 ng/mL (Normal range: 30-100 ng/mL)")

	require.Len(t, cands, 1)
	c := cands[0]
	assert.Equal(t, "vitamin_d", c.ParameterKey)
	assert.Equal(t, 25.0, c.Value)
	assert.Equal(t, "ng/mL", c.NormalizedUnit)
	assert.Equal(t, detector.StrategyPattern, c.Strategy)
	assert.InDelta(t, 0.95, c.Confidence, 0.001)
}

func TestScanAdjacency(t *testing.T) {
	cands := scanOne(t, "Hemoglobin 13.5 g/dL")

	require.Len(t, cands, 1)
	assert.Equal(t, "hemoglobin", cands[0].ParameterKey)
	assert.Equal(t, 13.5, cands[0].Value)
	assert.Equal(t, "g/dL", cands[0].NormalizedUnit)
	assert.InDelta(t, 0.85, cands[0].Confidence, 0.001)
}

func TestScanReversedOrder(t *testing.T) {
	cands := scanOne(t, "The panel showed 350 pg/mL vitamin B12 below range.")

	require.Len(t, cands, 1)
	c := cands[0]
	assert.Equal(t, "vitamin_b12", c.ParameterKey)
	assert.Equal(t, 350.0, c.Value)
	assert.Equal(t, "pg/mL", c.NormalizedUnit)
	assert.InDelta(t, 0.85, c.Confidence, 0.001)
}

func TestScanReversedRequiresUnit(t *testing.T) {
	// A trailing alias must not adopt a bare preceding number.
	cands := scanOne(t, "He scored 95 on glucose")
	assert.Empty(t, cands)
}

func TestScanUnrecognizedUnitPenalty(t *testing.T) {
	cands := scanOne(t, "Glucose: 95 zorkons")

	require.Len(t, cands, 1)
	assert.Equal(t, "zorkons", cands[0].UnitText)
	assert.Empty(t, cands[0].NormalizedUnit)
	assert.InDelta(t, 0.77, cands[0].Confidence, 0.001)
}

func TestScanMissingUnitFallsToDefault(t *testing.T) {
	cands := scanOne(t, "Glucose: 95")

	require.Len(t, cands, 1)
	assert.Equal(t, 95.0, cands[0].Value)
	assert.Equal(t, "mg/dL", cands[0].NormalizedUnit)
	assert.InDelta(t, 0.55, cands[0].Confidence, 0.001)
}

func TestScanInlineDelimitedRow(t *testing.T) {
	cands := scanOne(t, "Glucose | 95 | mg/dL")

	require.Len(t, cands, 1)
	assert.Equal(t, "mg/dL", cands[0].NormalizedUnit)
	assert.InDelta(t, 0.75, cands[0].Confidence, 0.001)
}

func TestScanCrossedDelimiterRejectsNonUnit(t *testing.T) {
	cands := scanOne(t, "Glucose | 95 | High")

	require.Len(t, cands, 1)
	assert.Empty(t, cands[0].UnitText)
	assert.Equal(t, "mg/dL", cands[0].NormalizedUnit)
	assert.InDelta(t, 0.55, cands[0].Confidence, 0.001)
}

func TestScanIgnoresBareReferenceRange(t *testing.T) {
	cands := scanOne(t, "Vitamin D: 30-100")
	assert.Empty(t, cands)
}

func TestScanStopsAtLineBoundary(t *testing.T) {
	cands := scanOne(t, "Vitamin D was low\nGlucose: 95 mg/dL")

	require.Len(t, cands, 1)
	assert.Equal(t, "glucose", cands[0].ParameterKey)
}

func TestScanPercentUnit(t *testing.T) {
	cands := scanOne(t, "HbA1c: 5.8%")

	require.Len(t, cands, 1)
	assert.Equal(t, "hba1c", cands[0].ParameterKey)
	assert.Equal(t, 5.8, cands[0].Value)
	assert.Equal(t, "%", cands[0].NormalizedUnit)
	assert.InDelta(t, 0.95, cands[0].Confidence, 0.001)
}

func TestScanSpanCoversNameAndValue(t *testing.T) {
	text := "Result Iron: 85 mcg/dL today"
	cands := scanOne(t, text)

	require.Len(t, cands, 1)
	c := cands[0]
	assert.Equal(t, "Iron: 85 mcg/dL", text[c.Span.Start:c.Span.End])
	assert.Equal(t, c.RawText, text[c.Span.Start:c.Span.End])
}

func TestName(t *testing.T) {
	assert.Equal(t, detector.StrategyPattern, New().Name())
}

func TestGetCheckInfo(t *testing.T) {
	info := New().GetCheckInfo()
	assert.Equal(t, "pattern", info.Name)
	assert.NotEmpty(t, info.Patterns)
	assert.NotEmpty(t, info.ConfidenceFactors)
}
