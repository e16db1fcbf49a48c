// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package narrative

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

func TestScanLinkedSentence(t *testing.T) {
	text := "Your vitamin D level came back at 25 ng/mL, which is low. Your B12 was 350."

	m := byKey(scanOne(t, text))
	require.Len(t, m, 2)

	d := m["vitamin_d"]
	assert.Equal(t, 25.0, d.Value)
	assert.Equal(t, "ng/mL", d.NormalizedUnit)
	assert.Equal(t, detector.StrategyNarrative, d.Strategy)
	assert.InDelta(t, confBase+unitBoost, d.Confidence, 0.001)

	b12 := m["vitamin_b12"]
	assert.Equal(t, 350.0, b12.Value)
	assert.Equal(t, "pg/mL", b12.NormalizedUnit, "default unit assumed without one in text")
	assert.InDelta(t, confBase-noUnitPenalty, b12.Confidence, 0.001)
}

func TestScanReversedForm(t *testing.T) {
	text := "The lab reported your level of 25 ng/mL for Vitamin D yesterday."

	m := byKey(scanOne(t, text))
	require.Contains(t, m, "vitamin_d")
	c := m["vitamin_d"]
	assert.Equal(t, 25.0, c.Value)
	assert.Equal(t, "ng/mL", c.NormalizedUnit)
	assert.InDelta(t, confBase+unitBoost, c.Confidence, 0.001)
}

func TestScanRejectsUnlinkedWords(t *testing.T) {
	// "improved to" is a trend statement, not a reported measurement.
	assert.Empty(t, scanOne(t, "Your vitamin D improved to 25 since spring"))
}

func TestScanRejectsBeyondTokenWindow(t *testing.T) {
	text := "Your vitamin D level is at about the value of around currently 25"
	assert.Empty(t, scanOne(t, text), "value sits past the token window")
}

func TestScanRequiresAnchorWord(t *testing.T) {
	// Every gap word is allowed but none asserts a measurement.
	assert.Empty(t, scanOne(t, "Your vitamin D level 25"))
}

func TestScanTrailingPunctuation(t *testing.T) {
	m := byKey(scanOne(t, "We saw that glucose was 95, within range."))

	require.Contains(t, m, "glucose")
	assert.Equal(t, 95.0, m["glucose"].Value)
}

func TestScanSpanCoversPhrase(t *testing.T) {
	text := "Note: hemoglobin is 13.5 g/dL today"
	cands := scanOne(t, text)

	require.Len(t, cands, 1)
	c := cands[0]
	assert.Equal(t, "hemoglobin is 13.5 g/dL", text[c.Span.Start:c.Span.End])
}

func TestName(t *testing.T) {
	assert.Equal(t, detector.StrategyNarrative, New().Name())
}
