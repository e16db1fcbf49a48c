// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package diagnose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labscan/internal/detector"
	"labscan/internal/registry"
)

func analyze(text string, results map[string]detector.Result) Report {
	return Analyze(text, results, 0, registry.Default(), detector.DefaultConfig())
}

func TestAnalyzeEmptyText(t *testing.T) {
	rep := analyze("   \n\t ", nil)

	require.Len(t, rep.Reasons, 1)
	assert.Contains(t, rep.Reasons[0], "empty")
	assert.Len(t, rep.Suggestions, 1)
}

func TestAnalyzeTooShort(t *testing.T) {
	rep := analyze("hello there", nil)

	require.NotEmpty(t, rep.Reasons)
	assert.Contains(t, rep.Reasons[0], "too short")
}

func TestAnalyzeNoNumbers(t *testing.T) {
	rep := analyze("Vitamin D results are pending from the laboratory", nil)

	require.NotEmpty(t, rep.Reasons)
	assert.Contains(t, strings.Join(rep.Reasons, " "), "no standalone numeric values")
}

func TestAnalyzeNumbersWithoutNames(t *testing.T) {
	rep := analyze("values recorded were 95 and 140 and 4.2 today", nil)

	joined := strings.Join(rep.Reasons, " ")
	assert.Contains(t, joined, "no known parameter name")
}

func TestAnalyzeNamesAndNumbersNeverPaired(t *testing.T) {
	text := "Glucose and hemoglobin were tested today.\n" +
		"Numbers on file: 95 and 13.5 respectively somewhere else entirely."
	rep := analyze(text, nil)

	joined := strings.Join(rep.Reasons, " ")
	assert.Contains(t, joined, "never close enough to pair")
}

func TestAnalyzeUnparsedTable(t *testing.T) {
	text := "| Tset | Rselut |\n| Gucolse | ninety-five |\n| Hgmelobin | thirteen |"
	rep := analyze(text, nil)

	joined := strings.Join(rep.Reasons, " ")
	assert.Contains(t, joined, "looks tabular")
}

func TestAnalyzeReasonsAndSuggestionsAligned(t *testing.T) {
	rep := analyze("some arbitrary text without any lab content at all", nil)
	assert.Equal(t, len(rep.Reasons), len(rep.Suggestions))
	assert.NotEmpty(t, rep.Reasons)
}

func TestAnalyzeMetrics(t *testing.T) {
	rep := analyze("Glucose: 95\nSodium: 140", nil)

	assert.Equal(t, 2, rep.Metrics.Lines)
	assert.Equal(t, 4, rep.Metrics.Words)
	assert.Greater(t, rep.Metrics.DigitDensity, 0.0)
}

func TestAnalyzeCoverageShortfall(t *testing.T) {
	results := map[string]detector.Result{
		"glucose": {ParameterKey: "glucose", Value: 95},
	}
	text := "Glucose: 95 mg/dL\nSodium 140 mEq/L noted\nPotassium 4.2 noted"

	rep := Analyze(text, results, 3, registry.Default(), detector.DefaultConfig())
	joined := strings.Join(rep.Reasons, " ")
	assert.Contains(t, joined, "fewer parameters were extracted")

	rep = Analyze(text, results, 0, registry.Default(), detector.DefaultConfig())
	assert.NotContains(t, strings.Join(rep.Reasons, " "), "fewer parameters")
}

func TestAnalyzeSuccessfulRunStaysQuiet(t *testing.T) {
	results := map[string]detector.Result{
		"glucose": {
			ParameterKey:    "glucose",
			Value:           95,
			WinningStrategy: detector.StrategyTable,
			Strategies:      []string{detector.StrategyTable},
		},
	}
	rep := analyze("| Glucose | 95 | mg/dL |\n| Sodium | 140 | mEq/L |", results)

	assert.Equal(t, 1, rep.Extracted)
	assert.Empty(t, rep.Reasons)
}
