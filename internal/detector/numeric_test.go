// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindNumericTokensBasics(t *testing.T) {
	toks := FindNumericTokens("Glucose: 95 mg/dL, HbA1c 5.7 %")
	require.Len(t, toks, 2)

	assert.Equal(t, 95.0, toks[0].Value)
	assert.Equal(t, "95", toks[0].Raw)
	assert.Equal(t, 9, toks[0].Start)
	assert.Equal(t, 11, toks[0].End)

	assert.Equal(t, 5.7, toks[1].Value)
	assert.Equal(t, "5.7", toks[1].Raw)
}

func TestFindNumericTokensThousandsSeparators(t *testing.T) {
	toks := FindNumericTokens("Platelets 250,000 and B12 1,234.5")
	require.Len(t, toks, 2)
	assert.Equal(t, 250000.0, toks[0].Value)
	assert.Equal(t, "250,000", toks[0].Raw)
	assert.Equal(t, 1234.5, toks[1].Value)
	assert.Equal(t, "1,234.5", toks[1].Raw)
}

func TestFindNumericTokensCommaIsNotAlwaysThousands(t *testing.T) {
	// "95, 140" is a list, not one number.
	toks := FindNumericTokens("values 95, 140")
	require.Len(t, toks, 2)
	assert.Equal(t, 95.0, toks[0].Value)
	assert.Equal(t, 140.0, toks[1].Value)
}

func TestFindNumericTokensRejectsRangeBoundaries(t *testing.T) {
	// Reference-range boundaries are glued to a hyphen on one side.
	assert.Empty(t, FindNumericTokens("30-100"))

	toks := FindNumericTokens("Vitamin D: 25 ng/mL (30-100)")
	require.Len(t, toks, 1)
	assert.Equal(t, 25.0, toks[0].Value)
}

func TestFindNumericTokensRejectsDashVariants(t *testing.T) {
	assert.Empty(t, FindNumericTokens("30–100"), "en dash")
	assert.Empty(t, FindNumericTokens("30—100"), "em dash")
}

func TestFindNumericTokensRejectsGluedRuns(t *testing.T) {
	assert.Empty(t, FindNumericTokens("100mg"))
	assert.Empty(t, FindNumericTokens("B12"))
	assert.Empty(t, FindNumericTokens("x500"))
}

func TestFindNumericTokensTrailingDot(t *testing.T) {
	// Sentence-final period is not a decimal point.
	toks := FindNumericTokens("The result was 95.")
	require.Len(t, toks, 1)
	assert.Equal(t, "95", toks[0].Raw)
}

func TestSplitValueUnit(t *testing.T) {
	tests := []struct {
		cell      string
		wantValue float64
		wantUnit  string
		wantOK    bool
	}{
		{"95", 95, "", true},
		{"  95 mg/dL ", 95, "mg/dL", true},
		{"22.5* ng/mL", 22.5, "ng/mL", true},
		{"12†", 12, "", true},
		{"250,000", 250000, "", true},
		{"", 0, "", false},
		{"High", 0, "", false},
		{"30-100", 0, "", false},
		{"95 and 140", 0, "", false},
		{"approx 95", 0, "", false}, // value must lead the cell
	}
	for _, tt := range tests {
		value, unit, ok := SplitValueUnit(tt.cell)
		assert.Equal(t, tt.wantOK, ok, "cell %q", tt.cell)
		if tt.wantOK {
			assert.Equal(t, tt.wantValue, value, "cell %q", tt.cell)
			assert.Equal(t, tt.wantUnit, unit, "cell %q", tt.cell)
		}
	}
}
