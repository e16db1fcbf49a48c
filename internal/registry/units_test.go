// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUnitCanonicalAndVariants(t *testing.T) {
	reg := Default()

	tests := []struct {
		key  string
		raw  string
		want string
	}{
		{"glucose", "mg/dL", "mg/dL"},
		{"glucose", "mg/dl", "mg/dL"},
		{"glucose", "MG/DL", "mg/dL"},
		{"glucose", "(mg/dL)", "mg/dL"},
		{"vitamin_d", "ng/mL", "ng/mL"},
		{"vitamin_d", "nmol/L", "nmol/L"},
		{"sodium", "mEq/L", "mEq/L"},
		{"hemoglobin", "g/dL", "g/dL"},
	}
	for _, tt := range tests {
		got, ok := reg.NormalizeUnit(tt.key, tt.raw)
		assert.True(t, ok, "%s %q", tt.key, tt.raw)
		assert.Equal(t, tt.want, got, "%s %q", tt.key, tt.raw)
	}
}

func TestNormalizeUnitOCRFolds(t *testing.T) {
	reg := Default()

	// l read as 1, μ read as u, dot and spacing noise.
	tests := []struct {
		key  string
		raw  string
		want string
	}{
		{"glucose", "mg/d1", "mg/dL"},
		{"vitamin_d", "ng/m1", "ng/mL"},
		{"vitamin_d", "nmo1/l", "nmol/L"},
		{"iron", "μg/dL", "mcg/dL"},
		{"iron", "µg/dl", "mcg/dL"},
		{"iron", "ug/dL", "mcg/dL"},
	}
	for _, tt := range tests {
		got, ok := reg.NormalizeUnit(tt.key, tt.raw)
		assert.True(t, ok, "%s %q", tt.key, tt.raw)
		assert.Equal(t, tt.want, got, "%s %q", tt.key, tt.raw)
	}
}

func TestNormalizeUnitRejections(t *testing.T) {
	reg := Default()

	_, ok := reg.NormalizeUnit("glucose", "furlongs")
	assert.False(t, ok, "unit from another planet")

	_, ok = reg.NormalizeUnit("glucose", "ng/mL")
	assert.False(t, ok, "real unit, wrong parameter")

	_, ok = reg.NormalizeUnit("glucose", "")
	assert.False(t, ok, "empty unit")

	_, ok = reg.NormalizeUnit("no_such_parameter", "mg/dL")
	assert.False(t, ok, "unknown key")
}

func TestIsUnitLike(t *testing.T) {
	reg := Default()

	for _, tok := range []string{"mg/dL", "mg/d1", "ng/mL", "mEq/L", "%", "(g/dL)", "μg/dL"} {
		assert.True(t, reg.IsUnitLike(tok), "%q", tok)
	}
	for _, tok := range []string{"High", "Normal", "glucose", "", "ref"} {
		assert.False(t, reg.IsUnitLike(tok), "%q", tok)
	}
}
