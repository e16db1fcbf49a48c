// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrategyPriority(t *testing.T) {
	assert.Equal(t, 1, StrategyPriority(StrategyPattern))
	assert.Equal(t, 2, StrategyPriority(StrategyTable))
	assert.Equal(t, 3, StrategyPriority(StrategyPositional))
	assert.Equal(t, 4, StrategyPriority(StrategyNarrative))
	assert.Equal(t, 99, StrategyPriority("divination"))
}

func TestSpanOverlaps(t *testing.T) {
	a := Span{Start: 10, End: 20}

	assert.True(t, a.Overlaps(Span{Start: 15, End: 25}))
	assert.True(t, a.Overlaps(Span{Start: 5, End: 11}))
	assert.True(t, a.Overlaps(Span{Start: 12, End: 14}), "contained span")
	assert.False(t, a.Overlaps(Span{Start: 20, End: 30}), "half-open: touching ends do not overlap")
	assert.False(t, a.Overlaps(Span{Start: 0, End: 10}))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.5, cfg.AcceptanceThreshold)
	assert.Equal(t, 40, cfg.ContextWindow)
	assert.Equal(t, 6, cfg.NarrativeTokenWindow)
	assert.Equal(t, 3, cfg.PositionalTolerance)
	assert.Equal(t, 1<<20, cfg.MaxScanLength)
}

func TestCapText(t *testing.T) {
	cfg := Config{MaxScanLength: 20}

	short := "Glucose: 95"
	assert.Equal(t, short, cfg.CapText(short))

	long := "Glucose: 95\nSodium: 140\nPotassium: 4.2"
	capped := cfg.CapText(long)
	assert.Equal(t, "Glucose: 95", capped, "truncates at the previous line boundary")

	// A single long line without newlines gets a hard cut.
	oneLine := strings.Repeat("x", 50)
	assert.Len(t, cfg.CapText(oneLine), 20)

	unbounded := Config{MaxScanLength: 0}
	assert.Equal(t, long, unbounded.CapText(long))
}
