// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labscan/internal/detector"
	"labscan/internal/registry"
)

type fakeStrategy struct {
	name  string
	out   []detector.Candidate
	panic bool
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Scan(string, *registry.Registry, detector.Config) []detector.Candidate {
	if f.panic {
		panic("boom")
	}
	return f.out
}

func TestRunJoinsInPriorityOrder(t *testing.T) {
	narrative := &fakeStrategy{
		name: detector.StrategyNarrative,
		out:  []detector.Candidate{{ParameterKey: "from_narrative", Strategy: detector.StrategyNarrative}},
	}
	pattern := &fakeStrategy{
		name: detector.StrategyPattern,
		out:  []detector.Candidate{{ParameterKey: "from_pattern", Strategy: detector.StrategyPattern}},
	}

	for i := 0; i < 10; i++ {
		got := New().Run("text", []detector.Strategy{narrative, pattern}, registry.Default(), detector.DefaultConfig())
		require.Len(t, got, 2)
		assert.Equal(t, "from_pattern", got[0].ParameterKey)
		assert.Equal(t, "from_narrative", got[1].ParameterKey)
	}
}

func TestRunSurvivesPanickingStrategy(t *testing.T) {
	bad := &fakeStrategy{name: detector.StrategyTable, panic: true}
	good := &fakeStrategy{
		name: detector.StrategyPattern,
		out:  []detector.Candidate{{ParameterKey: "glucose", Strategy: detector.StrategyPattern}},
	}

	got := New().Run("text", []detector.Strategy{bad, good}, registry.Default(), detector.DefaultConfig())
	require.Len(t, got, 1)
	assert.Equal(t, "glucose", got[0].ParameterKey)
}

func TestRunNoStrategies(t *testing.T) {
	assert.Empty(t, New().Run("text", nil, registry.Default(), detector.DefaultConfig()))
}
