// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel fans extraction strategies out over goroutines and
// joins their candidates back in a deterministic order.
package parallel

import (
	"fmt"
	"sort"
	"sync"

	"labscan/internal/detector"
	"labscan/internal/observability"
	"labscan/internal/registry"
)

// Pool runs strategies concurrently. The zero value is usable.
type Pool struct {
	observer *observability.StandardObserver
}

// New creates a strategy pool.
func New() *Pool {
	return &Pool{}
}

// SetObserver sets the observability component.
func (p *Pool) SetObserver(observer *observability.StandardObserver) {
	p.observer = observer
}

// Run scans text with every strategy in its own goroutine and returns the
// concatenated candidates ordered by strategy priority, then strategy
// name. A panicking strategy contributes no candidates; the other
// strategies are unaffected.
func (p *Pool) Run(text string, strategies []detector.Strategy, reg *registry.Registry, cfg detector.Config) []detector.Candidate {
	var finish func(bool, map[string]interface{})
	if p.observer != nil {
		finish = p.observer.StartTiming("parallel", "run_strategies", fmt.Sprintf("%d strategies", len(strategies)))
	}

	type slot struct {
		name       string
		candidates []detector.Candidate
	}
	slots := make([]slot, len(strategies))

	var wg sync.WaitGroup
	for i, strat := range strategies {
		wg.Add(1)
		go func(i int, strat detector.Strategy) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					slots[i].candidates = nil
					if p.observer != nil {
						p.observer.LogOperation(observability.StandardObservabilityData{
							Component: "parallel",
							Operation: "strategy_panic",
							Source:    slots[i].name,
							Success:   false,
							Error:     fmt.Sprint(r),
						})
					}
				}
			}()
			slots[i].name = strat.Name()
			slots[i].candidates = strat.Scan(text, reg, cfg)
		}(i, strat)
	}
	wg.Wait()

	sort.SliceStable(slots, func(a, b int) bool {
		pa, pb := detector.StrategyPriority(slots[a].name), detector.StrategyPriority(slots[b].name)
		if pa != pb {
			return pa < pb
		}
		return slots[a].name < slots[b].name
	})

	var candidates []detector.Candidate
	for _, s := range slots {
		candidates = append(candidates, s.candidates...)
	}

	if finish != nil {
		finish(true, map[string]interface{}{"candidate_count": len(candidates)})
	}
	return candidates
}
