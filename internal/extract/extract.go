// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract is the engine facade: it fans the configured strategies
// out over the input text, aggregates their candidates, and exposes the
// diagnostic pass for weak runs.
package extract

import (
	"fmt"
	"strings"

	"labscan/internal/aggregate"
	"labscan/internal/detector"
	"labscan/internal/diagnose"
	"labscan/internal/observability"
	"labscan/internal/parallel"
	"labscan/internal/registry"
	"labscan/internal/strategies/narrative"
	"labscan/internal/strategies/pattern"
	"labscan/internal/strategies/positional"
	"labscan/internal/strategies/table"
)

// observed is implemented by strategies that accept an observer.
type observed interface {
	SetObserver(*observability.StandardObserver)
}

// DefaultStrategies returns all built-in strategies in priority order.
func DefaultStrategies() []detector.Strategy {
	return []detector.Strategy{
		pattern.New(),
		table.New(),
		positional.New(),
		narrative.New(),
	}
}

// Engine runs extraction over a fixed registry and configuration.
type Engine struct {
	reg        *registry.Registry
	cfg        detector.Config
	strategies []detector.Strategy
	pool       *parallel.Pool
	observer   *observability.StandardObserver
}

// NewEngine creates an engine with all built-in strategies.
func NewEngine(reg *registry.Registry, cfg detector.Config) *Engine {
	return &Engine{
		reg:        reg,
		cfg:        cfg,
		strategies: DefaultStrategies(),
		pool:       parallel.New(),
	}
}

// SetObserver sets the observability component and propagates it to the
// pool and every strategy that accepts one.
func (e *Engine) SetObserver(observer *observability.StandardObserver) {
	e.observer = observer
	e.pool.SetObserver(observer)
	for _, s := range e.strategies {
		if o, ok := s.(observed); ok {
			o.SetObserver(observer)
		}
	}
}

// SelectStrategies restricts the engine to the named strategies. Names
// are matched against Strategy.Name; an unknown name is an error.
func (e *Engine) SelectStrategies(names []string) error {
	if len(names) == 0 {
		return nil
	}
	all := DefaultStrategies()
	var selected []detector.Strategy
	for _, name := range names {
		found := false
		for _, s := range all {
			if s.Name() == strings.TrimSpace(name) {
				selected = append(selected, s)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown strategy: %s", name)
		}
	}
	e.strategies = selected
	if e.observer != nil {
		e.SetObserver(e.observer)
	}
	return nil
}

// Strategies returns the engine's active strategies.
func (e *Engine) Strategies() []detector.Strategy {
	return e.strategies
}

// Extract scans text and returns at most one result per parameter.
// Empty or whitespace-only input yields an empty map; extraction has no
// error path.
func (e *Engine) Extract(text string) map[string]detector.Result {
	if strings.TrimSpace(text) == "" {
		return map[string]detector.Result{}
	}

	var finish func(bool, map[string]interface{})
	if e.observer != nil {
		finish = e.observer.StartTiming("extract", "extract", fmt.Sprintf("%d chars", len(text)))
	}

	candidates := e.pool.Run(text, e.strategies, e.reg, e.cfg)
	results := aggregate.Aggregate(candidates, e.reg, e.cfg)

	if finish != nil {
		finish(true, map[string]interface{}{
			"candidate_count": len(candidates),
			"result_count":    len(results),
		})
	}
	return results
}

// Diagnose runs extraction and explains the outcome. It never returns an
// error and never panics.
func (e *Engine) Diagnose(text string) diagnose.Report {
	results := e.Extract(text)
	return diagnose.Analyze(text, results, 0, e.reg, e.cfg)
}

// Extract scans text with the built-in registry and default configuration.
func Extract(text string) map[string]detector.Result {
	return NewEngine(registry.Default(), detector.DefaultConfig()).Extract(text)
}

// Diagnose analyzes text with the built-in registry and default
// configuration.
func Diagnose(text string) diagnose.Report {
	return NewEngine(registry.Default(), detector.DefaultConfig()).Diagnose(text)
}
