// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package aggregate reconciles the candidates produced by all strategies
// into at most one result per parameter.
package aggregate

import (
	"math"
	"sort"

	"labscan/internal/detector"
	"labscan/internal/registry"
)

// mergeTolerance is the relative value difference under which two
// overlapping candidates count as the same observation.
const mergeTolerance = 0.01

// Aggregate merges, ranks, and filters candidates. The returned map holds
// at most one result per parameter key. Output is deterministic for a
// given candidate multiset regardless of input order.
func Aggregate(cands []detector.Candidate, reg *registry.Registry, cfg detector.Config) map[string]detector.Result {
	byParam := make(map[string][]detector.Candidate)
	for _, c := range cands {
		byParam[c.ParameterKey] = append(byParam[c.ParameterKey], c)
	}

	results := make(map[string]detector.Result)
	for key, group := range byParam {
		def, ok := reg.Get(key)
		if !ok {
			continue
		}
		if res, ok := resolveParameter(group, def, cfg); ok {
			results[key] = res
		}
	}
	return results
}

// cluster is a set of candidates that agree on one observation: their
// spans overlap and their values match within tolerance.
type cluster struct {
	members []detector.Candidate
}

func (cl *cluster) rep() detector.Candidate { return cl.members[0] }

func (cl *cluster) add(c detector.Candidate) {
	cl.members = append(cl.members, c)
	// Keep the representative the most confident member, ties broken by
	// strategy priority and then position.
	sort.SliceStable(cl.members, func(i, j int) bool {
		return candidateLess(cl.members[i], cl.members[j])
	})
}

func candidateLess(a, b detector.Candidate) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	pa, pb := detector.StrategyPriority(a.Strategy), detector.StrategyPriority(b.Strategy)
	if pa != pb {
		return pa < pb
	}
	if a.Span.Start != b.Span.Start {
		return a.Span.Start < b.Span.Start
	}
	return a.Value < b.Value
}

func resolveParameter(group []detector.Candidate, def *registry.Definition, cfg detector.Config) (detector.Result, bool) {
	// Canonical input order first so clustering never depends on the
	// order strategies happened to finish in.
	sort.SliceStable(group, func(i, j int) bool {
		a, b := group[i], group[j]
		pa, pb := detector.StrategyPriority(a.Strategy), detector.StrategyPriority(b.Strategy)
		if pa != pb {
			return pa < pb
		}
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		if a.Value != b.Value {
			return a.Value < b.Value
		}
		return a.Confidence > b.Confidence
	})

	var clusters []*cluster
	for _, c := range group {
		joined := false
		for _, cl := range clusters {
			if belongs(cl, c) {
				cl.add(c)
				joined = true
				break
			}
		}
		if !joined {
			clusters = append(clusters, &cluster{members: []detector.Candidate{c}})
		}
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return candidateLess(clusters[i].rep(), clusters[j].rep())
	})
	winner := clusters[0]
	rep := winner.rep()

	// A winner outside the physical range is discarded outright. The
	// runner-up earned less evidence, not more, so it is not promoted.
	if !def.InPlausibleRange(rep.Value) {
		return detector.Result{}, false
	}
	if rep.Confidence < cfg.AcceptanceThreshold {
		return detector.Result{}, false
	}

	var alternatives []detector.Candidate
	for _, cl := range clusters[1:] {
		alternatives = append(alternatives, cl.members...)
	}

	return detector.Result{
		ParameterKey:    rep.ParameterKey,
		Value:           rep.Value,
		Unit:            resultUnit(rep, def),
		Confidence:      rep.Confidence,
		WinningStrategy: rep.Strategy,
		Strategies:      strategyNames(winner.members),
		Alternatives:    alternatives,
	}, true
}

// belongs reports whether c records the same observation as the cluster:
// overlapping span with any member and value agreement with the
// representative.
func belongs(cl *cluster, c detector.Candidate) bool {
	if !valuesAgree(cl.rep().Value, c.Value) {
		return false
	}
	for _, m := range cl.members {
		if m.Span.Overlaps(c.Span) {
			return true
		}
	}
	return false
}

func valuesAgree(a, b float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale == 0 {
		return diff == 0
	}
	return diff <= mergeTolerance*scale
}

func resultUnit(rep detector.Candidate, def *registry.Definition) string {
	if rep.NormalizedUnit != "" {
		return rep.NormalizedUnit
	}
	if rep.UnitText != "" {
		return rep.UnitText
	}
	return def.DefaultUnit()
}

// strategyNames lists the distinct strategies in the winning cluster in
// priority order.
func strategyNames(members []detector.Candidate) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range members {
		if !seen[m.Strategy] {
			seen[m.Strategy] = true
			names = append(names, m.Strategy)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return detector.StrategyPriority(names[i]) < detector.StrategyPriority(names[j])
	})
	return names
}
