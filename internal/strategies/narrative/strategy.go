// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package narrative implements the prose extractor: it links a parameter
// alias to a nearby number through a small vocabulary of linking words, as
// in "your vitamin D level came back at 25 ng/mL".
package narrative

import (
	"strings"

	"labscan/internal/detector"
	"labscan/internal/observability"
	"labscan/internal/registry"
)

const (
	confBase = 0.70

	unitBoost      = 0.03 // unit present and normalized
	noUnitPenalty  = 0.05 // no unit after the value
	unknownPenalty = 0.15 // unit present but not recognized
)

// linkWords is the full vocabulary allowed between an alias and its value.
// A single word outside this set breaks the link: "vitamin D improved to
// 25" is a claim about change, not a measurement being reported.
var linkWords = map[string]bool{
	"is": true, "was": true, "were": true, "are": true,
	"at": true, "of": true, "the": true, "a": true, "an": true,
	"your": true, "my": true, "her": true, "his": true, "their": true,
	"level": true, "levels": true, "value": true, "result": true,
	"results": true, "reading": true, "count": true,
	"reads": true, "read": true, "came": true, "back": true,
	"measured": true, "showed": true, "shows": true, "returned": true,
	"currently": true, "now": true, "today": true,
	"about": true, "around": true, "approximately": true,
}

// anchorWords must appear at least once in the gap; they carry the actual
// "name reports value" assertion.
var anchorWords = map[string]bool{
	"is": true, "was": true, "were": true, "are": true,
	"at": true, "of": true, "reads": true, "read": true,
	"came": true, "measured": true, "showed": true, "shows": true,
	"returned": true,
}

// reversedWords may appear between a value and a trailing alias, as in
// "25 ng/mL for vitamin D".
var reversedWords = map[string]bool{
	"for": true, "of": true, "on": true, "in": true,
	"your": true, "my": true, "the": true, "level": true, "levels": true,
}

// Strategy is the narrative extractor.
type Strategy struct {
	observer *observability.StandardObserver
}

// New creates a narrative extractor strategy.
func New() *Strategy {
	return &Strategy{}
}

// SetObserver sets the observability component.
func (s *Strategy) SetObserver(observer *observability.StandardObserver) {
	s.observer = observer
}

// Name implements detector.Strategy.
func (s *Strategy) Name() string { return detector.StrategyNarrative }

// Scan implements detector.Strategy.
func (s *Strategy) Scan(text string, reg *registry.Registry, cfg detector.Config) []detector.Candidate {
	var finish func(bool, map[string]interface{})
	if s.observer != nil {
		finish = s.observer.StartTiming("narrative_strategy", "scan", s.Name())
	}

	text = cfg.CapText(text)

	var candidates []detector.Candidate
	for _, hit := range reg.FindAliases(text) {
		if c, ok := s.scanForward(text, hit, reg, cfg); ok {
			candidates = append(candidates, c)
		} else if c, ok := s.scanReversed(text, hit, reg, cfg); ok {
			candidates = append(candidates, c)
		}
	}

	if finish != nil {
		finish(true, map[string]interface{}{"candidate_count": len(candidates)})
	}
	return candidates
}

type token struct {
	text  string
	start int // absolute offset
	end   int
}

// tokenize splits s on whitespace, keeping absolute offsets (base is the
// offset of s within the full text).
func tokenize(s string, base int) []token {
	var toks []token
	i := 0
	for i < len(s) {
		if s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' {
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] != ' ' && s[j] != '\t' && s[j] != '\n' && s[j] != '\r' {
			j++
		}
		toks = append(toks, token{text: s[i:j], start: base + i, end: base + j})
		i = j
	}
	return toks
}

func stripWord(w string) string {
	return strings.ToLower(strings.Trim(w, ",.;:!?()'\""))
}

func stripValueToken(w string) string {
	return strings.TrimRight(w, ",.;:!?)")
}

// scanForward links "alias <linking words> value [unit]".
func (s *Strategy) scanForward(text string, hit registry.AliasHit, reg *registry.Registry, cfg detector.Config) (detector.Candidate, bool) {
	rest := text[hit.End:]
	if len(rest) > 160 {
		rest = rest[:160]
	}
	toks := tokenize(rest, hit.End)

	// Locate the first numeric token within the gap window.
	limit := cfg.NarrativeTokenWindow + 1
	if limit > len(toks) {
		limit = len(toks)
	}
	valIdx := -1
	var value float64
	var unitRaw string
	for i := 0; i < limit; i++ {
		if v, u, ok := detector.SplitValueUnit(stripValueToken(toks[i].text)); ok {
			valIdx, value, unitRaw = i, v, u
			break
		}
	}
	if valIdx < 1 {
		// Direct adjacency is the pattern strategy's shape.
		return detector.Candidate{}, false
	}

	anchored := false
	for _, gap := range toks[:valIdx] {
		w := stripWord(gap.text)
		if !linkWords[w] {
			return detector.Candidate{}, false
		}
		if anchorWords[w] {
			anchored = true
		}
	}
	if !anchored {
		return detector.Candidate{}, false
	}

	end := toks[valIdx].start + len(stripValueToken(toks[valIdx].text))
	if unitRaw == "" && valIdx+1 < len(toks) {
		if u := stripValueToken(toks[valIdx+1].text); looksLikeUnit(reg, hit.Def.Key, u) {
			unitRaw = u
			end = toks[valIdx+1].start + len(u)
		}
	}

	conf, normalized := score(hit.Def, unitRaw, reg)
	return detector.Candidate{
		ParameterKey:   hit.Def.Key,
		RawText:        text[hit.Start:end],
		Value:          value,
		UnitText:       unitRaw,
		NormalizedUnit: normalized,
		Span:           detector.Span{Start: hit.Start, End: end},
		Strategy:       detector.StrategyNarrative,
		Confidence:     clamp(conf),
	}, true
}

// scanReversed links "value [unit] for <alias>".
func (s *Strategy) scanReversed(text string, hit registry.AliasHit, reg *registry.Registry, cfg detector.Config) (detector.Candidate, bool) {
	before := text[:hit.Start]
	base := 0
	if len(before) > 160 {
		base = len(before) - 160
		before = before[base:]
	}
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		base += i + 1
		before = before[i+1:]
	}
	toks := tokenize(before, base)
	if len(toks) == 0 {
		return detector.Candidate{}, false
	}

	valIdx := -1
	var value float64
	var unitRaw string
	lo := len(toks) - cfg.NarrativeTokenWindow - 1
	if lo < 0 {
		lo = 0
	}
	for i := len(toks) - 1; i >= lo; i-- {
		if v, u, ok := detector.SplitValueUnit(stripValueToken(toks[i].text)); ok {
			valIdx, value, unitRaw = i, v, u
			break
		}
	}
	if valIdx < 0 {
		return detector.Candidate{}, false
	}

	gap := toks[valIdx+1:]
	hasFor := false
	for i, g := range gap {
		w := stripWord(g.text)
		if i == 0 && unitRaw == "" && looksLikeUnit(reg, hit.Def.Key, stripValueToken(g.text)) {
			unitRaw = stripValueToken(g.text)
			continue
		}
		if !reversedWords[w] {
			return detector.Candidate{}, false
		}
		if w == "for" || w == "of" {
			hasFor = true
		}
	}
	if !hasFor {
		return detector.Candidate{}, false
	}

	conf, normalized := score(hit.Def, unitRaw, reg)
	return detector.Candidate{
		ParameterKey:   hit.Def.Key,
		RawText:        text[toks[valIdx].start:hit.End],
		Value:          value,
		UnitText:       unitRaw,
		NormalizedUnit: normalized,
		Span:           detector.Span{Start: toks[valIdx].start, End: hit.End},
		Strategy:       detector.StrategyNarrative,
		Confidence:     clamp(conf),
	}, true
}

func looksLikeUnit(reg *registry.Registry, key, tok string) bool {
	if tok == "" {
		return false
	}
	if _, ok := reg.NormalizeUnit(key, tok); ok {
		return true
	}
	return reg.IsUnitLike(tok)
}

func score(def *registry.Definition, unitRaw string, reg *registry.Registry) (float64, string) {
	if unitRaw == "" {
		return confBase - noUnitPenalty, def.DefaultUnit()
	}
	if canonical, ok := reg.NormalizeUnit(def.Key, unitRaw); ok {
		return confBase + unitBoost, canonical
	}
	return confBase - unknownPenalty, ""
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
