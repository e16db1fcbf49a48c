// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pattern implements the structural pattern matcher: for every
// known alias occurrence it searches a bounded character window for a
// numeric token and an optional unit, and classifies the shape of the
// match into a fixed confidence band.
package pattern

import (
	"regexp"
	"strings"

	"labscan/internal/detector"
	"labscan/internal/observability"
	"labscan/internal/registry"
)

// Confidence bands per structural shape. A shape's band reflects how
// unambiguous it is, not how often it occurs.
const (
	confColon       = 0.92 // name : number unit
	confAdjacent    = 0.82 // name number unit, number unit name
	confInlineTable = 0.72 // delimiter or multi-space row fragment
	confBare        = 0.55 // parenthetical or unit-less number

	unitBoost   = 0.03 // unit present and normalized
	unitPenalty = 0.15 // unit present but not recognized for the parameter
)

var multiSpace = regexp.MustCompile(`\s{3,}`)

// Strategy is the pattern matcher.
type Strategy struct {
	observer *observability.StandardObserver
}

// New creates a pattern matcher strategy.
func New() *Strategy {
	return &Strategy{}
}

// SetObserver sets the observability component.
func (s *Strategy) SetObserver(observer *observability.StandardObserver) {
	s.observer = observer
}

// Name implements detector.Strategy.
func (s *Strategy) Name() string { return detector.StrategyPattern }

// Scan implements detector.Strategy. Multiple shapes may match the same
// alias occurrence; each produces its own candidate and deduplication is
// left to the aggregator.
func (s *Strategy) Scan(text string, reg *registry.Registry, cfg detector.Config) []detector.Candidate {
	var finish func(bool, map[string]interface{})
	if s.observer != nil {
		finish = s.observer.StartTiming("pattern_strategy", "scan", s.Name())
	}

	var candidates []detector.Candidate
	for _, hit := range reg.FindAliases(text) {
		candidates = append(candidates, s.scanForward(text, hit, reg, cfg)...)
		if c, ok := s.scanReversed(text, hit, reg, cfg); ok {
			candidates = append(candidates, c)
		}
	}

	if finish != nil {
		finish(true, map[string]interface{}{"candidate_count": len(candidates)})
	}
	return candidates
}

// scanForward looks for "name <sep> number [unit]" within the window after
// the alias. The nearest valid number wins.
func (s *Strategy) scanForward(text string, hit registry.AliasHit, reg *registry.Registry, cfg detector.Config) []detector.Candidate {
	window := forwardWindow(text, hit.End, cfg.ContextWindow)
	toks := detector.FindNumericTokens(window)
	if len(toks) == 0 {
		return nil
	}
	tok := toks[0] // nearest

	sep := window[:tok.Start]
	base, ok := classifySeparator(sep)
	if !ok {
		return nil
	}

	unitRaw, crossed := unitTokenAfter(window, tok.End)
	if crossed && unitRaw != "" {
		// Across a column delimiter the next token may be the neighboring
		// column rather than a unit. Keep it only if it looks like one.
		if _, ok := reg.NormalizeUnit(hit.Def.Key, unitRaw); !ok && !reg.IsUnitLike(unitRaw) {
			unitRaw = ""
		}
	}
	conf, normalized := scoreUnit(base, hit.Def, unitRaw, reg)

	end := hit.End + tok.End
	if unitRaw != "" {
		end = hit.End + tok.End + len(unitRaw) + strings.Index(window[tok.End:], unitRaw)
	}
	return []detector.Candidate{{
		ParameterKey:   hit.Def.Key,
		RawText:        text[hit.Start:end],
		Value:          tok.Value,
		UnitText:       unitRaw,
		NormalizedUnit: normalized,
		Span:           detector.Span{Start: hit.Start, End: end},
		Strategy:       detector.StrategyPattern,
		Confidence:     clamp(conf),
	}}
}

// scanReversed looks for "number unit <name>" before the alias. The unit
// token is mandatory here: without it a trailing alias would adopt any
// number that happens to precede it on the line.
func (s *Strategy) scanReversed(text string, hit registry.AliasHit, reg *registry.Registry, cfg detector.Config) (detector.Candidate, bool) {
	window := backwardWindow(text, hit.Start, cfg.ContextWindow)
	toks := detector.FindNumericTokens(window)
	if len(toks) == 0 {
		return detector.Candidate{}, false
	}
	tok := toks[len(toks)-1] // nearest to the alias

	between := window[tok.End:]
	unitRaw, leftover := splitReversedGap(between)
	if leftover || unitRaw == "" {
		return detector.Candidate{}, false
	}
	if _, ok := reg.NormalizeUnit(hit.Def.Key, unitRaw); !ok && !reg.IsUnitLike(unitRaw) {
		return detector.Candidate{}, false
	}

	conf, normalized := scoreUnit(confAdjacent, hit.Def, unitRaw, reg)
	start := hit.Start - len(window) + tok.Start
	return detector.Candidate{
		ParameterKey:   hit.Def.Key,
		RawText:        text[start:hit.End],
		Value:          tok.Value,
		UnitText:       unitRaw,
		NormalizedUnit: normalized,
		Span:           detector.Span{Start: start, End: hit.End},
		Strategy:       detector.StrategyPattern,
		Confidence:     clamp(conf),
	}, true
}

// classifySeparator assigns the confidence band for the text between an
// alias and its value. Separators carrying other words are left to the
// narrative strategy.
func classifySeparator(sep string) (float64, bool) {
	if strings.ContainsAny(sep, "\n") {
		return 0, false
	}
	if hasLetters(sep) {
		return 0, false
	}
	switch {
	case strings.ContainsAny(sep, ":="):
		return confColon, true
	case strings.ContainsAny(sep, "|\t") || multiSpace.MatchString(sep):
		return confInlineTable, true
	case strings.Contains(sep, "("):
		return confBare, true
	case strings.TrimSpace(sep) == "" || strings.TrimSpace(sep) == ",":
		return confAdjacent, true
	default:
		return confBare, true
	}
}

// scoreUnit folds unit presence into the band: a normalized unit lifts the
// band slightly, a unit that fails normalization costs a fixed penalty but
// never discards the candidate, and a missing unit drops the match into
// the unit-less band with the parameter's default unit assumed.
func scoreUnit(base float64, def *registry.Definition, unitRaw string, reg *registry.Registry) (conf float64, normalized string) {
	if unitRaw == "" {
		if base > confBare {
			return confBare, def.DefaultUnit()
		}
		return base, def.DefaultUnit()
	}
	if canonical, ok := registryNormalize(reg, def.Key, unitRaw); ok {
		return base + unitBoost, canonical
	}
	return base - unitPenalty, ""
}

func registryNormalize(reg *registry.Registry, key, raw string) (string, bool) {
	return reg.NormalizeUnit(key, raw)
}

// forwardWindow bounds the scan to the configured window, truncated at the
// end of the line: lab rows are line-oriented and a value on the next line
// belongs to another parameter.
func forwardWindow(text string, from, width int) string {
	end := from + width
	if end > len(text) {
		end = len(text)
	}
	w := text[from:end]
	if i := strings.IndexByte(w, '\n'); i >= 0 {
		w = w[:i]
	}
	return w
}

func backwardWindow(text string, to, width int) string {
	start := to - width
	if start < 0 {
		start = 0
	}
	w := text[start:to]
	if i := strings.LastIndexByte(w, '\n'); i >= 0 {
		w = w[i+1:]
	}
	return w
}

// unitTokenAfter extracts the raw unit token following a numeric token, if
// any. A parenthesized run after the value is a reference range, not a
// unit. At most one column delimiter may sit between the value and its
// unit; crossed reports whether one did.
func unitTokenAfter(window string, from int) (tok string, crossed bool) {
	rest := strings.TrimLeft(window[from:], "*†‡ ")
	if strings.HasPrefix(rest, "|") || strings.HasPrefix(rest, "\t") {
		crossed = true
		rest = strings.TrimLeft(rest, "|\t ")
	}
	if rest == "" || rest[0] == '(' || rest[0] == '[' {
		return "", crossed
	}
	end := strings.IndexAny(rest, " \t|(")
	if end < 0 {
		end = len(rest)
	}
	tok = strings.TrimRight(rest[:end], ",;:.)]")
	if tok == "" || !hasLetters(tok) && tok != "%" {
		return "", crossed
	}
	return tok, crossed
}

// splitReversedGap splits the text between a value and a trailing alias
// into an optional unit token. leftover is true when anything else (other
// words) sits in the gap, which disqualifies the reversed shape.
func splitReversedGap(between string) (unit string, leftover bool) {
	fields := strings.Fields(strings.Trim(between, " ,;-"))
	switch len(fields) {
	case 0:
		return "", false
	case 1:
		return fields[0], false
	default:
		return "", true
	}
}

func hasLetters(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
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
