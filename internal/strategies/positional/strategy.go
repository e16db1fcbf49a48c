// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package positional implements the alignment-based extractor: when no
// explicit delimiter structures the text, it infers columns from segment
// start offsets that repeat across neighboring lines.
package positional

import (
	"regexp"
	"strings"

	"labscan/internal/detector"
	"labscan/internal/observability"
	"labscan/internal/registry"
	"labscan/internal/strategies/table"
)

const (
	confBase = 0.60

	unitBoost      = 0.05 // unit present and normalized
	noUnitPenalty  = 0.05 // no unit anywhere on the row
	unknownPenalty = 0.10 // unit text present but not recognized
)

var segGap = regexp.MustCompile(` {2,}`)

// Strategy is the positional extractor.
type Strategy struct {
	observer *observability.StandardObserver
}

// New creates a positional extractor strategy.
func New() *Strategy {
	return &Strategy{}
}

// SetObserver sets the observability component.
func (s *Strategy) SetObserver(observer *observability.StandardObserver) {
	s.observer = observer
}

// Name implements detector.Strategy.
func (s *Strategy) Name() string { return detector.StrategyPositional }

// Scan implements detector.Strategy. Lines inside pipe- or tab-delimited
// blocks are skipped; the table strategy already structures those.
func (s *Strategy) Scan(text string, reg *registry.Registry, cfg detector.Config) []detector.Candidate {
	var finish func(bool, map[string]interface{})
	if s.observer != nil {
		finish = s.observer.StartTiming("positional_strategy", "scan", s.Name())
	}

	text = cfg.CapText(text)
	claimed := table.DelimitedLineRanges(text)

	var candidates []detector.Candidate
	for _, b := range findBlocks(text, claimed) {
		candidates = append(candidates, scanBlock(b, reg, cfg)...)
	}

	if finish != nil {
		finish(true, map[string]interface{}{"candidate_count": len(candidates)})
	}
	return candidates
}

type lineInfo struct {
	text  string
	start int
}

type segment struct {
	text  string
	start int // absolute offset
}

func (s segment) end() int { return s.start + len(s.text) }

type blockLine struct {
	line lineInfo
	segs []segment
}

func findBlocks(text string, claimed []detector.Span) [][]blockLine {
	var blocks [][]blockLine
	var cur []blockLine

	flush := func() {
		if len(cur) >= 2 {
			blocks = append(blocks, cur)
		}
		cur = nil
	}

	start := 0
	for i := 0; i <= len(text); i++ {
		if i != len(text) && text[i] != '\n' {
			continue
		}
		l := lineInfo{text: text[start:i], start: start}
		start = i + 1

		if insideAny(l, claimed) {
			flush()
			continue
		}
		segs := splitSegments(l)
		if len(segs) < 2 {
			flush()
			continue
		}
		cur = append(cur, blockLine{line: l, segs: segs})
	}
	flush()
	return blocks
}

func insideAny(l lineInfo, claimed []detector.Span) bool {
	mid := detector.Span{Start: l.start, End: l.start + len(l.text)}
	for _, s := range claimed {
		if mid.Overlaps(s) {
			return true
		}
	}
	return false
}

func splitSegments(l lineInfo) []segment {
	var segs []segment
	from := 0
	emit := func(to int) {
		seg := l.text[from:to]
		lead := len(seg) - len(strings.TrimLeft(seg, " "))
		trimmed := strings.TrimSpace(seg)
		if trimmed != "" {
			segs = append(segs, segment{text: trimmed, start: l.start + from + lead})
		}
	}
	for _, gap := range segGap.FindAllStringIndex(l.text, -1) {
		emit(gap[0])
		from = gap[1]
	}
	emit(len(l.text))
	return segs
}

// rowRead is one line of a block that yielded a name and a value.
type rowRead struct {
	line    lineInfo
	owners  []*registry.Definition
	nameSeg segment
	value   float64
	valSeg  segment
	unitRaw string
	valCol  int // value segment offset within its line
}

// scanBlock reads every line that pairs an alias segment with a value
// segment, then keeps only rows whose value column aligns with at least
// one other row within the configured tolerance. Alignment across lines
// is the whole signal here; a lone row proves nothing.
func scanBlock(b []blockLine, reg *registry.Registry, cfg detector.Config) []detector.Candidate {
	var rows []rowRead
	for _, bl := range b {
		if r, ok := readRow(bl, reg); ok {
			rows = append(rows, r)
		}
	}
	if len(rows) < 2 {
		return nil
	}

	var candidates []detector.Candidate
	for i, r := range rows {
		if !alignedWithOther(rows, i, cfg.PositionalTolerance) {
			continue
		}
		candidates = append(candidates, emitRow(r, reg)...)
	}
	return candidates
}

func alignedWithOther(rows []rowRead, i, tol int) bool {
	for j, other := range rows {
		if j == i {
			continue
		}
		d := rows[i].valCol - other.valCol
		if d < 0 {
			d = -d
		}
		if d <= tol {
			return true
		}
	}
	return false
}

func readRow(bl blockLine, reg *registry.Registry) (rowRead, bool) {
	nameIdx := -1
	var owners []*registry.Definition
	for i, seg := range bl.segs {
		name := strings.TrimRight(seg.text, "*†‡# ")
		if defs := reg.LookupAlias(name); len(defs) > 0 {
			nameIdx, owners = i, defs
			break
		}
	}
	if nameIdx < 0 {
		return rowRead{}, false
	}

	for j := nameIdx + 1; j < len(bl.segs); j++ {
		seg := bl.segs[j]
		v, unitRaw, ok := detector.SplitValueUnit(seg.text)
		if !ok {
			continue
		}
		if unitRaw == "" {
			unitRaw = unitFromLaterSegs(bl.segs[j+1:], reg)
		}
		return rowRead{
			line:    bl.line,
			owners:  owners,
			nameSeg: bl.segs[nameIdx],
			value:   v,
			valSeg:  seg,
			unitRaw: unitRaw,
			valCol:  seg.start - bl.line.start,
		}, true
	}
	return rowRead{}, false
}

func unitFromLaterSegs(segs []segment, reg *registry.Registry) string {
	for _, seg := range segs {
		if reg.IsUnitLike(seg.text) {
			return seg.text
		}
	}
	for _, seg := range segs {
		fields := strings.Fields(seg.text)
		if len(fields) > 1 {
			if last := fields[len(fields)-1]; reg.IsUnitLike(last) {
				return last
			}
		}
	}
	return ""
}

func emitRow(r rowRead, reg *registry.Registry) []detector.Candidate {
	var candidates []detector.Candidate
	for _, def := range r.owners {
		conf := confBase
		normalized := ""
		switch {
		case r.unitRaw == "":
			conf -= noUnitPenalty
			normalized = def.DefaultUnit()
		default:
			if canonical, ok := reg.NormalizeUnit(def.Key, r.unitRaw); ok {
				conf += unitBoost
				normalized = canonical
			} else {
				conf -= unknownPenalty
			}
		}

		start := r.nameSeg.start
		end := r.valSeg.end()
		candidates = append(candidates, detector.Candidate{
			ParameterKey:   def.Key,
			RawText:        r.line.text[start-r.line.start : end-r.line.start],
			Value:          r.value,
			UnitText:       r.unitRaw,
			NormalizedUnit: normalized,
			Span:           detector.Span{Start: start, End: end},
			Strategy:       detector.StrategyPositional,
			Confidence:     clamp(conf),
		})
	}
	return candidates
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
