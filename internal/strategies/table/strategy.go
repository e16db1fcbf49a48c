// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package table implements the tabular extractor: it groups consecutive
// delimited lines (pipe, tab, or wide-space columns) into blocks, then
// reads each row as name cell, value cell, and optional unit cell.
package table

import (
	"regexp"
	"strings"

	"labscan/internal/detector"
	"labscan/internal/observability"
	"labscan/internal/registry"
)

const (
	confBase = 0.80

	noUnitPenalty  = 0.10 // row carries no resolvable unit
	raggedPenalty  = 0.10 // cell counts vary across the block by more than one
	unknownPenalty = 0.10 // unit text present but not recognized for the parameter
)

type delimKind int

const (
	kindNone delimKind = iota
	kindPipe
	kindTab
	kindSpace
)

var wideSpace = regexp.MustCompile(` {3,}`)

// Strategy is the tabular extractor.
type Strategy struct {
	observer *observability.StandardObserver
}

// New creates a tabular extractor strategy.
func New() *Strategy {
	return &Strategy{}
}

// SetObserver sets the observability component.
func (s *Strategy) SetObserver(observer *observability.StandardObserver) {
	s.observer = observer
}

// Name implements detector.Strategy.
func (s *Strategy) Name() string { return detector.StrategyTable }

// Scan implements detector.Strategy.
func (s *Strategy) Scan(text string, reg *registry.Registry, cfg detector.Config) []detector.Candidate {
	var finish func(bool, map[string]interface{})
	if s.observer != nil {
		finish = s.observer.StartTiming("table_strategy", "scan", s.Name())
	}

	var candidates []detector.Candidate
	for _, b := range findBlocks(text) {
		candidates = append(candidates, scanBlock(b, reg)...)
	}

	if finish != nil {
		finish(true, map[string]interface{}{"candidate_count": len(candidates)})
	}
	return candidates
}

// DelimitedLineRanges reports the byte ranges covered by pipe- and
// tab-delimited blocks. The positional strategy skips these regions so it
// does not re-derive rows an explicit delimiter already structures.
func DelimitedLineRanges(text string) []detector.Span {
	var spans []detector.Span
	for _, b := range findBlocks(text) {
		if b.kind != kindPipe && b.kind != kindTab {
			continue
		}
		first := b.rows[0].line
		last := b.rows[len(b.rows)-1].line
		spans = append(spans, detector.Span{
			Start: first.start,
			End:   last.start + len(last.text),
		})
	}
	return spans
}

type lineInfo struct {
	text  string
	start int
}

type cell struct {
	text  string
	start int // absolute offset into the scanned text
}

func (c cell) end() int { return c.start + len(c.text) }

type tableRow struct {
	line  lineInfo
	cells []cell
}

type block struct {
	kind delimKind
	rows []tableRow
}

func findBlocks(text string) []block {
	var blocks []block
	var cur *block
	for _, l := range splitLines(text) {
		kind, cells := classifyLine(l)
		if kind == kindNone {
			cur = nil
			continue
		}
		if cur == nil || cur.kind != kind {
			blocks = append(blocks, block{kind: kind})
			cur = &blocks[len(blocks)-1]
		}
		cur.rows = append(cur.rows, tableRow{line: l, cells: cells})
	}

	// A single delimited line is a fragment, not a table.
	out := blocks[:0]
	for _, b := range blocks {
		if len(b.rows) >= 2 {
			out = append(out, b)
		}
	}
	return out
}

func splitLines(text string) []lineInfo {
	var lines []lineInfo
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			lines = append(lines, lineInfo{text: text[start:i], start: start})
			start = i + 1
		}
	}
	return lines
}

func classifyLine(l lineInfo) (delimKind, []cell) {
	if strings.Contains(l.text, "|") {
		if cells := splitOnByte(l, '|'); len(cells) >= 2 {
			return kindPipe, cells
		}
	}
	if strings.Contains(l.text, "\t") {
		if cells := splitOnByte(l, '\t'); len(cells) >= 2 {
			return kindTab, cells
		}
	}
	if cells := splitOnWideSpace(l); len(cells) >= 2 {
		return kindSpace, cells
	}
	return kindNone, nil
}

func splitOnByte(l lineInfo, sep byte) []cell {
	var cells []cell
	segStart := 0
	for i := 0; i <= len(l.text); i++ {
		if i == len(l.text) || l.text[i] == sep {
			if c, ok := makeCell(l, segStart, i); ok {
				cells = append(cells, c)
			}
			segStart = i + 1
		}
	}
	return cells
}

func splitOnWideSpace(l lineInfo) []cell {
	var cells []cell
	segStart := 0
	for _, sep := range wideSpace.FindAllStringIndex(l.text, -1) {
		if c, ok := makeCell(l, segStart, sep[0]); ok {
			cells = append(cells, c)
		}
		segStart = sep[1]
	}
	if c, ok := makeCell(l, segStart, len(l.text)); ok {
		cells = append(cells, c)
	}
	return cells
}

func makeCell(l lineInfo, from, to int) (cell, bool) {
	seg := l.text[from:to]
	lead := len(seg) - len(strings.TrimLeft(seg, " \t"))
	trimmed := strings.TrimSpace(seg)
	if trimmed == "" {
		return cell{}, false
	}
	return cell{text: trimmed, start: l.start + from + lead}, true
}

func scanBlock(b block, reg *registry.Registry) []detector.Candidate {
	ragged := cellCountSpread(b) > 1

	var candidates []detector.Candidate
	for _, row := range b.rows {
		candidates = append(candidates, scanRow(row, reg, ragged)...)
	}
	return candidates
}

func cellCountSpread(b block) int {
	minN, maxN := len(b.rows[0].cells), len(b.rows[0].cells)
	for _, row := range b.rows[1:] {
		n := len(row.cells)
		if n < minN {
			minN = n
		}
		if n > maxN {
			maxN = n
		}
	}
	return maxN - minN
}

// scanRow reads one table row. Header rows and separator rows fall out
// naturally: their name cell matches no alias. A shared alias yields one
// candidate per owning parameter.
func scanRow(row tableRow, reg *registry.Registry, ragged bool) []detector.Candidate {
	nameIdx := -1
	var owners []*registry.Definition
	for i, c := range row.cells {
		name := strings.TrimRight(c.text, "*†‡# ")
		if defs := reg.LookupAlias(name); len(defs) > 0 {
			nameIdx, owners = i, defs
			break
		}
	}
	if nameIdx < 0 {
		return nil
	}

	valIdx := -1
	var value float64
	var unitRaw string
	for j := nameIdx + 1; j < len(row.cells); j++ {
		if v, u, ok := detector.SplitValueUnit(row.cells[j].text); ok {
			valIdx, value, unitRaw = j, v, u
			break
		}
	}
	if valIdx < 0 {
		return nil
	}

	end := row.cells[valIdx].end()
	if unitRaw == "" {
		if u, cellEnd := unitFromLaterCells(row.cells[valIdx+1:], reg); u != "" {
			unitRaw = u
			if cellEnd > 0 {
				end = cellEnd
			}
		}
	}

	var candidates []detector.Candidate
	for _, def := range owners {
		conf := confBase
		if ragged {
			conf -= raggedPenalty
		}
		normalized := ""
		switch {
		case unitRaw == "":
			conf -= noUnitPenalty
			normalized = def.DefaultUnit()
		default:
			if canonical, ok := reg.NormalizeUnit(def.Key, unitRaw); ok {
				normalized = canonical
			} else {
				conf -= unknownPenalty
			}
		}

		start := row.cells[nameIdx].start
		candidates = append(candidates, detector.Candidate{
			ParameterKey:   def.Key,
			RawText:        row.line.text[start-row.line.start : end-row.line.start],
			Value:          value,
			UnitText:       unitRaw,
			NormalizedUnit: normalized,
			Span:           detector.Span{Start: start, End: end},
			Strategy:       detector.StrategyTable,
			Confidence:     clamp(conf),
		})
	}
	return candidates
}

// unitFromLaterCells resolves the unit for a bare value cell. A dedicated
// unit cell wins; failing that, a reference-range cell like "30-100 ng/mL"
// lends its trailing unit token.
func unitFromLaterCells(cells []cell, reg *registry.Registry) (string, int) {
	for _, c := range cells {
		if reg.IsUnitLike(c.text) {
			return c.text, c.end()
		}
	}
	for _, c := range cells {
		fields := strings.Fields(c.text)
		if len(fields) > 1 {
			if last := fields[len(fields)-1]; reg.IsUnitLike(last) {
				return last, 0
			}
		}
	}
	return "", 0
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
