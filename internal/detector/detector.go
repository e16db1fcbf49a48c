// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package detector defines the contracts shared by the extraction
// strategies and the aggregator: candidates, results, the strategy
// interface, and the tunable extraction configuration.
package detector

import (
	"labscan/internal/registry"
)

// Strategy identifiers, in tie-break priority order (lower wins).
const (
	StrategyPattern    = "pattern"
	StrategyTable      = "table"
	StrategyPositional = "positional"
	StrategyNarrative  = "narrative"
)

// StrategyPriority returns the aggregation tie-break rank for a strategy
// name. Unknown strategies sort last.
func StrategyPriority(name string) int {
	switch name {
	case StrategyPattern:
		return 1
	case StrategyTable:
		return 2
	case StrategyPositional:
		return 3
	case StrategyNarrative:
		return 4
	default:
		return 99
	}
}

// Span is a character range [Start, End) in the input text.
type Span struct {
	Start int
	End   int
}

// Overlaps reports whether two spans intersect.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Candidate is one unconfirmed extraction produced by a single strategy
// invocation. Candidates are never mutated after creation and are discarded
// once aggregation completes.
type Candidate struct {
	ParameterKey   string
	RawText        string
	Value          float64
	UnitText       string // raw spelling, pre-normalization
	NormalizedUnit string // empty when no unit was present or recognized
	Span           Span
	Strategy       string
	Confidence     float64 // 0.0-1.0
}

// Result is the final accepted extraction for one parameter.
type Result struct {
	ParameterKey    string      `json:"parameter_key"`
	Value           float64     `json:"value"`
	Unit            string      `json:"unit"`
	Confidence      float64     `json:"confidence"`
	WinningStrategy string      `json:"winning_strategy"`
	Strategies      []string    `json:"strategies,omitempty"` // all strategies that agreed with the winner
	Alternatives    []Candidate `json:"-"`                    // competing candidates, kept for audit
}

// Strategy is one self-contained extraction algorithm. Implementations are
// pure functions over the immutable text and registry snapshot; they must
// be safe to run concurrently with the other strategies.
type Strategy interface {
	Name() string
	Scan(text string, reg *registry.Registry, cfg Config) []Candidate
}

// Config carries the tunable knobs of an extraction run.
type Config struct {
	// AcceptanceThreshold is the minimum confidence for a result to be kept.
	AcceptanceThreshold float64

	// ContextWindow is how many characters around an alias occurrence the
	// pattern matcher searches for a value.
	ContextWindow int

	// NarrativeTokenWindow is how many tokens past an alias the narrative
	// extractor allows before the linking phrase and value.
	NarrativeTokenWindow int

	// PositionalTolerance is the character tolerance when clustering token
	// offsets into virtual columns.
	PositionalTolerance int

	// MaxScanLength soft-caps the text length scanned by the narrative and
	// positional strategies. Zero means unbounded. Exceeding it truncates
	// that strategy's scan, it never aborts the pipeline.
	MaxScanLength int
}

// DefaultConfig returns the documented default knobs.
func DefaultConfig() Config {
	return Config{
		AcceptanceThreshold:  0.5,
		ContextWindow:        40,
		NarrativeTokenWindow: 6,
		PositionalTolerance:  3,
		MaxScanLength:        1 << 20,
	}
}

// CapText applies the soft scan-length cap, truncating at the previous line
// boundary when possible so a strategy never sees half a row.
func (c Config) CapText(text string) string {
	if c.MaxScanLength <= 0 || len(text) <= c.MaxScanLength {
		return text
	}
	cut := text[:c.MaxScanLength]
	if i := lastIndexByte(cut, '\n'); i > 0 {
		return cut[:i]
	}
	return cut
}

func lastIndexByte(s string, b byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}
	return -1
}
