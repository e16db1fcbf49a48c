// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"labscan/internal/detector"
	"labscan/internal/diagnose"
	"labscan/internal/formatters"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"high":   color.New(color.FgGreen),
			"medium": color.New(color.FgYellow),
			"low":    color.New(color.FgRed),
			"header": color.New(color.FgWhite, color.Bold),
			"dim":    color.New(color.FgCyan),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []detector.Result, report *diagnose.Report, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	filtered := formatters.FilterByLevel(results, options)
	formatters.SortResults(filtered)

	var builder strings.Builder

	if len(filtered) == 0 {
		builder.WriteString("No lab values extracted.\n")
	} else {
		f.appendHeader(&builder, options)
		for _, r := range filtered {
			f.appendResult(&builder, r, options)
		}
	}

	if report != nil {
		f.appendDiagnosis(&builder, report)
	}

	return builder.String(), nil
}

func (f *Formatter) appendHeader(builder *strings.Builder, options formatters.FormatterOptions) {
	header := fmt.Sprintf("%-8s %-22s %10s %-10s %-6s %s\n",
		"LEVEL", "PARAMETER", "VALUE", "UNIT", "CONF%", "STRATEGY")
	if !options.NoColor {
		header = f.colors["header"].Sprint(header)
	}
	builder.WriteString(header)
}

func (f *Formatter) appendResult(builder *strings.Builder, r detector.Result, options formatters.FormatterOptions) {
	level := formatters.ConfidenceLevel(r.Confidence)

	line := fmt.Sprintf("%-8s %-22s %10s %-10s %-6.0f %s\n",
		strings.ToUpper(level), r.ParameterKey, trimValue(r.Value), r.Unit,
		r.Confidence*100, r.WinningStrategy)
	if !options.NoColor {
		line = f.colors[level].Sprint(line)
	}
	builder.WriteString(line)

	if options.Verbose {
		fmt.Fprintf(builder, "         strategies: %s\n", strings.Join(r.Strategies, ", "))
		for _, alt := range r.Alternatives {
			fmt.Fprintf(builder, "         alternative: %s via %s (%.0f%%)\n",
				trimValue(alt.Value), alt.Strategy, alt.Confidence*100)
		}
	}
}

func (f *Formatter) appendDiagnosis(builder *strings.Builder, report *diagnose.Report) {
	if len(report.Reasons) == 0 {
		return
	}
	builder.WriteString("\nDiagnosis:\n")
	for i, reason := range report.Reasons {
		fmt.Fprintf(builder, "  - %s\n", reason)
		if i < len(report.Suggestions) {
			fmt.Fprintf(builder, "    suggestion: %s\n", report.Suggestions[i])
		}
	}
	fmt.Fprintf(builder, "  text: %d chars, %d words, %d lines, digit density %.3f\n",
		report.Metrics.Chars, report.Metrics.Words, report.Metrics.Lines, report.Metrics.DigitDensity)
}

// trimValue renders a float without trailing zero noise.
func trimValue(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
