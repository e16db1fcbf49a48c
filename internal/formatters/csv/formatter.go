// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strings"

	"labscan/internal/detector"
	"labscan/internal/diagnose"
	"labscan/internal/formatters"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheets"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(results []detector.Result, report *diagnose.Report, options formatters.FormatterOptions) (string, error) {
	filtered := formatters.FilterByLevel(results, options)
	formatters.SortResults(filtered)

	var builder strings.Builder
	w := csv.NewWriter(&builder)

	if err := w.Write([]string{"parameter", "value", "unit", "confidence", "level", "winning_strategy", "strategies"}); err != nil {
		return "", err
	}
	for _, r := range filtered {
		record := []string{
			r.ParameterKey,
			fmt.Sprintf("%g", r.Value),
			r.Unit,
			fmt.Sprintf("%.2f", r.Confidence),
			formatters.ConfidenceLevel(r.Confidence),
			r.WinningStrategy,
			strings.Join(r.Strategies, ";"),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return builder.String(), nil
}
