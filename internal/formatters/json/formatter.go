// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"

	"labscan/internal/detector"
	"labscan/internal/diagnose"
	"labscan/internal/formatters"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Machine-readable JSON output"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

type output struct {
	Results   []detector.Result `json:"results"`
	Count     int               `json:"count"`
	Diagnosis *diagnose.Report  `json:"diagnosis,omitempty"`
}

func (f *Formatter) Format(results []detector.Result, report *diagnose.Report, options formatters.FormatterOptions) (string, error) {
	filtered := formatters.FilterByLevel(results, options)
	formatters.SortResults(filtered)
	if filtered == nil {
		filtered = []detector.Result{}
	}

	data, err := json.MarshalIndent(output{
		Results:   filtered,
		Count:     len(filtered),
		Diagnosis: report,
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
