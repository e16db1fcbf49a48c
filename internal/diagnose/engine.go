// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package diagnose explains weak extraction runs: it measures the input
// text and pairs every failure reason with a concrete suggestion.
package diagnose

import (
	"strings"
	"unicode"

	"labscan/internal/detector"
	"labscan/internal/registry"
)

// Metrics describes the shape of the scanned text.
type Metrics struct {
	Chars        int     `json:"chars"`
	Words        int     `json:"words"`
	Lines        int     `json:"lines"`
	DigitDensity float64 `json:"digit_density"`
}

// Report is the outcome of a diagnostic run. Reasons and Suggestions are
// index-aligned: Suggestions[i] addresses Reasons[i].
type Report struct {
	Metrics     Metrics  `json:"metrics"`
	Extracted   int      `json:"extracted"`
	Reasons     []string `json:"reasons"`
	Suggestions []string `json:"suggestions"`
}

// Analyze inspects text that extracted poorly and reports why.
// expectedMinCoverage is the number of parameters the caller expected to
// find; zero disables the coverage check. Analyze never panics; an internal
// failure degrades to a single generic reason.
func Analyze(text string, results map[string]detector.Result, expectedMinCoverage int, reg *registry.Registry, cfg detector.Config) (report Report) {
	defer func() {
		if r := recover(); r != nil {
			report = Report{
				Metrics:     measure(text),
				Extracted:   len(results),
				Reasons:     []string{"the input has insufficient recognizable structure"},
				Suggestions: []string{"provide lab values as 'Name: value unit' lines or a delimited table"},
			}
		}
	}()

	report = Report{Metrics: measure(text), Extracted: len(results)}

	add := func(reason, suggestion string) {
		report.Reasons = append(report.Reasons, reason)
		report.Suggestions = append(report.Suggestions, suggestion)
	}

	if strings.TrimSpace(text) == "" {
		add("the input text is empty",
			"paste or load the lab report text before extracting")
		return report
	}
	if report.Metrics.Words < 3 {
		add("the input is too short to carry a measurement",
			"include at least a parameter name and its value, such as 'Glucose: 95 mg/dL'")
		return report
	}

	hits := reg.FindAliases(text)
	numbers := detector.FindNumericTokens(text)

	if len(numbers) == 0 {
		add("the text contains no standalone numeric values",
			"check that values were not lost during copy or OCR; digits glued to letters are not read as numbers")
	}
	if len(hits) == 0 {
		if len(numbers) > 0 {
			add("numeric values are present but no known parameter name appears near them",
				"use standard test names such as 'Vitamin D', 'Hemoglobin', or 'Glucose'")
		} else {
			add("no known parameter name appears in the text",
				"check the spelling of test names; heavily corrupted OCR output may need re-scanning")
		}
	}
	if len(hits) > 0 && len(numbers) > 0 && len(results) == 0 {
		add("parameter names and numbers are both present but never close enough to pair",
			"keep each value on the same line as its test name, separated by a colon or aligned columns")
	}
	if expectedMinCoverage > 0 && len(results) > 0 && len(results) < expectedMinCoverage {
		add("fewer parameters were extracted than the document appears to contain",
			"check the lines around the missing values for OCR damage or unusual formatting")
	}
	if tableish(text) && !hasStrategy(results, detector.StrategyTable) {
		add("the text looks tabular but no table rows parsed",
			"check that every row keeps the same delimiter and column order as the header")
	}

	if len(report.Reasons) == 0 && len(results) == 0 {
		add("the input has insufficient recognizable structure",
			"provide lab values as 'Name: value unit' lines or a delimited table")
	}
	return report
}

func measure(text string) Metrics {
	digits := 0
	for _, r := range text {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	density := 0.0
	if len(text) > 0 {
		density = float64(digits) / float64(len(text))
	}
	lines := 0
	if text != "" {
		lines = strings.Count(text, "\n") + 1
	}
	return Metrics{
		Chars:        len(text),
		Words:        len(strings.Fields(text)),
		Lines:        lines,
		DigitDensity: density,
	}
}

// tableish reports whether at least two neighboring lines carry the same
// explicit delimiter.
func tableish(text string) bool {
	prev := byte(0)
	for _, line := range strings.Split(text, "\n") {
		var d byte
		switch {
		case strings.Contains(line, "|"):
			d = '|'
		case strings.Contains(line, "\t"):
			d = '\t'
		}
		if d != 0 && d == prev {
			return true
		}
		prev = d
	}
	return false
}

func hasStrategy(results map[string]detector.Result, strategy string) bool {
	for _, r := range results {
		for _, s := range r.Strategies {
			if s == strategy {
				return true
			}
		}
	}
	return false
}
