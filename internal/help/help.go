// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package help provides standardized self-description for extraction
// strategies, used by the CLI's --explain output.
package help

import (
	"fmt"
	"strings"
)

// ConfidenceFactor describes one component of a strategy's confidence score
type ConfidenceFactor struct {
	Name        string
	Description string
	Weight      float64
}

// CheckInfo contains standardized information about an extraction strategy
type CheckInfo struct {
	Name                string
	ShortDescription    string
	DetailedDescription string

	// Shapes of text this strategy recognizes
	Patterns []string

	// How the confidence score is assembled
	ConfidenceFactors []ConfidenceFactor

	// Example invocations
	Examples []string
}

// Provider is implemented by every strategy that can describe itself
type Provider interface {
	GetCheckInfo() CheckInfo
}

// Format renders a CheckInfo as indented plain text for terminal output
func Format(info CheckInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s - %s\n\n", info.Name, info.ShortDescription)
	b.WriteString(info.DetailedDescription)
	b.WriteString("\n")

	if len(info.Patterns) > 0 {
		b.WriteString("\nRecognized shapes:\n")
		for _, p := range info.Patterns {
			fmt.Fprintf(&b, "  - %s\n", p)
		}
	}

	if len(info.ConfidenceFactors) > 0 {
		b.WriteString("\nConfidence factors:\n")
		for _, f := range info.ConfidenceFactors {
			fmt.Fprintf(&b, "  - %-22s %s (weight %.2f)\n", f.Name+":", f.Description, f.Weight)
		}
	}

	if len(info.Examples) > 0 {
		b.WriteString("\nExamples:\n")
		for _, e := range info.Examples {
			fmt.Fprintf(&b, "  %s\n", e)
		}
	}

	return b.String()
}
