// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pattern

import "labscan/internal/help"

// GetCheckInfo returns standardized information about the pattern strategy
func (s *Strategy) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "pattern",
		ShortDescription: "Structural name/value pattern matcher",
		DetailedDescription: `Anchors on every known parameter alias in the text and searches a
bounded window around it for a numeric value and an optional unit.
The shape of the match (delimiter, adjacency, reversed order) selects
a fixed confidence band. This is the highest-priority strategy and
handles the common "Name: value unit" lab report line.`,
		Patterns: []string{
			"Vitamin D: 25 ng/mL",
			"Hemoglobin = 13.5 g/dL",
			"Glucose 95 mg/dL",
			"350 pg/mL Vitamin B12",
		},
		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "colon delimiter", Description: "name : value shape", Weight: confColon},
			{Name: "adjacency", Description: "name value or value unit name shape", Weight: confAdjacent},
			{Name: "inline table", Description: "delimiter-separated row fragment", Weight: confInlineTable},
			{Name: "bare number", Description: "parenthetical or unit-less value", Weight: confBare},
			{Name: "unit normalized", Description: "recognized unit for the parameter", Weight: unitBoost},
			{Name: "unit unrecognized", Description: "unit present but unknown, subtracted", Weight: unitPenalty},
		},
		Examples: []string{
			"labscan --text 'Vitamin D: 25 ng/mL' --strategies pattern",
		},
	}
}
