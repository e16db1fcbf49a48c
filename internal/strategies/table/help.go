// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package table

import "labscan/internal/help"

// GetCheckInfo returns standardized information about the table strategy
func (s *Strategy) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "table",
		ShortDescription: "Delimited-row tabular extractor",
		DetailedDescription: `Groups consecutive pipe-, tab-, or wide-space-delimited lines into
blocks and reads each row as a name cell, a value cell, and an
optional unit cell. Header and separator rows are skipped because
their name cell matches no known parameter alias. A reference-range
cell such as "30-100 ng/mL" can lend its trailing unit token to a
bare value cell.`,
		Patterns: []string{
			"| Glucose | 95 | mg/dL |",
			"Hemoglobin\t13.5\tg/dL",
			"Vitamin D           25          30-100 ng/mL",
		},
		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "base", Description: "row inside a recognized table block", Weight: confBase},
			{Name: "no unit", Description: "no resolvable unit for the row, subtracted", Weight: noUnitPenalty},
			{Name: "ragged block", Description: "cell counts vary by more than one, subtracted", Weight: raggedPenalty},
			{Name: "unit unrecognized", Description: "unit present but unknown, subtracted", Weight: unknownPenalty},
		},
		Examples: []string{
			"labscan --file report.txt --strategies table",
		},
	}
}
