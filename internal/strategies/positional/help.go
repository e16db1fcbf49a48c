// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package positional

import "labscan/internal/help"

// GetCheckInfo returns standardized information about the positional strategy
func (s *Strategy) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "positional",
		ShortDescription: "Column-alignment extractor",
		DetailedDescription: `Infers columns from layout alone: when neighboring lines place a
numeric segment at nearly the same horizontal offset, those segments
form a value column even without pipes or tabs. A row only counts
when its value column aligns with at least one other row, so a lone
name-number line never passes on alignment evidence.`,
		Patterns: []string{
			"Vitamin D    25",
			"Ferritin     12     ng/mL",
		},
		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "base", Description: "aligned row inside a column block", Weight: confBase},
			{Name: "unit normalized", Description: "recognized unit for the parameter", Weight: unitBoost},
			{Name: "no unit", Description: "no unit on the row, subtracted", Weight: noUnitPenalty},
			{Name: "unit unrecognized", Description: "unit present but unknown, subtracted", Weight: unknownPenalty},
		},
		Examples: []string{
			"labscan --file report.txt --strategies positional",
		},
	}
}
