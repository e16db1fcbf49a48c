// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package narrative

import "labscan/internal/help"

// GetCheckInfo returns standardized information about the narrative strategy
func (s *Strategy) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "narrative",
		ShortDescription: "Prose sentence extractor",
		DetailedDescription: `Links a parameter alias to a nearby number through a closed
vocabulary of linking words ("is", "was", "level came back at").
Any word outside that vocabulary breaks the link, so statements
about trends or advice never produce a value. The reversed form
"25 ng/mL for vitamin D" is also recognized.`,
		Patterns: []string{
			"Your vitamin D level came back at 25 ng/mL",
			"B12 was 350",
			"a reading of 5.8% for HbA1c",
		},
		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "base", Description: "alias linked to value through known phrasing", Weight: confBase},
			{Name: "unit normalized", Description: "recognized unit for the parameter", Weight: unitBoost},
			{Name: "no unit", Description: "no unit after the value, subtracted", Weight: noUnitPenalty},
			{Name: "unit unrecognized", Description: "unit present but unknown, subtracted", Weight: unknownPenalty},
		},
		Examples: []string{
			"labscan --text 'Your B12 was 350 pg/mL' --strategies narrative",
		},
	}
}
