// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import "strings"

// NormalizeUnit maps a raw unit spelling to the canonical unit for the given
// parameter. It folds documented OCR confusions (μ read as u, l read as 1,
// O read as 0) before comparing against the parameter's accepted unit
// groups. A raw unit that belongs to none of the groups returns ok=false;
// callers treat that as a signal, typically a confidence penalty, rather
// than discarding the candidate.
func (r *Registry) NormalizeUnit(key, raw string) (string, bool) {
	d, ok := r.defs[key]
	if !ok {
		return "", false
	}
	cands := unitCandidates(raw)
	if len(cands) == 0 {
		return "", false
	}
	for _, g := range d.Units {
		for _, c := range cands {
			if c == normalizeUnitToken(g.Canonical) {
				return g.Canonical, true
			}
			for _, v := range g.Variants {
				if c == normalizeUnitToken(v) {
					return g.Canonical, true
				}
			}
		}
	}
	return "", false
}

// IsUnitLike reports whether a token looks like any unit accepted by any
// registered parameter. The table and positional strategies use it to
// classify cells.
func (r *Registry) IsUnitLike(tok string) bool {
	for _, c := range unitCandidates(tok) {
		if _, ok := r.units[c]; ok {
			return true
		}
	}
	return false
}

// normalizeUnitToken canonicalizes a unit spelling for comparison:
// lowercase, surrounding punctuation stripped, internal spaces and dots
// removed, micro sign folded to "u".
func normalizeUnitToken(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.Trim(s, "()[]{},;:")
	s = strings.NewReplacer("μ", "u", "µ", "u", " ", "", ".", "").Replace(s)
	return s
}

// unitCandidates returns the normalized token plus OCR-fold variants to try
// against the accepted groups. "mg/d1" must match "mg/dl", "mg/dO" is not a
// thing but "0" for "o" appears in OCR output of "mmol".
func unitCandidates(raw string) []string {
	base := normalizeUnitToken(raw)
	if base == "" {
		return nil
	}
	out := []string{base}
	if folded := strings.ReplaceAll(base, "1", "l"); folded != base {
		out = append(out, folded)
	}
	if folded := strings.ReplaceAll(base, "0", "o"); folded != base {
		out = append(out, folded)
	}
	return out
}
