// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"strconv"
	"strings"
)

// NumericToken is one standalone number located in a scanned fragment.
// Offsets are relative to the scanned string.
type NumericToken struct {
	Value float64
	Raw   string
	Start int
	End   int
}

// FindNumericTokens locates standalone numeric tokens in s. It accepts
// decimal points and thousands separators ("1,234.5") and rejects tokens
// that are part of a larger alphanumeric run ("100mg") or of a hyphenated
// expression, which keeps reference-range boundaries like "30-100" from
// being captured as values.
func FindNumericTokens(s string) []NumericToken {
	var toks []NumericToken
	i := 0
	for i < len(s) {
		if !isDigit(s[i]) {
			i++
			continue
		}
		start := i

		// Integer part.
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		// Thousands groups: comma followed by exactly three digits.
		for j < len(s) && s[j] == ',' &&
			j+3 < len(s)+1 && hasDigits(s, j+1, 3) &&
			(j+4 >= len(s) || !isDigit(s[j+4])) {
			j += 4
		}
		// Fractional part.
		if j+1 < len(s) && s[j] == '.' && isDigit(s[j+1]) {
			j++
			for j < len(s) && isDigit(s[j]) {
				j++
			}
		}

		raw := s[start:j]
		i = j

		if !leftBoundaryOK(s, start) || !rightBoundaryOK(s, j) {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			continue
		}
		toks = append(toks, NumericToken{Value: v, Raw: raw, Start: start, End: j})
	}
	return toks
}

// SplitValueUnit parses a cell-like fragment of the form "95" or
// "95 mg/dL" or "22.5* ng/mL" (footnote markers tolerated). It succeeds
// only when the fragment contains exactly one numeric token at its start;
// whatever follows is returned as the raw unit text.
func SplitValueUnit(cell string) (value float64, unit string, ok bool) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return 0, "", false
	}
	toks := FindNumericTokens(trimmed)
	if len(toks) != 1 || toks[0].Start != 0 {
		return 0, "", false
	}
	rest := strings.TrimSpace(trimFootnotes(trimmed[toks[0].End:]))
	return toks[0].Value, rest, true
}

// trimFootnotes drops the asterisk/dagger markers labs append to flagged
// values.
func trimFootnotes(s string) string {
	return strings.TrimLeft(s, "*†‡# ")
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func hasDigits(s string, from, n int) bool {
	if from+n > len(s) {
		return false
	}
	for k := from; k < from+n; k++ {
		if !isDigit(s[k]) {
			return false
		}
	}
	return true
}

// leftBoundaryOK rejects tokens glued to letters, digits, a decimal point,
// or a hyphen (the right half of a range).
func leftBoundaryOK(s string, start int) bool {
	if start == 0 {
		return true
	}
	switch c := s[start-1]; {
	case isDigit(c), c == '.', c == '-':
		return false
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return false
	}
	// OCR dash variants arrive as multi-byte runes.
	if strings.HasSuffix(s[:start], "–") || strings.HasSuffix(s[:start], "—") {
		return false
	}
	return true
}

// rightBoundaryOK rejects tokens glued to letters (alphanumeric runs) or
// followed by a hyphen (the left half of a range, or a hyphenated word
// like "25-Hydroxy").
func rightBoundaryOK(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	switch c := s[end]; {
	case c == '-':
		return false
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return false
	}
	// OCR dash variants arrive as multi-byte runes.
	if strings.HasPrefix(s[end:], "–") || strings.HasPrefix(s[end:], "—") {
		return false
	}
	return true
}
