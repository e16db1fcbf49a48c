// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package registry holds the static catalog of measurable lab parameters:
// canonical keys, surface aliases, accepted unit spellings, and plausibility
// bounds. The registry is built once at startup and is read-only afterwards;
// extraction calls share it by reference.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Category groups parameters by panel family.
type Category string

const (
	CategoryVitamin      Category = "vitamin"
	CategoryCBC          Category = "cbc"
	CategoryMetabolic    Category = "metabolic"
	CategoryLipid        Category = "lipid"
	CategoryLiver        Category = "liver"
	CategoryThyroid      Category = "thyroid"
	CategoryHormone      Category = "hormone"
	CategoryMineral      Category = "mineral"
	CategoryInflammatory Category = "inflammatory"
)

// UnitGroup is a canonical unit plus its accepted spellings, including
// OCR-prone variants (ug vs mcg vs μg, mg/d1 vs mg/dL).
type UnitGroup struct {
	Canonical string
	Variants  []string
}

// Definition describes one measurable parameter. Immutable after registry
// construction.
type Definition struct {
	Key         string
	DisplayName string
	Category    Category

	// Aliases are case-insensitive surface strings, abbreviations, and
	// OCR-prone misspellings that identify this parameter in text.
	Aliases []string

	// Units is ordered; the first group's canonical unit is the default
	// assumed when a value carries no unit at all.
	Units []UnitGroup

	// PlausibleMin/Max bound physically possible values. They are a
	// validation gate, not a clinical normal range.
	PlausibleMin float64
	PlausibleMax float64
}

// DefaultUnit returns the canonical unit assumed for unit-less values.
func (d *Definition) DefaultUnit() string {
	if len(d.Units) == 0 {
		return ""
	}
	return d.Units[0].Canonical
}

// InPlausibleRange reports whether v is a physically possible value for
// this parameter. Bounds are inclusive.
func (d *Definition) InPlausibleRange(v float64) bool {
	return v >= d.PlausibleMin && v <= d.PlausibleMax
}

// AliasHit is one occurrence of a known alias in scanned text. An alias
// string shared by several parameters produces one hit per owner with an
// identical span.
type AliasHit struct {
	Def   *Definition
	Alias string
	Start int
	End   int
}

type aliasEntry struct {
	norm string
	defs []*Definition
}

// Registry is the immutable parameter catalog.
type Registry struct {
	defs    map[string]*Definition
	keys    []string
	byAlias map[string][]*Definition
	ordered []aliasEntry // longest alias first, for shadow-free scanning
	units   map[string]struct{}
}

// New validates the definitions and builds a registry. Duplicate canonical
// keys, duplicate aliases within a parameter, inverted plausibility bounds,
// and alias-less parameters are construction failures: the registry is
// unusable and extraction must not proceed.
func New(defs []Definition) (*Registry, error) {
	r := &Registry{
		defs:    make(map[string]*Definition, len(defs)),
		byAlias: make(map[string][]*Definition),
		units:   make(map[string]struct{}),
	}

	for i := range defs {
		d := &defs[i]
		if d.Key == "" {
			return nil, fmt.Errorf("registry: definition %d has an empty canonical key", i)
		}
		if _, dup := r.defs[d.Key]; dup {
			return nil, fmt.Errorf("registry: duplicate canonical key %q", d.Key)
		}
		if d.PlausibleMin > d.PlausibleMax {
			return nil, fmt.Errorf("registry: %s has inverted plausible range [%g, %g]", d.Key, d.PlausibleMin, d.PlausibleMax)
		}
		if len(d.Aliases) == 0 {
			return nil, fmt.Errorf("registry: %s has no aliases", d.Key)
		}

		seen := make(map[string]struct{}, len(d.Aliases))
		for _, a := range d.Aliases {
			norm := normalizeAlias(a)
			if norm == "" {
				return nil, fmt.Errorf("registry: %s has an empty alias", d.Key)
			}
			if _, dup := seen[norm]; dup {
				return nil, fmt.Errorf("registry: %s lists alias %q twice", d.Key, a)
			}
			seen[norm] = struct{}{}
			r.byAlias[norm] = append(r.byAlias[norm], d)
		}

		for _, g := range d.Units {
			r.units[normalizeUnitToken(g.Canonical)] = struct{}{}
			for _, v := range g.Variants {
				r.units[normalizeUnitToken(v)] = struct{}{}
			}
		}

		r.defs[d.Key] = d
		r.keys = append(r.keys, d.Key)
	}

	sort.Strings(r.keys)

	// Deterministic owner order for aliases shared across parameters.
	for norm, owners := range r.byAlias {
		sort.Slice(owners, func(i, j int) bool { return owners[i].Key < owners[j].Key })
		r.ordered = append(r.ordered, aliasEntry{norm: norm, defs: owners})
	}

	// Longest alias first so "vitamin d3" is never shadowed by "vitamin d".
	sort.Slice(r.ordered, func(i, j int) bool {
		if len(r.ordered[i].norm) != len(r.ordered[j].norm) {
			return len(r.ordered[i].norm) > len(r.ordered[j].norm)
		}
		return r.ordered[i].norm < r.ordered[j].norm
	})

	return r, nil
}

// MustNew is New for the built-in catalog, where a failure is a programming
// error.
func MustNew(defs []Definition) *Registry {
	r, err := New(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns a registry built from the built-in parameter catalog.
func Default() *Registry {
	return MustNew(BuiltinDefinitions())
}

// Get returns the definition for a canonical key.
func (r *Registry) Get(key string) (*Definition, bool) {
	d, ok := r.defs[key]
	return d, ok
}

// Keys returns all canonical keys in sorted order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int {
	return len(r.defs)
}

// LookupAlias matches a text fragment against the alias set,
// case-insensitive and whitespace-normalized. An unknown fragment returns
// nil (not an error); a fragment whose alias is shared by several
// parameters returns every owner, in key order, for the caller to
// disambiguate by unit or context.
func (r *Registry) LookupAlias(fragment string) []*Definition {
	owners := r.byAlias[normalizeAlias(fragment)]
	if len(owners) == 0 {
		return nil
	}
	out := make([]*Definition, len(owners))
	copy(out, owners)
	return out
}

// FindAliases scans text for every known alias occurrence. Matching is
// case-insensitive with word boundaries on both sides; longer aliases claim
// their span first, so a shorter alias inside an accepted longer match is
// suppressed. Hits are returned sorted by start offset, then parameter key.
func (r *Registry) FindAliases(text string) []AliasHit {
	lower := strings.ToLower(text)
	var hits []AliasHit
	var claimed []span

	for _, entry := range r.ordered {
		from := 0
		for {
			idx := strings.Index(lower[from:], entry.norm)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(entry.norm)
			from = start + 1

			if !boundaryBefore(lower, start) || !boundaryAfter(lower, end) {
				continue
			}
			if overlapsAny(claimed, span{start, end}) {
				continue
			}
			claimed = append(claimed, span{start, end})
			for _, d := range entry.defs {
				hits = append(hits, AliasHit{
					Def:   d,
					Alias: text[start:end],
					Start: start,
					End:   end,
				})
			}
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Start != hits[j].Start {
			return hits[i].Start < hits[j].Start
		}
		return hits[i].Def.Key < hits[j].Def.Key
	})
	return hits
}

type span struct{ start, end int }

func overlapsAny(spans []span, s span) bool {
	for _, c := range spans {
		if s.start < c.end && c.start < s.end {
			return true
		}
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	return !isWordRune(rune(s[i-1]))
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	return !isWordRune(rune(s[i]))
}

// isWordRune treats '/' as a word character so short aliases never match
// inside compound unit tokens ("mg" inside "mg/dL").
func isWordRune(r rune) bool {
	return r == '/' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// normalizeAlias lowercases and collapses internal whitespace so alias
// matching is insensitive to spacing noise from text extraction.
func normalizeAlias(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
