// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/opensinta/opensinta/pkg/slice"
)

// sintaFallbackKey replaces an empty-but-present accreditation in the sinta sort key.
const sintaFallbackKey = "S5"

// # Sorting

/*
SortRecords orders records by the given criterion.

Description:
  - impact: keeps only records with a parseable impact factor, highest first.
  - name: Indonesian collation on the display name; unnamed records go last.
  - sinta: keeps only accredited records, ascending by raw accreditation label.

Unknown keys return the input order unchanged. Equal keys keep their relative
order. If a comparison panics the records are returned in filtered-but-unsorted
order instead of propagating the failure.

Parameters:
  - records: []Record (Already filtered sequence)
  - key: SortKey

Returns:
  - []Record: Fresh slice, never aliasing records
*/
func SortRecords(records []Record, key SortKey) []Record {
	candidates, less, ok := sortPlan(records, key)
	if !ok {
		return slice.Take(records, -1)
	}
	return sortCandidates(candidates, key, less)
}

// sortPlan selects the candidates and comparator for key; ok is false for unknown keys.
func sortPlan(records []Record, key SortKey) (candidates []Record, less func(a, b Record) bool, ok bool) {
	switch key {
	case SortImpact:
		candidates = slice.Filter(records, func(r Record) bool {
			_, parsed := ImpactValue(r)
			return parsed
		})
		return candidates, byImpact, true

	case SortName:
		return slice.Take(records, -1), byName(collate.New(language.Indonesian)), true

	case SortSinta:
		return slice.Filter(records, Record.Accredited), bySinta, true
	}
	return nil, nil, false
}

// sortCandidates orders candidates with less, keeping their input order if less panics.
func sortCandidates(candidates []Record, key SortKey, less func(a, b Record) bool) []Record {
	sorted, err := stableSort(candidates, less)
	if err != nil {
		slog.Warn("journal_sort_degraded",
			slog.String("sort", string(key)),
			slog.Any("error", err),
		)
		return candidates
	}
	return sorted
}

func byImpact(a, b Record) bool {
	impactA, _ := ImpactValue(a)
	impactB, _ := ImpactValue(b)
	return impactA > impactB
}

func byName(collator *collate.Collator) func(a, b Record) bool {
	return func(a, b Record) bool {
		nameA := sortableName(a)
		nameB := sortableName(b)
		switch {
		case nameA == "" || nameB == "":
			return nameA != "" && nameB == ""
		default:
			return collator.CompareString(nameA, nameB) < 0
		}
	}
}

func bySinta(a, b Record) bool {
	return strings.Compare(sintaKey(a), sintaKey(b)) < 0
}

// stableSort sorts a copy of records, converting a comparator panic into an error.
func stableSort(records []Record, less func(a, b Record) bool) (sorted []Record, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			sorted = nil
			err = fmt.Errorf("journal: comparator failed: %v", recovered)
		}
	}()

	out := slice.Take(records, -1)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out, nil
}

// sortableName is the lower-cased display name, empty when unavailable.
func sortableName(r Record) string {
	return strings.ToLower(strings.TrimSpace(DisplayValue(r.Name, "")))
}

// sintaKey is the raw accreditation label, or "S5" when the label is empty.
//
// TODO: confirm with the data owners whether the S5 fallback is intended;
// Accredited() already rejects empty labels, so it never triggers here.
func sintaKey(r Record) string {
	if r.Accreditation.Value == "" {
		return sintaFallbackKey
	}
	return r.Accreditation.Value
}
