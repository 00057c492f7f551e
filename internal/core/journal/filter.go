// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal

import (
	"strings"

	"github.com/opensinta/opensinta/pkg/slice"
)

// # Filtering

// FilterRecords keeps the records matching both query and category.
//
// The query is a case-insensitive substring tested against the normalized
// name, ISSN (E-ISSN, else P-ISSN), affiliation and subject area. A blank
// query matches everything. Relative order is preserved and the input is
// left untouched.
func FilterRecords(records []Record, query string, category Category) []Record {
	needle := strings.ToLower(strings.TrimSpace(query))

	return slice.Filter(records, func(record Record) bool {
		return matchesQuery(record, needle) && MatchesCategory(record, category)
	})
}

// FilterTiers keeps records whose accreditation contains any of tiers.
// An empty tier list is the identity filter.
func FilterTiers(records []Record, tiers []Tier) []Record {
	if len(tiers) == 0 {
		return slice.Take(records, -1)
	}

	return slice.Filter(records, func(record Record) bool {
		if !IsAvailable(record.Accreditation) {
			return false
		}
		for _, tier := range tiers {
			if strings.Contains(record.Accreditation.Value, string(tier)) {
				return true
			}
		}
		return false
	})
}

// MatchesCategory reports whether record passes the category filter.
// Unknown categories match nothing.
func MatchesCategory(record Record, category Category) bool {
	switch category {
	case CategoryAll, "":
		return true
	case CategoryScopus:
		return record.ScopusIndexed()
	case CategorySinta:
		return record.Accredited()
	case CategoryGaruda:
		return record.GarudaIndexed()
	}
	return false
}

// matchesQuery expects needle to be lower-cased and trimmed already.
func matchesQuery(record Record, needle string) bool {
	if needle == "" {
		return true
	}

	issn := firstAvailable(record.EISSN, record.PISSN)
	haystacks := []Field{record.Name, issn, record.Affiliation, record.SubjectArea}

	for _, f := range haystacks {
		if strings.Contains(strings.ToLower(DisplayValue(f, "")), needle) {
			return true
		}
	}
	return false
}
