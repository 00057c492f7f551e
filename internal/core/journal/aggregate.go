// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/opensinta/opensinta/pkg/slice"
)

// # Aggregation
//
// Every ranked result below breaks count ties by first-encountered order in
// the input sequence. Permuting the input changes at most the order within
// equal-count buckets.

const (
	// TrendingLimit is the number of subjects shown as trending topics.
	TrendingLimit = 5
	// CategoryLimit is the number of subjects shown in the category breakdown.
	CategoryLimit = 10
	// InstitutionLimit is the number of affiliations shown in the ranking chart.
	InstitutionLimit = 10
	// ImpactLimit is the number of journals shown in the impact chart.
	ImpactLimit = 15

	// labelRunes is the compact label width used by the impact chart.
	labelRunes = 25

	// UnknownInstitution buckets records with no usable affiliation.
	UnknownInstitution = "Unknown"
	// UnspecifiedAccreditation buckets records with no usable accreditation label.
	UnspecifiedAccreditation = "Not Specified"
)

// CategoryCounts holds the headline statistics of a record sequence.
type CategoryCounts struct {
	Total  int `json:"total"`
	Scopus int `json:"scopus"`
	Sinta  int `json:"sinta"`
	Garuda int `json:"garuda"`
}

// SubjectBucket is one subject area with its share of the record sequence.
type SubjectBucket struct {
	Subject    string `json:"subject"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// TierBucket is the number of records in one accreditation tier.
type TierBucket struct {
	Tier  Tier `json:"tier"`
	Count int  `json:"count"`
}

// LabelCount is a generic name/value pair used by chart series.
type LabelCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// IndexingCounts splits the record sequence by an indexing flag.
type IndexingCounts struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

// ImpactEntry is one bar of the impact ranking.
//
// Label may be truncated for compact display; FullName never is.
type ImpactEntry struct {
	Label     string  `json:"label"`
	FullName  string  `json:"full_name"`
	Impact    float64 `json:"impact"`
	Citations int     `json:"citations"`
	H5Index   int     `json:"h5_index"`
}

// CountCategories computes the total and per-index counts of records.
func CountCategories(records []Record) CategoryCounts {
	return CategoryCounts{
		Total:  len(records),
		Scopus: slice.Count(records, Record.ScopusIndexed),
		Sinta:  slice.Count(records, Record.Accredited),
		Garuda: slice.Count(records, Record.GarudaIndexed),
	}
}

/*
SubjectDistribution ranks subject areas by the number of records listing them.

Description: Each subject field is split on ',' and ';'; one record with
several subjects contributes to several buckets. Percentage is the bucket
count over the total record count, rounded to the nearest integer.

Parameters:
  - records: []Record
  - limit: int (Maximum buckets; negative means all)

Returns:
  - []SubjectBucket: Descending by count, ties in first-encountered order
*/
func SubjectDistribution(records []Record, limit int) []SubjectBucket {
	buckets := slice.RankByCount(slice.Tally(records, Subjects))
	total := len(records)

	return slice.Map(slice.Take(buckets, limit), func(b slice.Bucket[string]) SubjectBucket {
		return SubjectBucket{
			Subject:    b.Key,
			Count:      b.Count,
			Percentage: percentage(b.Count, total),
		}
	})
}

// Trending returns the top subjects shown as trending topics.
func Trending(records []Record) []SubjectBucket {
	return SubjectDistribution(records, TrendingLimit)
}

// TopCategories returns the top subjects shown in the category breakdown.
func TopCategories(records []Record) []SubjectBucket {
	return SubjectDistribution(records, CategoryLimit)
}

// Subjects splits a record's subject area into trimmed, non-empty parts.
func Subjects(r Record) []string {
	if !IsAvailable(r.SubjectArea) {
		return nil
	}

	parts := strings.FieldsFunc(r.SubjectArea.Value, func(c rune) bool {
		return c == ',' || c == ';'
	})

	subjects := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			subjects = append(subjects, trimmed)
		}
	}
	return subjects
}

// TierOf returns the first tier, S1 through S6, contained in the accreditation label.
func TierOf(r Record) Tier {
	label := DisplayValue(r.Accreditation, "")
	for _, tier := range Tiers {
		if strings.Contains(label, string(tier)) {
			return tier
		}
	}
	return TierOther
}

// TierDistribution buckets every record into exactly one tier.
//
// Buckets are returned in S1..S6, Other order and empty buckets are omitted.
func TierDistribution(records []Record) []TierBucket {
	counts := make(map[Tier]int, len(Tiers)+1)
	for _, record := range records {
		counts[TierOf(record)]++
	}

	buckets := make([]TierBucket, 0, len(Tiers)+1)
	for _, tier := range append(slice.Take(Tiers, -1), TierOther) {
		if counts[tier] > 0 {
			buckets = append(buckets, TierBucket{Tier: tier, Count: counts[tier]})
		}
	}
	return buckets
}

// AccreditationLabels counts raw accreditation labels in first-encountered order.
func AccreditationLabels(records []Record) []LabelCount {
	return toLabelCounts(slice.Tally(records, func(r Record) []string {
		return []string{DisplayValue(r.Accreditation, UnspecifiedAccreditation)}
	}))
}

// ScopusIndexing splits records by the Scopus flag; anything but "Yes" counts as No.
func ScopusIndexing(records []Record) IndexingCounts {
	yes := slice.Count(records, Record.ScopusIndexed)
	return IndexingCounts{Yes: yes, No: len(records) - yes}
}

// GarudaIndexing splits records by the Garuda flag; anything but "Yes" counts as No.
func GarudaIndexing(records []Record) IndexingCounts {
	yes := slice.Count(records, Record.GarudaIndexed)
	return IndexingCounts{Yes: yes, No: len(records) - yes}
}

// InstitutionRanking ranks affiliations by record count.
//
// Records without a usable affiliation share the "Unknown" bucket. Ties keep
// first-encountered order; limit < 0 returns every bucket.
func InstitutionRanking(records []Record, limit int) []LabelCount {
	buckets := slice.Tally(records, func(r Record) []string {
		return []string{DisplayValue(r.Affiliation, UnknownInstitution)}
	})
	return toLabelCounts(slice.Take(slice.RankByCount(buckets), limit))
}

// ImpactRanking lists the journals with the highest parseable impact factor.
//
// Records whose impact does not parse are dropped. Equal impacts keep their
// input order.
func ImpactRanking(records []Record, limit int) []ImpactEntry {
	entries := make([]ImpactEntry, 0)
	for _, record := range records {
		impact, ok := ImpactValue(record)
		if !ok {
			continue
		}
		citations, _ := CitationCount(record)
		fullName := DisplayValue(record.Name, NameFallback)

		entries = append(entries, ImpactEntry{
			Label:     truncateLabel(fullName, labelRunes),
			FullName:  fullName,
			Impact:    impact,
			Citations: citations,
			H5Index:   H5IndexValue(record),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Impact > entries[j].Impact
	})
	return slice.Take(entries, limit)
}

// AverageImpact is the mean impact factor, counting unparseable values as zero.
func AverageImpact(records []Record) float64 {
	if len(records) == 0 {
		return 0
	}

	sum := 0.0
	for _, record := range records {
		if impact, ok := ImpactValue(record); ok {
			sum += impact
		}
	}
	return sum / float64(len(records))
}

// # Chart Bundle

// Charts groups every chart series derived from one record sequence.
type Charts struct {
	Counts         CategoryCounts  `json:"counts"`
	AverageImpact  float64         `json:"average_impact"`
	Accreditation  []LabelCount    `json:"accreditation"`
	Tiers          []TierBucket    `json:"tiers"`
	Subjects       []SubjectBucket `json:"subjects"`
	Impact         []ImpactEntry   `json:"impact"`
	ScopusIndexing IndexingCounts  `json:"scopus_indexing"`
	GarudaIndexing IndexingCounts  `json:"garuda_indexing"`
	Institutions   []LabelCount    `json:"institutions"`
}

// BuildCharts computes every chart series over records.
func BuildCharts(records []Record) Charts {
	return Charts{
		Counts:         CountCategories(records),
		AverageImpact:  AverageImpact(records),
		Accreditation:  AccreditationLabels(records),
		Tiers:          TierDistribution(records),
		Subjects:       SubjectDistribution(records, CategoryLimit),
		Impact:         ImpactRanking(records, ImpactLimit),
		ScopusIndexing: ScopusIndexing(records),
		GarudaIndexing: GarudaIndexing(records),
		Institutions:   InstitutionRanking(records, InstitutionLimit),
	}
}

// # Helpers

func toLabelCounts(buckets []slice.Bucket[string]) []LabelCount {
	return slice.Map(buckets, func(b slice.Bucket[string]) LabelCount {
		return LabelCount{Name: b.Key, Count: b.Count}
	})
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// truncateLabel shortens s to max runes followed by "...".
func truncateLabel(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}
