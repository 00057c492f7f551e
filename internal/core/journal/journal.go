// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

/*
Package journal defines the catalogue domain for OpenSinta and the pure
data-processing pipeline that derives every view of it.

It manages scraped SINTA journal metadata (accreditation tier, indexing
status, impact metrics, affiliation) as an immutable, in-memory record set.

Pipeline:

  - Normalize: raw JSON objects become typed [Record] values once, at load time.
  - Filter: text search AND category, order preserving ([FilterRecords]).
  - Sort: impact, name (Indonesian collation) or accreditation ([SortRecords]).
  - Aggregate: counts, subject/tier/institution buckets, impact ranking.
  - Paginate: delegated to pkg/pagination over the filtered+sorted sequence.

Every function in this package returns freshly allocated slices and never
mutates its input.
*/
package journal

import (
	"strings"
	"time"

	"github.com/opensinta/opensinta/pkg/slug"
)

// # Raw Field Keys

// Dataset keys as they appear in the scraped JSON file.
const (
	KeyName          = "Nama Jurnal"
	KeyPISSN         = "P-ISSN"
	KeyEISSN         = "E-ISSN"
	KeyAffiliation   = "Afiliasi"
	KeySubjectArea   = "Subject Area"
	KeyAccreditation = "Akreditasi Sinta"
	KeyScopus        = "Scopus Indexed"
	KeyGaruda        = "Garuda Indexed"
	KeyImpact        = "Impact"
	KeyCitations     = "Citations"
	KeyH5Index       = "H5-index"
	KeyWebsiteURL    = "Website URL"
	KeyURL           = "URL"
	KeyLink          = "Link"
	KeyProfileURL    = "Profile URL"
	KeyScholarURL    = "Google Scholar URL"
	KeySintaID       = "SINTA ID"
	KeySintaIDAlt    = "Sinta ID"
	KeyIDSinta       = "ID SINTA"
)

// FlagYes is the literal marking a positive indexing flag.
const FlagYes = "Yes"

// FlagNo is the literal marking a negative (or absent) indexing flag.
const FlagNo = "No"

// # Domain Enums

// Category is the closed set of index filters offered by the catalogue.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryScopus Category = "scopus"
	CategorySinta  Category = "sinta"
	CategoryGaruda Category = "garuda"
)

// SortKey selects the ordering applied by [SortRecords].
type SortKey string

const (
	SortImpact SortKey = "impact"
	SortName   SortKey = "name"
	SortSinta  SortKey = "sinta"
)

// Tier is an accreditation level label.
type Tier string

const (
	TierS1    Tier = "S1"
	TierS2    Tier = "S2"
	TierS3    Tier = "S3"
	TierS4    Tier = "S4"
	TierS5    Tier = "S5"
	TierS6    Tier = "S6"
	TierOther Tier = "Other"
)

// Tiers lists the accreditation tiers in match order, strongest first.
var Tiers = []Tier{TierS1, TierS2, TierS3, TierS4, TierS5, TierS6}

// ParseTier maps a case-insensitive label ("s2", "S2") to a [Tier].
func ParseTier(raw string) (Tier, bool) {
	label := Tier(strings.ToUpper(strings.TrimSpace(raw)))
	for _, tier := range Tiers {
		if tier == label {
			return tier, true
		}
	}
	return "", false
}

// # Core Entities

// Field is an optional string value extracted from a raw record.
//
// Present is false when the key was missing or carried a non-scalar value.
// A present field may still be unavailable; see [IsAvailable].
type Field struct {
	Value   string
	Present bool
}

// Record is one journal's normalized metadata entry.
type Record struct {
	Name          Field
	PISSN         Field
	EISSN         Field
	Affiliation   Field
	SubjectArea   Field
	Accreditation Field
	Scopus        Field
	Garuda        Field
	Impact        Field
	Citations     Field
	H5Index       Field
	Website       Field
	URL           Field
	Link          Field
	ProfileURL    Field
	ScholarURL    Field
	SintaID       Field

	// raw is the original object, shared read-only for export and pass-through metrics.
	raw map[string]any
	// key is the catalogue-unique lookup key assigned by [AssignKeys].
	key string
}

// Raw returns a shallow copy of the original JSON object.
func (r Record) Raw() map[string]any {
	out := make(map[string]any, len(r.raw))
	for key, value := range r.raw {
		out[key] = value
	}
	return out
}

// Metric returns an opaque pass-through field by its dataset key.
func (r Record) Metric(key string) Field {
	return fieldOf(r.raw, key)
}

// ScopusIndexed reports whether the Scopus flag is exactly "Yes".
func (r Record) ScopusIndexed() bool {
	return r.Scopus.Present && r.Scopus.Value == FlagYes
}

// GarudaIndexed reports whether the Garuda flag is exactly "Yes".
func (r Record) GarudaIndexed() bool {
	return r.Garuda.Present && r.Garuda.Value == FlagYes
}

// Accredited reports whether the accreditation field is available.
func (r Record) Accredited() bool {
	return IsAvailable(r.Accreditation)
}

// Snapshot is one loaded generation of the catalogue.
//
// It is replaced wholesale on reload and never modified after construction.
type Snapshot struct {
	Version  string
	LoadedAt time.Time
	Records  []Record
}

// Len returns the number of records in the snapshot; nil-safe.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

// Find returns the first record whose [Key] or ISSN matches key.
func (s *Snapshot) Find(key string) (Record, bool) {
	if s == nil || strings.TrimSpace(key) == "" {
		return Record{}, false
	}
	needle := strings.ToLower(strings.TrimSpace(key))
	for _, record := range s.Records {
		if Key(record) == needle {
			return record, true
		}
		if matchesISSN(record.EISSN, needle) || matchesISSN(record.PISSN, needle) {
			return record, true
		}
	}
	return Record{}, false
}

// matchesISSN compares an ISSN with needle, verbatim or in slug form.
func matchesISSN(issn Field, needle string) bool {
	value := strings.ToLower(DisplayValue(issn, ""))
	if value == "" {
		return false
	}
	return value == needle || slug.From(value) == needle
}
