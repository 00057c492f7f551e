// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/opensinta/opensinta/pkg/convert"
)

// # Availability

// Sentinel marks a field the scraper deliberately disabled.
const Sentinel = "--disable--"

// DefaultFallback is the label shown for unavailable values.
const DefaultFallback = "Tidak tersedia"

// NameFallback is the card title shown when a journal has no usable name.
const NameFallback = "Nama Jurnal Tidak Tersedia"

// IsAvailable reports whether f carries a usable value.
//
// A field is unavailable when it is absent, blank after trimming, equal to
// [Sentinel], or contains [Sentinel] anywhere in its text.
func IsAvailable(f Field) bool {
	return f.Present && IsAvailableString(f.Value)
}

// IsAvailableString applies the [IsAvailable] rules to a bare string.
func IsAvailableString(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	return !strings.Contains(value, Sentinel)
}

// DisplayValue returns the trimmed value of f, or fallback when f is unavailable.
func DisplayValue(f Field, fallback string) string {
	if !IsAvailable(f) {
		return fallback
	}
	return strings.TrimSpace(f.Value)
}

// firstAvailable returns the first available field in priority order.
func firstAvailable(fields ...Field) Field {
	for _, f := range fields {
		if IsAvailable(f) {
			return f
		}
	}
	return Field{}
}

// # Record Construction

// FromRaw maps one untyped dataset object into a [Record].
//
// Strings are kept verbatim; numbers and booleans are stringified; nulls,
// arrays and nested objects count as absent.
func FromRaw(raw map[string]any) Record {
	return Record{
		Name:          fieldOf(raw, KeyName),
		PISSN:         fieldOf(raw, KeyPISSN),
		EISSN:         fieldOf(raw, KeyEISSN),
		Affiliation:   fieldOf(raw, KeyAffiliation),
		SubjectArea:   fieldOf(raw, KeySubjectArea),
		Accreditation: fieldOf(raw, KeyAccreditation),
		Scopus:        fieldOf(raw, KeyScopus),
		Garuda:        fieldOf(raw, KeyGaruda),
		Impact:        fieldOf(raw, KeyImpact),
		Citations:     fieldOf(raw, KeyCitations),
		H5Index:       fieldOf(raw, KeyH5Index),
		Website:       fieldOf(raw, KeyWebsiteURL),
		URL:           fieldOf(raw, KeyURL),
		Link:          fieldOf(raw, KeyLink),
		ProfileURL:    fieldOf(raw, KeyProfileURL),
		ScholarURL:    fieldOf(raw, KeyScholarURL),
		SintaID:       firstPresent(fieldOf(raw, KeySintaID), fieldOf(raw, KeySintaIDAlt), fieldOf(raw, KeyIDSinta)),
		raw:           raw,
	}
}

// Decode parses a JSON array of journal objects into records.
//
// A null element yields an empty record; any other non-object element is a
// parse error, as is a top-level value that is not an array. Every record
// gets a catalogue-unique [Key].
func Decode(data []byte) ([]Record, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raws []map[string]any
	if err := decoder.Decode(&raws); err != nil {
		return nil, fmt.Errorf("journal: decode dataset: %w", err)
	}

	records := make([]Record, len(raws))
	for i, raw := range raws {
		records[i] = FromRaw(raw)
	}
	return AssignKeys(records), nil
}

// fieldOf extracts key from raw as an optional string.
func fieldOf(raw map[string]any, key string) Field {
	value, ok := raw[key]
	if !ok {
		return Field{}
	}

	switch v := value.(type) {
	case string:
		return Field{Value: v, Present: true}
	case json.Number:
		return Field{Value: v.String(), Present: true}
	case float64:
		return Field{Value: strconv.FormatFloat(v, 'f', -1, 64), Present: true}
	case bool:
		return Field{Value: strconv.FormatBool(v), Present: true}
	}
	return Field{}
}

// firstPresent returns the first field that exists in the raw object.
func firstPresent(fields ...Field) Field {
	for _, f := range fields {
		if f.Present && f.Value != "" {
			return f
		}
	}
	return Field{}
}

// # Metric Parsing

// ImpactValue parses the impact factor, accepting ',' or '.' as decimal separator.
func ImpactValue(r Record) (float64, bool) {
	if !IsAvailable(r.Impact) {
		return 0, false
	}
	return convert.Decimal(r.Impact.Value)
}

// CitationCount parses the citation count, stripping grouping separators.
func CitationCount(r Record) (int, bool) {
	if !IsAvailable(r.Citations) {
		return 0, false
	}
	return convert.GroupedInt(r.Citations.Value)
}

// H5IndexValue parses the h5-index; unparseable values yield 0.
func H5IndexValue(r Record) int {
	if !IsAvailable(r.H5Index) {
		return 0
	}
	return convert.ToIntD(r.H5Index.Value, 0)
}
