// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal

// # Presentation Models

// Entry is the display form of a record: every text field already resolved
// to its value or the standard fallback label.
type Entry struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	PISSN         string   `json:"p_issn"`
	EISSN         string   `json:"e_issn"`
	Affiliation   string   `json:"affiliation"`
	SubjectArea   string   `json:"subject_area"`
	Subjects      []string `json:"subjects"`
	Accreditation string   `json:"accreditation"`
	Tier          Tier     `json:"tier"`
	Scopus        bool     `json:"scopus_indexed"`
	Garuda        bool     `json:"garuda_indexed"`
	Impact        string   `json:"impact"`
	Citations     string   `json:"citations"`
	H5Index       string   `json:"h5_index"`
}

// Detail is a single journal with its outbound links.
type Detail struct {
	Entry
	Links Links `json:"links"`
}

// EntryOf resolves r into its display form.
func EntryOf(r Record) Entry {
	subjects := Subjects(r)
	if subjects == nil {
		subjects = []string{}
	}

	return Entry{
		Key:           Key(r),
		Name:          DisplayValue(r.Name, NameFallback),
		PISSN:         DisplayValue(r.PISSN, DefaultFallback),
		EISSN:         DisplayValue(r.EISSN, DefaultFallback),
		Affiliation:   DisplayValue(r.Affiliation, DefaultFallback),
		SubjectArea:   DisplayValue(r.SubjectArea, DefaultFallback),
		Subjects:      subjects,
		Accreditation: DisplayValue(r.Accreditation, DefaultFallback),
		Tier:          TierOf(r),
		Scopus:        r.ScopusIndexed(),
		Garuda:        r.GarudaIndexed(),
		Impact:        DisplayValue(r.Impact, DefaultFallback),
		Citations:     DisplayValue(r.Citations, DefaultFallback),
		H5Index:       DisplayValue(r.H5Index, DefaultFallback),
	}
}

// DetailOf resolves r with its links.
func DetailOf(r Record) Detail {
	return Detail{Entry: EntryOf(r), Links: LinksOf(r)}
}
