// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal_test

import (
	"github.com/opensinta/opensinta/internal/core/journal"
)

// rec builds a record from dataset-shaped key/value pairs.
func rec(raw map[string]any) journal.Record {
	return journal.FromRaw(raw)
}

// named builds a record carrying only a journal name.
func named(name string) journal.Record {
	return rec(map[string]any{journal.KeyName: name})
}

// names projects records onto their display names.
func names(records []journal.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = journal.DisplayValue(r.Name, "")
	}
	return out
}

// fixture is a small, mixed-quality catalogue.
func fixture() []journal.Record {
	return []journal.Record{
		rec(map[string]any{
			journal.KeyName:          "Jurnal Teknologi Informasi",
			journal.KeyEISSN:         "2541-0000",
			journal.KeyAffiliation:   "Universitas Indonesia",
			journal.KeySubjectArea:   "Computer Science, AI",
			journal.KeyAccreditation: "S2 (2020)",
			journal.KeyScopus:        "Yes",
			journal.KeyGaruda:        "Yes",
			journal.KeyImpact:        "2,5",
			journal.KeyCitations:     "1.234",
		}),
		rec(map[string]any{
			journal.KeyName:          "Agricultural Review",
			journal.KeyPISSN:         "1410-1111",
			journal.KeyEISSN:         journal.Sentinel,
			journal.KeyAffiliation:   "Institut Pertanian Bogor",
			journal.KeySubjectArea:   "Agriculture",
			journal.KeyAccreditation: "S4",
			journal.KeyScopus:        "No",
			journal.KeyGaruda:        "Yes",
			journal.KeyImpact:        "0.8",
		}),
		rec(map[string]any{
			journal.KeyName:        "Medical Letters",
			journal.KeyAffiliation: "Universitas Indonesia",
			journal.KeySubjectArea: "Medicine; AI",
			journal.KeyScopus:      "Yes",
			journal.KeyImpact:      "abc",
		}),
		rec(map[string]any{
			journal.KeyName:          "  ",
			journal.KeyAccreditation: journal.Sentinel,
		}),
	}
}
