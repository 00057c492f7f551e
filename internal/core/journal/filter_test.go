// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opensinta/opensinta/internal/core/journal"
)

func TestFilterRecords(t *testing.T) {
	records := fixture()

	tests := []struct {
		name     string
		query    string
		category journal.Category
		want     []string
	}{
		{"all", "", journal.CategoryAll, []string{"Jurnal Teknologi Informasi", "Agricultural Review", "Medical Letters", ""}},
		{"by_name_case_insensitive", "  TEKNOLOGI ", journal.CategoryAll, []string{"Jurnal Teknologi Informasi"}},
		{"by_affiliation", "universitas indonesia", journal.CategoryAll, []string{"Jurnal Teknologi Informasi", "Medical Letters"}},
		{"by_subject", "ai", journal.CategoryAll, []string{"Jurnal Teknologi Informasi", "Medical Letters"}},
		{"by_pissn_when_eissn_disabled", "1410", journal.CategoryAll, []string{"Agricultural Review"}},
		{"sentinel_never_matches", "disable", journal.CategoryAll, []string{}},
		{"scopus", "", journal.CategoryScopus, []string{"Jurnal Teknologi Informasi", "Medical Letters"}},
		{"sinta", "", journal.CategorySinta, []string{"Jurnal Teknologi Informasi", "Agricultural Review"}},
		{"garuda", "", journal.CategoryGaruda, []string{"Jurnal Teknologi Informasi", "Agricultural Review"}},
		{"query_and_category", "universitas", journal.CategoryGaruda, []string{"Jurnal Teknologi Informasi"}},
		{"unknown_category", "", journal.Category("doaj"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(journal.FilterRecords(records, tt.query, tt.category)))
		})
	}
}

/*
TestFilterRecords_Idempotent checks that re-filtering a filtered result with
the same predicate yields the same result.
*/
func TestFilterRecords_Idempotent(t *testing.T) {
	records := fixture()

	for _, category := range []journal.Category{journal.CategoryAll, journal.CategoryScopus, journal.CategorySinta, journal.CategoryGaruda} {
		for _, query := range []string{"", "ai", "universitas", "zzz"} {
			once := journal.FilterRecords(records, query, category)
			twice := journal.FilterRecords(once, query, category)
			assert.Equal(t, names(once), names(twice), "query=%q category=%s", query, category)
		}
	}
}

func TestFilterRecords_DoesNotMutate(t *testing.T) {
	records := fixture()
	before := names(records)

	filtered := journal.FilterRecords(records, "ai", journal.CategoryAll)
	filtered[0] = named("changed")

	assert.Equal(t, before, names(records))
}

func TestFilterTiers(t *testing.T) {
	records := fixture()

	assert.Len(t, journal.FilterTiers(records, nil), len(records))
	assert.Equal(t, []string{"Jurnal Teknologi Informasi"}, names(journal.FilterTiers(records, []journal.Tier{journal.TierS2})))
	assert.Equal(t,
		[]string{"Jurnal Teknologi Informasi", "Agricultural Review"},
		names(journal.FilterTiers(records, []journal.Tier{journal.TierS4, journal.TierS2})),
	)
	assert.Empty(t, journal.FilterTiers(records, []journal.Tier{journal.TierS6}))
}

func TestFilterRecords_Empty(t *testing.T) {
	assert.NotNil(t, journal.FilterRecords(nil, "x", journal.CategoryAll))
	assert.Empty(t, journal.FilterRecords([]journal.Record{}, "", journal.CategoryAll))
}
