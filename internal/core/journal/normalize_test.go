// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensinta/opensinta/internal/core/journal"
)

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name  string
		field journal.Field
		want  bool
	}{
		{"absent", journal.Field{}, false},
		{"empty", journal.Field{Value: "", Present: true}, false},
		{"blank", journal.Field{Value: "  ", Present: true}, false},
		{"sentinel", journal.Field{Value: journal.Sentinel, Present: true}, false},
		{"contains_sentinel", journal.Field{Value: "x " + journal.Sentinel, Present: true}, false},
		{"value", journal.Field{Value: "Jurnal Ilmiah", Present: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, journal.IsAvailable(tt.field))
		})
	}
}

func TestDisplayValue(t *testing.T) {
	assert.Equal(t, "Jurnal", journal.DisplayValue(journal.Field{Value: " Jurnal ", Present: true}, "x"))
	assert.Equal(t, journal.DefaultFallback, journal.DisplayValue(journal.Field{}, journal.DefaultFallback))
}

/*
TestDecode covers mixed scalar types, nulls and the alternative SINTA ID keys.
*/
func TestDecode(t *testing.T) {
	data := []byte(`[
		{"Nama Jurnal": "A", "Impact": 1.5, "Citations": 120, "Scopus Indexed": "Yes", "Sinta ID": 42},
		{"Nama Jurnal": null, "Afiliasi": ["nested"], "ID SINTA": "77"},
		null
	]`)

	records, err := journal.Decode(data)
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "A", first.Name.Value)
	assert.Equal(t, "1.5", first.Impact.Value)
	assert.Equal(t, "120", first.Citations.Value)
	assert.Equal(t, "42", first.SintaID.Value)
	assert.True(t, first.ScopusIndexed())

	second := records[1]
	assert.False(t, second.Name.Present)
	assert.False(t, second.Affiliation.Present)
	assert.Equal(t, "77", second.SintaID.Value)

	assert.False(t, records[2].Name.Present)
}

func TestDecode_Errors(t *testing.T) {
	_, err := journal.Decode([]byte(`{"Nama Jurnal": "A"}`))
	assert.Error(t, err)

	_, err = journal.Decode([]byte(`[1, 2]`))
	assert.Error(t, err)

	_, err = journal.Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestMetricParsing(t *testing.T) {
	r := rec(map[string]any{
		journal.KeyImpact:    "2,5",
		journal.KeyCitations: "1.234",
		journal.KeyH5Index:   json.Number("7"),
	})

	impact, ok := journal.ImpactValue(r)
	require.True(t, ok)
	assert.InDelta(t, 2.5, impact, 1e-9)

	citations, ok := journal.CitationCount(r)
	require.True(t, ok)
	assert.Equal(t, 1234, citations)

	assert.Equal(t, 7, journal.H5IndexValue(r))

	bad := rec(map[string]any{journal.KeyImpact: "abc", journal.KeyH5Index: "n/a"})
	_, ok = journal.ImpactValue(bad)
	assert.False(t, ok)
	assert.Equal(t, 0, journal.H5IndexValue(bad))
}

func TestRecord_RawIsCopy(t *testing.T) {
	r := rec(map[string]any{journal.KeyName: "A", "Extra": "kept"})

	raw := r.Raw()
	raw[journal.KeyName] = "B"

	assert.Equal(t, "A", r.Raw()[journal.KeyName])
	assert.Equal(t, "kept", r.Metric("Extra").Value)
}

func TestParseTier(t *testing.T) {
	tier, ok := journal.ParseTier(" s3 ")
	assert.True(t, ok)
	assert.Equal(t, journal.TierS3, tier)

	_, ok = journal.ParseTier("S9")
	assert.False(t, ok)
}
