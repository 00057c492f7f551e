// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/opensinta/opensinta/pkg/slice"
	"github.com/opensinta/opensinta/pkg/slug"
)

// SintaBaseURL is the root of the external SINTA journal index.
const SintaBaseURL = "https://sinta.kemdikbud.go.id"

var (
	// ErrNoWebsite is returned when a journal has no usable website field.
	ErrNoWebsite = errors.New("Website tidak tersedia untuk jurnal ini")
	// ErrNoProfile is returned when nothing identifies the journal on SINTA.
	ErrNoProfile = errors.New("Informasi untuk mencari profil SINTA tidak tersedia")
)

// # Outbound Links

// Links bundles every outbound action derived from one record.
type Links struct {
	Profile string `json:"profile,omitempty"`
	Website string `json:"website,omitempty"`
	Scholar string `json:"scholar,omitempty"`
	Share   string `json:"share"`
}

// ProfileURL derives the journal's SINTA page.
//
// Priority: a direct SINTA ID, then an ISSN search (E-ISSN before P-ISSN),
// then a name search.
func ProfileURL(r Record) (string, error) {
	if IsAvailable(r.SintaID) {
		return SintaBaseURL + "/journals/profile/" + url.PathEscape(strings.TrimSpace(r.SintaID.Value)), nil
	}

	if issn := firstAvailable(r.EISSN, r.PISSN); issn.Present {
		return searchURL(strings.TrimSpace(issn.Value)), nil
	}

	if name := DisplayValue(r.Name, ""); name != "" {
		return searchURL(name), nil
	}

	return "", ErrNoProfile
}

// WebsiteURL returns the journal website with an https scheme added when missing.
func WebsiteURL(r Record) (string, error) {
	website := firstAvailable(r.Website, r.URL, r.Link)
	if !website.Present {
		return "", ErrNoWebsite
	}
	return withScheme(strings.TrimSpace(website.Value)), nil
}

// ShareText is the message used when sharing a journal.
func ShareText(r Record) string {
	return "Lihat jurnal: " + DisplayValue(r.Name, "Jurnal") + " di Open SINTA Platform"
}

// LinksOf collects every outbound link available for r.
func LinksOf(r Record) Links {
	links := Links{Share: ShareText(r)}
	links.Profile, _ = ProfileURL(r)
	links.Website, _ = WebsiteURL(r)
	if IsAvailable(r.ScholarURL) {
		links.Scholar = withScheme(strings.TrimSpace(r.ScholarURL.Value))
	}
	return links
}

// Key is the stable lookup identifier of a record: the slug of its name,
// or the slug of its ISSN when the name is unavailable. Records decoded
// together carry the catalogue-unique key assigned by [AssignKeys].
func Key(r Record) string {
	if r.key != "" {
		return r.key
	}
	return baseKey(r)
}

func baseKey(r Record) string {
	if name := DisplayValue(r.Name, ""); name != "" {
		if key := slug.From(name); key != "" {
			return key
		}
	}
	return slug.From(DisplayValue(firstAvailable(r.EISSN, r.PISSN), ""))
}

/*
AssignKeys gives every record of a catalogue a unique [Key].

Description: The first record with a given base key keeps it; later
duplicates are suffixed "-2", "-3" and so on in input order, skipping any
suffix already taken by another base key. Records without a name or ISSN
stay keyless.

Parameters:
  - records: []Record

Returns:
  - []Record: Fresh slice with keys assigned
*/
func AssignKeys(records []Record) []Record {
	out := slice.Take(records, -1)

	taken := make(map[string]bool, len(out))
	for _, r := range out {
		if key := baseKey(r); key != "" {
			taken[key] = true
		}
	}

	seen := make(map[string]int, len(out))
	for i := range out {
		base := baseKey(out[i])
		if base == "" {
			continue
		}
		seen[base]++
		if seen[base] == 1 {
			out[i].key = base
			continue
		}

		suffix := seen[base]
		candidate := fmt.Sprintf("%s-%d", base, suffix)
		for taken[candidate] {
			suffix++
			candidate = fmt.Sprintf("%s-%d", base, suffix)
		}
		seen[base] = suffix
		taken[candidate] = true
		out[i].key = candidate
	}
	return out
}

func searchURL(term string) string {
	return SintaBaseURL + "/journals?q=" + url.QueryEscape(term)
}

func withScheme(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
