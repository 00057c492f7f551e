// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal

import (
	"slices"
	"strings"

	"github.com/opensinta/opensinta/pkg/pagination"
)

// # View State

// ViewState is the full set of browsing criteria for one catalogue view.
//
// It is a value type: every setter returns a modified copy. Changing any
// filter or the sort criterion resets Page to 1, so a page number chosen
// against a larger result set is never applied to a smaller one.
type ViewState struct {
	Query    string   `json:"q"`
	Category Category `json:"category"`
	Tiers    []Tier   `json:"tiers,omitempty"`
	Sort     SortKey  `json:"sort"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`

	// Version is the snapshot version the page number was chosen against.
	Version string `json:"version,omitempty"`
}

// DefaultViewState is the landing view: every journal, highest impact first.
func DefaultViewState() ViewState {
	return ViewState{
		Category: CategoryAll,
		Sort:     SortImpact,
		Page:     pagination.DefaultPage,
		PageSize: pagination.DefaultLimit,
	}
}

// WithQuery replaces the text query and resets the page.
func (s ViewState) WithQuery(query string) ViewState {
	if s.Query != query {
		s.Page = pagination.DefaultPage
	}
	s.Query = query
	return s
}

// WithCategory replaces the category filter and resets the page.
func (s ViewState) WithCategory(category Category) ViewState {
	if s.Category != category {
		s.Page = pagination.DefaultPage
	}
	s.Category = category
	return s
}

// WithTiers replaces the tier filter and resets the page.
func (s ViewState) WithTiers(tiers []Tier) ViewState {
	if !slices.Equal(s.Tiers, tiers) {
		s.Page = pagination.DefaultPage
	}
	s.Tiers = slices.Clone(tiers)
	return s
}

// WithSort replaces the sort criterion and resets the page.
func (s ViewState) WithSort(key SortKey) ViewState {
	if s.Sort != key {
		s.Page = pagination.DefaultPage
	}
	s.Sort = key
	return s
}

// WithPage moves to page; the page is clamped when the view is derived.
func (s ViewState) WithPage(page int) ViewState {
	s.Page = page
	return s
}

// Rebase pins the state to a snapshot version.
//
// When the state was built against a different snapshot, the page resets to
// 1 while query, category, tiers and sort carry over to the new data. A state
// with no version yet keeps its page.
func (s ViewState) Rebase(version string) ViewState {
	if s.Version != "" && s.Version != version {
		s.Page = pagination.DefaultPage
	}
	s.Version = version
	return s
}

// normalized trims the query and fills zero-valued criteria with defaults.
func (s ViewState) normalized() ViewState {
	s.Query = strings.TrimSpace(s.Query)
	if s.Category == "" {
		s.Category = CategoryAll
	}
	if s.Sort == "" {
		s.Sort = SortImpact
	}
	if s.PageSize < 1 {
		s.PageSize = pagination.DefaultLimit
	}
	return s
}

// # Derived View

// View is everything a presentation layer needs to render one catalogue page.
type View struct {
	State  ViewState               `json:"state"`
	Page   pagination.Page[Record] `json:"-"`
	Meta   pagination.Meta         `json:"meta"`
	Counts CategoryCounts          `json:"counts"`
	Sorted []Record                `json:"-"`
}

// Filtered runs the query, category and tier stages for state over records.
// Aggregations read this sequence; sorting never changes a count.
func Filtered(records []Record, state ViewState) []Record {
	state = state.normalized()
	return FilterTiers(FilterRecords(records, state.Query, state.Category), state.Tiers)
}

// Select runs the filter and sort stages for state over records.
func Select(records []Record, state ViewState) []Record {
	return SortRecords(Filtered(records, state), state.normalized().Sort)
}

/*
Derive computes the view for state against a snapshot.

Description: The state is first rebased onto the snapshot version, then the
records are filtered, sorted and paginated. Counts aggregate the filtered
sequence before sorting, independent of the sort key and of the page shown.

Parameters:
  - snapshot: *Snapshot (May be nil before the first load)
  - state: ViewState

Returns:
  - View: Fresh projection; the snapshot is never modified
*/
func Derive(snapshot *Snapshot, state ViewState) View {
	var (
		records []Record
		version string
	)
	if snapshot != nil {
		records = snapshot.Records
		version = snapshot.Version
	}

	state = state.normalized().Rebase(version)
	filtered := Filtered(records, state)
	sorted := SortRecords(filtered, state.Sort)
	page := pagination.Paginate(sorted, state.PageSize, state.Page)
	state.Page = page.Page

	return View{
		State:  state,
		Page:   page,
		Meta:   pagination.MetaOf(page),
		Counts: CountCategories(filtered),
		Sorted: sorted,
	}
}
