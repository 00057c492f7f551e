// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/opensinta/opensinta/internal/platform/apperr"
	"github.com/opensinta/opensinta/internal/platform/validate"
	"github.com/opensinta/opensinta/pkg/pagination"
)

const (
	FieldQuery    = "q"
	FieldCategory = "category"
	FieldTier     = "tier"
	FieldSort     = "sort"
	FieldLimit    = "limit"
	FieldVersion  = "version"
	FieldKey      = "key"

	// MaxQueryLength bounds the free-text search term.
	MaxQueryLength = 200
	// maxKeyLength bounds a journal lookup key.
	maxKeyLength = 300
)

// SnapshotProvider exposes the currently published catalogue.
type SnapshotProvider interface {
	Snapshot() *Snapshot
}

// ViewParams are the raw, unvalidated browsing criteria of one request.
type ViewParams struct {
	Query    string
	Category string
	Tiers    []string
	Sort     string
	Page     int
	Limit    int
	Version  string
}

// SubjectSummary is the trending and category breakdown of a record sequence.
type SubjectSummary struct {
	Trending   []SubjectBucket `json:"trending"`
	Categories []SubjectBucket `json:"categories"`
}

// # Service Layer

// Service answers catalogue queries against the published snapshot.
type Service struct {
	provider SnapshotProvider
	pageSize int
	logger   *slog.Logger
}

// NewService constructs a new [Service]. A non-positive pageSize uses the pagination default.
func NewService(provider SnapshotProvider, pageSize int, logger *slog.Logger) *Service {
	if pageSize < 1 || pageSize > pagination.MaxLimit {
		pageSize = pagination.DefaultLimit
	}
	return &Service{provider: provider, pageSize: pageSize, logger: logger}
}

// PageSize returns the default page size applied to requests without a limit.
func (service *Service) PageSize() int { return service.pageSize }

/*
ParseView validates raw criteria into a [ViewState].

Description: Empty category and sort fall back to the landing view. Tier
labels are matched case-insensitively. Every failing field is reported at
once in a single VALIDATION_ERROR.

Parameters:
  - params: ViewParams

Returns:
  - ViewState: Normalized state
  - error: apperr.ValidationError
*/
func (service *Service) ParseView(params ViewParams) (ViewState, error) {
	state := DefaultViewState()
	state.PageSize = service.pageSize

	if params.Limit != 0 {
		state.PageSize = params.Limit
	}
	if params.Page > 0 {
		state.Page = params.Page
	}

	v := &validate.Validator{}
	v.MaxLen(FieldQuery, params.Query, MaxQueryLength)
	v.Range(FieldLimit, state.PageSize, 1, pagination.MaxLimit)

	if params.Category != "" {
		v.OneOf(FieldCategory, params.Category,
			string(CategoryAll), string(CategoryScopus), string(CategorySinta), string(CategoryGaruda))
		state.Category = Category(params.Category)
	}

	if params.Sort != "" {
		v.OneOf(FieldSort, params.Sort, string(SortImpact), string(SortName), string(SortSinta))
		state.Sort = SortKey(params.Sort)
	}

	tiers := make([]Tier, 0, len(params.Tiers))
	for _, raw := range params.Tiers {
		tier, ok := ParseTier(raw)
		v.Custom(FieldTier, !ok, fmt.Sprintf("Unknown tier %q", raw))
		if ok {
			tiers = append(tiers, tier)
		}
	}

	if params.Version != "" {
		v.UUID(FieldVersion, params.Version)
	}

	if err := v.Err(); err != nil {
		return ViewState{}, err
	}

	state.Query = strings.TrimSpace(params.Query)
	if len(tiers) > 0 {
		state.Tiers = tiers
	}
	state.Version = params.Version
	return state, nil
}

// # Catalogue Queries

/*
Browse derives the requested catalogue page.

Parameters:
  - context: context.Context
  - state: ViewState

Returns:
  - View: Page, metadata and counts
  - error: apperr.ServiceUnavailable before the first successful load
*/
func (service *Service) Browse(context context.Context, state ViewState) (View, error) {
	snapshot, err := service.snapshot(context)
	if err != nil {
		return View{}, err
	}
	return Derive(snapshot, state), nil
}

// Stats returns the headline counts of the filtered sequence.
func (service *Service) Stats(context context.Context, state ViewState) (CategoryCounts, error) {
	records, err := service.filtered(context, state)
	if err != nil {
		return CategoryCounts{}, err
	}
	return CountCategories(records), nil
}

// Subjects returns the trending topics and top categories of the filtered sequence.
func (service *Service) Subjects(context context.Context, state ViewState) (SubjectSummary, error) {
	records, err := service.filtered(context, state)
	if err != nil {
		return SubjectSummary{}, err
	}
	return SubjectSummary{
		Trending:   Trending(records),
		Categories: TopCategories(records),
	}, nil
}

// Charts returns every chart series of the filtered sequence.
func (service *Service) Charts(context context.Context, state ViewState) (Charts, error) {
	records, err := service.filtered(context, state)
	if err != nil {
		return Charts{}, err
	}
	return BuildCharts(records), nil
}

/*
ExportRecords returns the full filtered and sorted sequence for download.

Parameters:
  - context: context.Context
  - state: ViewState (Pagination is ignored)

Returns:
  - []Record: Every matching record
  - error: apperr.ServiceUnavailable before the first successful load
*/
func (service *Service) ExportRecords(context context.Context, state ViewState) ([]Record, error) {
	records, err := service.selected(context, state)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "journal_export",
		slog.String("q", state.Query),
		slog.String("category", string(state.Category)),
		slog.Int("records", len(records)),
	)
	return records, nil
}

/*
Get fetches a single journal by key or ISSN.

Parameters:
  - context: context.Context
  - key: string (Slug of the name, or an ISSN)

Returns:
  - Record: The matching record
  - error: apperr.ValidationError, apperr.NotFound or apperr.ServiceUnavailable
*/
func (service *Service) Get(context context.Context, key string) (Record, error) {
	key = strings.ToLower(strings.TrimSpace(key))

	v := &validate.Validator{}
	v.Required(FieldKey, key).MaxLen(FieldKey, key, maxKeyLength).Slug(FieldKey, key)
	if err := v.Err(); err != nil {
		return Record{}, err
	}

	snapshot, err := service.snapshot(context)
	if err != nil {
		return Record{}, err
	}

	record, ok := snapshot.Find(key)
	if !ok {
		return Record{}, apperr.NotFound("Journal")
	}
	return record, nil
}

/*
Website resolves the website link of a journal.

Returns:
  - string: Normalized URL
  - error: apperr.NotFound carrying [ErrNoWebsite]
*/
func (service *Service) Website(context context.Context, key string) (string, error) {
	record, err := service.Get(context, key)
	if err != nil {
		return "", err
	}

	website, err := WebsiteURL(record)
	if err != nil {
		return "", linkError(err)
	}
	return website, nil
}

/*
Profile resolves the SINTA profile or search link of a journal.

Returns:
  - string: Profile or search URL
  - error: apperr.NotFound carrying [ErrNoProfile]
*/
func (service *Service) Profile(context context.Context, key string) (string, error) {
	record, err := service.Get(context, key)
	if err != nil {
		return "", err
	}

	profile, err := ProfileURL(record)
	if err != nil {
		return "", linkError(err)
	}
	return profile, nil
}

// # Helpers

func (service *Service) snapshot(context context.Context) (*Snapshot, error) {
	snapshot := service.provider.Snapshot()
	if snapshot == nil {
		service.logger.WarnContext(context, "journal_catalog_not_ready")
		return nil, apperr.ServiceUnavailable("Journal catalogue is not loaded yet")
	}
	return snapshot, nil
}

func (service *Service) filtered(context context.Context, state ViewState) ([]Record, error) {
	snapshot, err := service.snapshot(context)
	if err != nil {
		return nil, err
	}
	return Filtered(snapshot.Records, state), nil
}

func (service *Service) selected(context context.Context, state ViewState) ([]Record, error) {
	snapshot, err := service.snapshot(context)
	if err != nil {
		return nil, err
	}
	return Select(snapshot.Records, state), nil
}

// linkError maps a missing-link failure to a 404 carrying the user-facing message.
func linkError(cause error) *apperr.AppError {
	notFound := apperr.NotFound("Link")
	notFound.Message = cause.Error()
	notFound.Cause = cause
	return notFound
}
