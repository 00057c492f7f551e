// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/opensinta/opensinta/internal/platform/request"
	"github.com/opensinta/opensinta/internal/platform/respond"
	"github.com/opensinta/opensinta/pkg/convert"
	"github.com/opensinta/opensinta/pkg/pagination"
	"github.com/opensinta/opensinta/pkg/slice"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalogue browsing.
type Handler struct {
	service *Service
}

// NewHandler constructs a new journal [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a router with all journal-related endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Collection Views
	router.Get("/", handler.listJournals)
	router.Get("/stats", handler.getStats)
	router.Get("/subjects", handler.getSubjects)
	router.Get("/charts", handler.getCharts)
	router.Get("/export", handler.exportJournals)

	// ## Single Journal
	router.Get("/{key}", handler.getJournal)
	router.Get("/{key}/website", handler.getWebsite)
	router.Get("/{key}/profile", handler.getProfile)

	return router
}

// viewState parses the shared browsing criteria of every collection endpoint.
func (handler *Handler) viewState(request *http.Request) (ViewState, error) {
	page := pagination.FromRequest(request, handler.service.PageSize())

	return handler.service.ParseView(ViewParams{
		Query:    requestutil.Query(request, FieldQuery),
		Category: requestutil.Query(request, FieldCategory),
		Tiers:    requestutil.QueryList(request, FieldTier),
		Sort:     requestutil.Query(request, FieldSort),
		Page:     page.Page,
		Limit:    page.Limit,
		Version:  requestutil.Query(request, FieldVersion),
	})
}

// # Collection Views

/*
GET /api/v1/journals.

Description: Returns one page of the filtered and sorted catalogue. When the
given version differs from the published snapshot the page resets to 1.

Request:
  - q: string (Search name, ISSN, affiliation, subject)
  - category: string (all, scopus, sinta, garuda)
  - tier: []string (S1..S6, repeated or comma-separated)
  - sort: string (impact, name, sinta)
  - page: int
  - limit: int
  - version: string (Snapshot version the page was chosen against)

Response:
  - 200: []Entry: Paginated list
  - 400: ValidationError: Invalid criteria
  - 503: ServiceUnavailable: Catalogue not loaded
*/
func (handler *Handler) listJournals(writer http.ResponseWriter, request *http.Request) {
	state, err := handler.viewState(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Browse(request.Context(), state)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, slice.Map(view.Page.Items, EntryOf), view.Meta)
}

/*
GET /api/v1/journals/stats.

Response:
  - 200: CategoryCounts: Total, Scopus, SINTA and Garuda counts
*/
func (handler *Handler) getStats(writer http.ResponseWriter, request *http.Request) {
	state, err := handler.viewState(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	counts, err := handler.service.Stats(request.Context(), state)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, counts)
}

/*
GET /api/v1/journals/subjects.

Response:
  - 200: SubjectSummary: Trending topics and top categories
*/
func (handler *Handler) getSubjects(writer http.ResponseWriter, request *http.Request) {
	state, err := handler.viewState(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.Subjects(request.Context(), state)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}

/*
GET /api/v1/journals/charts.

Response:
  - 200: Charts: Every chart series of the filtered catalogue
*/
func (handler *Handler) getCharts(writer http.ResponseWriter, request *http.Request) {
	state, err := handler.viewState(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	charts, err := handler.service.Charts(request.Context(), state)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, charts)
}

/*
GET /api/v1/journals/export.

Description: Downloads the filtered catalogue as the original JSON objects.

Response:
  - 200: attachment filtered_journals_data.json
*/
func (handler *Handler) exportJournals(writer http.ResponseWriter, request *http.Request) {
	state, err := handler.viewState(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	records, err := handler.service.ExportRecords(request.Context(), state)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Attachment(writer, request, ExportFilename, "application/json; charset=utf-8", func(w io.Writer) error {
		return Export(w, records)
	})
}

// # Single Journal

/*
GET /api/v1/journals/{key}.

Request:
  - key: string (Slug of the name, or an ISSN)
  - raw: bool (Return the original dataset object)

Response:
  - 200: Detail: Entry with outbound links
  - 404: NotFound: Unknown key
*/
func (handler *Handler) getJournal(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(request.Context(), requestutil.Param(request, FieldKey))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if convert.ToBool(requestutil.Query(request, "raw")) {
		respond.OK(writer, record.Raw())
		return
	}

	respond.OK(writer, DetailOf(record))
}

/*
GET /api/v1/journals/{key}/website.

Response:
  - 200: {"url": string}
  - 404: NotFound: "Website tidak tersedia untuk jurnal ini"
*/
func (handler *Handler) getWebsite(writer http.ResponseWriter, request *http.Request) {
	website, err := handler.service.Website(request.Context(), requestutil.Param(request, FieldKey))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"url": website})
}

/*
GET /api/v1/journals/{key}/profile.

Response:
  - 200: {"url": string}
  - 404: NotFound: "Informasi untuk mencari profil SINTA tidak tersedia"
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.Profile(request.Context(), requestutil.Param(request, FieldKey))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"url": profile})
}
