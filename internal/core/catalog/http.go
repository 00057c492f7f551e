// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opensinta/opensinta/internal/platform/apperr"
	"github.com/opensinta/opensinta/internal/platform/respond"
)

// Controller is the part of [Loader] exposed over HTTP.
type Controller interface {
	Reloader
	Status() Status
}

// # Handler Implementation

// Handler exposes the catalogue lifecycle: status and manual reload.
type Handler struct {
	controller Controller
}

// NewHandler constructs a new catalog [Handler].
func NewHandler(controller Controller) *Handler {
	return &Handler{controller: controller}
}

// Routes returns a router with the catalog endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/status", handler.getStatus)
	router.Post("/reload", handler.reload)

	return router
}

/*
GET /api/v1/catalog/status.

Response:
  - 200: Status: State, source, version and record count
*/
func (handler *Handler) getStatus(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.controller.Status())
}

/*
POST /api/v1/catalog/reload.

Description: Refetches the dataset. A reload that fails leaves the current
snapshot published.

Response:
  - 200: Status: New snapshot published
  - 409: Conflict: A newer reload replaced this one
  - 502: BadGateway: The dataset could not be fetched or decoded
*/
func (handler *Handler) reload(writer http.ResponseWriter, request *http.Request) {
	status, err := handler.controller.Reload(request.Context())
	if err != nil {
		if IsSuperseded(err) {
			respond.Error(writer, request, apperr.Conflict("Reload superseded by a newer request"))
			return
		}
		respond.Error(writer, request, apperr.BadGateway("Dataset reload failed: "+status.Error, err))
		return
	}

	respond.OK(writer, status)
}
