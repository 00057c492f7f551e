// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package api

import (
	"log/slog"
	"net/http"

	"github.com/opensinta/opensinta/internal/platform/constants"
	"github.com/opensinta/opensinta/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckCatalog fails until a catalogue snapshot has been published.
	CheckCatalog func() error

	// CheckCache pings the Redis client. Nil when no snapshot store is configured.
	CheckCache func() error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

// readiness handles GET /ready (Readiness probe).
//
// The catalogue gates readiness; a failing cache only marks it degraded.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 2)
	isSystemReady := true
	isDegraded := false

	if handler.dependencies.CheckCatalog != nil {
		result := handler.check("catalog", handler.dependencies.CheckCatalog)
		isSystemReady = result.IsOK
		results = append(results, result)
	}

	if handler.dependencies.CheckCache != nil {
		result := handler.check("redis", handler.dependencies.CheckCache)
		isDegraded = !result.IsOK
		results = append(results, result)
	}

	responseStatus := "ready"
	httpStatus := http.StatusOK

	switch {
	case !isSystemReady:
		responseStatus = "unavailable"
		httpStatus = http.StatusServiceUnavailable
	case isDegraded:
		responseStatus = "degraded"
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: responseStatus,
		constants.FieldChecks: results,
	}})
}

func (handler *healthHandler) check(name string, probe func() error) checkResult {
	result := checkResult{Name: name, IsOK: true}
	if err := probe(); err != nil {
		result.IsOK = false
		result.Error = err.Error()
		handler.logger.Error("readiness_check_failed", slog.String("dependency", name), slog.Any("error", err))
	}
	return result
}
