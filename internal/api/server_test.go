// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensinta/opensinta/internal/api"
	"github.com/opensinta/opensinta/internal/core/catalog"
	"github.com/opensinta/opensinta/internal/core/journal"
	"github.com/opensinta/opensinta/internal/platform/config"
)

const dataset = `[
	{"Nama Jurnal": "Jurnal Teknologi Informasi", "Akreditasi Sinta": "S2", "Scopus Indexed": "Yes", "Impact": "2.5"},
	{"Nama Jurnal": "Agricultural Review", "Akreditasi Sinta": "S4", "Impact": "0.8"}
]`

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// newTestServer wires the real stack over a temporary dataset file.
func newTestServer(t *testing.T) (http.Handler, *catalog.Loader) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sinta_journals.json")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{ServerPort: "0", Environment: "development", PageSize: 6}
	loader := catalog.NewLoader(catalog.NewFileSource(path), nil, time.Second, logger)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCatalog: func() error {
			if !loader.Ready() {
				return errors.New("catalogue not loaded")
			}
			return nil
		},
	}, logger)

	server := api.NewServer(ctx, cfg, logger, loader, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Journal:   journal.NewHandler(journal.NewService(loader, cfg.PageSize, logger)),
		Catalog:   catalog.NewHandler(loader),
	})
	return server.Handler(), loader
}

func serve(handler http.Handler, method, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))
	return recorder
}

/*
TestServer_Lifecycle covers readiness before and after the first load.
*/
func TestServer_Lifecycle(t *testing.T) {
	handler, loader := newTestServer(t)

	assert.Equal(t, http.StatusOK, serve(handler, http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(handler, http.MethodGet, "/ready").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(handler, http.MethodGet, "/api/v1/journals").Code)

	reload := serve(handler, http.MethodPost, "/api/v1/catalog/reload")
	require.Equal(t, http.StatusOK, reload.Code, reload.Body.String())

	assert.Equal(t, http.StatusOK, serve(handler, http.MethodGet, "/ready").Code)

	list := serve(handler, http.MethodGet, "/api/v1/journals?category=scopus")
	require.Equal(t, http.StatusOK, list.Code)
	assert.Equal(t, loader.Version(), list.Header().Get("X-Catalog-Version"))
	assert.NotEmpty(t, list.Header().Get("X-Request-ID"))

	var body envelope
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &body))
	var entries []journal.Entry
	require.NoError(t, json.Unmarshal(body.Data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Jurnal Teknologi Informasi", entries[0].Name)
}

func TestServer_Readiness(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name   string
		deps   api.HealthDependencies
		code   int
		status string
	}{
		{
			name:   "all healthy",
			deps:   api.HealthDependencies{CheckCatalog: func() error { return nil }, CheckCache: func() error { return nil }},
			code:   http.StatusOK,
			status: "ready",
		},
		{
			name:   "cache down",
			deps:   api.HealthDependencies{CheckCatalog: func() error { return nil }, CheckCache: func() error { return errors.New("dial tcp: refused") }},
			code:   http.StatusOK,
			status: "degraded",
		},
		{
			name:   "catalogue missing",
			deps:   api.HealthDependencies{CheckCatalog: func() error { return errors.New("not loaded") }},
			code:   http.StatusServiceUnavailable,
			status: "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, readiness := api.NewHealthHandlers(tt.deps, logger)
			recorder := serve(readiness, http.MethodGet, "/ready")
			assert.Equal(t, tt.code, recorder.Code)

			var body struct {
				Data struct {
					Status string `json:"status"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Data.Status)
		})
	}
}
