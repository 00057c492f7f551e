// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package middleware_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensinta/opensinta/internal/platform/ctxutil"
	"github.com/opensinta/opensinta/internal/platform/middleware"
)

type fixedVersion string

func (v fixedVersion) Version() string { return string(v) }

type corsConfig struct {
	development bool
	origins     []string
}

func (c corsConfig) IsDevelopment() bool      { return c.development }
func (c corsConfig) AllowedOrigins() []string { return c.origins }

func serve(handler http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestRequestID verifies generation and propagation of the correlation header.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetRequestID(r.Context())
	}))

	generated := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, generated.Header().Get("X-Request-ID"))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "client-id")
	serve(handler, request)
	assert.Equal(t, "client-id", seen)
}

func TestCatalogVersion(t *testing.T) {
	var seen string
	handler := middleware.CatalogVersion(fixedVersion("v7"))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetCatalogVersion(r.Context())
	}))

	recorder := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "v7", seen)
	assert.Equal(t, "v7", recorder.Header().Get("X-Catalog-Version"))

	empty := middleware.CatalogVersion(fixedVersion(""))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	assert.Empty(t, serve(empty, httptest.NewRequest(http.MethodGet, "/", nil)).Header().Get("X-Catalog-Version"))
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name    string
		config  corsConfig
		origin  string
		allowed bool
	}{
		{"development_any", corsConfig{development: true}, "http://localhost:5173", true},
		{"production_domain", corsConfig{}, "https://app.opensinta.id", true},
		{"production_extra", corsConfig{origins: []string{"https://mirror.example"}}, "https://mirror.example", true},
		{"production_other", corsConfig{}, "https://evil.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Origin", tt.origin)

			recorder := serve(middleware.CORS(tt.config)(next), request)
			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}

	preflight := httptest.NewRequest(http.MethodOptions, "/", nil)
	preflight.Header.Set("Origin", "https://app.opensinta.id")
	assert.Equal(t, http.StatusNoContent, serve(middleware.CORS(corsConfig{})(next), preflight).Code)
}

func TestPanicRecovery(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	handler := middleware.PanicRecovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_SERVER_ERROR")
}

/*
TestRateLimit exhausts the burst of a single client address.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var limited *httptest.ResponseRecorder
	for range 1000 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Real-IP", "203.0.113.7")
		recorder := serve(handler, request)
		if recorder.Code == http.StatusTooManyRequests {
			limited = recorder
			break
		}
	}

	require.NotNil(t, limited)
	assert.Equal(t, "1", limited.Header().Get("Retry-After"))
	assert.Contains(t, limited.Body.String(), "RATE_LIMITED")
}

func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.1:4000"
	assert.Equal(t, "192.0.2.1", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "198.51.100.2, 10.0.0.1")
	assert.Equal(t, "198.51.100.2", middleware.RealIP(request))
}
