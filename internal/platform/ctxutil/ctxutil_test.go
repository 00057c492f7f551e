// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opensinta/opensinta/internal/platform/ctxutil"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_CatalogVersion verifies that the snapshot version travels with the request.
*/
func TestContext_CatalogVersion(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetCatalogVersion(ctx))

	ctx = ctxutil.WithCatalogVersion(ctx, "0192f7a0-0000-7000-8000-000000000000")
	assert.Equal(t, "0192f7a0-0000-7000-8000-000000000000", ctxutil.GetCatalogVersion(ctx))
}
