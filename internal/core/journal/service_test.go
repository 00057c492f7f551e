// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package journal_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensinta/opensinta/internal/core/journal"
	"github.com/opensinta/opensinta/internal/platform/apperr"
)

type staticProvider struct {
	snapshot *journal.Snapshot
}

func (p staticProvider) Snapshot() *journal.Snapshot { return p.snapshot }

func newService(snapshot *journal.Snapshot) *journal.Service {
	return journal.NewService(staticProvider{snapshot: snapshot}, 6, slog.New(slog.DiscardHandler))
}

/*
TestService_ParseView covers defaults, normalization and error accumulation.
*/
func TestService_ParseView(t *testing.T) {
	service := newService(nil)

	state, err := service.ParseView(journal.ViewParams{})
	require.NoError(t, err)
	assert.Equal(t, journal.DefaultViewState(), state)

	state, err = service.ParseView(journal.ViewParams{
		Query:    "  teknologi ",
		Category: "garuda",
		Tiers:    []string{"s1", "S3"},
		Sort:     "name",
		Page:     2,
		Limit:    12,
		Version:  "0192f7a0-0000-7000-8000-000000000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "teknologi", state.Query)
	assert.Equal(t, journal.CategoryGaruda, state.Category)
	assert.Equal(t, []journal.Tier{journal.TierS1, journal.TierS3}, state.Tiers)
	assert.Equal(t, journal.SortName, state.Sort)
	assert.Equal(t, 2, state.Page)
	assert.Equal(t, 12, state.PageSize)

	_, err = service.ParseView(journal.ViewParams{
		Category: "doaj",
		Sort:     "random",
		Tiers:    []string{"S9"},
		Limit:    -1,
		Version:  "v1",
	})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	assert.Len(t, ae.Details, 5)
}

func TestService_NotLoaded(t *testing.T) {
	service := newService(nil)
	ctx := context.Background()

	_, err := service.Browse(ctx, journal.DefaultViewState())
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusServiceUnavailable, ae.HTTPStatus)

	_, err = service.Get(ctx, "anything")
	assert.True(t, apperr.IsAppError(err))
}

func TestService_Queries(t *testing.T) {
	service := newService(&journal.Snapshot{Version: "v1", Records: fixture()})
	ctx := context.Background()
	state := journal.DefaultViewState().WithCategory(journal.CategoryGaruda)

	counts, err := service.Stats(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Total)

	summary, err := service.Subjects(ctx, journal.DefaultViewState().WithSort(journal.SortName))
	require.NoError(t, err)
	require.NotEmpty(t, summary.Trending)
	assert.Equal(t, "AI", summary.Trending[0].Subject)

	charts, err := service.Charts(ctx, journal.DefaultViewState().WithSort(journal.SortName))
	require.NoError(t, err)
	assert.Equal(t, 4, charts.Counts.Total)

	exported, err := service.ExportRecords(ctx, state.WithPage(9))
	require.NoError(t, err)
	assert.Len(t, exported, 2)
}

func TestService_GetAndLinks(t *testing.T) {
	service := newService(&journal.Snapshot{Version: "v1", Records: fixture()})
	ctx := context.Background()

	record, err := service.Get(ctx, " Jurnal-Teknologi-Informasi ")
	require.NoError(t, err)
	assert.Equal(t, "Jurnal Teknologi Informasi", record.Name.Value)

	_, err = service.Get(ctx, "unknown-journal")
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)

	_, err = service.Get(ctx, "")
	assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)

	_, err = service.Website(ctx, "agricultural-review")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, journal.ErrNoWebsite.Error(), ae.Message)
	assert.ErrorIs(t, err, journal.ErrNoWebsite)

	profile, err := service.Profile(ctx, "agricultural-review")
	require.NoError(t, err)
	assert.Equal(t, "https://sinta.kemdikbud.go.id/journals?q=1410-1111", profile)
}
