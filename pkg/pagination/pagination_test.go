// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensinta/opensinta/pkg/pagination"
)

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

/*
TestPaginate_ThirteenBySix covers the catalogue's default page size.
*/
func TestPaginate_ThirteenBySix(t *testing.T) {
	items := sequence(13)

	first := pagination.Paginate(items, 6, 1)
	assert.Len(t, first.Items, 6)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 0, first.StartIndex)
	assert.Equal(t, 6, first.EndIndex)

	clamped := pagination.Paginate(items, 6, 5)
	assert.Equal(t, 3, clamped.Page)
	assert.Equal(t, []int{12}, clamped.Items)
	assert.Equal(t, 18, clamped.EndIndex)
	assert.Equal(t, 13, clamped.DisplayEnd())
}

func TestPaginate_Empty(t *testing.T) {
	page := pagination.Paginate([]int{}, 6, 3)

	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.DisplayEnd())
}

func TestPaginate_NonPositiveInputs(t *testing.T) {
	page := pagination.Paginate(sequence(10), 0, -4)

	assert.Equal(t, pagination.DefaultLimit, page.PageSize)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, pagination.DefaultLimit)
}

/*
TestPaginate_Reconstructs verifies that every page, in order, rebuilds the
input exactly once and no page is ever out of range.
*/
func TestPaginate_Reconstructs(t *testing.T) {
	for total := 0; total <= 25; total++ {
		for size := 1; size <= 8; size++ {
			items := sequence(total)
			first := pagination.Paginate(items, size, 1)

			var rebuilt []int
			for n := 1; n <= first.TotalPages; n++ {
				page := pagination.Paginate(items, size, n)
				require.GreaterOrEqual(t, page.Page, 1)
				require.LessOrEqual(t, page.Page, page.TotalPages)
				require.LessOrEqual(t, page.StartIndex, page.EndIndex)
				rebuilt = append(rebuilt, page.Items...)
			}

			if total == 0 {
				assert.Empty(t, rebuilt)
				continue
			}
			assert.Equal(t, items, rebuilt, "total=%d size=%d", total, size)
		}
	}
}

func TestPaginate_DoesNotAlias(t *testing.T) {
	items := sequence(4)
	page := pagination.Paginate(items, 2, 1)
	page.Items[0] = 100
	assert.Equal(t, 0, items[0])
}

func TestWindow(t *testing.T) {
	g := pagination.Gap
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"no_pages", 1, 0, []int{}},
		{"all_when_seven", 4, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"start", 1, 10, []int{1, 2, g, 9, 10}},
		{"middle", 5, 10, []int{1, 2, g, 4, 5, 6, g, 9, 10}},
		{"adjacent_to_head", 3, 10, []int{1, 2, 3, 4, g, 9, 10}},
		{"end", 10, 10, []int{1, 2, g, 9, 10}},
		{"clamped_current", 42, 10, []int{1, 2, g, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.Window(tt.current, tt.total))
		})
	}
}

func TestSlidingWindow(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, pagination.SlidingWindow(2, 3, 5))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, pagination.SlidingWindow(2, 10, 5))
	assert.Equal(t, []int{3, 4, 5, 6, 7}, pagination.SlidingWindow(5, 10, 5))
	assert.Equal(t, []int{6, 7, 8, 9, 10}, pagination.SlidingWindow(10, 10, 5))
	assert.Empty(t, pagination.SlidingWindow(1, 0, 5))
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		page  int
		limit int
	}{
		{"defaults", "", 1, 6},
		{"explicit", "?page=3&limit=20", 3, 20},
		{"negative_page", "?page=-2", 1, 6},
		{"excessive_limit", "?limit=1000", 1, 6},
		{"garbage", "?page=x&limit=y", 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/journals"+tt.query, nil)
			params := pagination.FromRequest(request, 6)
			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
		})
	}
}

func TestMetaOf(t *testing.T) {
	meta := pagination.MetaOf(pagination.Paginate(sequence(13), 6, 2))

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 6, meta.StartIndex)
	assert.Equal(t, 12, meta.EndIndex)
	assert.Equal(t, []int{1, 2, 3}, meta.Window)
	assert.Equal(t, []int{1, 2, 3}, meta.Sliding)

	wide := pagination.MetaOf(pagination.Paginate(sequence(60), 6, 5))
	assert.Equal(t, []int{1, 2, pagination.Gap, 4, 5, 6, pagination.Gap, 9, 10}, wide.Window)
	assert.Equal(t, []int{3, 4, 5, 6, 7}, wide.Sliding)
}
