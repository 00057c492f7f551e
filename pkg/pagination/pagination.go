// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

// Package pagination provides page slicing, page-number windows and the
// shared request/response types for list endpoints.
//
// # Overview
//
// Pages are 1-indexed. Out-of-range page numbers never fail: they clamp
// into [1, TotalPages]. Slicing always copies, so a page never aliases the
// sequence it was cut from.
package pagination

import (
	"net/http"

	"github.com/opensinta/opensinta/pkg/convert"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 6
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1

	// windowThreshold is the page count up to which every page is listed.
	windowThreshold = 7
	// SlidingWidth is the number of buttons in the compact table pager.
	SlidingWidth = 5
	// Gap marks an elided run of page numbers in a [Window].
	Gap = 0
)

// # Request Parameters

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid or negative pages fall back to [DefaultPage]; invalid or excessive
// limits fall back to defaultLimit (or [DefaultLimit] when it is not positive).
func FromRequest(r *http.Request, defaultLimit int) Params {
	if defaultLimit < 1 || defaultLimit > MaxLimit {
		defaultLimit = DefaultLimit
	}

	query := r.URL.Query()
	page := convert.ToIntD(query.Get("page"), DefaultPage)
	limit := convert.ToIntD(query.Get("limit"), defaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = defaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// # Slicing

// Page is one slice of a longer sequence plus its position metadata.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	// StartIndex is the 0-based inclusive index of the first item.
	StartIndex int `json:"start_index"`
	// EndIndex is StartIndex+PageSize, exclusive; it may exceed Total.
	EndIndex int `json:"end_index"`
}

// DisplayEnd caps EndIndex at Total for "showing a-b of n" labels.
func (p Page[T]) DisplayEnd() int {
	return min(p.EndIndex, p.Total)
}

/*
Paginate cuts one page out of items.

Description: TotalPages is ceil(len(items)/pageSize), 0 for an empty input.
A page number outside [1, TotalPages] is clamped instead of rejected. A
pageSize below 1 is replaced by [DefaultLimit].

Parameters:
  - items: []T (Already filtered and sorted)
  - pageSize: int
  - page: int (1-indexed, clamped)

Returns:
  - Page[T]: Copied items plus metadata
*/
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultLimit
	}

	total := len(items)
	totalPages := TotalPages(total, pageSize)
	page = Clamp(page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize

	lo := min(start, total)
	hi := min(end, total)
	pageItems := make([]T, hi-lo)
	copy(pageItems, items[lo:hi])

	return Page[T]{
		Items:      pageItems,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		StartIndex: start,
		EndIndex:   end,
	}
}

// TotalPages returns ceil(total/pageSize), or 0 when either is not positive.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Clamp forces page into [1, totalPages]; with no pages it returns 1.
func Clamp(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// # Page Windows

// Window lists the page buttons to render around current.
//
// Up to seven pages are all shown. Beyond that the first two, the last two
// and current±1 are kept, with [Gap] inserted wherever consecutive entries
// are not adjacent numbers.
func Window(current, totalPages int) []int {
	if totalPages < 1 {
		return []int{}
	}
	current = Clamp(current, totalPages)

	window := make([]int, 0, windowThreshold+2)
	previous := 0
	for page := 1; page <= totalPages; page++ {
		visible := totalPages <= windowThreshold ||
			page <= 2 || page >= totalPages-1 ||
			abs(page-current) <= 1
		if !visible {
			continue
		}
		if previous != 0 && page != previous+1 {
			window = append(window, Gap)
		}
		window = append(window, page)
		previous = page
	}
	return window
}

// SlidingWindow returns width consecutive page numbers centred on current,
// shifted to stay inside [1, totalPages].
func SlidingWindow(current, totalPages, width int) []int {
	if totalPages < 1 || width < 1 {
		return []int{}
	}
	current = Clamp(current, totalPages)
	width = min(width, totalPages)

	first := current - width/2
	first = max(first, 1)
	first = min(first, totalPages-width+1)

	window := make([]int, width)
	for i := range window {
		window[i] = first + i
	}
	return window
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// # Response Metadata

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	StartIndex int   `json:"start_index"`
	EndIndex   int   `json:"end_index"`
	Window     []int `json:"window"`
	Sliding    []int `json:"sliding"`
}

// MetaOf builds response metadata from an already cut page.
func MetaOf[T any](p Page[T]) Meta {
	return Meta{
		Page:       p.Page,
		Limit:      p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		StartIndex: p.StartIndex,
		EndIndex:   p.EndIndex,
		Window:     Window(p.Page, p.TotalPages),
		Sliding:    SlidingWindow(p.Page, p.TotalPages, SlidingWidth),
	}
}
