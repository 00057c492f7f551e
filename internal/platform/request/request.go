// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
query decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/opensinta/opensinta/pkg/query"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query retrieves a trimmed query-string value from the request.
*/
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

/*
QueryList collects a list-valued query parameter.

Description: Accepts both repeated keys (?tier=S1&tier=S2) and a
comma-separated value (?tier=S1,S2). Blank entries are dropped.

Parameters:
  - request: *http.Request
  - name: string

Returns:
  - []string: Values in request order, nil when absent
*/
func QueryList(request *http.Request, name string) []string {
	return query.Values(request.URL.Query()[name])
}
