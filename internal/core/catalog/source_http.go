// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPSource fetches the dataset by relative path from a static host.
type HTTPSource struct {
	client *resty.Client
	path   string
}

// NewHTTPSource creates an [HTTPSource] rooted at baseURL.
//
// A timeout of zero leaves the client without a deadline; callers then rely
// on the fetch context.
func NewHTTPSource(baseURL, path string, timeout time.Duration) *HTTPSource {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &HTTPSource{
		client: client,
		path:   "/" + strings.TrimLeft(path, "/"),
	}
}

// Describe implements [Source].
func (source *HTTPSource) Describe() string {
	return source.client.BaseURL + source.path
}

// Fetch implements [Source]. Any non-2xx response is an error.
func (source *HTTPSource) Fetch(context context.Context) ([]byte, error) {
	response, err := source.client.R().
		SetContext(context).
		Get(source.path)
	if err != nil {
		return nil, fmt.Errorf("catalog: fetch %s: %w", source.Describe(), err)
	}

	if response.IsError() {
		return nil, fmt.Errorf("catalog: fetch %s: HTTP error! status: %d", source.Describe(), response.StatusCode())
	}

	return response.Body(), nil
}
