// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// # Dataset Sources

// Source yields the raw dataset payload, a JSON array of journal objects.
type Source interface {

	/*
		Fetch retrieves the full payload.

		Parameters:
		  - context: context.Context (Cancelled when a newer reload starts)

		Returns:
		  - []byte: Raw JSON
		  - error: I/O, transport or status failures
	*/
	Fetch(context context.Context) ([]byte, error)

	// Describe names the source for status reports and logs.
	Describe() string
}

// FileSource reads the dataset from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a [FileSource] for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the watched dataset path.
func (source *FileSource) Path() string { return source.path }

// Describe implements [Source].
func (source *FileSource) Describe() string { return "file://" + source.path }

// Fetch implements [Source].
func (source *FileSource) Fetch(context context.Context) ([]byte, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(source.path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", source.path, err)
	}
	return data, nil
}

// NewSource picks the dataset source: HTTP when baseURL is set, otherwise the
// local file at path.
func NewSource(baseURL, path string, timeout time.Duration) Source {
	if strings.TrimSpace(baseURL) != "" {
		return NewHTTPSource(baseURL, path, timeout)
	}
	return NewFileSource(path)
}
