// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package catalog_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/opensinta/opensinta/internal/core/catalog"
	"github.com/opensinta/opensinta/internal/platform/apperr"
)

const dataset = `[
	{"Nama Jurnal": "Jurnal Teknologi Informasi", "Akreditasi Sinta": "S2", "Impact": "2.5"},
	{"Nama Jurnal": "Agricultural Review", "Akreditasi Sinta": "S4", "Impact": "0.8"}
]`

var discard = slog.New(slog.DiscardHandler)

// stubSource returns whatever payload or error it currently holds.
type stubSource struct {
	mu   sync.Mutex
	data []byte
	err  error
}

func (s *stubSource) set(data string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data, s.err = []byte(data), err
}

func (s *stubSource) Fetch(context context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func (s *stubSource) Describe() string { return "stub://dataset" }

// gatedSource blocks its first fetch until the context ends.
type gatedSource struct {
	started chan struct{}
	once    sync.Once
	calls   int
	mu      sync.Mutex
}

func newGatedSource() *gatedSource {
	return &gatedSource{started: make(chan struct{})}
}

func (s *gatedSource) Fetch(context context.Context) ([]byte, error) {
	s.mu.Lock()
	s.calls++
	first := s.calls == 1
	s.mu.Unlock()

	if first {
		s.once.Do(func() { close(s.started) })
		<-context.Done()
		return nil, context.Err()
	}
	return []byte(dataset), nil
}

func (s *gatedSource) Describe() string { return "gated://dataset" }

// memoryRepository is an in-process [catalog.SnapshotRepository].
type memoryRepository struct {
	mu      sync.Mutex
	stored  *catalog.StoredSnapshot
	saves   int
	loadErr error
}

func (r *memoryRepository) Save(context context.Context, snapshot catalog.StoredSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored = &snapshot
	r.saves++
	return nil
}

func (r *memoryRepository) Load(context context.Context) (catalog.StoredSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return catalog.StoredSnapshot{}, r.loadErr
	}
	if r.stored == nil {
		return catalog.StoredSnapshot{}, apperr.NotFound("Catalog snapshot")
	}
	return *r.stored, nil
}

var errUnreachable = errors.New("dataset host unreachable")
