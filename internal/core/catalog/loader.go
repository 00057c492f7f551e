// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/opensinta/opensinta/internal/core/journal"
	"github.com/opensinta/opensinta/pkg/uuid"
)

// DefaultTimeout bounds a single dataset fetch.
const DefaultTimeout = 15 * time.Second

// # Loader

// Loader fetches the dataset and publishes it as an immutable snapshot.
//
// Readers call [Loader.Snapshot] without locking. A reload that starts while
// another is in flight cancels the older fetch; whichever completion is not
// the newest is discarded, so the published snapshot always comes from the
// most recently requested load.
type Loader struct {
	source     Source
	repository SnapshotRepository
	timeout    time.Duration
	logger     *slog.Logger
	now        func() time.Time

	snapshot atomic.Pointer[journal.Snapshot]

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	status     Status
}

// NewLoader creates a [Loader]. repository may be nil to disable the fallback.
func NewLoader(source Source, repository SnapshotRepository, timeout time.Duration, logger *slog.Logger) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{
		source:     source,
		repository: repository,
		timeout:    timeout,
		logger:     logger,
		now:        time.Now,
		status:     Status{State: StatePending, Source: source.Describe()},
	}
}

// Snapshot returns the published snapshot, or nil before the first success.
func (loader *Loader) Snapshot() *journal.Snapshot {
	return loader.snapshot.Load()
}

// Status returns a copy of the current load status.
func (loader *Loader) Status() Status {
	loader.mu.Lock()
	defer loader.mu.Unlock()
	return loader.status
}

// Version returns the published snapshot version, empty before the first success.
func (loader *Loader) Version() string {
	if snapshot := loader.snapshot.Load(); snapshot != nil {
		return snapshot.Version
	}
	return ""
}

// Ready reports whether any snapshot has been published.
func (loader *Loader) Ready() bool {
	return loader.snapshot.Load() != nil
}

/*
Reload fetches, decodes and publishes a new snapshot.

Description: Bumps the generation counter and cancels any in-flight fetch.
On failure the previous snapshot stays published and the status records the
error. When nothing has been published yet, the stored payload in the
repository is tried before giving up.

Parameters:
  - context: context.Context (Parent of the bounded fetch context)

Returns:
  - Status: Status after this attempt
  - error: Fetch/decode failure, or ErrSuperseded when a newer reload won
*/
func (loader *Loader) Reload(context context.Context) (Status, error) {
	fetchCtx, generation := loader.begin(context)
	started := loader.now()

	data, err := loader.source.Fetch(fetchCtx)
	var records []journal.Record
	if err == nil {
		records, err = journal.Decode(data)
	}

	var restored []journal.Record
	if err != nil && loader.snapshot.Load() == nil && loader.repository != nil && loader.current(generation) {
		restored = loader.restore(context)
	}

	loader.mu.Lock()
	if generation != loader.generation {
		status := loader.status
		loader.mu.Unlock()
		loader.logger.Debug("catalog_reload_superseded", slog.Uint64("generation", generation))
		return status, ErrSuperseded
	}
	loader.cancel()
	loader.cancel = nil

	if err != nil {
		status := loader.fail(err, restored)
		loader.mu.Unlock()
		if restored != nil {
			return status, nil
		}
		return status, err
	}

	snapshot := loader.publish(records, false)
	status := loader.status
	loader.mu.Unlock()

	loader.logger.Info("catalog_reloaded",
		slog.String("source", loader.source.Describe()),
		slog.String("version", snapshot.Version),
		slog.Int("records", len(records)),
		slog.Duration("duration", loader.now().Sub(started)),
	)

	if loader.repository != nil {
		stored := StoredSnapshot{Payload: data, Version: snapshot.Version, SavedAt: snapshot.LoadedAt}
		if saveErr := loader.repository.Save(context, stored); saveErr != nil {
			loader.logger.Warn("catalog_snapshot_save_failed", slog.Any("error", saveErr))
		}
	}

	return status, nil
}

// Stop cancels any in-flight fetch.
func (loader *Loader) Stop() {
	loader.mu.Lock()
	defer loader.mu.Unlock()

	loader.generation++
	if loader.cancel != nil {
		loader.cancel()
		loader.cancel = nil
	}
}

// current reports whether generation is still the newest requested load.
func (loader *Loader) current(generation uint64) bool {
	loader.mu.Lock()
	defer loader.mu.Unlock()
	return generation == loader.generation
}

// begin registers a new generation and returns its bounded fetch context.
func (loader *Loader) begin(parent context.Context) (context.Context, uint64) {
	loader.mu.Lock()
	defer loader.mu.Unlock()

	if loader.cancel != nil {
		loader.cancel()
	}

	loader.generation++
	fetchCtx, cancel := context.WithTimeout(parent, loader.timeout)
	loader.cancel = cancel
	loader.status.State = StateLoading

	return fetchCtx, loader.generation
}

// publish swaps in a new snapshot. Callers hold mu.
func (loader *Loader) publish(records []journal.Record, fallback bool) *journal.Snapshot {
	snapshot := &journal.Snapshot{
		Version:  uuid.New(),
		LoadedAt: loader.now(),
		Records:  records,
	}
	loader.snapshot.Store(snapshot)

	loader.status = Status{
		State:    StateReady,
		Source:   loader.source.Describe(),
		Version:  snapshot.Version,
		Records:  len(records),
		LoadedAt: snapshot.LoadedAt,
		Fallback: fallback,
	}
	return snapshot
}

// fail records a failed attempt, publishing restored records when present. Callers hold mu.
func (loader *Loader) fail(cause error, restored []journal.Record) Status {
	loader.logger.Error("catalog_reload_failed",
		slog.String("source", loader.source.Describe()),
		slog.Any("error", cause),
	)

	if restored != nil {
		loader.publish(restored, true)
		loader.status.Error = cause.Error()
		loader.logger.Warn("catalog_restored_from_snapshot", slog.Int("records", len(restored)))
		return loader.status
	}

	loader.status.State = StateFailed
	loader.status.Error = cause.Error()
	return loader.status
}

// restore decodes the stored payload; nil means nothing usable was stored.
func (loader *Loader) restore(context context.Context) []journal.Record {
	stored, err := loader.repository.Load(context)
	if err != nil {
		loader.logger.Warn("catalog_snapshot_restore_failed", slog.Any("error", err))
		return nil
	}

	records, err := journal.Decode(stored.Payload)
	if err != nil {
		loader.logger.Warn("catalog_snapshot_restore_failed",
			slog.String("version", stored.Version),
			slog.Any("error", fmt.Errorf("catalog: decode stored snapshot: %w", err)),
		)
		return nil
	}
	return records
}

// IsSuperseded reports whether err came from a reload replaced by a newer one.
func IsSuperseded(err error) bool {
	return errors.Is(err, ErrSuperseded)
}
