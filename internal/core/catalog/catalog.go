// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

/*
Package catalog owns the lifecycle of the journal dataset.

It fetches the raw JSON array from a [Source], decodes it into an immutable
[journal.Snapshot], and publishes that snapshot to readers through an atomic
pointer. Everything mutable in the service lives here.

Components:

  - Source: where the dataset comes from (local file or HTTP).
  - SnapshotRepository: last known good payload, used when the source fails.
  - Loader: at most one fetch in flight; stale completions are discarded.
  - Watcher: reloads when the dataset file changes on disk.
*/
package catalog

import (
	"errors"
	"time"
)

// State is the lifecycle stage of the catalogue.
type State string

const (
	StatePending State = "pending"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// ErrSuperseded is returned by a reload that was replaced by a newer one.
var ErrSuperseded = errors.New("catalog: reload superseded by a newer request")

// Status describes the most recent load attempt and the published snapshot.
type Status struct {
	State    State     `json:"state"`
	Source   string    `json:"source"`
	Version  string    `json:"version,omitempty"`
	Records  int       `json:"records"`
	LoadedAt time.Time `json:"loaded_at,omitzero"`
	Fallback bool      `json:"fallback"`
	Error    string    `json:"error,omitempty"`
}
