// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package catalog

import (
	"context"
	"time"
)

// # Snapshot Data Access

// StoredSnapshot is a previously accepted dataset payload.
type StoredSnapshot struct {
	Payload []byte
	Version string
	SavedAt time.Time
}

// SnapshotRepository persists the last dataset payload that decoded cleanly.
type SnapshotRepository interface {

	/*
		Save replaces the stored payload.

		Parameters:
		  - context: context.Context
		  - snapshot: StoredSnapshot

		Returns:
		  - error: Persistence failures
	*/
	Save(context context.Context, snapshot StoredSnapshot) error

	/*
		Load returns the stored payload.

		Returns:
		  - StoredSnapshot: Payload and metadata
		  - error: apperr.NotFound when nothing is stored, or connectivity errors
	*/
	Load(context context.Context) (StoredSnapshot, error)
}
