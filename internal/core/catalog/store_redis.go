// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/opensinta/opensinta/internal/platform/apperr"
	"github.com/opensinta/opensinta/internal/platform/constants"
)

const (
	fieldPayload = "payload"
	fieldVersion = "version"
	fieldSavedAt = "saved_at"
)

// RedisSnapshotRepository implements [SnapshotRepository] as a Redis hash.
type RedisSnapshotRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotRepository creates a Redis-backed [SnapshotRepository].
// A ttl of zero keeps the snapshot until it is overwritten.
func NewSnapshotRepository(client *redis.Client, ttl time.Duration) *RedisSnapshotRepository {
	return &RedisSnapshotRepository{client: client, ttl: ttl}
}

/*
Save stores the payload with its version and timestamp.

Description: The hash write and its expiry run in one MULTI/EXEC block.

Parameters:
  - context: context.Context
  - snapshot: StoredSnapshot

Returns:
  - error: Execution errors
*/
func (repository *RedisSnapshotRepository) Save(context context.Context, snapshot StoredSnapshot) error {
	key := constants.RedisKeySnapshot

	_, err := repository.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.HSet(context, key,
			fieldPayload, snapshot.Payload,
			fieldVersion, snapshot.Version,
			fieldSavedAt, snapshot.SavedAt.UTC().Format(time.RFC3339Nano),
		)
		if repository.ttl > 0 {
			pipe.Expire(context, key, repository.ttl)
		} else {
			pipe.Persist(context, key)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_snapshot_save_failed: %w", err)
	}

	return nil
}

/*
Load retrieves the stored payload.

Description: Returns apperr.NotFound if the key is absent or expired.

Parameters:
  - context: context.Context

Returns:
  - StoredSnapshot: Payload and metadata
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSnapshotRepository) Load(context context.Context) (StoredSnapshot, error) {
	values, err := repository.client.HGetAll(context, constants.RedisKeySnapshot).Result()
	if err != nil {
		return StoredSnapshot{}, fmt.Errorf("redis_snapshot_load_failed: %w", err)
	}

	payload, ok := values[fieldPayload]
	if !ok {
		return StoredSnapshot{}, apperr.NotFound("Catalog snapshot")
	}

	savedAt, _ := time.Parse(time.RFC3339Nano, values[fieldSavedAt])

	return StoredSnapshot{
		Payload: []byte(payload),
		Version: values[fieldVersion],
		SavedAt: savedAt,
	}, nil
}
