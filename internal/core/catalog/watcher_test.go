// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/opensinta/opensinta/internal/core/catalog"
)

type countingReloader struct {
	calls atomic.Int32
}

func (r *countingReloader) Reload(context context.Context) (catalog.Status, error) {
	r.calls.Add(1)
	return catalog.Status{State: catalog.StateReady}, nil
}

/*
TestWatcher_DebouncesWrites verifies a burst of writes triggers a single reload.
*/
func TestWatcher_DebouncesWrites(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "sinta_journals.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

	reloader := &countingReloader{}
	watcher, err := catalog.NewWatcher(path, 100*time.Millisecond, reloader, discard)
	require.NoError(t, err)
	require.NoError(t, watcher.Start(context.Background()))
	require.NoError(t, watcher.Start(context.Background()))

	for range 5 {
		require.NoError(t, os.WriteFile(path, []byte(dataset), 0o600))
	}

	require.Eventually(t, func() bool { return reloader.calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), reloader.calls.Load())

	watcher.Stop()
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "sinta_journals.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

	reloader := &countingReloader{}
	watcher, err := catalog.NewWatcher(path, 50*time.Millisecond, reloader, discard)
	require.NoError(t, err)
	require.NoError(t, watcher.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("draft"), 0o600))
	time.Sleep(250 * time.Millisecond)
	assert.Zero(t, reloader.calls.Load())

	watcher.Stop()
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	watcher, err := catalog.NewWatcher(filepath.Join(t.TempDir(), "x.json"), 0, &countingReloader{}, discard)
	require.NoError(t, err)
	watcher.Stop()
}
