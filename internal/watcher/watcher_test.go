package watcher_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporthub/sporthub/internal/pubsub"
	"github.com/sporthub/sporthub/internal/watcher"
)

func startWatcher(t *testing.T, path string) (*watcher.Watcher, <-chan pubsub.Event[string]) {
	t.Helper()
	w, err := watcher.New(watcher.Config{Path: path, DebounceDur: 50 * time.Millisecond})
	require.NoError(t, err, "failed to create watcher")

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	events := w.Broker().Subscribe(ctx)

	require.NoError(t, w.Start(), "failed to start watcher")
	return w, events
}

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: {}"), 0o644))

	w, events := startWatcher(t, path)
	defer func() { _ = w.Stop() }()

	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("# %d", i)), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case ev := <-events:
		assert.Equal(t, pubsub.ReloadedEvent, ev.Type)
		assert.Equal(t, path, ev.Payload)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected reload event but got timeout")
	}

	select {
	case <-events:
		t.Fatal("unexpected second reload event")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("ui: {}"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("initial"), 0o644))

	w, events := startWatcher(t, path)
	defer func() { _ = w.Stop() }()

	require.NoError(t, os.WriteFile(other, []byte("changed"), 0o644))

	select {
	case <-events:
		t.Fatal("should not notify for unrelated files")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_DetectsAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: {}"), 0o644))

	w, events := startWatcher(t, path)
	defer func() { _ = w.Stop() }()

	tmp := filepath.Join(dir, ".config.yaml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("chat: {}"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-events:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected reload event after rename")
	}
}

func TestWatcher_Stop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: {}"), 0o644))

	w, events := startWatcher(t, path)

	done := make(chan struct{})
	go func() {
		assert.NoError(t, w.Stop(), "Stop returned error")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop() timed out - possible deadlock")
	}

	_, ok := <-events
	require.False(t, ok, "subscriptions close with the watcher")
}

func TestWatcher_StartMissingDirectory(t *testing.T) {
	w, err := watcher.New(watcher.DefaultConfig(filepath.Join(t.TempDir(), "missing", "config.yaml")))
	require.NoError(t, err)
	require.Error(t, w.Start())
}

func TestDefaultConfig(t *testing.T) {
	cfg := watcher.DefaultConfig("/etc/sporthub/config.yaml")
	assert.Equal(t, "/etc/sporthub/config.yaml", cfg.Path)
	assert.Equal(t, 300*time.Millisecond, cfg.DebounceDur)
}
