package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForSignal(t *testing.T, w *Watcher) {
	t.Helper()
	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change signal")
	}
}

func TestWatcher_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user_data.db")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0o644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("changed"), 0o644))

	waitForSignal(t, w)
}

func TestWatcher_SignalsOnSidecarWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user_data.db")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0o644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path+"-wal", []byte("wal"), 0o644))

	waitForSignal(t, w)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user_data.db")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0o644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case _, ok := <-w.Changes():
		if ok {
			t.Fatal("unexpected signal for unrelated file")
		}
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_CloseClosesChannel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user_data.db")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0o644))

	w, err := New(path)
	require.NoError(t, err)

	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Changes():
		assert.False(t, ok, "channel should be closed after Close")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after Close")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "user_data.db"))

	assert.Error(t, err)
}

func TestRelevant(t *testing.T) {
	w := &Watcher{base: "user_data.db"}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to db", fsnotify.Event{Name: "/x/user_data.db", Op: fsnotify.Write}, true},
		{"create db", fsnotify.Event{Name: "/x/user_data.db", Op: fsnotify.Create}, true},
		{"wal sidecar", fsnotify.Event{Name: "/x/user_data.db-wal", Op: fsnotify.Write}, true},
		{"shm sidecar", fsnotify.Event{Name: "/x/user_data.db-shm", Op: fsnotify.Write}, true},
		{"chmod only", fsnotify.Event{Name: "/x/user_data.db", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "/x/notes.txt", Op: fsnotify.Write}, false},
		{"similar prefix", fsnotify.Event{Name: "/x/user_data.db.bak", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}
