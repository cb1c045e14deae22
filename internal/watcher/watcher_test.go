package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noema/internal/notes"
)

func TestNewRejectsNonDirectory(t *testing.T) {
	tmp := t.TempDir()

	_, err := New(filepath.Join(tmp, "missing"), func([]notes.Note, error) {})
	assert.ErrorIs(t, err, notes.ErrNotADirectory)

	file := filepath.Join(tmp, "note.md")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = New(file, func([]notes.Note, error) {})
	assert.ErrorIs(t, err, notes.ErrNotADirectory)
}

func TestWatcherRescansOnChange(t *testing.T) {
	tmp := t.TempDir()

	scans := make(chan []notes.Note, 4)
	w, err := New(tmp, func(ns []notes.Note, err error) {
		if err == nil {
			scans <- ns
		}
	}, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "note.md"), []byte("Hello."), 0o644))

	select {
	case ns := <-scans:
		require.Len(t, ns, 1)
		assert.Equal(t, "Hello.", ns[0].Body)
	case <-time.After(3 * time.Second):
		t.Fatal("no re-scan delivered after file change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancellation")
	}
}

func TestWatcherCollapsesBursts(t *testing.T) {
	tmp := t.TempDir()

	scans := make(chan int, 16)
	w, err := New(tmp, func(ns []notes.Note, err error) {
		if err == nil {
			scans <- len(ns)
		}
	}, WithDebounce(150*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, "burst.md"), []byte("v"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case n := <-scans:
		assert.Equal(t, 1, n)
	case <-time.After(3 * time.Second):
		t.Fatal("no re-scan delivered after burst")
	}

	// The burst fits inside one debounce window, so only one scan fires.
	select {
	case <-scans:
		t.Fatal("burst produced more than one re-scan")
	case <-time.After(300 * time.Millisecond):
	}
}
