package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperr "github.com/driftpro/logoexport/pkg/errors"
)

// touchUntil rewrites path every 50ms until done is closed or the deadline
// passes. The watcher registers asynchronously, so a single write could be
// missed.
func touchUntil(t *testing.T, path string, done <-chan struct{}) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		if err := os.WriteFile(path, []byte("brand = \"Acme\"\n"), 0o644); err != nil {
			t.Errorf("write %s: %v", path, err)
			return
		}
		select {
		case <-done:
			return
		case <-deadline:
			t.Error("watcher never fired")
			return
		case <-tick.C:
		}
	}
}

func TestWatchFileCallsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logos.toml")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{})
	result := make(chan error, 1)
	go func() {
		first := true
		result <- watchFile(ctx, path, 20*time.Millisecond, func() error {
			if first {
				first = false
				close(fired)
			}
			return nil
		})
	}()

	touchUntil(t, path, fired)
	cancel()

	select {
	case err := <-result:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("watchFile = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchFile did not return after cancel")
	}
}

func TestWatchFileReturnsCallbackError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logos.yaml")
	boom := errors.New("boom")

	done := make(chan struct{})
	result := make(chan error, 1)
	go func() {
		result <- watchFile(context.Background(), path, 20*time.Millisecond, func() error { return boom })
		close(done)
	}()

	touchUntil(t, path, done)
	if err := <-result; !errors.Is(err, boom) {
		t.Errorf("watchFile = %v, want %v", err, boom)
	}
}

func TestWatchFileIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()

	calls := 0
	result := make(chan error, 1)
	go func() {
		result <- watchFile(ctx, filepath.Join(dir, "logos.toml"), 10*time.Millisecond, func() error {
			calls++
			return nil
		})
	}()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(40 * time.Millisecond)
	}

	if err := <-result; !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("watchFile = %v, want deadline exceeded", err)
	}
	if calls != 0 {
		t.Errorf("onChange called %d times for unrelated files", calls)
	}
}

func TestWatchFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "logos.toml")
	err := watchFile(context.Background(), path, time.Millisecond, func() error { return nil })
	if !apperr.Is(err, apperr.ErrCodeFilesystem) {
		t.Errorf("watchFile = %v, want FILESYSTEM_ERROR", err)
	}
}
