package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviso.toml")
	if err := os.WriteFile(path, []byte("[history]\nmax_entries = 10\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	reloads := make(chan Config, 4)
	w, err := NewWatcher(path, func(cfg Config, err error) {
		if err != nil {
			t.Errorf("reload error: %v", err)
			return
		}
		reloads <- cfg
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[history]\nmax_entries = 42\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case cfg := <-reloads:
		if cfg.History.MaxEntries != 42 {
			t.Errorf("reloaded max entries = %d, want 42", cfg.History.MaxEntries)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reviso.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	reloads := make(chan Config, 4)
	w, err := NewWatcher(path, func(cfg Config, err error) {
		reloads <- cfg
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("writing sibling: %v", err)
	}

	select {
	case <-reloads:
		t.Error("sibling file change should not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherReloadDeliversLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviso.toml")
	if err := os.WriteFile(path, []byte("[history]\nmax_entries = 1\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	errs := make(chan error, 4)
	w, err := NewWatcher(path, func(cfg Config, err error) {
		if err != nil {
			errs <- err
		}
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[history\nbroken"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case err := <-errs:
		if err == nil {
			t.Error("expected a parse error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviso.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}

func TestWatcherPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviso.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if w.Path() != path {
		t.Errorf("Path() = %q, want %q", w.Path(), path)
	}
}
