package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dockbar.toml")
	if err := os.WriteFile(path, []byte(`theme = "midnight"`), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Give the watcher a moment to register before rewriting.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`theme = "paper"`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs():
		if cfg.Theme != "paper" {
			t.Errorf("reloaded theme = %q, want paper", cfg.Theme)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within deadline")
	}
}

func TestWatchSkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dockbar.toml")
	if err := os.WriteFile(path, []byte(`theme = "midnight"`), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	time.Sleep(50 * time.Millisecond)

	// A config that fails validation must not be delivered; the following
	// valid write must be.
	if err := os.WriteFile(path, []byte(`theme = "no-such-theme"`), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(400 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`theme = "contrast"`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs():
		if cfg.Theme != "contrast" {
			t.Errorf("delivered theme = %q, want contrast", cfg.Theme)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within deadline")
	}
}
