package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, base, bind string) string {
	t.Helper()
	path := filepath.Join(base, "config.toml")
	content := fmt.Sprintf("[presets]\nfile = %q\n\n[paths]\nlog_dir = %q\napi_bind = %q\n",
		filepath.Join(base, "presets.yaml"),
		filepath.Join(base, "logs"),
		bind,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRunStopsOnCancel(t *testing.T) {
	base := t.TempDir()
	path := writeConfig(t, base, "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, path) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
	if _, err := os.Stat(filepath.Join(base, "logs", "vcshelld.lock")); err != nil {
		t.Fatalf("expected lock file: %v", err)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	base := t.TempDir()
	path := writeConfig(t, base, "not-a-bind-address")

	err := run(context.Background(), path)
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected load config error, got %v", err)
	}
}
