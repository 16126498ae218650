package daemon_test

import (
	"context"
	"net/http"
	"testing"

	"vcshell/internal/daemon"
	"vcshell/internal/logging"
	"vcshell/internal/testsupport"
)

func TestDaemonStartStop(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithPresetsDocument(testsupport.SamplePresets))
	d, err := daemon.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	t.Cleanup(d.Stop)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	status := d.Status()
	if !status.Running || status.Address == "" {
		t.Fatalf("expected daemon to report running with an address, got %#v", status)
	}

	resp, err := http.Get("http://" + status.Address + "/api/presets")
	if err != nil {
		t.Fatalf("GET presets: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	// Second start should fail
	if err := d.Start(ctx); err == nil {
		t.Fatal("expected second start to fail")
	}

	d.Stop()
	if d.Status().Running {
		t.Fatal("expected daemon to be stopped")
	}
}

func TestDaemonSingleInstance(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithPresetsDocument(testsupport.SamplePresets))
	first, err := daemon.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	t.Cleanup(first.Stop)
	second, err := daemon.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	t.Cleanup(second.Stop)

	ctx := context.Background()
	if err := first.Start(ctx); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	if err := second.Start(ctx); err == nil {
		t.Fatal("expected second daemon to be rejected by the lock")
	}
}

func TestNewRequiresConfigAndLogger(t *testing.T) {
	if _, err := daemon.New(nil, logging.NewNop()); err == nil {
		t.Fatal("expected error for nil config")
	}
	cfg := testsupport.NewConfig(t)
	if _, err := daemon.New(cfg, nil); err == nil {
		t.Fatal("expected error for nil logger")
	}
}
