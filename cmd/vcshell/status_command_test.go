package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"vcshell/internal/api"
	"vcshell/internal/deps"
	"vcshell/internal/testsupport"
)

func TestStatusCommand(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithPresetsDocument(testsupport.SamplePresets))
	if err := env.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "== Dependencies ==")
	requireContains(t, out, "Compressor:")
	requireContains(t, out, "[OK] "+env.cfg.Presets.File+" (2 presets)")
	requireContains(t, out, "Ready: yes")
}

func TestStatusCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"status", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("status --json: %v", err)
	}
	var status api.StatusResponse
	if err := json.Unmarshal([]byte(out), &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Ready {
		t.Fatal("expected not ready without a preset document")
	}
	if status.Compressor != "video-compress" {
		t.Fatalf("unexpected compressor %q", status.Compressor)
	}
}

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Compressor", statusError, "Not found", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Compressor:", "[ERROR] Not found")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Compressor", statusOK, "Ready", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestDependencyLines(t *testing.T) {
	statuses := []deps.Status{
		{Name: "Compressor", Available: false, Detail: "not found"},
		{Name: "FFmpeg", Available: false, Optional: true, Detail: "not found"},
		{Name: "Other", Available: true, Command: "/usr/bin/other"},
	}
	lines := dependencyLines(statuses, false)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "[ERROR] not found") {
		t.Fatalf("expected error line first, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "[WARN] not found") {
		t.Fatalf("expected warn line, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "[OK] Ready (command: /usr/bin/other)") {
		t.Fatalf("expected ready line, got %q", lines[2])
	}
	if !strings.Contains(lines[3], "Compressor") {
		t.Fatalf("expected missing summary, got %q", lines[3])
	}
}

func TestIsTerminalNonFile(t *testing.T) {
	if isTerminal(io.Discard) {
		t.Fatal("expected non-file writer to not be a terminal")
	}
}

func TestRenderTable(t *testing.T) {
	got := renderTable([]string{"Value", "Label"}, [][]string{{"fast-1080p", "Fast 1080p"}, {"short"}}, []columnAlignment{alignLeft, alignRight})
	for _, want := range []string{"fast-1080p", "Fast 1080p", "short"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected table to contain %q, got:\n%s", want, got)
		}
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty table for no headers")
	}
}
