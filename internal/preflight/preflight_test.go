package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vcshell/internal/config"
	"vcshell/internal/deps"
)

func writePresets(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckPresetsDocument_OK(t *testing.T) {
	path := writePresets(t, "presets:\n  fast-1080p:\n    description: quick\n  slow:\n    description: small\n")
	result := CheckPresetsDocument("Presets file", path)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "2 presets") {
		t.Fatalf("expected preset count in detail, got %q", result.Detail)
	}
}

func TestCheckPresetsDocument_Missing(t *testing.T) {
	result := CheckPresetsDocument("Presets file", filepath.Join(t.TempDir(), "absent.yaml"))
	if result.Passed {
		t.Fatal("expected failure for missing document")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %q", result.Detail)
	}
}

func TestCheckPresetsDocument_Malformed(t *testing.T) {
	path := writePresets(t, "presets:\n  fast:\n    crf: 22\n")
	result := CheckPresetsDocument("Presets file", path)
	if result.Passed {
		t.Fatal("expected failure for entry without description")
	}
}

func TestCheckPresetsDocument_Directory(t *testing.T) {
	result := CheckPresetsDocument("Presets file", t.TempDir())
	if result.Passed {
		t.Fatal("expected failure for directory path")
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(nil); results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_MinimalConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Presets.File = writePresets(t, "presets: {}\n")
	cfg.Paths.LogDir = t.TempDir()

	results := RunAll(&cfg)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("check %q failed: %s", r.Name, r.Detail)
		}
	}
	if Failed(results) {
		t.Fatal("expected no failures")
	}
}

func TestRunAll_SkipsUnsetLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Presets.File = filepath.Join(t.TempDir(), "missing.yaml")
	cfg.Paths.LogDir = ""

	results := RunAll(&cfg)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !Failed(results) {
		t.Fatal("expected missing presets file to fail")
	}
}

func TestCheckSystemDeps(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "video-compress")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir)

	cfg := config.Default()
	statuses := CheckSystemDeps(&cfg)
	if len(statuses) != 2 {
		t.Fatalf("expected compressor and ffmpeg statuses, got %d", len(statuses))
	}
	if !statuses[0].Available || statuses[0].Command != stub {
		t.Fatalf("expected compressor resolved to %q, got %#v", stub, statuses[0])
	}
	if statuses[1].Available {
		t.Fatalf("expected ffmpeg to be unavailable, got %#v", statuses[1])
	}
	if deps.MissingRequired(statuses) {
		t.Fatal("ffmpeg is optional and must not count as missing")
	}
}
