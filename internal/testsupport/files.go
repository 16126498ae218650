package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SamplePresets is a small, valid preset document.
const SamplePresets = `presets:
  fast-1080p:
    video_codec: libx264
    crf: 23
    preset: veryfast
    description: Quick 1080p encode
  archive:
    video_codec: libx265
    crf: 18
    preset: slow
    description: High quality archival
`

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// StubScript writes an executable /bin/sh script named name into dir and
// returns its path. body is appended after the shebang line.
func StubScript(t testing.TB, dir, name, body string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return target
}
