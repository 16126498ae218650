package testsupport

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestNewConfigUsesTempPaths(t *testing.T) {
	cfg := NewConfig(t)
	base := BaseDir(cfg)
	if filepath.Dir(cfg.Presets.File) != base {
		t.Fatalf("presets file %q not under %q", cfg.Presets.File, base)
	}
	if cfg.Paths.APIBind != "127.0.0.1:0" {
		t.Fatalf("unexpected bind %q", cfg.Paths.APIBind)
	}
	if _, err := os.Stat(cfg.Presets.File); !os.IsNotExist(err) {
		t.Fatalf("expected no preset document by default, stat err=%v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestWithPresetsDocument(t *testing.T) {
	cfg := NewConfig(t, WithPresetsDocument(SamplePresets))
	data, err := os.ReadFile(cfg.Presets.File)
	if err != nil {
		t.Fatalf("read presets: %v", err)
	}
	if string(data) != SamplePresets {
		t.Fatalf("unexpected document contents: %q", data)
	}
}

func TestWithStubCompressorOnPath(t *testing.T) {
	cfg := NewConfig(t, WithStubCompressor("echo stub\n"))
	resolved, err := exec.LookPath(cfg.Compressor.Binary)
	if err != nil {
		t.Fatalf("expected stub on PATH: %v", err)
	}
	if filepath.Dir(resolved) != filepath.Join(BaseDir(cfg), "bin") {
		t.Fatalf("resolved %q outside stub dir", resolved)
	}
	out, err := exec.Command(resolved).Output()
	if err != nil {
		t.Fatalf("run stub: %v", err)
	}
	if string(out) != "stub\n" {
		t.Fatalf("unexpected stub output %q", out)
	}
}

func TestWithStubbedBinariesDefaults(t *testing.T) {
	NewConfig(t, WithStubbedBinaries())
	for _, name := range []string{"video-compress", "ffmpeg"} {
		if _, err := exec.LookPath(name); err != nil {
			t.Fatalf("expected %s on PATH: %v", name, err)
		}
	}
}
