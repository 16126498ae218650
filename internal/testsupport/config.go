package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"vcshell/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test.
// It defaults common fields and applies any provided options. The preset
// document is not written unless WithPresetsDocument is supplied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Presets.File = filepath.Join(base, "presets.yaml")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.APIBind = "127.0.0.1:0"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithPresetsDocument writes body to the config's preset document path.
func WithPresetsDocument(body string) ConfigOption {
	return func(b *configBuilder) {
		WriteFile(b.t, b.cfg.Presets.File, body)
	}
}

// WithAPIToken sets the bridge bearer token on the test config.
func WithAPIToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.APIToken = token
	}
}

// WithStubCompressor installs a shell script as the configured compressor
// binary and prepends its directory to PATH.
func WithStubCompressor(script string) ConfigOption {
	return func(b *configBuilder) {
		binDir := b.binDir()
		StubScript(b.t, binDir, b.cfg.Compressor.Binary, script)
		b.prependPath(binDir)
	}
}

// WithStubbedBinaries writes no-op stub executables for the provided names
// and prepends them to PATH. If names is empty, the configured compressor
// and ffmpeg are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{b.cfg.Compressor.Binary, "ffmpeg"}
		}
		binDir := b.binDir()
		for _, name := range names {
			StubScript(b.t, binDir, name, "exit 0\n")
		}
		b.prependPath(binDir)
	}
}

func (b *configBuilder) binDir() string {
	binDir := filepath.Join(b.baseDir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		b.t.Fatalf("mkdir bin dir: %v", err)
	}
	return binDir
}

func (b *configBuilder) prependPath(dir string) {
	b.t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
