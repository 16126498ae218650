package invoke

import (
	"bytes"
	"errors"
	"log/slog"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"vcshell/internal/logging"
)

// DefaultBinary is the compression executable used when none is configured.
const DefaultBinary = "video-compress"

var commandFactory = exec.Command

// Runner executes one invocation and returns its captured stdout.
type Runner interface {
	Run(args []string) (string, error)
}

// Outcome is the tagged result handed to the UI layer.
type Outcome struct {
	OK      bool   `json:"ok"`
	Output  string `json:"output,omitempty"`
	Message string `json:"message,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

const (
	// KindSpawn marks an Outcome whose process never started.
	KindSpawn = "spawn"
	// KindProcess marks an Outcome whose process exited with failure.
	KindProcess = "process"
)

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger attaches a logger; the default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Bridge runs a fixed external executable.
type Bridge struct {
	binary string
	logger *slog.Logger
}

// New constructs a Bridge for binary, resolved through PATH unless it
// contains a path separator.
func New(binary string, opts ...Option) *Bridge {
	if binary == "" {
		binary = DefaultBinary
	}
	b := &Bridge{binary: binary, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = logging.NewComponentLogger(b.logger, "invoke")
	return b
}

// Binary returns the executable name or path the bridge runs.
func (b *Bridge) Binary() string {
	return b.binary
}

// Run executes the binary with args and blocks until it terminates.
func (b *Bridge) Run(args []string) (string, error) {
	logger := b.logger.With(logging.String(logging.FieldInvocationID, uuid.NewString()))

	cmd := commandFactory(b.binary, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("invocation started", logging.Args(
		logging.String("binary", b.binary),
		logging.Strings("args", args),
	)...)
	started := time.Now()
	err := cmd.Run()
	elapsed := time.Since(started)

	if err == nil {
		logger.Debug("invocation succeeded",
			logging.Duration("elapsed", elapsed),
			logging.Int("stdout_bytes", stdout.Len()),
		)
		return decodeText(stdout.Bytes()), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		failure := &ProcessFailure{
			Binary:   b.binary,
			ExitCode: exitErr.ExitCode(),
			Stderr:   decodeText(stderr.Bytes()),
		}
		logger.Debug("invocation failed",
			logging.Duration("elapsed", elapsed),
			logging.Int("exit_code", failure.ExitCode),
		)
		return "", failure
	}

	logger.Debug("invocation could not start", logging.Error(err))
	return "", &SpawnError{Binary: b.binary, Err: err}
}

// Invoke runs args and folds the result into an Outcome.
func (b *Bridge) Invoke(args []string) Outcome {
	return OutcomeOf(b.Run(args))
}

// OutcomeOf converts a Run result into an Outcome.
func OutcomeOf(output string, err error) Outcome {
	if err == nil {
		return Outcome{OK: true, Output: output}
	}
	outcome := Outcome{Message: err.Error()}
	switch {
	case errors.Is(err, ErrSpawn):
		outcome.Kind = KindSpawn
	case errors.Is(err, ErrProcess):
		outcome.Kind = KindProcess
	}
	return outcome
}

var _ Runner = (*Bridge)(nil)
