package invoke

import (
	"errors"
	"fmt"
)

var (
	// ErrSpawn classifies invocations whose process never started.
	ErrSpawn = errors.New("spawn failed")
	// ErrProcess classifies invocations whose process exited with a failure status.
	ErrProcess = errors.New("process failed")
)

// SpawnError reports that the executable could not be started.
type SpawnError struct {
	Binary string
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Binary, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

func (e *SpawnError) Is(target error) bool { return target == ErrSpawn }

// ProcessFailure reports a process that ran to completion with a failure
// status. Stderr holds the decoded standard-error stream.
type ProcessFailure struct {
	Binary   string
	ExitCode int
	Stderr   string
}

// Error returns the captured stderr verbatim, which is empty when the
// process failed silently. ExitCode carries the status for display.
func (e *ProcessFailure) Error() string {
	return e.Stderr
}

func (e *ProcessFailure) Is(target error) bool { return target == ErrProcess }
