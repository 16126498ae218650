package main

import (
	"errors"
	"fmt"
	"os"

	"vcshell/internal/invoke"
)

// errSilentFailure signals a failed command whose output was already written.
var errSilentFailure = errors.New("command failed")

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errSilentFailure) {
			fmt.Fprintln(os.Stderr, errorText(err))
		}
		os.Exit(1)
	}
}

// errorText renders err for the terminal. A process that failed without
// writing to stderr is described by its exit status instead.
func errorText(err error) string {
	var failure *invoke.ProcessFailure
	if errors.As(err, &failure) && failure.Stderr == "" {
		return fmt.Sprintf("%s exited with status %d", failure.Binary, failure.ExitCode)
	}
	return err.Error()
}
