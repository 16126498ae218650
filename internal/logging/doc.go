// Package logging assembles structured slog loggers and formatting helpers used
// across vcshell.
//
// It owns the console and JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so bridge code can tag log lines with the
// component and invocation ID. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
