// Package invoke forwards argument vectors to the external compression
// executable and reports the outcome.
//
// A Bridge runs its binary synchronously with exactly the caller's arguments
// (no shell, nothing injected), captures stdout and stderr in per-call
// buffers, and classifies the result purely by exit status:
//
//   - success: stdout, decoded as UTF-8 with invalid sequences replaced
//   - *ProcessFailure: the process ran and exited non-zero; the message is stderr
//   - *SpawnError: the process never started (missing binary, permissions)
//
// There is no timeout, cancellation, or retry. Concurrent Run calls are
// independent: each owns its own child process and buffers.
package invoke
