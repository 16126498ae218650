// Package preflight provides readiness checks for the files and executables
// vcshell depends on.
//
// These checks run in two contexts:
//   - The bridge daemon reports them from GET /api/status so the UI can warn
//     before the user submits a command.
//   - The CLI "vcshell status" command renders them alongside dependency
//     availability.
package preflight
