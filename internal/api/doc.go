// Package api defines wire-format types and converters for the HTTP bridge
// the UI frontend calls. It translates preset, invocation, dependency and
// preflight models into transport-friendly DTOs so consumers can render them
// without coupling to internal types.
//
// # Key Types
//
// PresetListResponse: the display entries for the preset selector.
//
// PresetDetail: one preset definition, including its ffmpeg-style arguments.
//
// RunRequest/RunResponse: an argument list forwarded verbatim to the
// compression tool and the decoded stdout it produced.
//
// ErrorResponse: a failure message; Kind is set to "spawn" or "process" when
// the failure came from the invocation bridge.
//
// StatusResponse: dependency availability and preflight results.
//
// # Design Notes
//
// DTOs use camelCase JSON tags for JavaScript/TypeScript consumers. Preset
// entries keep the value/label/description triple the selector expects.
package api
