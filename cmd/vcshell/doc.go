// Command vcshell drives the video compression tool from the terminal.
//
// It shares the preset resolver and invocation bridge with the vcshelld HTTP
// bridge: "presets" lists and edits the preset document, "run" forwards an
// argument list verbatim to the compression tool, and "status" reports
// dependency and preflight health.
package main
