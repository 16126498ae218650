// Package bridge serves the HTTP API the UI frontend uses to list presets and
// run the compression tool.
//
// Routes (gorilla/mux):
//
//	GET  /api/presets         display entries for the preset selector
//	GET  /api/presets/{name}  a single preset definition
//	POST /api/run             forward {"args": [...]} to the compression tool
//	GET  /api/status          dependency and preflight summary
//
// Every response is JSON. When a token is configured, /api routes require
// "Authorization: Bearer <token>". Each request gets an X-Request-ID that is
// echoed back and attached to log lines.
package bridge
