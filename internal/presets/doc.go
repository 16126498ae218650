// Package presets resolves the catalog of named encoding presets from a YAML
// document and turns it into display-ready choices for the UI.
//
// A preset document has a top-level "presets" mapping keyed by preset name:
//
//	presets:
//	  fast-1080p:
//	    video_codec: libx264
//	    crf: 23
//	    preset: fast
//	    description: Quick 1080p encode
//
// Every call to Resolver.List reads the document once and discards the parsed
// catalog afterwards; nothing is cached between calls. Resolution is
// all-or-nothing: a read or parse failure never yields a partial catalog.
//
// Save and Delete edit the document in place under an advisory file lock so
// concurrent CLI and daemon edits do not interleave.
package presets
