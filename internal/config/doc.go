// Package config loads, normalizes, and validates vcshell configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// VCSHELL_PRESETS_FILE and VCSHELL_COMPRESSOR. A .env file in the working
// directory is loaded before the fallbacks are consulted.
//
// The preset document location and the compressor binary name live here so the
// preset resolver and the invocation bridge receive them at construction rather
// than reaching for process-wide constants.
package config
