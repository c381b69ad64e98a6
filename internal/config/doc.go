// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/patterns/config.cue (or the XDG equivalent on
// Linux, ~/Library/Application Support/patterns/config.cue on macOS,
// %APPDATA%\patterns\config.cue on Windows). Every key can be overridden with a
// PATTERNS_-prefixed environment variable, e.g. PATTERNS_DEFAULT_VARIANT=payload or
// PATTERNS_UI_VERBOSE=true.
//
// Configuration files are validated against an embedded CUE schema (config_schema.cue)
// before they reach Viper, so errors point at the offending key.
package config
