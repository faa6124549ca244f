// SPDX-License-Identifier: MPL-2.0

// Package config handles plugkit's own settings using Viper with CUE as the
// file format.
//
// Settings are read from plugkit.cue in the project directory, falling back
// to the user configuration directory (~/.config/plugkit/plugkit.cue or the
// platform equivalent). Files are validated against an embedded CUE schema
// (config_schema.cue). Environment variables prefixed with PLUGKIT_ override
// file values, with dots in key names replaced by underscores
// (PLUGKIT_OUTPUT_MINIFY=true).
package config
