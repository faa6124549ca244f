// SPDX-License-Identifier: MPL-2.0

// Package pluginconfig reads the plugin configuration block of a project's
// package.json and normalizes it into a fully-populated Config.
//
// The raw block is loosely typed: every field may be absent, files may be
// given as a bare path string, and menus mix commands with the "-"
// separator. Parse resolves all of that so downstream code (the manifest
// assembler, the CLI) never has to distinguish "missing" from "default".
//
// Load performs the I/O: it locates package.json, validates the block
// against an embedded CUE schema and hands the decoded RawConfig to Parse.
package pluginconfig
