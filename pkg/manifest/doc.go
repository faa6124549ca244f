// SPDX-License-Identifier: MPL-2.0

// Package manifest assembles the plugin manifest from a normalized
// pluginconfig.Config and serializes it.
//
// The manifest uses sparse encoding: optional keys are present only when
// they carry information, so "parameterOnly": false is never written. Key
// order is fixed (api, editorType, name, id, main, then the optional keys)
// so that regenerated manifests diff cleanly.
//
// Build runs the whole pipeline: load config, assemble, apply the optional
// override Hook, encode and write.
package manifest
