// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE validation utilities.
//
// The package consolidates the 3-step CUE parsing pattern used by the plugin
// configuration loader and the tool settings loader:
//
//  1. Compile the embedded schema
//  2. Compile user data (CUE or JSON) and unify with schema
//  3. Validate and, optionally, decode to a Go value
//
// # Usage
//
//	//go:embed raw_config_schema.cue
//	var schemaBytes []byte
//
//	unified, err := cueutil.ValidateJSON(
//	    schemaBytes,
//	    packageJSONBlock,
//	    "#RawConfig",
//	    cueutil.WithFilename("package.json"),
//	)
//	if err != nil {
//	    return nil, err  // Error includes JSON path for debugging
//	}
package cueutil
