// SPDX-License-Identifier: MPL-2.0

// Package override loads the optional user-supplied manifest transform of a
// plugin project.
//
// Two conventional files are recognized in the project directory, checked
// in this order:
//
//   - figma.manifest.go: Go source run by an embedded interpreter. It must
//     declare package manifest and a function
//     Override(map[string]any) map[string]any, optionally also returning an
//     error.
//   - figma.manifest.jq: a jq program whose single object result replaces
//     the manifest.
//
// When neither file exists there is no hook and the assembled manifest
// passes through unchanged. Hook output is not validated.
package override
