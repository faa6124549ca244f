// SPDX-License-Identifier: MPL-2.0

// Package watch rebuilds on change. It monitors the project files that feed
// the manifest (package.json, plugkit.cue and the override hooks) and
// invokes a callback once the filesystem has been quiet for the debounce
// period. Events inside the window are coalesced into one call.
package watch
