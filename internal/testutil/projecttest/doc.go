// SPDX-License-Identifier: MPL-2.0

// Package projecttest provides test helpers for creating plugin project
// directories on disk.
//
// This package is separate from testutil so that testutil stays free of
// any knowledge about package.json layout.
//
// # Usage
//
//	import "plugkit-cli/internal/testutil/projecttest"
//
//	dir := projecttest.New(t, projecttest.WithPluginConfig(`{"name": "Demo", "main": "src/main.ts"}`))
package projecttest
