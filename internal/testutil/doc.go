// SPDX-License-Identifier: MPL-2.0

// Package testutil holds small test helpers that fail the test instead of
// returning errors. Project fixtures live in the projecttest subpackage.
package testutil
