// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the plugkit command line interface.
//
// Handlers receive an *App and delegate to its services; they never read
// package-level state, so tests build their own App with fake writers and
// providers.
package cmd
