// SPDX-License-Identifier: MPL-2.0

// Package events implements the named-event bridge between a plugin's main
// context and its UI.
//
// A Registry holds handler subscriptions. It is an ordinary value owned by
// whoever composes the application, so independent registries can coexist
// (one per context, one per test). A Bridge connects a Registry to a
// Transport: Emit sends [name, ...args] to the other side, and Run
// dispatches incoming messages to local handlers.
package events
