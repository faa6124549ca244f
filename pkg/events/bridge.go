// SPDX-License-Identifier: MPL-2.0

package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Bridge pairs a local Registry with a Transport to the other context.
type Bridge struct {
	registry  *Registry
	transport Transport
}

// NewBridge creates a Bridge. A nil registry gets a fresh one.
func NewBridge(registry *Registry, transport Transport) *Bridge {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Bridge{registry: registry, transport: transport}
}

// Registry returns the local registry incoming events are dispatched to.
func (b *Bridge) Registry() *Registry {
	return b.registry
}

// On registers a local handler. See Registry.On.
func (b *Bridge) On(name string, handler Handler) func() {
	return b.registry.On(name, handler)
}

// Once registers a local one-shot handler. See Registry.Once.
func (b *Bridge) Once(name string, handler Handler) func() {
	return b.registry.Once(name, handler)
}

// Emit sends the event to the other context. It does not invoke local
// handlers.
func (b *Bridge) Emit(ctx context.Context, name string, args ...any) error {
	return b.transport.Send(ctx, Message{Name: name, Args: args})
}

// Run receives messages and dispatches them to the local registry until
// the transport closes (nil is returned) or ctx is done. Malformed frames
// are logged and skipped.
func (b *Bridge) Run(ctx context.Context) error {
	for {
		msg, err := b.transport.Receive(ctx)
		switch {
		case err == nil:
		case errors.Is(err, ErrClosed), errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrMalformedMessage):
			slog.Warn("dropping malformed event message", "error", err)
			continue
		default:
			return err
		}

		if n := b.registry.Dispatch(msg.Name, msg.Args...); n == 0 {
			slog.Debug("no handler for event", "name", msg.Name)
		}
	}
}

// Close closes the underlying transport.
func (b *Bridge) Close() error {
	return b.transport.Close()
}
