// SPDX-License-Identifier: MPL-2.0

package events

import (
	"slices"
	"sync"
	"sync/atomic"
)

type (
	// Handler receives the arguments of an event.
	Handler func(args ...any)

	// Registry maps event names to handlers. It is safe for concurrent use.
	Registry struct {
		mu       sync.RWMutex
		nextID   atomic.Uint64
		handlers map[uint64]subscription
	}

	subscription struct {
		name    string
		handler Handler
	}
)

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[uint64]subscription),
	}
}

// On registers handler for name and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (r *Registry) On(name string, handler Handler) (off func()) {
	id := r.nextID.Add(1)

	r.mu.Lock()
	r.handlers[id] = subscription{name: name, handler: handler}
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.handlers, id)
		r.mu.Unlock()
	}
}

// Once registers handler to run at most once for name. The subscription is
// removed after it fires.
func (r *Registry) Once(name string, handler Handler) func() {
	// ready orders the assignment of off before any dispatch reads it.
	var (
		fired atomic.Bool
		off   func()
		ready = make(chan struct{})
	)
	off = r.On(name, func(args ...any) {
		if !fired.CompareAndSwap(false, true) {
			return
		}
		<-ready
		off()
		handler(args...)
	})
	close(ready)
	return off
}

// Dispatch invokes every handler registered for name, in registration
// order, and returns how many ran. Handlers run outside the lock and may
// register or remove subscriptions.
func (r *Registry) Dispatch(name string, args ...any) int {
	r.mu.RLock()
	ids := make([]uint64, 0, len(r.handlers))
	for id, sub := range r.handlers {
		if sub.name == name {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	matched := make([]Handler, 0, len(ids))
	for _, id := range ids {
		matched = append(matched, r.handlers[id].handler)
	}
	r.mu.RUnlock()

	for _, h := range matched {
		h(args...)
	}
	return len(matched)
}

// Len returns the number of registered handlers for name.
func (r *Registry) Len(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, sub := range r.handlers {
		if sub.name == name {
			n++
		}
	}
	return n
}
