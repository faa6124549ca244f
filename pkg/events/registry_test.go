// SPDX-License-Identifier: MPL-2.0

package events

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
)

func TestRegistry_DispatchOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	var calls []string
	r.On("save", func(...any) { calls = append(calls, "first") })
	r.On("other", func(...any) { calls = append(calls, "other") })
	r.On("save", func(...any) { calls = append(calls, "second") })
	r.On("save", func(...any) { calls = append(calls, "third") })

	if n := r.Dispatch("save"); n != 3 {
		t.Errorf("Dispatch() = %d, want 3", n)
	}
	if want := []string{"first", "second", "third"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestRegistry_Args(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	var got []any
	r.On("resize", func(args ...any) { got = args })

	r.Dispatch("resize", 320, 240, "px")
	if want := []any{320, 240, "px"}; !reflect.DeepEqual(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestRegistry_Off(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	count := 0
	off := r.On("tick", func(...any) { count++ })

	r.Dispatch("tick")
	off()
	off()
	r.Dispatch("tick")

	if count != 1 {
		t.Errorf("handler ran %d times, want 1", count)
	}
	if n := r.Len("tick"); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestRegistry_Once(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	count := 0
	r.Once("ready", func(...any) { count++ })

	r.Dispatch("ready")
	r.Dispatch("ready")

	if count != 1 {
		t.Errorf("once handler ran %d times, want 1", count)
	}
	if n := r.Len("ready"); n != 0 {
		t.Errorf("Len() = %d after firing, want 0", n)
	}
}

func TestRegistry_OnceConcurrentDispatch(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	var count atomic.Int32
	r.Once("ready", func(...any) { count.Add(1) })

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				r.Dispatch("ready")
			}
		}()
	}
	wg.Wait()

	if got := count.Load(); got != 1 {
		t.Errorf("once handler ran %d times, want 1", got)
	}
	if n := r.Len("ready"); n != 0 {
		t.Errorf("Len() = %d after firing, want 0", n)
	}
}

func TestRegistry_OnceOffBeforeFire(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	fired := false
	off := r.Once("ready", func(...any) { fired = true })
	off()

	if n := r.Dispatch("ready"); n != 0 {
		t.Errorf("Dispatch() = %d, want 0", n)
	}
	if fired {
		t.Error("removed once handler should not fire")
	}
}

func TestRegistry_HandlerMayUnsubscribe(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	var off func()
	off = r.On("e", func(...any) { off() })

	r.Dispatch("e")
	if n := r.Len("e"); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestRegistry_Independent(t *testing.T) {
	t.Parallel()

	a, b := NewRegistry(), NewRegistry()
	a.On("e", func(...any) {})

	if n := b.Dispatch("e"); n != 0 {
		t.Errorf("second registry dispatched %d handlers, want 0", n)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	var total atomic.Int64
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				off := r.On("e", func(...any) { total.Add(1) })
				r.Dispatch("e")
				off()
			}
		}()
	}
	wg.Wait()

	if total.Load() < 800 {
		t.Errorf("handlers ran %d times, want at least 800", total.Load())
	}
	if n := r.Len("e"); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}
