// Value[T] wraps a value and notifies bindings when it changes. The scroll
// view keeps its offset in a Value[float64] and hands it to layer renderers,
// which bind to it instead of polling.
//
// Thread Safety Rules:
//   - Get() and TakeDirty() are safe to call from any goroutine
//   - Set() must only be called from the goroutine delivering scroll events
//
// Example usage:
//
//	offset := parallax.NewValue(0.0)
//	offset.Bind(func(y float64) {
//	    title.SetOpacity(1 - y/200)
//	})
//	offset.Set(120)  // triggers binding and marks dirty
package parallax

import (
	"sync"
	"sync/atomic"
)

// Value wraps a value and notifies bindings when it changes.
type Value[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
	dirty    atomic.Bool
}

// binding represents a registered callback that fires when the value changes.
type binding[T any] struct {
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding. Call it to prevent
// future callback invocations for the associated binding.
type Unbind func()

// NewValue creates a value with the given initial content.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value. Thread-safe for reading from any goroutine.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set updates the value, marks it dirty, and notifies all bindings in
// registration order.
func (v *Value[T]) Set(x T) {
	v.mu.Lock()
	v.value = x
	// Drop unbound bindings so they do not accumulate.
	active := make([]*binding[T], 0, len(v.bindings))
	for _, b := range v.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	v.bindings = active
	v.mu.Unlock()

	v.dirty.Store(true)

	for _, b := range active {
		b.fn(x)
	}
}

// Update applies a function to the current value and sets the result.
func (v *Value[T]) Update(fn func(T) T) {
	v.Set(fn(v.Get()))
}

// Bind registers a function to be called when the value changes.
// Returns an Unbind handle to remove the binding.
func (v *Value[T]) Bind(fn func(T)) Unbind {
	v.mu.Lock()
	b := &binding[T]{fn: fn, active: true}
	v.bindings = append(v.bindings, b)
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		b.active = false
		v.mu.Unlock()
	}
}

// TakeDirty returns true if the value was set since the last call and
// clears the flag. Render loops use it to skip frames with no scrolling.
func (v *Value[T]) TakeDirty() bool {
	return v.dirty.Swap(false)
}
