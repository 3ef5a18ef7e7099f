package parallax

import "sync"

// Events is a simple listener list used to pass events through unchanged.
// It is generic over the event type T.
type Events[T any] struct {
	mu        sync.RWMutex
	listeners []func(T)
}

// NewEvents creates an empty listener list.
func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

// Emit sends an event to all listeners in subscription order.
func (e *Events[T]) Emit(event T) {
	e.mu.RLock()
	listeners := e.listeners
	e.mu.RUnlock()

	for _, fn := range listeners {
		fn(event)
	}
}

// Subscribe adds a listener for events. Nil listeners are ignored.
func (e *Events[T]) Subscribe(fn func(T)) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	e.listeners = append(e.listeners, fn)
	e.mu.Unlock()
}
