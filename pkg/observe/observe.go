// Package observe provides a minimal listenable value used to bind
// model state to external owners.
//
// A Value holds a single piece of state and notifies listeners on every
// Set, including sets that write the current value back. That mirrors
// a didSet-style assignment hook: listeners decide whether an echo is
// meaningful, the value does not filter it for them.
//
// Value is NOT thread-safe. It must only be accessed from the UI thread.
package observe

// Value holds a T and notifies listeners whenever it is assigned.
type Value[T any] struct {
	value          T
	listeners      map[int]func(T)
	nextListenerID int
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.value
}

// Set assigns the value and notifies all listeners.
// Listeners fire even when the new value equals the old one.
func (v *Value[T]) Set(value T) {
	v.value = value
	for _, listener := range v.listeners {
		listener(value)
	}
}

// AddListener registers a callback that fires on every Set.
// Returns an unsubscribe function.
func (v *Value[T]) AddListener(fn func(T)) func() {
	id := v.nextListenerID
	v.nextListenerID++
	v.listeners[id] = fn
	return func() {
		delete(v.listeners, id)
	}
}
