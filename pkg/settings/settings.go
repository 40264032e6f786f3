// Package settings provides simple key-value preference storage.
//
// The carousel persists exactly one sticky flag through this interface.
// Callers inject a Store so the environment decides where preferences
// live: the process-wide Default memory store, a YAML file store for
// durable installs, or a test-local Memory store.
package settings

// Store reads and writes named preference values.
//
// Writes are single-threaded (UI thread), matching the rest of the
// widget model; implementations do not need internal locking.
type Store interface {
	// Bool returns the value for key and whether it was present.
	Bool(key string) (value, ok bool)
	// SetBool stores value under key.
	SetBool(key string, value bool) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error
}

// Default is the process-wide store used when no Store is injected.
var Default Store = NewMemory()

// Memory is an in-process Store. The zero value is not usable; create
// one with NewMemory.
type Memory struct {
	values map[string]bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]bool)}
}

// Bool returns the value for key and whether it was present.
func (m *Memory) Bool(key string) (bool, bool) {
	v, ok := m.values[key]
	return v, ok
}

// SetBool stores value under key. It never fails.
func (m *Memory) SetBool(key string, value bool) error {
	m.values[key] = value
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	delete(m.values, key)
	return nil
}
