package store

import (
	"maps"
	"sync"
)

// Compile-time check to ensure MapStore satisfies the Store interface.
var _ Store = (*MapStore)(nil)

// MapStore is an in-memory implementation of Store using a Go map.
// It's suitable for mappings that fit in memory and provides fast O(1) access.
type MapStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMapStore creates a new in-memory map-based store.
func NewMapStore() *MapStore {
	return &MapStore{
		data: make(map[string]string),
	}
}

// Save stores the target under code. The first write wins: saving a code
// that is already present returns ErrCodeExists and leaves the stored
// target untouched.
func (m *MapStore) Save(code, target string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[code]; ok {
		return ErrCodeExists
	}

	m.data[code] = target
	return nil
}

// Get retrieves the target associated with the given code.
func (m *MapStore) Get(code string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[code]
	return v, ok
}

// Len returns the number of mappings currently stored.
func (m *MapStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}

// Clear removes all mappings from the store.
func (m *MapStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string]string)
}

// ToMap returns a copy of all mappings (for inspection and display).
func (m *MapStore) ToMap() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]string, len(m.data))
	maps.Copy(result, m.data)

	return result
}
