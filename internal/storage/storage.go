package storage

import "sync"

// Store is the durable key-value port behind the order and review stores.
// Read reports false when the key is absent or the backing store is
// unavailable; callers treat that as an empty value, never an error.
type Store interface {
	Read(key string) (string, bool)
	Write(key, value string) error
}

// Memory is an in-process Store. Tests bind the stores to it.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Read(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok
}

func (m *Memory) Write(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
