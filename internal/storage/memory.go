package storage

import "strings"

// MemoryBackend is an in-memory Backend for tests and ephemeral sessions.
// Data is lost when the process exits.
type MemoryBackend struct {
	data map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

func (m *MemoryBackend) Init() error { return nil }

func (m *MemoryBackend) Load() error { return nil }

func (m *MemoryBackend) Close() error { return nil }

func (m *MemoryBackend) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func (m *MemoryBackend) ListKeys(prefix string) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *MemoryBackend) Path() string { return ":memory:" }
