package store

import "sync"

// Memory is a non-durable backend for tests and throwaway games.
type Memory struct {
	// Err, when set, is returned by every Get and Put
	Err  error
	data map[string][]byte
	mu   sync.Mutex
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Name() string {
	return "memory"
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}

	return append([]byte(nil), v...), nil
}

func (m *Memory) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.data[key] = append([]byte(nil), value...)

	return nil
}

func (m *Memory) Close() error {
	return nil
}
