package attempts

import (
	"context"
	"sync"
)

const defaultPageSize = 50

type memoryStore struct {
	mu       sync.RWMutex
	attempts map[string]Attempt
	order    []string // insertion order, oldest first
}

func NewInMemoryStore() Store {
	return &memoryStore{attempts: map[string]Attempt{}}
}

func (m *memoryStore) Record(_ context.Context, a Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.attempts[a.ID]; !ok {
		m.order = append(m.order, a.ID)
	}
	m.attempts[a.ID] = a
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.attempts[id]
	if !ok {
		return Attempt{}, ErrNotFound
	}
	return a, nil
}

func (m *memoryStore) List(_ context.Context, opts ListOpts) ([]Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	out := make([]Attempt, 0, limit)
	skipped := 0
	// newest first
	for i := len(m.order) - 1; i >= 0; i-- {
		a := m.attempts[m.order[i]]
		if opts.Subject != "" && a.Subject != opts.Subject {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.attempts[id]; !ok {
		return ErrNotFound
	}
	delete(m.attempts, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memoryStore) Purge(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = map[string]Attempt{}
	m.order = nil
	return nil
}
