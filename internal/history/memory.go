package history

import (
	"context"
	"sync"
)

// MemoryRecorder keeps back history in process memory. Used in tests and
// when no DATABASE_URL is configured for one-shot CLI runs.
type MemoryRecorder struct {
	mu      sync.RWMutex
	entries []*Entry
}

// NewMemoryRecorder creates an in-memory back history
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record appends an entry
func (m *MemoryRecorder) Record(ctx context.Context, entry *Entry) error {
	prepare(entry)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

// ListRecent returns the most recent entries, newest first
func (m *MemoryRecorder) ListRecent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Entry
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

// ByTopic returns all entries for a topic, newest first
func (m *MemoryRecorder) ByTopic(ctx context.Context, topic string) ([]*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Entry
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].Topic == topic {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}
