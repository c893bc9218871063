package memory

import (
	"context"
	"sync"

	audit "personnummer/pkg/platform/audit"
)

// DefaultCapacity bounds the events retained by NewInMemoryStore.
const DefaultCapacity = 1024

// InMemoryStore keeps the most recent events in a fixed-size ring. Older
// events are overwritten once the ring is full.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []audit.Event
	next   int
	full   bool
}

func NewInMemoryStore() *InMemoryStore {
	return NewInMemoryStoreWithCapacity(DefaultCapacity)
}

func NewInMemoryStoreWithCapacity(capacity int) *InMemoryStore {
	if capacity < 1 {
		capacity = 1
	}
	return &InMemoryStore{events: make([]audit.Event, capacity)}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.events)
	s.next = 0
	s.full = false
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[s.next] = event
	s.next = (s.next + 1) % len(s.events)
	if s.next == 0 {
		s.full = true
	}
	return nil
}

// ListRecent returns up to limit events, oldest first.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	size := s.next
	if s.full {
		size = len(s.events)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]audit.Event, 0, limit)
	start := s.next - limit
	if start < 0 {
		start += len(s.events)
	}
	for i := range limit {
		out = append(out, s.events[(start+i)%len(s.events)])
	}
	return out, nil
}
