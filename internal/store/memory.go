package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/adso-sena/agenda/internal/contacts"
)

// MemoryStore keeps contacts in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	items []contacts.Contact
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) List(_ context.Context) ([]contacts.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.items)
	if out == nil {
		out = []contacts.Contact{}
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (contacts.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := contacts.IndexByID(s.items, id)
	if idx < 0 {
		return contacts.Contact{}, ErrNotFound
	}
	return s.items[idx], nil
}

func (s *MemoryStore) Create(_ context.Context, c contacts.Contact) (contacts.Contact, error) {
	c = assignID(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	if contacts.IndexByID(s.items, c.ID) >= 0 {
		return contacts.Contact{}, fmt.Errorf("%w %q", ErrDuplicateID, c.ID)
	}
	s.items = append(s.items, c)
	return c, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, d contacts.Draft) (contacts.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := contacts.IndexByID(s.items, id)
	if idx < 0 {
		return contacts.Contact{}, ErrNotFound
	}
	s.items[idx] = d.WithID(id)
	return s.items[idx], nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := contacts.IndexByID(s.items, id)
	if idx < 0 {
		return ErrNotFound
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
