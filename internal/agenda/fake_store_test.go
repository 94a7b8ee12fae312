package agenda

import (
	"context"
	"errors"
	"strconv"

	"github.com/adso-sena/agenda/internal/contacts"
)

var errBackendDown = errors.New("dial tcp: connection refused")

// fakeStore is an in-memory Store that counts calls and can be told to fail.
type fakeStore struct {
	items  []contacts.Contact
	nextID int
	fail   error
	calls  map[string]int
}

func newFakeStore(items ...contacts.Contact) *fakeStore {
	return &fakeStore{items: items, nextID: 100, calls: map[string]int{}}
}

func (s *fakeStore) total() int {
	n := 0
	for _, v := range s.calls {
		n += v
	}
	return n
}

func (s *fakeStore) List(_ context.Context) ([]contacts.Contact, error) {
	s.calls["list"]++
	if s.fail != nil {
		return nil, s.fail
	}
	out := make([]contacts.Contact, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *fakeStore) Create(_ context.Context, d contacts.Draft) (contacts.Contact, error) {
	s.calls["create"]++
	if s.fail != nil {
		return contacts.Contact{}, s.fail
	}
	s.nextID++
	c := d.WithID(strconv.Itoa(s.nextID))
	s.items = append(s.items, c)
	return c, nil
}

func (s *fakeStore) Update(_ context.Context, id string, d contacts.Draft) (contacts.Contact, error) {
	s.calls["update"]++
	if s.fail != nil {
		return contacts.Contact{}, s.fail
	}
	idx := contacts.IndexByID(s.items, id)
	if idx < 0 {
		return contacts.Contact{}, errors.New("not found")
	}
	s.items[idx] = d.WithID(id)
	return s.items[idx], nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	s.calls["delete"]++
	if s.fail != nil {
		return s.fail
	}
	idx := contacts.IndexByID(s.items, id)
	if idx < 0 {
		return errors.New("not found")
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}
