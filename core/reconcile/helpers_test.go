package reconcile

import (
	"context"
	"slices"
	"sync"
)

// item is a minimal entity used to exercise the engine.
type item struct {
	ID    int64
	Price int64
	Note  *string
}

func strPtr(s string) *string { return &s }

// itemAdapter compares price and note.
type itemAdapter struct{}

func (itemAdapter) Name() string { return "items" }

func (itemAdapter) Key(i item) int64 { return i.ID }

func (itemAdapter) CompareFields(old, new item) []FieldChange {
	var changes []FieldChange
	if old.Price != new.Price {
		changes = append(changes, FieldChange{Field: "price", Old: old.Price, New: new.Price})
	}
	oldNote, newNote := deref(old.Note), deref(new.Note)
	if oldNote != newNote {
		changes = append(changes, FieldChange{Field: "note", Old: oldNote, New: newNote})
	}
	return changes
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// memStore is an in-memory Store recording the calls it receives.
type memStore struct {
	mu        sync.Mutex
	rows      map[int64]item
	calls     []string
	loadErr   error
	deleteErr error
	upsertErr error
}

func newMemStore(items ...item) *memStore {
	s := &memStore{rows: make(map[int64]item)}
	for _, i := range items {
		s.rows[i.ID] = i
	}
	return s
}

func (s *memStore) LoadAll(ctx context.Context) ([]item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "load")
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]item, 0, len(s.rows))
	for _, i := range s.rows {
		out = append(out, i)
	}
	return out, nil
}

func (s *memStore) DeleteBatch(ctx context.Context, keys []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "delete")
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for _, k := range keys {
		delete(s.rows, k)
	}
	return nil
}

func (s *memStore) UpsertBatch(ctx context.Context, items []item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "upsert")
	if s.upsertErr != nil {
		return s.upsertErr
	}
	for _, i := range items {
		s.rows[i.ID] = i
	}
	return nil
}

func (s *memStore) ids() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func keysOf(items []item) []int64 {
	keys := make([]int64, 0, len(items))
	for _, i := range items {
		keys = append(keys, i.ID)
	}
	return keys
}
