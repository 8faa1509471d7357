// Package memory provides process-local repositories backed by a
// mutex-guarded, insertion-ordered table.
package memory

import (
	"slices"
	"sync"
)

// Store is an insertion-ordered map from identifier to record.
// Each method is atomic with respect to every other method; readers run in
// parallel, writers are exclusive.
type Store[R any] struct {
	mu      sync.RWMutex
	order   []int64
	records map[int64]R
	clone   func(R) R
}

// NewStore creates an empty store. clone, if non-nil, is applied to records
// on the way in and out so callers never share mutable state with the store.
func NewStore[R any](clone func(R) R) *Store[R] {
	if clone == nil {
		clone = func(r R) R { return r }
	}
	return &Store[R]{
		records: make(map[int64]R),
		clone:   clone,
	}
}

// Put inserts or replaces the record for id. A replaced record keeps its
// position in the listing order.
func (s *Store[R]) Put(id int64, record R) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		s.order = append(s.order, id)
	}
	s.records[id] = s.clone(record)
}

// Get returns the record for id, or false if absent
func (s *Store[R]) Get(id int64) (R, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		var zero R
		return zero, false
	}
	return s.clone(r), true
}

// Update replaces the record for id with fn(current) while holding the write
// lock. It returns false without calling fn if id is absent.
func (s *Store[R]) Update(id int64, fn func(R) R) (R, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		var zero R
		return zero, false
	}
	next := s.clone(fn(s.clone(current)))
	s.records[id] = next
	return s.clone(next), true
}

// Remove deletes the record for id and reports whether it was present
func (s *Store[R]) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

// List returns every live record in insertion order
func (s *Store[R]) List() []R {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]R, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.clone(s.records[id]))
	}
	return out
}
