package memory

import "sync/atomic"

// Sequence is a concurrency-safe identifier allocator.
// The first call to Next returns 1; values are never reused.
type Sequence struct {
	last atomic.Int64
}

// NewSequence creates a sequence that starts at 1
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next identifier
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}
