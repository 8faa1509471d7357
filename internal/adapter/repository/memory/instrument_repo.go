package memory

import (
	"context"

	"github.com/sp94dev/wallet-manager/internal/domain"
)

// instrumentRepository implements domain.InstrumentRepository
type instrumentRepository struct {
	store *Store[domain.Instrument]
}

// NewInstrumentRepository creates an empty in-memory instrument repository
func NewInstrumentRepository() domain.InstrumentRepository {
	return &instrumentRepository{store: NewStore[domain.Instrument](nil)}
}

// Put inserts or replaces the instrument stored under instrument.ID
func (r *instrumentRepository) Put(ctx context.Context, instrument domain.Instrument) error {
	r.store.Put(instrument.ID, instrument)
	return nil
}

// Get retrieves an instrument by its ID
func (r *instrumentRepository) Get(ctx context.Context, id int64) (domain.Instrument, bool, error) {
	instrument, ok := r.store.Get(id)
	return instrument, ok, nil
}

// Update applies fn to the stored instrument. The ID cannot be changed by fn.
func (r *instrumentRepository) Update(ctx context.Context, id int64, fn func(domain.Instrument) domain.Instrument) (domain.Instrument, bool, error) {
	instrument, ok := r.store.Update(id, func(current domain.Instrument) domain.Instrument {
		next := fn(current)
		next.ID = id
		return next
	})
	return instrument, ok, nil
}

// Remove deletes the instrument and reports whether it was present
func (r *instrumentRepository) Remove(ctx context.Context, id int64) (bool, error) {
	return r.store.Remove(id), nil
}

// List returns all instruments in insertion order
func (r *instrumentRepository) List(ctx context.Context) ([]domain.Instrument, error) {
	return r.store.List(), nil
}
