package domain

import "context"

// IDAllocator issues strictly increasing record identifiers starting at 1.
// Implementations must be safe for concurrent use and never reuse a value.
type IDAllocator interface {
	Next() int64
}

// InstrumentRepository defines the interface for instrument persistence operations.
// Absent records are reported through the boolean results, never as errors.
type InstrumentRepository interface {
	// Put inserts or replaces the instrument stored under instrument.ID
	Put(ctx context.Context, instrument Instrument) error

	// Get retrieves an instrument by its ID
	Get(ctx context.Context, id int64) (Instrument, bool, error)

	// Update atomically applies fn to the stored instrument and saves the result.
	// Returns false if no instrument is stored under id.
	Update(ctx context.Context, id int64, fn func(Instrument) Instrument) (Instrument, bool, error)

	// Remove deletes the instrument and reports whether it was present
	Remove(ctx context.Context, id int64) (bool, error)

	// List returns all instruments in insertion order
	List(ctx context.Context) ([]Instrument, error)
}

// TransactionRepository defines the interface for transaction persistence operations.
// Transactions are append-only.
type TransactionRepository interface {
	// Put stores a new transaction under tx.ID
	Put(ctx context.Context, tx Transaction) error

	// Get retrieves a transaction by its ID
	Get(ctx context.Context, id int64) (Transaction, bool, error)

	// List returns all transactions in insertion order
	List(ctx context.Context) ([]Transaction, error)
}

// NoteRepository defines the interface for note persistence operations
type NoteRepository interface {
	Put(ctx context.Context, note Note) error
	Get(ctx context.Context, id int64) (Note, bool, error)
	Update(ctx context.Context, id int64, fn func(Note) Note) (Note, bool, error)
	Remove(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]Note, error)
}
