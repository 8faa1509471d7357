package memory

import (
	"context"

	"github.com/sp94dev/wallet-manager/internal/domain"
)

// noteRepository implements domain.NoteRepository.
// Notes are cloned in and out because their comment slices are mutable.
type noteRepository struct {
	store *Store[domain.Note]
}

// NewNoteRepository creates an empty in-memory note repository
func NewNoteRepository() domain.NoteRepository {
	return &noteRepository{store: NewStore(domain.Note.Clone)}
}

func (r *noteRepository) Put(ctx context.Context, note domain.Note) error {
	r.store.Put(note.ID, note)
	return nil
}

func (r *noteRepository) Get(ctx context.Context, id int64) (domain.Note, bool, error) {
	note, ok := r.store.Get(id)
	return note, ok, nil
}

func (r *noteRepository) Update(ctx context.Context, id int64, fn func(domain.Note) domain.Note) (domain.Note, bool, error) {
	note, ok := r.store.Update(id, func(current domain.Note) domain.Note {
		next := fn(current)
		next.ID = id
		return next
	})
	return note, ok, nil
}

func (r *noteRepository) Remove(ctx context.Context, id int64) (bool, error) {
	return r.store.Remove(id), nil
}

func (r *noteRepository) List(ctx context.Context) ([]domain.Note, error) {
	return r.store.List(), nil
}
