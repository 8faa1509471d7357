package note

import (
	"context"
	"fmt"

	"github.com/sp94dev/wallet-manager/internal/domain"
	"github.com/sp94dev/wallet-manager/internal/query"
	"go.uber.org/zap"
)

// CreateNoteInput represents the input for creating a note.
// New notes start without comments.
type CreateNoteInput struct {
	Title   string
	Content string
	Author  string
}

// UpdateNoteInput represents a partial note update.
// Author and comments are never changed by an update.
type UpdateNoteInput struct {
	Title   *string
	Content *string
}

// NoteService handles note and comment operations
type NoteService struct {
	NoteRepo   domain.NoteRepository
	IDs        domain.IDAllocator
	CommentIDs domain.IDAllocator
	Logger     *zap.Logger
}

// NewNoteService creates a new NoteService instance
func NewNoteService(repo domain.NoteRepository, ids, commentIDs domain.IDAllocator, logger *zap.Logger) *NoteService {
	return &NoteService{
		NoteRepo:   repo,
		IDs:        ids,
		CommentIDs: commentIDs,
		Logger:     logger,
	}
}

// List returns one page of the notes matching the author and title search
func (s *NoteService) List(ctx context.Context, q domain.NoteQuery) ([]domain.Note, error) {
	notes, err := s.NoteRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	filtered := query.Filter(notes,
		query.EqualFold(q.Filter.Author, func(n domain.Note) string { return n.Author }),
		query.ContainsFold(q.Filter.Search, func(n domain.Note) string { return n.Title }),
	)

	return query.Paginate(filtered, q.Page, q.Size)
}

// GetByID retrieves a note with its comments, failing with domain.ErrNotFound if absent
func (s *NoteService) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	note, ok, err := s.NoteRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get note %d: %w", id, err)
	}
	if !ok {
		return nil, notFound(id)
	}
	return &note, nil
}

// Create stores a new note under a freshly allocated ID
func (s *NoteService) Create(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	note := domain.Note{
		ID:       s.IDs.Next(),
		Title:    input.Title,
		Content:  input.Content,
		Author:   input.Author,
		Comments: []domain.Comment{},
	}

	if err := s.NoteRepo.Put(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to store note: %w", err)
	}

	s.Logger.Debug("note created", zap.Int64("id", note.ID), zap.String("author", note.Author))
	return &note, nil
}

// Update changes the provided title and content of an existing note
func (s *NoteService) Update(ctx context.Context, id int64, input UpdateNoteInput) (*domain.Note, error) {
	note, ok, err := s.NoteRepo.Update(ctx, id, func(current domain.Note) domain.Note {
		if input.Title != nil {
			current.Title = *input.Title
		}
		if input.Content != nil {
			current.Content = *input.Content
		}
		return current
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update note %d: %w", id, err)
	}
	if !ok {
		return nil, notFound(id)
	}

	s.Logger.Debug("note updated", zap.Int64("id", id))
	return &note, nil
}

// Delete removes a note and its comments
func (s *NoteService) Delete(ctx context.Context, id int64) error {
	removed, err := s.NoteRepo.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}
	if !removed {
		return notFound(id)
	}

	s.Logger.Debug("note deleted", zap.Int64("id", id))
	return nil
}

// GetComment retrieves one comment of a note.
// Fails with domain.ErrNotFound if either the note or the comment is absent.
func (s *NoteService) GetComment(ctx context.Context, noteID, commentID int64) (*domain.Comment, error) {
	note, err := s.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	comment, ok := note.Comment(commentID)
	if !ok {
		return nil, fmt.Errorf("comment %d on note %d %w", commentID, noteID, domain.ErrNotFound)
	}
	return &comment, nil
}

// AddComment appends a comment to a note
func (s *NoteService) AddComment(ctx context.Context, noteID int64, text string) (*domain.Comment, error) {
	var comment domain.Comment
	_, ok, err := s.NoteRepo.Update(ctx, noteID, func(current domain.Note) domain.Note {
		comment = domain.Comment{ID: s.CommentIDs.Next(), Text: text}
		current.Comments = append(current.Comments, comment)
		return current
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add comment to note %d: %w", noteID, err)
	}
	if !ok {
		return nil, notFound(noteID)
	}

	s.Logger.Debug("comment added", zap.Int64("note_id", noteID), zap.Int64("comment_id", comment.ID))
	return &comment, nil
}

func notFound(id int64) error {
	return fmt.Errorf("note %d %w", id, domain.ErrNotFound)
}
