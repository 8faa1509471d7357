package domain

import "slices"

// Comment is a single remark attached to a note
type Comment struct {
	ID   int64
	Text string
}

// Note is a free-form text record with ordered comments
type Note struct {
	ID       int64
	Title    string
	Content  string
	Author   string
	Comments []Comment
}

// Clone returns a copy that shares no comment storage with n
func (n Note) Clone() Note {
	n.Comments = slices.Clone(n.Comments)
	return n
}

// Comment returns the comment with the given ID
func (n Note) Comment(id int64) (Comment, bool) {
	for _, c := range n.Comments {
		if c.ID == id {
			return c, true
		}
	}
	return Comment{}, false
}

// NoteFilter holds the optional note predicates.
//   - Author: case-insensitive equality
//   - Search: case-insensitive substring of the title
type NoteFilter struct {
	Author *string
	Search *string
}

// NoteQuery combines a filter with page/size pagination.
// Page is zero-based; Size must be positive.
type NoteQuery struct {
	Filter NoteFilter
	Page   int
	Size   int
}

// DefaultNotePageSize is used by callers that do not specify a page size
const DefaultNotePageSize = 10
