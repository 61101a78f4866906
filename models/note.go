package models

import "time"

// Note is a single user note.
// It is the primary persistence model of the service.
type Note struct {
	// ID is the unique identifier of the note (UUIDv7).
	ID string `json:"id"`

	// Title is a short, non-empty heading.
	Title string `json:"title"`

	// Content is the non-empty body of the note.
	Content string `json:"content"`

	// Categories holds the labels attached to the note. Never nil on reads.
	Categories Categories `json:"categories"`

	// Archived hides the note from the active list.
	Archived bool `json:"archived"`

	// UserID is the owner of the note. It is set once at creation.
	UserID string `json:"userId"`

	// Owner is populated only on admin-scoped reads.
	Owner *OwnerSummary `json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteInput is the payload for creating a note.
// Owner-related keys are intentionally absent so that they cannot be set
// from a request body.
type NoteInput struct {
	Title      string     `json:"title" validate:"notblank"`
	Content    string     `json:"content" validate:"notblank"`
	Categories Categories `json:"categories"`
}

// NotePatch is a partial update of a note.
// Only non-nil fields are applied.
type NotePatch struct {
	Title      *string     `json:"title,omitempty" validate:"omitnil,notblank"`
	Content    *string     `json:"content,omitempty" validate:"omitnil,notblank"`
	Categories *Categories `json:"categories,omitempty"`
	Archived   *bool       `json:"archived,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Categories == nil && p.Archived == nil
}

// NoteFilter narrows a note listing. A zero value lists every note in scope.
type NoteFilter struct {
	// Archived restricts the listing to archived (true) or active (false) notes.
	Archived *bool

	// Category restricts the listing to notes carrying exactly this label.
	Category *string
}

// ActiveNotes returns a filter selecting notes that are not archived.
func ActiveNotes() NoteFilter {
	archived := false
	return NoteFilter{Archived: &archived}
}

// ArchivedNotes returns a filter selecting archived notes.
func ArchivedNotes() NoteFilter {
	archived := true
	return NoteFilter{Archived: &archived}
}

// NotesInCategory returns a filter selecting notes labelled with category.
func NotesInCategory(category string) NoteFilter {
	return NoteFilter{Category: &category}
}
