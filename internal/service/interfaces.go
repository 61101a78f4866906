package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// AuthService registers users, checks credentials and turns bearer tokens
// into identities.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// Authenticate verifies tokenString and re-reads the user so the returned
	// role is always the stored one.
	Authenticate(ctx context.Context, tokenString string) (models.Identity, error)
	Me(ctx context.Context, userID string) (models.User, error)
}

// NoteService implements the note operations for an authenticated identity.
// Notes outside the identity's scope are reported as [ErrNoteNotFound].
type NoteService interface {
	Create(ctx context.Context, identity models.Identity, input models.NoteInput) (models.Note, error)
	List(ctx context.Context, identity models.Identity, filter models.NoteFilter) ([]models.Note, error)
	ListByCategory(ctx context.Context, identity models.Identity, category string) ([]models.Note, error)
	GetByID(ctx context.Context, identity models.Identity, noteID string) (models.Note, error)
	Update(ctx context.Context, identity models.Identity, noteID string, patch models.NotePatch) (models.Note, error)
	Delete(ctx context.Context, identity models.Identity, noteID string) error
	Archive(ctx context.Context, identity models.Identity, noteID string) (models.Note, error)
	Unarchive(ctx context.Context, identity models.Identity, noteID string) (models.Note, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}
