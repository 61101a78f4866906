package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: it persists accounts and looks
// them up by their unique keys.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned timestamps.
	// A duplicate email or username yields [ErrEmailAlreadyExists] or
	// [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	UpdateUserRole(ctx context.Context, userID string, role models.Role) error
}

// NoteRepository persists notes. Every read and mutation is restricted to
// the given [models.Scope]; rows outside the scope behave exactly like
// rows that do not exist and yield [ErrNoteNotFound].
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, scope models.Scope, filter models.NoteFilter) ([]models.Note, error)
	GetNote(ctx context.Context, scope models.Scope, noteID string) (models.Note, error)
	UpdateNote(ctx context.Context, scope models.Scope, noteID string, patch models.NotePatch) (models.Note, error)
	DeleteNote(ctx context.Context, scope models.Scope, noteID string) error
}

// SessionStorage keeps the client's bearer token between runs.
type SessionStorage interface {
	// LoadToken returns the saved token or [ErrNoSession].
	LoadToken(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}
