package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// ClientAuthService defines the client-side contract for authentication.
// Every successful call that yields a token persists it in the session
// storage, so the next run of the client can resume without a login.
type ClientAuthService interface {
	// Restore loads a saved token and checks it against the server.
	// Returns [ErrNotLoggedIn] if there is no session or the token was
	// rejected; a rejected token is removed from the session storage.
	Restore(ctx context.Context) (models.User, error)

	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Logout forgets the token both in memory and on disk.
	Logout(ctx context.Context) error
}

// ClientNoteService defines the client-side contract for working with
// notes on the server. Errors are mapped to the service sentinels so the
// UI can react to them with errors.Is.
type ClientNoteService interface {
	List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	Get(ctx context.Context, noteID string) (models.Note, error)
	Create(ctx context.Context, input models.NoteInput) (models.Note, error)
	Update(ctx context.Context, noteID string, patch models.NotePatch) (models.Note, error)
	Delete(ctx context.Context, noteID string) error
	Archive(ctx context.Context, noteID string) (models.Note, error)
	Unarchive(ctx context.Context, noteID string) (models.Note, error)

	// Categories returns every distinct category across the user's notes,
	// archived ones included, in sorted order.
	Categories(ctx context.Context) ([]string, error)
}

// ClientAppInfoService reports on the server the client talks to.
type ClientAppInfoService interface {
	Ping(ctx context.Context) error
	ServerVersion(ctx context.Context) (string, error)
}
