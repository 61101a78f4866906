// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-note-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). The error
// text carries the server's envelope message after the sentinel.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-note-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	Health(ctx context.Context) error
	Version(ctx context.Context) (string, error)

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)

	// Login authenticates with email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// Me returns the user the current token belongs to.
	Me(ctx context.Context) (models.User, error)

	// ListNotes picks the listing route matching filter: all, active,
	// archived or a single category.
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)
	UpdateNote(ctx context.Context, noteID string, patch models.NotePatch) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
	ArchiveNote(ctx context.Context, noteID string) (models.Note, error)
	UnarchiveNote(ctx context.Context, noteID string) (models.Note, error)
}
