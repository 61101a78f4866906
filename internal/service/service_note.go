// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/policy"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService is the core NoteService. It derives the query scope of every
// call from the identity and leaves input validation to the wrapping
// NoteValidationService.
type noteService struct {
	noteRepository store.NoteRepository
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Create stores a new active note owned by the identity. Fields are stored
// exactly as submitted.
func (s *noteService) Create(ctx context.Context, identity models.Identity, input models.NoteInput) (models.Note, error) {
	categories := input.Categories
	if categories == nil {
		categories = models.Categories{}
	}

	note, err := s.noteRepository.CreateNote(ctx, models.Note{
		ID:         s.ids.Generate(),
		Title:      input.Title,
		Content:    input.Content,
		Categories: categories,
		UserID:     identity.UserID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.Create").Str("user_id", identity.UserID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return note, nil
}

// List returns the notes in the identity's scope matching filter, newest
// first. The result is never nil.
func (s *noteService) List(ctx context.Context, identity models.Identity, filter models.NoteFilter) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, policy.ScopeFor(identity), filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.List").Str("user_id", identity.UserID).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

func (s *noteService) ListByCategory(ctx context.Context, identity models.Identity, category string) ([]models.Note, error) {
	return s.List(ctx, identity, models.NotesInCategory(category))
}

func (s *noteService) GetByID(ctx context.Context, identity models.Identity, noteID string) (models.Note, error) {
	if !utils.IsValidUUID(noteID) {
		return models.Note{}, ErrNoteNotFound
	}

	note, err := s.noteRepository.GetNote(ctx, policy.ScopeFor(identity), noteID)
	if err != nil {
		return models.Note{}, s.noteError(ctx, "*noteService.GetByID", noteID, err)
	}

	// the scope already filtered the row; a mismatch here means the store
	// predicate and the policy disagree
	if policy.Decide(identity, note.UserID) != policy.Allowed {
		logger.FromContext(ctx).Error().Str("func", "*noteService.GetByID").Str("note_id", noteID).Str("user_id", identity.UserID).Msg("scoped read returned a foreign note")
		return models.Note{}, ErrNoteNotFound
	}

	return note, nil
}

// Update applies patch in one conditional statement. Concurrent updates of
// the same note are last-write-wins.
func (s *noteService) Update(ctx context.Context, identity models.Identity, noteID string, patch models.NotePatch) (models.Note, error) {
	if !utils.IsValidUUID(noteID) {
		return models.Note{}, ErrNoteNotFound
	}

	note, err := s.noteRepository.UpdateNote(ctx, policy.ScopeFor(identity), noteID, patch)
	if err != nil {
		return models.Note{}, s.noteError(ctx, "*noteService.Update", noteID, err)
	}

	return note, nil
}

func (s *noteService) Delete(ctx context.Context, identity models.Identity, noteID string) error {
	if !utils.IsValidUUID(noteID) {
		return ErrNoteNotFound
	}

	if err := s.noteRepository.DeleteNote(ctx, policy.ScopeFor(identity), noteID); err != nil {
		return s.noteError(ctx, "*noteService.Delete", noteID, err)
	}

	return nil
}

func (s *noteService) Archive(ctx context.Context, identity models.Identity, noteID string) (models.Note, error) {
	return s.setArchived(ctx, identity, noteID, true)
}

func (s *noteService) Unarchive(ctx context.Context, identity models.Identity, noteID string) (models.Note, error) {
	return s.setArchived(ctx, identity, noteID, false)
}

func (s *noteService) setArchived(ctx context.Context, identity models.Identity, noteID string, archived bool) (models.Note, error) {
	return s.Update(ctx, identity, noteID, models.NotePatch{Archived: &archived})
}

func (s *noteService) noteError(ctx context.Context, funcName, noteID string, err error) error {
	if errors.Is(err, store.ErrNoteNotFound) {
		return ErrNoteNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Str("note_id", noteID).Msg("note operation failed")
	return fmt.Errorf("note operation failed: %w", err)
}
