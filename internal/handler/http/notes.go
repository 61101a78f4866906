// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	noteIDParam   = "id"
	categoryParam = "category"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var input models.NoteInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, err)
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), identity, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("note_id", note.ID).Msg("note created")
	utils.WriteData(w, note, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	h.writeNotes(w, r, models.NoteFilter{})
}

func (h *Handler) listActiveNotes(w http.ResponseWriter, r *http.Request) {
	h.writeNotes(w, r, models.ActiveNotes())
}

func (h *Handler) listArchivedNotes(w http.ResponseWriter, r *http.Request) {
	h.writeNotes(w, r, models.ArchivedNotes())
}

func (h *Handler) listNotesByCategory(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListByCategory(r.Context(), identity, categoryFromPath(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteData(w, notes, http.StatusOK)
}

func (h *Handler) writeNotes(w http.ResponseWriter, r *http.Request, filter models.NoteFilter) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.List(r.Context(), identity, filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteData(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.GetByID(r.Context(), identity, chi.URLParam(r, noteIDParam))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteData(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var patch models.NotePatch
	if err := decodeJSON(r, &patch); err != nil {
		writeServiceError(w, r, err)
		return
	}

	note, err := h.services.NoteService.Update(r.Context(), identity, chi.URLParam(r, noteIDParam), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteData(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	noteID := chi.URLParam(r, noteIDParam)
	if err := h.services.NoteService.Delete(r.Context(), identity, noteID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("note_id", noteID).Msg("note deleted")
	utils.WriteData(w, models.Message{Message: app.MsgNoteDeleted}, http.StatusOK)
}

func (h *Handler) archiveNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.Archive(r.Context(), identity, chi.URLParam(r, noteIDParam))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteData(w, note, http.StatusOK)
}

func (h *Handler) unarchiveNote(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.Unarchive(r.Context(), identity, chi.URLParam(r, noteIDParam))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteData(w, note, http.StatusOK)
}

// identity returns the caller set by the auth middleware, writing a 401
// when it is missing.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoIdentityInContext)
	}
	return identity, ok
}

// categoryFromPath returns the decoded category segment. chi matches on
// RawPath when the URL has one, leaving the parameter escaped; otherwise the
// parameter is already decoded and must not be unescaped again.
func categoryFromPath(r *http.Request) string {
	category := chi.URLParam(r, categoryParam)
	if r.URL.RawPath == "" {
		return category
	}
	if unescaped, err := url.PathUnescape(category); err == nil {
		return unescaped
	}
	return category
}
