// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// cmdLoadNotes lists the notes of the current tab. The API filters either
// by archive state or by category, so a category listing is narrowed to the
// tab on the client.
func (m notesModel) cmdLoadNotes() tea.Cmd {
	ctx, notes := m.ctx, m.notes
	category := m.category
	archived := m.tab == tabArchived

	return func() tea.Msg {
		if category == "" {
			filter := models.ActiveNotes()
			if archived {
				filter = models.ArchivedNotes()
			}
			items, err := notes.List(ctx, filter)
			return notesLoadedMsg{notes: items, err: err}
		}

		items, err := notes.List(ctx, models.NotesInCategory(category))
		if err != nil {
			return notesLoadedMsg{err: err}
		}

		filtered := make([]models.Note, 0, len(items))
		for _, note := range items {
			if note.Archived == archived {
				filtered = append(filtered, note)
			}
		}
		return notesLoadedMsg{notes: filtered}
	}
}

func (m notesModel) cmdLoadCategories() tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		categories, err := notes.Categories(ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m notesModel) cmdCreate(input models.NoteInput) tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		note, err := notes.Create(ctx, input)
		return noteSavedMsg{note: note, created: true, err: err}
	}
}

func (m notesModel) cmdUpdate(noteID string, patch models.NotePatch) tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		note, err := notes.Update(ctx, noteID, patch)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m notesModel) cmdDelete(noteID string) tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		return noteDeletedMsg{err: notes.Delete(ctx, noteID)}
	}
}

func (m notesModel) cmdToggleArchive(note models.Note) tea.Cmd {
	ctx, notes := m.ctx, m.notes

	return func() tea.Msg {
		var (
			updated models.Note
			err     error
		)
		if note.Archived {
			updated, err = notes.Unarchive(ctx, note.ID)
		} else {
			updated, err = notes.Archive(ctx, note.ID)
		}
		return noteArchivedMsg{note: updated, err: err}
	}
}

func (m notesModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.auth

	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m notesModel) cmdClearStatus() tea.Cmd {
	if m.statusTicker == nil {
		return nil
	}
	return m.statusTicker(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
