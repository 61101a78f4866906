// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notesHarness struct {
	model  tea.Model
	notes  *fakeNotes
	auth   *fakeAuth
	copied []string
}

func newNotesHarness(t *testing.T, user models.User, items ...models.Note) *notesHarness {
	t.Helper()

	h := &notesHarness{
		notes: &fakeNotes{items: items, nextID: len(items)},
		auth:  &fakeAuth{},
	}

	m := newNotesModel(context.Background(), &service.ClientServices{
		AuthService: h.auth,
		NoteService: h.notes,
	}, user)
	m.copyToClip = func(s string) error {
		h.copied = append(h.copied, s)
		return nil
	}
	m.statusTicker = func(time.Duration, func(time.Time) tea.Msg) tea.Cmd { return nil }

	h.model, _ = drain(t, m, m.Init())
	return h
}

func (h *notesHarness) state() notesModel {
	return h.model.(notesModel)
}

func (h *notesHarness) press(t *testing.T, msg tea.KeyMsg) bool {
	t.Helper()
	var quit bool
	h.model, quit = press(t, h.model, msg)
	return quit
}

func (h *notesHarness) titles() []string {
	out := []string{}
	for _, n := range h.state().items {
		out = append(out, n.Title)
	}
	return out
}

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: "n1", Title: "Groceries", Content: "milk\neggs", Categories: models.Categories{"home"}},
		{ID: "n2", Title: "Standup", Content: "notes", Categories: models.Categories{"work"}},
		{ID: "n3", Title: "Old plan", Content: "done", Categories: models.Categories{"work"}, Archived: true},
	}
}

func TestNotes_InitialLoad(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	st := h.state()
	assert.False(t, st.loading)
	assert.Equal(t, []string{"Groceries", "Standup"}, h.titles())
	assert.Equal(t, []string{"home", "work"}, st.categories)

	view := h.model.View()
	assert.Contains(t, view, "ЗАМЕТКИ: alice")
	assert.Contains(t, view, "> Groceries")
	assert.NotContains(t, view, "Автор")
}

func TestNotes_EmptyList(t *testing.T) {
	h := newNotesHarness(t, testUser)

	assert.Contains(t, h.model.View(), "Нет заметок")

	// actions on an empty list are no-ops
	assert.False(t, h.press(t, keyRunes("d")))
	assert.False(t, h.state().confirmDelete)
	h.press(t, keyOf(tea.KeyEnter))
	assert.Equal(t, screenList, h.state().screen)
}

func TestNotes_TabSwitchesArchive(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	h.press(t, keyOf(tea.KeyTab))
	assert.Equal(t, tabArchived, h.state().tab)
	assert.Equal(t, []string{"Old plan"}, h.titles())

	h.press(t, keyOf(tea.KeyShiftTab))
	assert.Equal(t, tabActive, h.state().tab)
	assert.Equal(t, []string{"Groceries", "Standup"}, h.titles())
}

func TestNotes_CursorIsClamped(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	h.press(t, keyOf(tea.KeyDown))
	h.press(t, keyOf(tea.KeyDown))
	h.press(t, keyRunes("j"))
	assert.Equal(t, 1, h.state().idx)

	h.press(t, keyRunes("k"))
	h.press(t, keyOf(tea.KeyUp))
	assert.Equal(t, 0, h.state().idx)
}

func TestNotes_CreateNote(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	h.press(t, keyRunes("n"))
	require.Equal(t, screenForm, h.state().screen)

	h.model = typeInto(h.model, "Ideas")
	h.press(t, keyOf(tea.KeyTab))
	h.model = typeInto(h.model, "write more tests")
	h.press(t, keyOf(tea.KeyTab))
	h.model = typeInto(h.model, "work, , ideas, work")

	h.press(t, keyOf(tea.KeyCtrlS))

	st := h.state()
	assert.Equal(t, screenList, st.screen)
	assert.Equal(t, "Заметка добавлена", st.status)
	require.Len(t, h.notes.items, 4)
	created := h.notes.items[3]
	assert.Equal(t, "Ideas", created.Title)
	assert.Equal(t, "write more tests", created.Content)
	assert.Equal(t, models.Categories{"work", "ideas"}, created.Categories)
	assert.Contains(t, h.titles(), "Ideas")
	assert.Equal(t, []string{"home", "ideas", "work"}, st.categories)
}

func TestNotes_CreateRequiresTitleAndContent(t *testing.T) {
	h := newNotesHarness(t, testUser)

	h.press(t, keyRunes("n"))
	h.model = typeInto(h.model, "only title")
	h.press(t, keyOf(tea.KeyCtrlS))

	st := h.state()
	assert.Equal(t, screenForm, st.screen)
	assert.Equal(t, "Заголовок и текст обязательны", st.form.errMsg)
	assert.Empty(t, h.notes.items)

	h.press(t, keyOf(tea.KeyEsc))
	assert.Equal(t, screenList, h.state().screen)
}

func TestNotes_CreateServerValidation(t *testing.T) {
	h := newNotesHarness(t, testUser)
	h.notes.err = &service.ValidationError{Message: "Title and content are required"}

	h.press(t, keyRunes("n"))
	h.model = typeInto(h.model, "T")
	h.press(t, keyOf(tea.KeyTab))
	h.model = typeInto(h.model, "C")
	h.press(t, keyOf(tea.KeyCtrlS))

	st := h.state()
	assert.Equal(t, screenForm, st.screen)
	assert.False(t, st.form.submitting)
	assert.Equal(t, "Title and content are required", st.form.errMsg)
}

func TestNotes_EditSendsOnlyChangedFields(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	h.press(t, keyRunes("e"))
	st := h.state()
	require.Equal(t, screenForm, st.screen)
	assert.Equal(t, "Groceries", st.form.title.Value())
	assert.Equal(t, "milk\neggs", st.form.content.Value())
	assert.Equal(t, "home", st.form.categories.Value())

	h.model = typeInto(h.model, "!")
	h.press(t, keyOf(tea.KeyCtrlS))

	patch := h.notes.patches["n1"]
	require.NotNil(t, patch.Title)
	assert.Equal(t, "Groceries!", *patch.Title)
	assert.Nil(t, patch.Content)
	assert.Nil(t, patch.Categories)
	assert.Nil(t, patch.Archived)
	assert.Equal(t, "Заметка обновлена", h.state().status)
}

func TestNotes_EditWithoutChanges(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	h.press(t, keyRunes("e"))
	h.press(t, keyOf(tea.KeyCtrlS))

	assert.Empty(t, h.notes.patches)
	assert.Equal(t, screenList, h.state().screen)
	assert.Equal(t, "Без изменений", h.state().status)
}

func TestNotes_DetailView(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	h.press(t, keyOf(tea.KeyEnter))
	require.Equal(t, screenDetail, h.state().screen)

	view := h.model.View()
	assert.Contains(t, view, "ЗАМЕТКА: Groceries")
	assert.Contains(t, view, "milk")
	assert.Contains(t, view, "Категории : home")
	assert.Contains(t, view, "a: в архив")

	h.press(t, keyRunes("y"))
	assert.Equal(t, []string{"milk\neggs"}, h.copied)
	assert.Equal(t, "Скопировано", h.state().status)

	h.press(t, keyOf(tea.KeyEsc))
	assert.Equal(t, screenList, h.state().screen)
}

func TestNotes_CopyFailure(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)
	m := h.state()
	m.copyToClip = func(string) error { return errors.New("no clipboard") }
	h.model = m

	h.press(t, keyRunes("y"))

	assert.Equal(t, "Ошибка копирования: no clipboard", h.state().errMsg)
}

func TestNotes_ArchiveRoundTrip(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	h.press(t, keyRunes("a"))
	assert.Equal(t, "Заметка перемещена в архив", h.state().status)
	assert.Equal(t, []string{"Standup"}, h.titles())

	h.press(t, keyOf(tea.KeyTab))
	assert.ElementsMatch(t, []string{"Groceries", "Old plan"}, h.titles())

	for h.state().items[h.state().idx].ID != "n1" {
		h.press(t, keyOf(tea.KeyDown))
	}
	h.press(t, keyOf(tea.KeyEnter))
	assert.Contains(t, h.model.View(), "a: из архива")

	h.press(t, keyRunes("a"))
	assert.Equal(t, screenList, h.state().screen)
	assert.Equal(t, "Заметка восстановлена из архива", h.state().status)
	assert.Equal(t, []string{"Old plan"}, h.titles())
}

func TestNotes_DeleteAsksForConfirmation(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	h.press(t, keyRunes("d"))
	require.True(t, h.state().confirmDelete)
	assert.Contains(t, h.model.View(), "Удалить заметку?")

	h.press(t, keyRunes("n"))
	assert.False(t, h.state().confirmDelete)
	assert.Empty(t, h.notes.deleted)
	assert.Equal(t, screenList, h.state().screen, "n answers the prompt instead of opening the form")

	h.press(t, keyRunes("d"))
	h.press(t, keyRunes("y"))

	assert.Equal(t, []string{"n1"}, h.notes.deleted)
	assert.Empty(t, h.copied, "y answers the prompt instead of copying")
	assert.Equal(t, "Заметка удалена", h.state().status)
	assert.Equal(t, []string{"Standup"}, h.titles())
}

func TestNotes_DeleteFromDetail(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	h.press(t, keyOf(tea.KeyDown))
	h.press(t, keyOf(tea.KeyEnter))
	h.press(t, keyRunes("d"))
	h.press(t, keyOf(tea.KeyEsc))
	assert.Equal(t, screenDetail, h.state().screen)
	assert.Empty(t, h.notes.deleted)

	h.press(t, keyRunes("d"))
	h.press(t, keyRunes("y"))
	assert.Equal(t, []string{"n2"}, h.notes.deleted)
	assert.Equal(t, screenList, h.state().screen)
}

func TestNotes_CategoryFilter(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	h.press(t, keyRunes("c"))
	require.Equal(t, screenCategories, h.state().screen)
	view := h.model.View()
	assert.Contains(t, view, "> все категории")
	assert.Contains(t, view, "work")

	h.press(t, keyOf(tea.KeyDown))
	h.press(t, keyOf(tea.KeyDown))
	h.press(t, keyOf(tea.KeyEnter))

	st := h.state()
	assert.Equal(t, "work", st.category)
	assert.Equal(t, []string{"Standup"}, h.titles())
	assert.Contains(t, h.model.View(), "Категория: work")

	last := h.notes.filters[len(h.notes.filters)-1]
	require.NotNil(t, last.Category)
	assert.Equal(t, "work", *last.Category)

	// the category listing is narrowed to the archive tab on the client
	h.press(t, keyOf(tea.KeyTab))
	assert.Equal(t, []string{"Old plan"}, h.titles())

	// reopening the picker keeps the current selection, "all" clears it
	h.press(t, keyRunes("c"))
	assert.Equal(t, 2, h.state().categoryIdx)
	h.press(t, keyOf(tea.KeyUp))
	h.press(t, keyOf(tea.KeyUp))
	h.press(t, keyOf(tea.KeyEnter))
	assert.Empty(t, h.state().category)
	assert.Equal(t, []string{"Old plan"}, h.titles())
}

func TestNotes_AdminSeesOwners(t *testing.T) {
	admin := models.User{ID: "a1", Username: "root", Role: models.RoleAdmin}
	items := sampleNotes()
	items[0].Owner = &models.OwnerSummary{Username: "alice", Email: "alice@example.com"}

	h := newNotesHarness(t, admin, items...)

	view := h.model.View()
	assert.Contains(t, view, "ЗАМЕТКИ: root (admin)")
	assert.Contains(t, view, "Автор")
	assert.Contains(t, view, "alice")

	h.press(t, keyOf(tea.KeyEnter))
	assert.Contains(t, h.model.View(), "Автор     : alice <alice@example.com>")
}

func TestNotes_LoadErrorIsShown(t *testing.T) {
	h := newNotesHarness(t, testUser)
	h.notes.err = service.ErrServerUnavailable

	quit := h.press(t, keyRunes("r"))

	assert.False(t, quit)
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", h.state().errMsg)
}

func TestNotes_SessionLostEndsLoop(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)
	h.notes.err = service.ErrTokenIsExpiredOrInvalid

	quit := h.press(t, keyRunes("r"))

	assert.True(t, quit)
	assert.True(t, h.state().logout)
	assert.True(t, h.state().sessionLost)
}

func TestNotes_Logout(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	quit := h.press(t, keyRunes("l"))

	assert.True(t, quit)
	assert.Equal(t, 1, h.auth.logouts)
	assert.True(t, h.state().logout)
	assert.False(t, h.state().sessionLost)
}

func TestNotes_Quit(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)

	assert.True(t, h.press(t, keyRunes("q")))
	assert.False(t, h.state().logout)
}

func TestNotes_QuitKeyIsTextInForm(t *testing.T) {
	h := newNotesHarness(t, testUser)

	h.press(t, keyRunes("n"))
	h.model = typeInto(h.model, "q")

	assert.Equal(t, screenForm, h.state().screen)
	assert.Equal(t, "q", h.state().form.title.Value())

	assert.True(t, h.press(t, keyOf(tea.KeyCtrlC)))
}

func TestNotes_ClearStatus(t *testing.T) {
	h := newNotesHarness(t, testUser, sampleNotes()...)
	h.press(t, keyRunes("y"))
	require.NotEmpty(t, h.state().status)

	h.model, _ = h.model.Update(clearStatusMsg{})

	assert.Empty(t, h.state().status)
}
