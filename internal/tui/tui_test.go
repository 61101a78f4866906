package tui

import (
	"context"
	"slices"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeAuth struct {
	user models.User
	err  error

	logins    []models.LoginRequest
	registers []models.RegisterRequest
	logouts   int
}

func (f *fakeAuth) Restore(context.Context) (models.User, error) {
	return f.user, f.err
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (models.User, error) {
	f.registers = append(f.registers, req)
	return f.user, f.err
}

func (f *fakeAuth) Login(_ context.Context, req models.LoginRequest) (models.User, error) {
	f.logins = append(f.logins, req)
	return f.user, f.err
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	return nil
}

type fakeNotes struct {
	items  []models.Note
	nextID int
	err    error

	filters []models.NoteFilter
	patches map[string]models.NotePatch
	deleted []string
}

func (f *fakeNotes) List(_ context.Context, filter models.NoteFilter) ([]models.Note, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}

	out := make([]models.Note, 0, len(f.items))
	for _, n := range f.items {
		if filter.Archived != nil && n.Archived != *filter.Archived {
			continue
		}
		if filter.Category != nil && !n.Categories.Contains(*filter.Category) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNotes) find(noteID string) int {
	return slices.IndexFunc(f.items, func(n models.Note) bool { return n.ID == noteID })
}

func (f *fakeNotes) Get(_ context.Context, noteID string) (models.Note, error) {
	if i := f.find(noteID); i >= 0 {
		return f.items[i], nil
	}
	return models.Note{}, service.ErrNoteNotFound
}

func (f *fakeNotes) Create(_ context.Context, input models.NoteInput) (models.Note, error) {
	if f.err != nil {
		return models.Note{}, f.err
	}
	f.nextID++
	note := models.Note{
		ID:         "n" + strconv.Itoa(f.nextID),
		Title:      input.Title,
		Content:    input.Content,
		Categories: input.Categories.Normalize(),
	}
	f.items = append(f.items, note)
	return note, nil
}

func (f *fakeNotes) Update(_ context.Context, noteID string, patch models.NotePatch) (models.Note, error) {
	if f.err != nil {
		return models.Note{}, f.err
	}
	i := f.find(noteID)
	if i < 0 {
		return models.Note{}, service.ErrNoteNotFound
	}
	if f.patches == nil {
		f.patches = map[string]models.NotePatch{}
	}
	f.patches[noteID] = patch

	if patch.Title != nil {
		f.items[i].Title = *patch.Title
	}
	if patch.Content != nil {
		f.items[i].Content = *patch.Content
	}
	if patch.Categories != nil {
		f.items[i].Categories = *patch.Categories
	}
	if patch.Archived != nil {
		f.items[i].Archived = *patch.Archived
	}
	return f.items[i], nil
}

func (f *fakeNotes) Delete(_ context.Context, noteID string) error {
	if f.err != nil {
		return f.err
	}
	i := f.find(noteID)
	if i < 0 {
		return service.ErrNoteNotFound
	}
	f.deleted = append(f.deleted, noteID)
	f.items = slices.Delete(f.items, i, i+1)
	return nil
}

func (f *fakeNotes) Archive(ctx context.Context, noteID string) (models.Note, error) {
	archived := true
	return f.Update(ctx, noteID, models.NotePatch{Archived: &archived})
}

func (f *fakeNotes) Unarchive(ctx context.Context, noteID string) (models.Note, error) {
	archived := false
	return f.Update(ctx, noteID, models.NotePatch{Archived: &archived})
}

func (f *fakeNotes) Categories(context.Context) ([]string, error) {
	set := map[string]struct{}{}
	for _, n := range f.items {
		for _, c := range n.Categories {
			set[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	slices.Sort(out)
	return out, nil
}

type fakeAppInfo struct {
	version string
}

func (f *fakeAppInfo) Ping(context.Context) error { return nil }

func (f *fakeAppInfo) ServerVersion(context.Context) (string, error) {
	return f.version, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// drain runs cmd and every command produced while handling its messages,
// feeding the messages back into m. Quit messages are reported, not fed,
// and widget messages such as cursor blinks are dropped.
func drain(t *testing.T, m tea.Model, cmd tea.Cmd) (tea.Model, bool) {
	t.Helper()

	quit := false
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 100, "command loop does not settle")

		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			quit = true
		case NavigateTo, LoginResult, RegisterResult, MenuNotice, serverVersionMsg,
			notesLoadedMsg, categoriesLoadedMsg, noteSavedMsg, noteDeletedMsg,
			noteArchivedMsg, loggedOutMsg, clearStatusMsg:
			var produced tea.Cmd
			m, produced = m.Update(msg)
			queue = append(queue, produced)
		}
	}
	return m, quit
}

// press sends one key to m and drains what it triggers.
func press(t *testing.T, m tea.Model, msg tea.KeyMsg) (tea.Model, bool) {
	t.Helper()
	m, cmd := m.Update(msg)
	return drain(t, m, cmd)
}

// typeInto sends text to m without running the cursor commands it returns.
func typeInto(m tea.Model, text string) tea.Model {
	m, _ = m.Update(keyRunes(text))
	return m
}
