package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type notesScreen int

const (
	screenList notesScreen = iota
	screenDetail
	screenForm
	screenCategories
)

type notesTab int

const (
	tabActive notesTab = iota
	tabArchived
)

const statusTTL = 3 * time.Second

// notesModel is the main screen of a logged-in user.
type notesModel struct {
	ctx   context.Context
	notes service.ClientNoteService
	auth  service.ClientAuthService
	user  models.User

	screen notesScreen
	tab    notesTab

	// category filters the list; empty means every category.
	category    string
	categories  []string
	categoryIdx int

	items   []models.Note
	idx     int
	loading bool

	form noteForm

	confirmDelete bool
	status        string
	errMsg        string

	logout       bool
	sessionLost  bool
	copyToClip   func(string) error
	statusTicker func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
}

func newNotesModel(ctx context.Context, services *service.ClientServices, user models.User) notesModel {
	return notesModel{
		ctx:          ctx,
		notes:        services.NoteService,
		auth:         services.AuthService,
		user:         user,
		loading:      true,
		copyToClip:   clipboard.WriteAll,
		statusTicker: tea.Tick,
	}
}

func (m notesModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadNotes(), m.cmdLoadCategories())
}

func (m notesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.items = msg.notes
		m.clampIdx()
		return m, nil
	case categoriesLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.categories = msg.categories
		return m, nil
	case noteSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			if isSessionLost(msg.err) {
				return m.fail(msg.err)
			}
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		if msg.created {
			return m.reload("Заметка добавлена")
		}
		return m.reload("Заметка обновлена")
	case noteDeletedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.screen = screenList
		return m.reload("Заметка удалена")
	case noteArchivedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.screen = screenList
		if msg.note.Archived {
			return m.reload("Заметка перемещена в архив")
		}
		return m.reload("Заметка восстановлена из архива")
	case loggedOutMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenCategories:
		return m.updateCategories(msg)
	default:
		return m.updateList(msg)
	}
}

func (m notesModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmDelete {
		return m.updateConfirm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		if m.tab == tabActive {
			m.tab = tabArchived
		} else {
			m.tab = tabActive
		}
		m.idx = 0
		m.loading = true
		return m, m.cmdLoadNotes()
	case key.Matches(keyMsg, keys.enter):
		if _, ok := m.current(); ok {
			m.screen = screenDetail
		}
	case key.Matches(keyMsg, keys.newNote):
		m.form = newNoteForm(nil)
		m.screen = screenForm
	case key.Matches(keyMsg, keys.categories):
		m.categoryIdx = 0
		for i, c := range m.categories {
			if c == m.category {
				m.categoryIdx = i + 1
			}
		}
		m.screen = screenCategories
		return m, m.cmdLoadCategories()
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.cmdLoadNotes(), m.cmdLoadCategories())
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	default:
		return m.updateNoteAction(keyMsg)
	}

	return m, nil
}

func (m notesModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmDelete {
		return m.updateConfirm(keyMsg)
	}

	if key.Matches(keyMsg, keys.esc) {
		m.screen = screenList
		return m, nil
	}
	return m.updateNoteAction(keyMsg)
}

// updateNoteAction handles the keys that act on the selected note in both
// the list and the detail screen.
func (m notesModel) updateNoteAction(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.edit):
		m.form = newNoteForm(&note)
		m.screen = screenForm
	case key.Matches(keyMsg, keys.archive):
		return m, m.cmdToggleArchive(note)
	case key.Matches(keyMsg, keys.delete):
		m.confirmDelete = true
	case key.Matches(keyMsg, keys.copy):
		if err := m.copyToClip(note.Content); err != nil {
			m.errMsg = "Ошибка копирования: " + err.Error()
			return m, nil
		}
		return m.flash("Скопировано")
	}

	return m, nil
}

func (m notesModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirmDelete = false
		if note, ok := m.current(); ok {
			return m, m.cmdDelete(note.ID)
		}
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.confirmDelete = false
	}
	return m, nil
}

func (m notesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.form.submitting {
				return m, nil
			}

			input, errMsg := m.form.input()
			if errMsg != "" {
				m.form.errMsg = errMsg
				return m, nil
			}

			if !m.form.isEdit() {
				m.form.errMsg = ""
				m.form.submitting = true
				return m, m.cmdCreate(input)
			}

			patch := m.form.patch(input)
			if patch.IsEmpty() {
				m.screen = screenList
				return m.flash("Без изменений")
			}
			m.form.errMsg = ""
			m.form.submitting = true
			return m, m.cmdUpdate(m.form.original.ID, patch)
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// updateCategories drives the category picker. Index 0 is "all categories".
func (m notesModel) updateCategories(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenList
	case key.Matches(keyMsg, keys.up):
		if m.categoryIdx > 0 {
			m.categoryIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.categoryIdx < len(m.categories) {
			m.categoryIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.category = ""
		if m.categoryIdx > 0 && m.categoryIdx <= len(m.categories) {
			m.category = m.categories[m.categoryIdx-1]
		}
		m.screen = screenList
		m.idx = 0
		m.loading = true
		return m, m.cmdLoadNotes()
	}

	return m, nil
}

// fail shows err, or ends the main loop when the session is gone so that
// the user is sent back to the login flow.
func (m notesModel) fail(err error) (tea.Model, tea.Cmd) {
	if isSessionLost(err) {
		m.sessionLost = true
		m.logout = true
		return m, tea.Quit
	}
	m.errMsg = humanizeError(err)
	return m, nil
}

func (m notesModel) reload(status string) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.loading = true
	m.status = status
	return m, tea.Batch(m.cmdLoadNotes(), m.cmdLoadCategories(), m.cmdClearStatus())
}

func (m notesModel) flash(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, m.cmdClearStatus()
}

func (m notesModel) current() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

func (m *notesModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}
