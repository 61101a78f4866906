package tui

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formTitle = iota
	formContent
	formCategories
	formFieldCount
)

// noteForm creates a note when original is nil and edits it otherwise.
type noteForm struct {
	original *models.Note

	title      textinput.Model
	content    textarea.Model
	categories textinput.Model
	focus      int

	submitting bool
	errMsg     string
}

func newNoteForm(original *models.Note) noteForm {
	title := textinput.New()
	title.Placeholder = "Заголовок"
	title.CharLimit = 200
	title.Width = 50

	content := textarea.New()
	content.Placeholder = "Текст заметки"
	content.SetWidth(50)
	content.SetHeight(8)
	content.ShowLineNumbers = false

	categories := textinput.New()
	categories.Placeholder = "работа, дом"
	categories.Width = 50

	if original != nil {
		title.SetValue(original.Title)
		content.SetValue(original.Content)
		categories.SetValue(strings.Join(original.Categories, ", "))
	}

	f := noteForm{
		original:   original,
		title:      title,
		content:    content,
		categories: categories,
	}
	f.setFocus(formTitle)
	return f
}

func (f noteForm) isEdit() bool {
	return f.original != nil
}

func (f *noteForm) setFocus(field int) {
	f.title.Blur()
	f.content.Blur()
	f.categories.Blur()

	f.focus = (field + formFieldCount) % formFieldCount
	switch f.focus {
	case formTitle:
		f.title.Focus()
	case formContent:
		f.content.Focus()
	case formCategories:
		f.categories.Focus()
	}
}

// update handles navigation keys and forwards everything else to the
// focused field. Enter inside the content field inserts a newline, so the
// form is submitted with ctrl+s.
func (f noteForm) update(msg tea.Msg) (noteForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.setFocus(f.focus + 1)
			return f, nil
		case key.Matches(keyMsg, keys.backtab):
			f.setFocus(f.focus - 1)
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case formTitle:
		f.title, cmd = f.title.Update(msg)
	case formContent:
		f.content, cmd = f.content.Update(msg)
	case formCategories:
		f.categories, cmd = f.categories.Update(msg)
	}
	return f, cmd
}

// input returns the note the form describes, or an error text when the
// required fields are blank.
func (f noteForm) input() (models.NoteInput, string) {
	input := models.NoteInput{
		Title:      strings.TrimSpace(f.title.Value()),
		Content:    strings.TrimSpace(f.content.Value()),
		Categories: parseCategories(f.categories.Value()),
	}
	if input.Title == "" || input.Content == "" {
		return models.NoteInput{}, "Заголовок и текст обязательны"
	}
	return input, ""
}

// patch returns only the fields that differ from the edited note.
func (f noteForm) patch(input models.NoteInput) models.NotePatch {
	var patch models.NotePatch
	if f.original == nil {
		return patch
	}

	if input.Title != f.original.Title {
		patch.Title = &input.Title
	}
	if input.Content != f.original.Content {
		patch.Content = &input.Content
	}
	if !slices.Equal(input.Categories, f.original.Categories.Normalize()) {
		categories := input.Categories
		patch.Categories = &categories
	}
	return patch
}

func (f noteForm) view() (title, body, hotKeys string) {
	title = "НОВАЯ ЗАМЕТКА"
	if f.isEdit() {
		title = "РЕДАКТИРОВАНИЕ: " + fitText(f.original.Title, 40)
	}

	var b strings.Builder
	b.WriteString("Заголовок\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\nТекст\n")
	b.WriteString(f.content.View())
	b.WriteString("\n\nКатегории (через запятую)\n")
	b.WriteString(f.categories.View())
	b.WriteString("\n")

	if f.submitting {
		b.WriteString("\nСохранение...\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + f.errMsg))
		b.WriteString("\n")
	}

	return title, b.String(), "ctrl+s: сохранить │ tab: след. поле │ esc: отмена"
}

// parseCategories splits a comma separated list into normalized categories.
func parseCategories(raw string) models.Categories {
	return models.Categories(strings.Split(raw, ",")).Normalize()
}
