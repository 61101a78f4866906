package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	titleColWidth    = 28
	categoryColWidth = 24
	ownerColWidth    = 14
	timeLayout       = "02.01.2006 15:04"
)

func (m notesModel) View() string {
	var title, body, hotKeys string

	switch m.screen {
	case screenForm:
		title, body, hotKeys = m.form.view()
	case screenDetail:
		title, body, hotKeys = m.viewDetail()
	case screenCategories:
		title, body, hotKeys = m.viewCategories()
	default:
		title, body, hotKeys = m.viewList()
	}

	if m.confirmDelete {
		body += "\n" + overlayBoxStyle.Render("Удалить заметку? y: да │ n: нет")
	}
	if m.status != "" {
		body += "\n" + statusStyle.Render("OK: "+m.status)
	}
	if m.errMsg != "" {
		body += "\n" + errorStyle.Render("Ошибка: "+m.errMsg)
	}

	return appStyle.Render(renderPage(title, strings.TrimRight(body, "\n"), hotKeys))
}

func (m notesModel) viewList() (title, body, hotKeys string) {
	title = "ЗАМЕТКИ: " + m.user.Username
	if m.user.Role == models.RoleAdmin {
		title += " (admin)"
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n")
	b.WriteString("Категория: ")
	if m.category == "" {
		b.WriteString("все")
	} else {
		b.WriteString(m.category)
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case len(m.items) == 0:
		b.WriteString("Нет заметок\n")
	default:
		showOwner := m.user.Role == models.RoleAdmin
		b.WriteString(m.viewHeader(showOwner))
		for i, note := range m.items {
			b.WriteString(m.viewRow(i, note, showOwner))
		}
	}

	hotKeys = "enter: открыть │ n: новая │ e: изменить │ a: архив │ d: удалить │ y: копировать │ tab: вкладка │ c: категория │ r: обновить │ l: выйти из аккаунта │ q: выход"
	return title, b.String(), hotKeys
}

func (m notesModel) viewTabs() string {
	active, archived := "Активные", "Архив"
	if m.tab == tabActive {
		active = activeTabStyle.Render("[" + active + "]")
		archived = " " + archived + " "
	} else {
		active = " " + active + " "
		archived = activeTabStyle.Render("[" + archived + "]")
	}
	return active + " │ " + archived
}

func (m notesModel) viewHeader(showOwner bool) string {
	header := fmt.Sprintf("  %-*s │ %-*s", titleColWidth, "Заголовок", categoryColWidth, "Категории")
	width := 2 + titleColWidth + 3 + categoryColWidth
	if showOwner {
		header += fmt.Sprintf(" │ %-*s", ownerColWidth, "Автор")
		width += 3 + ownerColWidth
	}
	return header + "\n" + strings.Repeat("─", width) + "\n"
}

func (m notesModel) viewRow(i int, note models.Note, showOwner bool) string {
	cursor := "  "
	if i == m.idx {
		cursor = "> "
	}

	row := fmt.Sprintf("%s%-*s │ %-*s",
		cursor,
		titleColWidth, fitText(note.Title, titleColWidth),
		categoryColWidth, fitText(strings.Join(note.Categories, ", "), categoryColWidth),
	)
	if showOwner {
		row += fmt.Sprintf(" │ %-*s", ownerColWidth, fitText(ownerName(note), ownerColWidth))
	}
	return row + "\n"
}

func (m notesModel) viewDetail() (title, body, hotKeys string) {
	note, ok := m.current()
	if !ok {
		return "ЗАМЕТКА", "", "esc: назад"
	}

	var b strings.Builder
	b.WriteString("[ ОСНОВНОЕ ]\n")
	b.WriteString("Заголовок : " + note.Title + "\n")
	b.WriteString("Категории : " + valueOrDash(strings.Join(note.Categories, ", ")) + "\n")
	if note.Archived {
		b.WriteString("Статус    : в архиве\n")
	} else {
		b.WriteString("Статус    : активна\n")
	}
	if note.Owner != nil {
		b.WriteString("Автор     : " + note.Owner.Username + " <" + note.Owner.Email + ">\n")
	}
	if !note.CreatedAt.IsZero() {
		b.WriteString("Создана   : " + note.CreatedAt.Local().Format(timeLayout) + "\n")
	}
	if !note.UpdatedAt.IsZero() {
		b.WriteString("Изменена  : " + note.UpdatedAt.Local().Format(timeLayout) + "\n")
	}

	b.WriteString("\n[ ТЕКСТ ]\n")
	if strings.TrimSpace(note.Content) != "" {
		b.WriteString(note.Content + "\n")
	} else {
		b.WriteString("(пусто)\n")
	}

	archiveHint := "a: в архив"
	if note.Archived {
		archiveHint = "a: из архива"
	}

	return "ЗАМЕТКА: " + fitText(firstLine(note.Title), 40), b.String(),
		"e: изменить │ " + archiveHint + " │ d: удалить │ y: копировать текст │ esc: назад"
}

func (m notesModel) viewCategories() (title, body, hotKeys string) {
	var b strings.Builder

	options := append([]string{"все категории"}, m.categories...)
	for i, option := range options {
		cursor := "  "
		if i == m.categoryIdx {
			cursor = "> "
		}
		b.WriteString(cursor + option + "\n")
	}

	return "КАТЕГОРИИ", b.String(), "enter: выбрать │ ↑/↓: навигация │ esc: назад"
}

func ownerName(note models.Note) string {
	if note.Owner == nil {
		return "-"
	}
	return note.Owner.Username
}
