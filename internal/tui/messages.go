package tui

import (
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page once the server answered.
type LoginResult struct {
	User models.User
	Err  error
}

// RegisterResult is produced by the register page once the server answered.
// A successful registration is also a login.
type RegisterResult struct {
	User models.User
	Err  error
}

// MenuNotice is shown above the main menu.
type MenuNotice struct {
	Text string
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type categoriesLoadedMsg struct {
	categories []string
	err        error
}

type noteSavedMsg struct {
	note    models.Note
	created bool
	err     error
}

type noteDeletedMsg struct {
	err error
}

type noteArchivedMsg struct {
	note models.Note
	err  error
}

type loggedOutMsg struct {
	err error
}

type clearStatusMsg struct{}

type serverVersionMsg struct {
	version string
}
