// Package tui implements the terminal front end of the notes client on top
// of bubbletea.
package tui

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.BuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.BuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:       services,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// LoginFlow runs the menu, login and register pages until the user is
// logged in. notice, if not empty, is shown above the menu.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}
	if notice != "" {
		pages[pageMenu].Update(MenuNotice{Text: notice})
	}

	root := NewRootModel(ctx, pages, pageMenu, t.buildInfo, t.services.AppInfoService)
	finalModel, err := tea.NewProgram(root, t.options(ctx)...).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.user.ID == "" {
		return models.User{}, ErrUserQuit
	}

	t.logger.Info().Str("user_id", result.user.ID).Msg("logged in")
	return result.user, nil
}

// MainLoop runs the notes screen. logout is true when the user logged out
// or the session was rejected by the server; sessionLost tells the two
// apart.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout, sessionLost bool, err error) {
	model := newNotesModel(ctx, t.services, user)
	finalModel, err := tea.NewProgram(model, t.options(ctx)...).Run()
	if err != nil {
		return false, false, err
	}

	result, ok := finalModel.(notesModel)
	if !ok {
		return false, false, tea.ErrProgramKilled
	}
	return result.logout, result.sessionLost, nil
}

func (t *TUI) options(ctx context.Context) []tea.ProgramOption {
	return append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
}
