package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/models"
)

const sessionExpiredNotice = "Сессия истекла, войдите снова"

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run resumes a saved session when the server still accepts it, otherwise
// starts with the login flow. Logging out returns to the login flow; quitting
// from any screen ends Run without an error.
func (a *App) Run(ctx context.Context) error {
	user, err := a.services.AuthService.Restore(ctx)
	notice := ""
	switch {
	case err == nil:
		a.logger.Info().Str("user_id", user.ID).Msg("session restored")
	case errors.Is(err, service.ErrNotLoggedIn):
		user = models.User{}
	default:
		a.logger.Warn().Err(err).Msg("could not restore session")
		user = models.User{}
	}

	for {
		if user.ID == "" {
			user, err = a.ui.LoginFlow(ctx, notice)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		logout, sessionLost, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		notice = ""
		if sessionLost {
			notice = sessionExpiredNotice
			if err = a.services.AuthService.Logout(ctx); err != nil {
				a.logger.Warn().Err(err).Msg("could not clear session")
			}
		}
		a.logger.Info().Str("user_id", user.ID).Bool("session_lost", sessionLost).Msg("logged out")
		user = models.User{}
	}
}
