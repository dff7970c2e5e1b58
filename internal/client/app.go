package client

import (
	"context"
	"errors"

	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/service"
	"github.com/Only-Gg/gih/internal/store"
	"github.com/Only-Gg/gih/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the client services and the terminal UI into a runnable
// application.
func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run starts the terminal UI and blocks until the user quits. A persisted
// session is restored first so a restart lands on the dashboard. After a
// logout the UI is started again from the login screen.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.services.AuthService.RestoreSession(); err != nil {
		if !errors.Is(err, store.ErrNoStoredSession) {
			a.logger.Warn().Err(err).Msg("could not restore previous session")
		}
	}

	for {
		logout, err := a.ui.Run(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(); err != nil {
			a.logger.Warn().Err(err).Msg("error clearing session on logout")
		}
	}
}
