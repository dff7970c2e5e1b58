// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui contains the Bubble Tea terminal interface of the gih client:
// the admin login screen, the page dashboard, the page editor, and the
// recipient viewer with its animated reveal.
package tui

import (
	"context"

	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the terminal interface on top of the client services.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

// New constructs the terminal interface.
func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// Run starts the interface. Authenticated sessions land on the dashboard,
// everything else on the login screen. Returns logout=true when the user
// chose to log out, so the caller can clear the session and restart.
func (t *TUI) Run(ctx context.Context) (logout bool, err error) {
	model := newAppModel(ctx, t.services)

	t.logger.Debug().Bool("authenticated", t.services.AuthService.IsAuthenticated()).Msg("starting terminal ui")

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
