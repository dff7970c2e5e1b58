package service

import (
	"context"
	"fmt"

	"github.com/Only-Gg/gih/internal/adapter"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/store"
	"github.com/Only-Gg/gih/models"
)

type clientAuthService struct {
	backend  adapter.BackendAdapter
	sessions *store.SessionStore
	logger   *logger.Logger
}

// NewClientAuthService constructs the admin session service backed by the
// given transport adapter and session file.
func NewClientAuthService(backend adapter.BackendAdapter, sessions *store.SessionStore, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{backend: backend, sessions: sessions, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidDataProvided
	}

	envelope, err := a.backend.Login(ctx, models.AdminLoginRequest{Username: username, Password: password})
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Msg("login request failed")
		return mapBackendError(err)
	}

	if !envelope.Success {
		return fmt.Errorf("%w: %s", ErrWrongCredentials, envelope.Message)
	}

	if err := a.sessions.Save(envelope.Token); err != nil {
		// The in-memory session still works, only the restart convenience is gone.
		a.logger.Warn().Err(err).Msg("could not persist session")
	}

	return nil
}

func (a *clientAuthService) RestoreSession() error {
	token, err := a.sessions.Load()
	if err != nil {
		return err
	}

	a.backend.SetToken(token)
	return nil
}

func (a *clientAuthService) IsAuthenticated() bool {
	return a.backend.Token() != ""
}

func (a *clientAuthService) Logout() error {
	a.backend.SetToken("")

	if err := a.sessions.Clear(); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Logout").Msg("error clearing session")
		return err
	}

	return nil
}
