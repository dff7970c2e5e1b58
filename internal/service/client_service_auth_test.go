// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/Only-Gg/gih/internal/adapter"
	"github.com/Only-Gg/gih/internal/app"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/store"
	"github.com/Only-Gg/gih/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBackendAdapter is a function-field test double shared by the client
// service tests. Unset functions return zero values.
type mockBackendAdapter struct {
	token string

	loginFn          func(ctx context.Context, credentials models.AdminLoginRequest) (models.AdminLoginResponse, error)
	listPagesFn      func(ctx context.Context) ([]models.MemoryPage, error)
	getPageFn        func(ctx context.Context, pageID string) (models.MemoryPage, error)
	createPageFn     func(ctx context.Context, page models.MemoryPageCreate) (models.MemoryPage, error)
	updatePageFn     func(ctx context.Context, pageID string, page models.MemoryPageUpdate) (models.MemoryPage, error)
	deletePageFn     func(ctx context.Context, pageID string) error
	uploadFileFn     func(ctx context.Context, filename string, content io.Reader) (models.UploadResponse, error)
	verifyPasswordFn func(ctx context.Context, pageID, password string) (models.PasswordVerifyResponse, error)
}

func (m *mockBackendAdapter) SetToken(token string) { m.token = token }
func (m *mockBackendAdapter) Token() string         { return m.token }

func (m *mockBackendAdapter) Login(ctx context.Context, credentials models.AdminLoginRequest) (models.AdminLoginResponse, error) {
	if m.loginFn == nil {
		return models.AdminLoginResponse{}, nil
	}
	return m.loginFn(ctx, credentials)
}

func (m *mockBackendAdapter) ListPages(ctx context.Context) ([]models.MemoryPage, error) {
	if m.listPagesFn == nil {
		return nil, nil
	}
	return m.listPagesFn(ctx)
}

func (m *mockBackendAdapter) GetPage(ctx context.Context, pageID string) (models.MemoryPage, error) {
	if m.getPageFn == nil {
		return models.MemoryPage{}, nil
	}
	return m.getPageFn(ctx, pageID)
}

func (m *mockBackendAdapter) CreatePage(ctx context.Context, page models.MemoryPageCreate) (models.MemoryPage, error) {
	if m.createPageFn == nil {
		return models.MemoryPage{}, nil
	}
	return m.createPageFn(ctx, page)
}

func (m *mockBackendAdapter) UpdatePage(ctx context.Context, pageID string, page models.MemoryPageUpdate) (models.MemoryPage, error) {
	if m.updatePageFn == nil {
		return models.MemoryPage{}, nil
	}
	return m.updatePageFn(ctx, pageID, page)
}

func (m *mockBackendAdapter) DeletePage(ctx context.Context, pageID string) error {
	if m.deletePageFn == nil {
		return nil
	}
	return m.deletePageFn(ctx, pageID)
}

func (m *mockBackendAdapter) UploadFile(ctx context.Context, filename string, content io.Reader) (models.UploadResponse, error) {
	if m.uploadFileFn == nil {
		return models.UploadResponse{}, nil
	}
	return m.uploadFileFn(ctx, filename, content)
}

func (m *mockBackendAdapter) VerifyPassword(ctx context.Context, pageID, password string) (models.PasswordVerifyResponse, error) {
	if m.verifyPasswordFn == nil {
		return models.PasswordVerifyResponse{}, nil
	}
	return m.verifyPasswordFn(ctx, pageID, password)
}

func (m *mockBackendAdapter) ResolveMediaURL(raw string) string {
	if raw == "" {
		return raw
	}
	if raw[0] == '/' {
		return "http://backend:8080" + raw
	}
	return raw
}

func newSessionStore(t *testing.T) *store.SessionStore {
	t.Helper()
	return store.NewSessionStore(filepath.Join(t.TempDir(), "session.json"), logger.Nop())
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthLogin_Success(t *testing.T) {
	backend := &mockBackendAdapter{
		loginFn: func(_ context.Context, credentials models.AdminLoginRequest) (models.AdminLoginResponse, error) {
			assert.Equal(t, "OnlyGg", credentials.Username)
			return models.AdminLoginResponse{Success: true, Message: app.MsgLoginSucceeded, Token: "signed-token"}, nil
		},
	}
	sessions := newSessionStore(t)
	auth := NewClientAuthService(backend, sessions, logger.Nop())

	require.NoError(t, auth.Login(context.Background(), "OnlyGg", "123456"))

	token, err := sessions.Load()
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestClientAuthLogin_EmptyCredentials(t *testing.T) {
	called := false
	backend := &mockBackendAdapter{
		loginFn: func(context.Context, models.AdminLoginRequest) (models.AdminLoginResponse, error) {
			called = true
			return models.AdminLoginResponse{}, nil
		},
	}
	auth := NewClientAuthService(backend, newSessionStore(t), logger.Nop())

	err := auth.Login(context.Background(), "", "123456")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, called)
}

func TestClientAuthLogin_Rejected(t *testing.T) {
	backend := &mockBackendAdapter{
		loginFn: func(context.Context, models.AdminLoginRequest) (models.AdminLoginResponse, error) {
			return models.AdminLoginResponse{Success: false, Message: app.MsgInvalidCredentials}, nil
		},
	}
	sessions := newSessionStore(t)
	auth := NewClientAuthService(backend, sessions, logger.Nop())

	err := auth.Login(context.Background(), "OnlyGg", "wrong")

	assert.ErrorIs(t, err, ErrWrongCredentials)
	assert.Contains(t, err.Error(), app.MsgInvalidCredentials)

	_, loadErr := sessions.Load()
	assert.ErrorIs(t, loadErr, store.ErrNoStoredSession)
}

func TestClientAuthLogin_TransportError(t *testing.T) {
	backend := &mockBackendAdapter{
		loginFn: func(context.Context, models.AdminLoginRequest) (models.AdminLoginResponse, error) {
			return models.AdminLoginResponse{}, errors.New("connection refused")
		},
	}
	auth := NewClientAuthService(backend, newSessionStore(t), logger.Nop())

	err := auth.Login(context.Background(), "OnlyGg", "123456")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongCredentials)
}

// ── RestoreSession / IsAuthenticated / Logout ────────────────────────────────

func TestClientAuthRestoreSession(t *testing.T) {
	backend := &mockBackendAdapter{}
	sessions := newSessionStore(t)
	require.NoError(t, sessions.Save("persisted-token"))

	auth := NewClientAuthService(backend, sessions, logger.Nop())

	require.NoError(t, auth.RestoreSession())
	assert.Equal(t, "persisted-token", backend.Token())
	assert.True(t, auth.IsAuthenticated())
}

func TestClientAuthRestoreSession_None(t *testing.T) {
	backend := &mockBackendAdapter{}
	auth := NewClientAuthService(backend, newSessionStore(t), logger.Nop())

	err := auth.RestoreSession()

	assert.ErrorIs(t, err, store.ErrNoStoredSession)
	assert.False(t, auth.IsAuthenticated())
}

func TestClientAuthLogout(t *testing.T) {
	backend := &mockBackendAdapter{token: "signed-token"}
	sessions := newSessionStore(t)
	require.NoError(t, sessions.Save("signed-token"))

	auth := NewClientAuthService(backend, sessions, logger.Nop())

	require.NoError(t, auth.Logout())
	assert.False(t, auth.IsAuthenticated())

	_, err := sessions.Load()
	assert.ErrorIs(t, err, store.ErrNoStoredSession)
}

// mapBackendError is shared by every client service; the page and viewer
// tests exercise the sentinel branches through their services.
func TestMapBackendError_Passthrough(t *testing.T) {
	base := errors.New("dial tcp: connection refused")
	assert.Equal(t, base, mapBackendError(base))
	assert.NoError(t, mapBackendError(nil))
	assert.ErrorIs(t, mapBackendError(adapter.ErrUnauthorized), ErrTokenIsExpiredOrInvalid)
}
