// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/Only-Gg/gih/internal/adapter"
	"github.com/Only-Gg/gih/internal/app"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/store"
	"github.com/Only-Gg/gih/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewerUnlock_Success(t *testing.T) {
	page := models.MemoryPage{
		ID:             "abc123",
		Title:          "ذكرياتنا",
		WelcomeMessage: "أهلاً",
		Memories: []models.Memory{
			{Type: models.MemoryImage, URL: "/uploads/a.jpg", Order: 0},
			{Type: models.MemoryVideo, URL: "https://cdn.example.com/b.mp4", Order: 1},
		},
		FinalMessage: "مع الحب",
	}

	backend := &mockBackendAdapter{
		verifyPasswordFn: func(_ context.Context, pageID, password string) (models.PasswordVerifyResponse, error) {
			assert.Equal(t, "abc123", pageID)
			assert.Equal(t, "secret", password)
			return models.PasswordVerifyResponse{Success: true, Message: app.MsgPasswordVerified, Data: &page}, nil
		},
	}
	viewer := NewClientViewerService(backend, logger.Nop())

	unlocked, err := viewer.Unlock(context.Background(), "abc123", "secret")

	require.NoError(t, err)
	assert.Equal(t, "abc123", unlocked.ID)
	assert.Equal(t, 4, unlocked.RevealStepCount())

	// Root-relative media is resolved against the backend origin, absolute
	// references pass through.
	assert.Equal(t, "http://backend:8080/uploads/a.jpg", unlocked.Memories[0].URL)
	assert.Equal(t, "https://cdn.example.com/b.mp4", unlocked.Memories[1].URL)
}

func TestViewerUnlock_WrongPassword(t *testing.T) {
	backend := &mockBackendAdapter{
		verifyPasswordFn: func(context.Context, string, string) (models.PasswordVerifyResponse, error) {
			return models.PasswordVerifyResponse{Success: false, Message: app.MsgWrongPagePassword}, nil
		},
	}
	viewer := NewClientViewerService(backend, logger.Nop())

	_, err := viewer.Unlock(context.Background(), "abc123", "wrong")

	assert.ErrorIs(t, err, ErrWrongPagePassword)
	assert.Contains(t, err.Error(), app.MsgWrongPagePassword)
}

func TestViewerUnlock_PageNotFound(t *testing.T) {
	backend := &mockBackendAdapter{
		verifyPasswordFn: func(context.Context, string, string) (models.PasswordVerifyResponse, error) {
			return models.PasswordVerifyResponse{}, adapter.ErrNotFound
		},
	}
	viewer := NewClientViewerService(backend, logger.Nop())

	_, err := viewer.Unlock(context.Background(), "missing", "secret")

	assert.ErrorIs(t, err, store.ErrPageNotFound)
}

func TestViewerUnlock_EmptyInput(t *testing.T) {
	called := false
	backend := &mockBackendAdapter{
		verifyPasswordFn: func(context.Context, string, string) (models.PasswordVerifyResponse, error) {
			called = true
			return models.PasswordVerifyResponse{}, nil
		},
	}
	viewer := NewClientViewerService(backend, logger.Nop())

	_, err := viewer.Unlock(context.Background(), "abc123", "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, called)
}

func TestViewerUnlock_MissingData(t *testing.T) {
	backend := &mockBackendAdapter{
		verifyPasswordFn: func(context.Context, string, string) (models.PasswordVerifyResponse, error) {
			return models.PasswordVerifyResponse{Success: true, Message: app.MsgPasswordVerified}, nil
		},
	}
	viewer := NewClientViewerService(backend, logger.Nop())

	_, err := viewer.Unlock(context.Background(), "abc123", "secret")

	assert.ErrorIs(t, err, errEmptyUnlockResponse)
}
