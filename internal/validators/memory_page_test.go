// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/Only-Gg/gih/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrStr(s string) *string { return &s }

func validMemory() models.Memory {
	return models.Memory{
		Type:    models.MemoryImage,
		URL:     "/uploads/photo.jpg",
		Caption: "لحظة جميلة",
		Order:   0,
	}
}

func validPageCreate() models.MemoryPageCreate {
	return models.MemoryPageCreate{
		Title:          "ذكرياتنا",
		Password:       "secret",
		WelcomeMessage: "أهلاً",
		Memories:       []models.Memory{validMemory()},
		FinalMessage:   "مع الحب",
	}
}

func validPageUpdate() models.MemoryPageUpdate {
	return models.MemoryPageUpdate{
		ID:             "page-1",
		Title:          "ذكرياتنا",
		WelcomeMessage: "أهلاً",
		Memories:       []models.Memory{validMemory()},
		FinalMessage:   "مع الحب",
	}
}

// ---------------------------------------------------------------------------
// TestNewMemoryPageValidator
// ---------------------------------------------------------------------------

func TestNewMemoryPageValidator(t *testing.T) {
	v := NewMemoryPageValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewMemoryPageValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("MemoryPageCreate value", func(t *testing.T) {
		err := v.Validate(ctx, validPageCreate())
		require.NoError(t, err)
	})

	t.Run("MemoryPageCreate pointer", func(t *testing.T) {
		p := validPageCreate()
		err := v.Validate(ctx, &p)
		require.NoError(t, err)
	})

	t.Run("MemoryPageUpdate value", func(t *testing.T) {
		err := v.Validate(ctx, validPageUpdate())
		require.NoError(t, err)
	})

	t.Run("MemoryPageUpdate pointer", func(t *testing.T) {
		p := validPageUpdate()
		err := v.Validate(ctx, &p)
		require.NoError(t, err)
	})

	t.Run("Memory value", func(t *testing.T) {
		err := v.Validate(ctx, validMemory())
		require.NoError(t, err)
	})

	t.Run("Memory pointer", func(t *testing.T) {
		m := validMemory()
		err := v.Validate(ctx, &m)
		require.NoError(t, err)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_PageCreate
// ---------------------------------------------------------------------------

func TestValidate_PageCreate(t *testing.T) {
	v := NewMemoryPageValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.MemoryPageCreate)
		wantErr error
	}{
		{
			name:    "valid page",
			mutate:  func(p *models.MemoryPageCreate) {},
			wantErr: nil,
		},
		{
			name:    "empty title",
			mutate:  func(p *models.MemoryPageCreate) { p.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "empty password",
			mutate:  func(p *models.MemoryPageCreate) { p.Password = "" },
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "no memories",
			mutate:  func(p *models.MemoryPageCreate) { p.Memories = nil },
			wantErr: ErrNoMemories,
		},
		{
			name:    "memory without url",
			mutate:  func(p *models.MemoryPageCreate) { p.Memories[0].URL = "" },
			wantErr: ErrEmptyMediaURL,
		},
		{
			name:    "memory with unknown type",
			mutate:  func(p *models.MemoryPageCreate) { p.Memories[0].Type = "audio" },
			wantErr: ErrInvalidMemoryType,
		},
		{
			name: "empty welcome and final messages are allowed",
			mutate: func(p *models.MemoryPageCreate) {
				p.WelcomeMessage = ""
				p.FinalMessage = ""
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := validPageCreate()
			tt.mutate(&page)

			err := v.Validate(ctx, page)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PageCreate_FieldScoping(t *testing.T) {
	v := NewMemoryPageValidator()
	ctx := context.Background()

	page := validPageCreate()
	page.Password = ""

	// Scoped to title only: the missing password must not be reported.
	err := v.Validate(ctx, page, FieldTitle)
	require.NoError(t, err)

	err = v.Validate(ctx, page, FieldPassword)
	require.ErrorIs(t, err, ErrEmptyPassword)

	err = v.Validate(ctx, page, "no-such-field")
	require.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidate_PageUpdate
// ---------------------------------------------------------------------------

func TestValidate_PageUpdate(t *testing.T) {
	v := NewMemoryPageValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.MemoryPageUpdate)
		wantErr error
	}{
		{
			name:    "valid update without password keeps stored one",
			mutate:  func(p *models.MemoryPageUpdate) { p.Password = nil },
			wantErr: nil,
		},
		{
			name:    "valid update with replacement password",
			mutate:  func(p *models.MemoryPageUpdate) { p.Password = ptrStr("new-secret") },
			wantErr: nil,
		},
		{
			name:    "explicit empty password is rejected",
			mutate:  func(p *models.MemoryPageUpdate) { p.Password = ptrStr("") },
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "empty id",
			mutate:  func(p *models.MemoryPageUpdate) { p.ID = "" },
			wantErr: ErrEmptyPageID,
		},
		{
			name:    "empty title",
			mutate:  func(p *models.MemoryPageUpdate) { p.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "no memories",
			mutate:  func(p *models.MemoryPageUpdate) { p.Memories = []models.Memory{} },
			wantErr: ErrNoMemories,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := validPageUpdate()
			tt.mutate(&page)

			err := v.Validate(ctx, page)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_MemoriesList_ErrorIndex
// ---------------------------------------------------------------------------

func TestValidate_MemoriesList_ErrorIndex(t *testing.T) {
	v := NewMemoryPageValidator()
	ctx := context.Background()

	page := validPageCreate()
	page.Memories = append(page.Memories, models.Memory{Type: models.MemoryVideo, URL: ""})

	err := v.Validate(ctx, page)

	require.ErrorIs(t, err, ErrEmptyMediaURL)
	assert.Contains(t, err.Error(), "index 1")
}
