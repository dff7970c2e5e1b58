// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used by the terminal client to
// talk to the gih backend.
//
// The primary abstraction is [BackendAdapter], which decouples the client
// services from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPBackendAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrConflict] for 409).
package adapter

import (
	"context"
	"io"

	"github.com/Only-Gg/gih/models"
)

// BackendAdapter defines transport-agnostic communication with the gih
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Business rejections (wrong credentials, wrong page password) arrive as
// HTTP 200 envelopes with Success=false and are returned as-is, not as
// errors; only transport and server failures produce a non-nil error.
type BackendAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. An empty string drops the token.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Login submits the admin credentials to the backend. On an accepted
	// login the returned envelope carries the session token and the token is
	// stored via SetToken. A rejected login is a Success=false envelope, not
	// an error.
	Login(ctx context.Context, credentials models.AdminLoginRequest) (models.AdminLoginResponse, error)

	// ListPages fetches every memory page owned by the admin.
	ListPages(ctx context.Context) ([]models.MemoryPage, error)

	// GetPage fetches a single memory page by its public id.
	// Returns [ErrNotFound] (wrapped) when the id is unknown.
	GetPage(ctx context.Context, pageID string) (models.MemoryPage, error)

	// CreatePage creates a new memory page and returns the stored record
	// including its server-assigned id and share URL. Returns [ErrConflict]
	// (wrapped) when the id is already taken.
	CreatePage(ctx context.Context, page models.MemoryPageCreate) (models.MemoryPage, error)

	// UpdatePage replaces the page identified by pageID. The update payload
	// may carry a different id to rename the page. Returns [ErrNotFound]
	// (wrapped) for an unknown page and [ErrConflict] (wrapped) when the new
	// id collides with an existing one.
	UpdatePage(ctx context.Context, pageID string, page models.MemoryPageUpdate) (models.MemoryPage, error)

	// DeletePage removes the page identified by pageID.
	// Returns [ErrNotFound] (wrapped) when the id is unknown.
	DeletePage(ctx context.Context, pageID string) error

	// UploadFile streams a media file to the backend as a multipart request
	// and returns the stored file's root-relative URL and generated name.
	UploadFile(ctx context.Context, filename string, content io.Reader) (models.UploadResponse, error)

	// VerifyPassword submits a recipient's password attempt for the given
	// page. A wrong password is a Success=false envelope, not an error; on
	// success the envelope carries the unlocked page content.
	VerifyPassword(ctx context.Context, pageID, password string) (models.PasswordVerifyResponse, error)

	// ResolveMediaURL turns a stored media reference into an absolute URL:
	// absolute references are returned unchanged, root-relative and bare
	// ones are prefixed with the backend origin.
	ResolveMediaURL(raw string) string
}
