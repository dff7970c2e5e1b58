package service

import (
	"context"

	"github.com/Only-Gg/gih/models"
)

// ClientAuthService defines the client-side contract for the admin session:
// logging in against the backend, restoring a persisted session between runs,
// and logging out.
type ClientAuthService interface {
	// Login submits the admin credentials to the backend. On success the
	// session token is held by the transport adapter and persisted for the
	// next run. Rejected credentials map to ErrWrongCredentials.
	Login(ctx context.Context, username, password string) error

	// RestoreSession loads the previously persisted session token into the
	// transport adapter. Returns store.ErrNoStoredSession when no session
	// has been saved or the previous one was cleared by a logout.
	RestoreSession() error

	// IsAuthenticated reports whether a session token is currently held.
	IsAuthenticated() bool

	// Logout drops the in-memory token and clears the persisted session.
	Logout() error
}

// ClientPageService defines the client-side contract for managing memory
// pages. Submissions are validated locally before any request is sent; an
// empty memory list never reaches the backend.
type ClientPageService interface {
	// List fetches every memory page for the dashboard.
	List(ctx context.Context) ([]models.MemoryPage, error)

	// Get fetches a single page for the edit screen.
	Get(ctx context.Context, pageID string) (models.MemoryPage, error)

	// Create validates the draft, rewrites memory order to slice position,
	// and creates the page on the backend.
	Create(ctx context.Context, draft models.MemoryPageCreate) (models.MemoryPage, error)

	// Update validates the draft and replaces the page identified by pageID.
	// newID renames the page when it differs from pageID; an empty newID
	// keeps the current id. A blank draft password is omitted from the
	// payload so the stored password is kept.
	Update(ctx context.Context, pageID string, draft models.MemoryPageCreate, newID string) (models.MemoryPage, error)

	// Delete removes the page identified by pageID.
	Delete(ctx context.Context, pageID string) error

	// UploadMedia streams the local file at path to the backend and returns
	// a memory draft pointing at the stored media, with the type inferred
	// from the file's content type.
	UploadMedia(ctx context.Context, path string) (models.Memory, error)

	// ShareLink returns the absolute recipient URL for the page, resolved
	// against the backend origin.
	ShareLink(page models.MemoryPage) string
}

// ClientViewerService defines the recipient-side contract: unlocking a page
// with its view password and preparing the content for playback.
type ClientViewerService interface {
	// Unlock verifies the password for the given page. A wrong password maps
	// to ErrWrongPagePassword and an unknown page id to store.ErrPageNotFound.
	// On success the returned page carries media URLs already resolved
	// against the backend origin.
	Unlock(ctx context.Context, pageID, password string) (models.MemoryPage, error)
}
