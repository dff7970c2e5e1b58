package service

import (
	"github.com/Only-Gg/gih/internal/adapter"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/store"
)

// ClientServices aggregates every service the terminal client consumes.
type ClientServices struct {
	AuthService   ClientAuthService
	PageService   ClientPageService
	ViewerService ClientViewerService
}

// NewClientServices wires the client services around one shared transport
// adapter and the persisted session file.
func NewClientServices(backend adapter.BackendAdapter, sessions *store.SessionStore, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:   NewClientAuthService(backend, sessions, logger),
		PageService:   NewClientPageService(backend, logger),
		ViewerService: NewClientViewerService(backend, logger),
	}
}
