package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Only-Gg/gih/internal/adapter"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/models"
)

var errEmptyUnlockResponse = errors.New("verified response carries no page data")

type clientViewerService struct {
	backend adapter.BackendAdapter
	logger  *logger.Logger
}

// NewClientViewerService constructs the recipient-side unlocking service.
func NewClientViewerService(backend adapter.BackendAdapter, logger *logger.Logger) ClientViewerService {
	return &clientViewerService{backend: backend, logger: logger}
}

func (v *clientViewerService) Unlock(ctx context.Context, pageID, password string) (models.MemoryPage, error) {
	if pageID == "" || password == "" {
		return models.MemoryPage{}, ErrInvalidDataProvided
	}

	envelope, err := v.backend.VerifyPassword(ctx, pageID, password)
	if err != nil {
		v.logger.Err(err).Str("func", "clientViewerService.Unlock").Msg("verify password request failed")
		return models.MemoryPage{}, mapBackendError(err)
	}

	if !envelope.Success {
		return models.MemoryPage{}, fmt.Errorf("%w: %s", ErrWrongPagePassword, envelope.Message)
	}
	if envelope.Data == nil {
		return models.MemoryPage{}, errEmptyUnlockResponse
	}

	page := *envelope.Data
	for i := range page.Memories {
		page.Memories[i].URL = v.backend.ResolveMediaURL(page.Memories[i].URL)
	}

	return page, nil
}
