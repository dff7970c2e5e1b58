package service

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/Only-Gg/gih/internal/adapter"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/validators"
	"github.com/Only-Gg/gih/models"
)

type clientPageService struct {
	backend   adapter.BackendAdapter
	validator validators.Validator
	logger    *logger.Logger
}

// NewClientPageService constructs the admin page service. Drafts are checked
// with the same validator the server uses, so an empty submission is rejected
// before any request leaves the client.
func NewClientPageService(backend adapter.BackendAdapter, logger *logger.Logger) ClientPageService {
	return &clientPageService{
		backend:   backend,
		validator: validators.NewMemoryPageValidator(),
		logger:    logger,
	}
}

func (p *clientPageService) List(ctx context.Context) ([]models.MemoryPage, error) {
	pages, err := p.backend.ListPages(ctx)
	if err != nil {
		p.logger.Err(err).Str("func", "clientPageService.List").Msg("error listing pages")
		return nil, mapBackendError(err)
	}

	return pages, nil
}

func (p *clientPageService) Get(ctx context.Context, pageID string) (models.MemoryPage, error) {
	page, err := p.backend.GetPage(ctx, pageID)
	if err != nil {
		p.logger.Err(err).Str("func", "clientPageService.Get").Msg("error getting page")
		return models.MemoryPage{}, mapBackendError(err)
	}

	return page, nil
}

func (p *clientPageService) Create(ctx context.Context, draft models.MemoryPageCreate) (models.MemoryPage, error) {
	if err := p.validator.Validate(ctx, draft); err != nil {
		return models.MemoryPage{}, mapValidationError(err)
	}

	draft.Memories = models.ReorderMemories(draft.Memories)

	created, err := p.backend.CreatePage(ctx, draft)
	if err != nil {
		p.logger.Err(err).Str("func", "clientPageService.Create").Msg("error creating page")
		return models.MemoryPage{}, mapBackendError(err)
	}

	return created, nil
}

func (p *clientPageService) Update(ctx context.Context, pageID string, draft models.MemoryPageCreate, newID string) (models.MemoryPage, error) {
	if newID == "" {
		newID = pageID
	}

	update := models.MemoryPageUpdate{
		ID:             newID,
		Title:          draft.Title,
		WelcomeMessage: draft.WelcomeMessage,
		Memories:       models.ReorderMemories(draft.Memories),
		FinalMessage:   draft.FinalMessage,
	}
	if draft.Password != "" {
		password := draft.Password
		update.Password = &password
	}

	if err := p.validator.Validate(ctx, update); err != nil {
		return models.MemoryPage{}, mapValidationError(err)
	}

	updated, err := p.backend.UpdatePage(ctx, pageID, update)
	if err != nil {
		p.logger.Err(err).Str("func", "clientPageService.Update").Msg("error updating page")
		return models.MemoryPage{}, mapBackendError(err)
	}

	return updated, nil
}

func (p *clientPageService) Delete(ctx context.Context, pageID string) error {
	if err := p.backend.DeletePage(ctx, pageID); err != nil {
		p.logger.Err(err).Str("func", "clientPageService.Delete").Msg("error deleting page")
		return mapBackendError(err)
	}

	return nil
}

func (p *clientPageService) UploadMedia(ctx context.Context, path string) (models.Memory, error) {
	file, err := os.Open(path)
	if err != nil {
		return models.Memory{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}
	defer file.Close()

	uploaded, err := p.backend.UploadFile(ctx, filepath.Base(path), file)
	if err != nil {
		p.logger.Err(err).Str("func", "clientPageService.UploadMedia").Msg("error uploading file")
		return models.Memory{}, mapBackendError(err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	return models.Memory{
		Type: models.MemoryTypeFromContentType(contentType),
		URL:  uploaded.URL,
	}, nil
}

func (p *clientPageService) ShareLink(page models.MemoryPage) string {
	return p.backend.ResolveMediaURL(page.PageURL)
}
