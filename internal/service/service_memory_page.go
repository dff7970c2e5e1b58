package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/store"
	"github.com/Only-Gg/gih/internal/utils"
	"github.com/Only-Gg/gih/models"
)

// memoryPageService is the concrete implementation of MemoryPageService.
// It owns page identity (id generation, share URL), password hashing, and
// memory ordering; persistence is delegated to the MemoryPageRepository.
type memoryPageService struct {
	pageRepository store.MemoryPageRepository

	// ids generates identifiers for newly created pages. The admin can
	// rename the id afterwards from the edit screen.
	ids store.IDGenerator

	logger *logger.Logger
}

// NewMemoryPageService constructs a MemoryPageService backed by the given
// repository and id generator.
func NewMemoryPageService(pageRepository store.MemoryPageRepository, ids store.IDGenerator, logger *logger.Logger) MemoryPageService {
	return &memoryPageService{
		pageRepository: pageRepository,
		ids:            ids,
		logger:         logger,
	}
}

// CreatePage persists a new page from an admin submission.
//
// The plain-text password is replaced with its bcrypt hash, memory positions
// are rewritten to their slice order, and a fresh id plus the /view share URL
// are assigned. Returns the stored page (without the hash in its JSON form).
func (s *memoryPageService) CreatePage(ctx context.Context, request models.MemoryPageCreate) (models.MemoryPage, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("hashing page password failed")
		return models.MemoryPage{}, fmt.Errorf("hashing page password: %w", err)
	}

	pageID := s.ids.Generate()
	page := models.MemoryPage{
		ID:             pageID,
		Title:          request.Title,
		PasswordHash:   hash,
		WelcomeMessage: request.WelcomeMessage,
		Memories:       models.ReorderMemories(request.Memories),
		FinalMessage:   request.FinalMessage,
		CreatedAt:      time.Now().UTC(),
		PageURL:        models.PageViewURL(pageID),
	}

	created, err := s.pageRepository.CreatePage(ctx, page)
	if err != nil {
		log.Err(err).Str("id", pageID).Msg("page creation failed")
		return models.MemoryPage{}, fmt.Errorf("page creation failed: %w", err)
	}

	return created, nil
}

// ListPages returns all pages, newest first.
func (s *memoryPageService) ListPages(ctx context.Context) ([]models.MemoryPage, error) {
	pages, err := s.pageRepository.GetAllPages(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing pages failed")
		return nil, fmt.Errorf("listing pages failed: %w", err)
	}

	return pages, nil
}

// GetPage returns a single page by id. The page content is public metadata
// here; unlocking for recipients goes through VerifyPassword.
func (s *memoryPageService) GetPage(ctx context.Context, pageID string) (models.MemoryPage, error) {
	page, err := s.pageRepository.GetPageByID(ctx, pageID)
	if err != nil {
		if !errors.Is(err, store.ErrPageNotFound) {
			logger.FromContext(ctx).Err(err).Str("id", pageID).Msg("page lookup failed")
		}
		return models.MemoryPage{}, fmt.Errorf("page lookup failed: %w", err)
	}

	return page, nil
}

// UpdatePage applies an edit submission to the page currently stored under
// pageID.
//
// request.ID is the desired identifier: when it differs from pageID the page
// is renamed, which also changes its share URL. A nil request.Password keeps
// the stored hash; a non-nil value is hashed and replaces it.
func (s *memoryPageService) UpdatePage(ctx context.Context, pageID string, request models.MemoryPageUpdate) (models.MemoryPage, error) {
	log := logger.FromContext(ctx)

	var hash string
	if request.Password != nil && *request.Password != "" {
		var err error
		hash, err = utils.HashPassword(*request.Password)
		if err != nil {
			log.Err(err).Str("id", pageID).Msg("hashing page password failed")
			return models.MemoryPage{}, fmt.Errorf("hashing page password: %w", err)
		}
	}

	targetID := request.ID
	if targetID == "" {
		targetID = pageID
	}

	page := models.MemoryPage{
		ID:             targetID,
		Title:          request.Title,
		PasswordHash:   hash,
		WelcomeMessage: request.WelcomeMessage,
		Memories:       models.ReorderMemories(request.Memories),
		FinalMessage:   request.FinalMessage,
		PageURL:        models.PageViewURL(targetID),
	}

	updated, err := s.pageRepository.UpdatePage(ctx, pageID, page)
	if err != nil {
		log.Err(err).Str("id", pageID).Str("target_id", targetID).Msg("page update failed")
		return models.MemoryPage{}, fmt.Errorf("page update failed: %w", err)
	}

	return updated, nil
}

// DeletePage removes the page with the given id.
func (s *memoryPageService) DeletePage(ctx context.Context, pageID string) error {
	if err := s.pageRepository.DeletePage(ctx, pageID); err != nil {
		if !errors.Is(err, store.ErrPageNotFound) {
			logger.FromContext(ctx).Err(err).Str("id", pageID).Msg("page deletion failed")
		}
		return fmt.Errorf("page deletion failed: %w", err)
	}

	return nil
}

// VerifyPassword unlocks a page for a recipient.
//
// Returns the page content when the password matches its stored bcrypt hash,
// ErrWrongPagePassword when it does not, or a wrapped store.ErrPageNotFound
// when no page exists under pageID.
func (s *memoryPageService) VerifyPassword(ctx context.Context, pageID string, password string) (models.MemoryPage, error) {
	log := logger.FromContext(ctx)

	page, err := s.pageRepository.GetPageByID(ctx, pageID)
	if err != nil {
		if !errors.Is(err, store.ErrPageNotFound) {
			log.Err(err).Str("id", pageID).Msg("page lookup failed")
		}
		return models.MemoryPage{}, fmt.Errorf("page lookup failed: %w", err)
	}

	if !utils.CheckPassword(page.PasswordHash, password) {
		log.Warn().Str("id", pageID).Msg("wrong page password attempt")
		return models.MemoryPage{}, ErrWrongPagePassword
	}

	return page, nil
}
