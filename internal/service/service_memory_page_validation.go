package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Only-Gg/gih/internal/validators"
	"github.com/Only-Gg/gih/models"
)

// MemoryPageValidationService decorates a MemoryPageService with structural
// validation of admin submissions. Read paths and recipient unlocking pass
// through untouched.
type MemoryPageValidationService struct {
	inner     MemoryPageService
	validator validators.Validator
}

// NewMemoryPageValidationService returns a wrapper that validates create and
// update submissions before delegating to the wrapped service.
func NewMemoryPageValidationService() MemoryPageServiceWrapper {
	return &MemoryPageValidationService{
		validator: validators.NewMemoryPageValidator(),
	}
}

func (v *MemoryPageValidationService) CreatePage(ctx context.Context, request models.MemoryPageCreate) (models.MemoryPage, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.MemoryPage{}, mapValidationError(err)
	}

	return v.inner.CreatePage(ctx, request)
}

func (v *MemoryPageValidationService) ListPages(ctx context.Context) ([]models.MemoryPage, error) {
	return v.inner.ListPages(ctx)
}

func (v *MemoryPageValidationService) GetPage(ctx context.Context, pageID string) (models.MemoryPage, error) {
	return v.inner.GetPage(ctx, pageID)
}

func (v *MemoryPageValidationService) UpdatePage(ctx context.Context, pageID string, request models.MemoryPageUpdate) (models.MemoryPage, error) {
	if request.ID == "" {
		request.ID = pageID
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.MemoryPage{}, mapValidationError(err)
	}

	return v.inner.UpdatePage(ctx, pageID, request)
}

func (v *MemoryPageValidationService) DeletePage(ctx context.Context, pageID string) error {
	return v.inner.DeletePage(ctx, pageID)
}

func (v *MemoryPageValidationService) VerifyPassword(ctx context.Context, pageID string, password string) (models.MemoryPage, error) {
	return v.inner.VerifyPassword(ctx, pageID, password)
}

// Wrap stores the decorated service and returns the wrapper as a
// MemoryPageService.
func (v *MemoryPageValidationService) Wrap(inner MemoryPageService) MemoryPageService {
	v.inner = inner
	return v
}

// mapValidationError translates low-level validator errors into the service
// sentinels callers branch on.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrEmptyTitle):
		return fmt.Errorf("%w: %w", ErrValidationNoTitle, err)
	case errors.Is(err, validators.ErrEmptyPassword):
		return fmt.Errorf("%w: %w", ErrValidationNoPassword, err)
	case errors.Is(err, validators.ErrNoMemories):
		return fmt.Errorf("%w: %w", ErrValidationNoMemories, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
