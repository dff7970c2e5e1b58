package service

import (
	"context"
	"io"

	"github.com/Only-Gg/gih/models"
)

type AuthService interface {
	Login(ctx context.Context, credentials models.AdminLoginRequest) (models.Admin, error)
	CreateToken(ctx context.Context, admin models.Admin) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	EnsureDefaultAdmin(ctx context.Context) error
}

type MemoryPageService interface {
	CreatePage(ctx context.Context, request models.MemoryPageCreate) (models.MemoryPage, error)
	ListPages(ctx context.Context) ([]models.MemoryPage, error)
	GetPage(ctx context.Context, pageID string) (models.MemoryPage, error)
	UpdatePage(ctx context.Context, pageID string, request models.MemoryPageUpdate) (models.MemoryPage, error)
	DeletePage(ctx context.Context, pageID string) error
	VerifyPassword(ctx context.Context, pageID string, password string) (models.MemoryPage, error)
}

type UploadService interface {
	SaveUpload(ctx context.Context, originalFilename string, content io.Reader) (models.UploadResponse, error)
}

// MemoryPageServiceWrapper defines middleware composition for
// MemoryPageService. Implementations wrap an existing MemoryPageService to
// add behavior such as logging or validating.
type MemoryPageServiceWrapper interface {
	Wrap(MemoryPageService) MemoryPageService // returns a decorated MemoryPageService applying additional behavior
}
