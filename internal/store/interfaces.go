package store

import (
	"context"

	"github.com/Only-Gg/gih/models"
)

// AdminRepository persists administrator accounts.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	FindAdminByUsername(ctx context.Context, username string) (models.Admin, error)
}

// MemoryPageRepository persists memory pages and their media references.
//
// UpdatePage treats page.ID as the desired identifier: when it differs from
// pageID the page is renamed, subject to the uniqueness constraint. An empty
// page.PasswordHash keeps the stored hash untouched.
type MemoryPageRepository interface {
	CreatePage(ctx context.Context, page models.MemoryPage) (models.MemoryPage, error)
	GetAllPages(ctx context.Context) ([]models.MemoryPage, error)
	GetPageByID(ctx context.Context, id string) (models.MemoryPage, error)
	UpdatePage(ctx context.Context, pageID string, page models.MemoryPage) (models.MemoryPage, error)
	DeletePage(ctx context.Context, id string) error
	ListMediaURLs(ctx context.Context) ([]string, error)
}
