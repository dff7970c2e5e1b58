package service

import (
	"github.com/Only-Gg/gih/internal/config"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/store"
	"github.com/Only-Gg/gih/internal/utils"
)

type Services struct {
	AuthService       AuthService
	MemoryPageService MemoryPageService
	UploadService     UploadService
}

func NewServices(storages *store.Storages, files store.UploadFileStorage, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	pageService := NewMemoryPageService(storages.MemoryPageRepository, utils.NewUUIDGenerator(), logger)

	return &Services{
		AuthService:       NewAuthService(storages.AdminRepository, cfg.App, logger),
		MemoryPageService: NewMemoryPageValidationService().Wrap(pageService),
		UploadService:     NewUploadService(files, logger),
	}
}
