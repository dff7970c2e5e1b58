package http

import (
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/service"
)

type Handler struct {
	services *service.Services

	// uploadsDir is the directory served under /uploads/*.
	uploadsDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, uploadsDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		uploadsDir: uploadsDir,
		logger:     logger,
	}
}
