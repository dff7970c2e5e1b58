package handler

import (
	"github.com/Only-Gg/gih/internal/config"
	"github.com/Only-Gg/gih/internal/handler/http"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Storage.Files.UploadsDir, logger),
	}, nil
}
