package main

import (
	"context"
	"fmt"

	"github.com/Only-Gg/gih/internal/config"
	"github.com/Only-Gg/gih/internal/handler"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/server"
	"github.com/Only-Gg/gih/internal/service"
	"github.com/Only-Gg/gih/internal/store"
	"github.com/Only-Gg/gih/internal/utils"
	"github.com/Only-Gg/gih/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("gih-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.TokenSignKey == "" {
		// Sessions do not survive a restart without a configured key.
		cfg.App.TokenSignKey = utils.NewUUIDGenerator().Generate()
		log.Warn().Msg("no token sign key configured, using an ephemeral one")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.Connect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	storages := store.NewStorages(db, log)

	uploads, err := store.NewLocalUploadStorage(cfg.Storage.Files.UploadsDir, utils.NewUUIDGenerator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upload storage")
	}

	services := service.NewServices(storages, uploads, *cfg, log)

	if err = services.AuthService.EnsureDefaultAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding admin account")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	workers.NewWorkers(cfg.Workers, storages.MemoryPageRepository, uploads, log).Run(ctx)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
