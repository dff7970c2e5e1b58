package main

import (
	"fmt"

	"github.com/Only-Gg/gih/internal/adapter"
	"github.com/Only-Gg/gih/internal/client"
	"github.com/Only-Gg/gih/internal/config"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/service"
	"github.com/Only-Gg/gih/internal/store"
	"github.com/Only-Gg/gih/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("gih-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	sessions := store.NewSessionStore(cfg.Adapter.SessionFile, log)

	services := service.NewClientServices(backend, sessions, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
