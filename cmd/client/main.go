package main

import (
	"context"
	"fmt"

	"github.com/adiwinata/deposito/internal/adapter"
	"github.com/adiwinata/deposito/internal/config"
	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("deposito-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ui, err := tui.New(serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(context.Background()); err != nil {
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
