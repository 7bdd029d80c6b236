package main

import (
	"context"
	"fmt"

	"github.com/adiwinata/deposito/internal/config"
	handlerhttp "github.com/adiwinata/deposito/internal/handler/http"
	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/server"
	"github.com/adiwinata/deposito/internal/service"
	"github.com/adiwinata/deposito/internal/store"
	"github.com/adiwinata/deposito/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("deposito-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB, cfg.Storage.DB.Driver); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)

	if err = services.AuthService.EnsureBootstrapAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping admin account")
	}

	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
