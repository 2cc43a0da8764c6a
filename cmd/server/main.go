package main

import (
	"context"
	"fmt"

	"github.com/kinoshelf/go-movie-reviews/internal/config"
	"github.com/kinoshelf/go-movie-reviews/internal/handler"
	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/server"
	"github.com/kinoshelf/go-movie-reviews/internal/service"
	"github.com/kinoshelf/go-movie-reviews/internal/store"
	"github.com/kinoshelf/go-movie-reviews/internal/validators"
	"github.com/kinoshelf/go-movie-reviews/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("movie-reviews-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// /api/version falls back to the version stamped at build time.
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := connectDatabase(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to the database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, db, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, validators.NewPayloadValidator(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	workers.NewWorkers(cfg.Workers, storages, db.Classificator(), log).Run(ctx)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// connectDatabase opens the configured database driver.
func connectDatabase(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*store.DB, error) {
	switch cfg.Storage.DB.Driver {
	case config.DriverSQLite:
		return store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	case config.DriverPostgres:
		return store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Storage.DB.Driver)
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
