package service

import (
	"context"

	"github.com/kinoshelf/go-movie-reviews/internal/config"
	"github.com/kinoshelf/go-movie-reviews/internal/logger"
)

// pinger is the subset of the database the app-info service needs for the
// health endpoint.
type pinger interface {
	Ping(ctx context.Context) error
}

type appInfoService struct {
	appVersion string
	db         pinger

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService exposing the configured
// application version and a database liveness check.
func NewAppInfoService(cfg config.App, db pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Ping reports whether the backing database is reachable.
func (s *appInfoService) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
