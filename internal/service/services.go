package service

import (
	"github.com/kinoshelf/go-movie-reviews/internal/config"
	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/store"
)

// Services aggregates the application's business-logic layer.
type Services struct {
	AuthService    AuthService
	MovieService   MovieService
	ReviewService  ReviewService
	AppInfoService AppInfoService
}

// NewServices wires every service to its repositories and configuration.
func NewServices(storages *store.Storages, db *store.DB, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, db, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		MovieService:   NewMovieService(storages.MovieRepository, logger),
		ReviewService:  NewReviewService(storages.ReviewRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
