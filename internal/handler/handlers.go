package handler

import (
	"github.com/kinoshelf/go-movie-reviews/internal/config"
	"github.com/kinoshelf/go-movie-reviews/internal/handler/http"
	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/service"
	"github.com/kinoshelf/go-movie-reviews/internal/validators"
)

// Handlers aggregates the application's transport-layer handlers.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers constructs the HTTP handler for the configured address.
func NewHandlers(services *service.Services, validator validators.Validator, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, validator, cfg.App, logger),
	}, nil
}
