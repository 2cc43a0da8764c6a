// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST JSON API. Authentication, logging, tracing, and CORS
// concerns are all handled at this layer before requests are forwarded
// to the service layer.
package http

import (
	"github.com/kinoshelf/go-movie-reviews/internal/config"
	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/service"
	"github.com/kinoshelf/go-movie-reviews/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// cookie parameters for the auth token, taken from the app config
	tokenMaxAge  int
	secureCookie bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		validator:    validator,
		tokenMaxAge:  int(cfg.TokenDuration.Seconds()),
		secureCookie: cfg.SecureCookie,
		logger:       logger,
	}
}
