package http

import (
	"encoding/json"
	"net/http"

	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/utils"
	"github.com/kinoshelf/go-movie-reviews/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		renderError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Credentials(credentials); err != nil {
		renderError(w, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user registration failed")
		renderError(w, err)
		return
	}

	log.Info().Int64("user_id", registeredUser.ID).Msg("user registered via http")
	utils.WriteJSON(w, models.MessageResponse{Message: "user registered successfully"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		renderError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Credentials(credentials); err != nil {
		renderError(w, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("login failed")
		renderError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		renderError(w, err)
		return
	}

	h.setAuthCookie(w, token.String())
	utils.WriteJSON(w, models.MessageResponse{Message: "logged in successfully"}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearAuthCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: "logged out successfully"}, http.StatusOK)
}
