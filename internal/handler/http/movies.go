package http

import (
	"encoding/json"
	"net/http"

	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/utils"
	"github.com/kinoshelf/go-movie-reviews/models"
)

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page, limit := parsePagination(r)
	search := r.URL.Query().Get("search")

	movies, err := h.services.MovieService.ListMovies(ctx, search, page, limit)
	if err != nil {
		log.Err(err).Msg("movie listing failed")
		renderError(w, err)
		return
	}

	utils.WriteJSON(w, movies, http.StatusOK)
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		renderError(w, ErrInvalidJSONBody)
		return
	}

	releaseDate, err := h.validator.Movie(request)
	if err != nil {
		renderError(w, err)
		return
	}

	movie, err := h.services.MovieService.CreateMovie(ctx, models.Movie{
		Name:        request.Name,
		ReleaseDate: releaseDate,
	})
	if err != nil {
		log.Err(err).Str("name", request.Name).Msg("movie creation failed")
		renderError(w, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusCreated)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	movieID, err := parseIDParam(r)
	if err != nil {
		renderError(w, err)
		return
	}

	movie, err := h.services.MovieService.GetMovie(ctx, movieID)
	if err != nil {
		log.Err(err).Int64("movie_id", movieID).Msg("movie lookup failed")
		renderError(w, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	movieID, err := parseIDParam(r)
	if err != nil {
		renderError(w, err)
		return
	}

	var request models.UpdateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		renderError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.MovieUpdate(request); err != nil {
		renderError(w, err)
		return
	}

	movie, err := h.services.MovieService.RenameMovie(ctx, movieID, request.Name)
	if err != nil {
		log.Err(err).Int64("movie_id", movieID).Msg("movie update failed")
		renderError(w, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	movieID, err := parseIDParam(r)
	if err != nil {
		renderError(w, err)
		return
	}

	if err := h.services.MovieService.DeleteMovie(ctx, movieID); err != nil {
		log.Err(err).Int64("movie_id", movieID).Msg("movie deletion failed")
		renderError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "movie and associated reviews deleted successfully"}, http.StatusOK)
}

func (h *Handler) listMovieReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	movieID, err := parseIDParam(r)
	if err != nil {
		renderError(w, err)
		return
	}

	page, limit := parsePagination(r)

	reviews, err := h.services.ReviewService.ListMovieReviews(ctx, movieID, page, limit)
	if err != nil {
		log.Err(err).Int64("movie_id", movieID).Msg("review listing failed")
		renderError(w, err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}
