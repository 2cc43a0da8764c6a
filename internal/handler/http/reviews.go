package http

import (
	"encoding/json"
	"net/http"

	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/utils"
	"github.com/kinoshelf/go-movie-reviews/models"
)

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		renderError(w, ErrNoAuthCookie)
		return
	}

	var request models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		renderError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Review(request); err != nil {
		renderError(w, err)
		return
	}

	review, average, err := h.services.ReviewService.CreateReview(ctx, models.Review{
		MovieID:  request.MovieID,
		UserID:   userID,
		Rating:   request.Rating,
		Comments: request.Comments,
	})
	if err != nil {
		log.Err(err).Int64("movie_id", request.MovieID).Msg("review creation failed")
		renderError(w, err)
		return
	}

	utils.WriteJSON(w, models.ReviewWithRating{Review: review, AverageRating: average}, http.StatusCreated)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		renderError(w, ErrNoAuthCookie)
		return
	}

	reviewID, err := parseIDParam(r)
	if err != nil {
		renderError(w, err)
		return
	}

	var request models.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		renderError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.ReviewUpdate(request); err != nil {
		renderError(w, err)
		return
	}

	review, average, err := h.services.ReviewService.UpdateReview(ctx, userID, reviewID, request.Rating, request.Comments)
	if err != nil {
		log.Err(err).Int64("review_id", reviewID).Msg("review update failed")
		renderError(w, err)
		return
	}

	utils.WriteJSON(w, models.ReviewWithRating{Review: review, AverageRating: average}, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		renderError(w, ErrNoAuthCookie)
		return
	}

	reviewID, err := parseIDParam(r)
	if err != nil {
		renderError(w, err)
		return
	}

	average, err := h.services.ReviewService.DeleteReview(ctx, userID, reviewID)
	if err != nil {
		log.Err(err).Int64("review_id", reviewID).Msg("review deletion failed")
		renderError(w, err)
		return
	}

	utils.WriteJSON(w, models.DeleteReviewResponse{
		Message:       "review deleted successfully",
		AverageRating: average,
	}, http.StatusOK)
}

func (h *Handler) searchReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page, limit := parsePagination(r)
	term := r.URL.Query().Get("term")

	response, err := h.services.ReviewService.SearchReviews(ctx, term, page, limit)
	if err != nil {
		log.Err(err).Str("term", term).Msg("review search failed")
		renderError(w, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
