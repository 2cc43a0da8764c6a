package http

import (
	"errors"
	"net/http"

	"github.com/kinoshelf/go-movie-reviews/internal/service"
	"github.com/kinoshelf/go-movie-reviews/internal/store"
	"github.com/kinoshelf/go-movie-reviews/internal/utils"
	"github.com/kinoshelf/go-movie-reviews/internal/validators"
	"github.com/kinoshelf/go-movie-reviews/models"
)

var errorStatusMap = map[error]int{
	ErrNoAuthCookie:      http.StatusUnauthorized,
	ErrInvalidToken:      http.StatusUnauthorized,
	ErrInvalidJSONBody:   http.StatusBadRequest,
	ErrInvalidResourceID: http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotReviewOwner:          http.StatusForbidden,
	service.ErrSearchTermRequired:      http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrMovieNotFound:         http.StatusNotFound,
	store.ErrReviewNotFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// renderError writes the JSON error body for err.
//
// Validation failures render their field map as `{"errors": {...}}` with 400.
// Every other error goes through [statusFromError]; unexpected (500) errors
// get a generic body so that internals never leak to clients.
func renderError(w http.ResponseWriter, err error) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: validationErr.Fields}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
