package models

// MessageResponse is the generic `{"message": ...}` success body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic `{"error": ...}` failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries the field-name-to-message mapping produced
// by payload validation, rendered with HTTP 400.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// ReviewWithRating is returned by review create/update: the persisted review
// plus the movie's freshly recomputed average rating.
type ReviewWithRating struct {
	Review

	// AverageRating is the movie's average after this mutation.
	// Nil when the movie ended up with no reviews.
	AverageRating *float64 `json:"averageRating"`
}

// DeleteReviewResponse is returned by review deletion. AverageRating reflects
// the remaining review set and is null once the last review is gone.
type DeleteReviewResponse struct {
	Message       string   `json:"message"`
	AverageRating *float64 `json:"averageRating"`
}

// SearchReviewsResponse is the paginated payload of GET /api/reviews/search.
// Unlike the plain listing endpoints it carries a server-computed total so
// the client does not have to infer "more pages" from the row count.
type SearchReviewsResponse struct {
	Reviews    []Review `json:"reviews"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int64    `json:"totalPages"`
}
