package service

import "github.com/kinoshelf/go-movie-reviews/models"

// Default page sizes. The movie grid renders nine cards per page; review
// lists and search use ten.
const (
	DefaultMovieLimit  = 9
	DefaultReviewLimit = 10
)

// normalizePage clamps raw page/limit values into a usable [models.PageRequest]:
// page defaults to 1 and is never below 1, limit falls back to defaultLimit
// when not positive.
func normalizePage(page, limit, defaultLimit int) models.PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}

	return models.PageRequest{Page: page, Limit: limit}
}
