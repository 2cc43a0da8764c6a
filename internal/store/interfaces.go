package store

import (
	"context"

	"github.com/kinoshelf/go-movie-reviews/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// MovieRepository persists and queries movies. Listing embeds each movie's
// reviews; GetMovieByID additionally embeds each review's author info.
type MovieRepository interface {
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	GetMovieByID(ctx context.Context, movieID int64) (models.Movie, error)
	ListMovies(ctx context.Context, search string, page models.PageRequest) ([]models.Movie, error)
	UpdateMovieName(ctx context.Context, movieID int64, name string) (models.Movie, error)
	DeleteMovie(ctx context.Context, movieID int64) error
}

// ReviewRepository persists and queries reviews. Every mutation recomputes
// the affected movie's average rating inside the same transaction and
// returns the new value (nil when the movie has no reviews left).
type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, *float64, error)
	GetReviewByID(ctx context.Context, reviewID int64) (models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) (models.Review, *float64, error)
	DeleteReview(ctx context.Context, reviewID int64) (*float64, error)
	ListReviewsByMovie(ctx context.Context, movieID int64, page models.PageRequest) ([]models.Review, error)
	SearchReviews(ctx context.Context, term string, page models.PageRequest) ([]models.Review, int64, error)
	RecomputeAverageRatings(ctx context.Context) error
}

// ErrorClassificator inspects driver-level errors so repositories and
// background workers can react without depending on a concrete driver.
type ErrorClassificator interface {
	// Classify reports whether a failed operation is worth retrying.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique-constraint violation.
	IsUniqueViolation(err error) bool

	// IsForeignKeyViolation reports whether err is a foreign-key violation.
	IsForeignKeyViolation(err error) bool
}
