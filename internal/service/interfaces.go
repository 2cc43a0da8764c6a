package service

import (
	"context"

	"github.com/kinoshelf/go-movie-reviews/models"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MovieService manages the movie catalogue.
type MovieService interface {
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)
	ListMovies(ctx context.Context, search string, page, limit int) ([]models.Movie, error)
	RenameMovie(ctx context.Context, movieID int64, name string) (models.Movie, error)
	DeleteMovie(ctx context.Context, movieID int64) error
}

// ReviewService manages reviews, enforcing that only the author may modify a
// review, and exposes the paginated review search.
type ReviewService interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, *float64, error)
	UpdateReview(ctx context.Context, userID, reviewID int64, rating int, comments string) (models.Review, *float64, error)
	DeleteReview(ctx context.Context, userID, reviewID int64) (*float64, error)
	ListMovieReviews(ctx context.Context, movieID int64, page, limit int) ([]models.Review, error)
	SearchReviews(ctx context.Context, term string, page, limit int) (models.SearchReviewsResponse, error)
}

// AppInfoService exposes build and liveness information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Ping(ctx context.Context) error
}
