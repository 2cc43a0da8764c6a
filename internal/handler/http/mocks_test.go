// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"time"

	"github.com/kinoshelf/go-movie-reviews/internal/config"
	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/service"
	"github.com/kinoshelf/go-movie-reviews/internal/validators"
	"github.com/kinoshelf/go-movie-reviews/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, credentials)
	}
	return models.User{ID: 1, Username: credentials.Username}, nil
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, credentials)
	}
	return models.User{ID: 1, Username: credentials.Username}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.ID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{SignedString: tokenString, UserID: 1}, nil
}

// ─────────────────────────────────────────────
// Mock: service.MovieService
// ─────────────────────────────────────────────

type mockMovieService struct {
	createMovieFn func(ctx context.Context, movie models.Movie) (models.Movie, error)
	getMovieFn    func(ctx context.Context, movieID int64) (models.Movie, error)
	listMoviesFn  func(ctx context.Context, search string, page, limit int) ([]models.Movie, error)
	renameMovieFn func(ctx context.Context, movieID int64, name string) (models.Movie, error)
	deleteMovieFn func(ctx context.Context, movieID int64) error
}

func (m *mockMovieService) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	if m.createMovieFn != nil {
		return m.createMovieFn(ctx, movie)
	}
	movie.ID = 1
	return movie, nil
}

func (m *mockMovieService) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	if m.getMovieFn != nil {
		return m.getMovieFn(ctx, movieID)
	}
	return models.Movie{ID: movieID}, nil
}

func (m *mockMovieService) ListMovies(ctx context.Context, search string, page, limit int) ([]models.Movie, error) {
	if m.listMoviesFn != nil {
		return m.listMoviesFn(ctx, search, page, limit)
	}
	return []models.Movie{}, nil
}

func (m *mockMovieService) RenameMovie(ctx context.Context, movieID int64, name string) (models.Movie, error) {
	if m.renameMovieFn != nil {
		return m.renameMovieFn(ctx, movieID, name)
	}
	return models.Movie{ID: movieID, Name: name}, nil
}

func (m *mockMovieService) DeleteMovie(ctx context.Context, movieID int64) error {
	if m.deleteMovieFn != nil {
		return m.deleteMovieFn(ctx, movieID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.ReviewService
// ─────────────────────────────────────────────

type mockReviewService struct {
	createReviewFn     func(ctx context.Context, review models.Review) (models.Review, *float64, error)
	updateReviewFn     func(ctx context.Context, userID, reviewID int64, rating int, comments string) (models.Review, *float64, error)
	deleteReviewFn     func(ctx context.Context, userID, reviewID int64) (*float64, error)
	listMovieReviewsFn func(ctx context.Context, movieID int64, page, limit int) ([]models.Review, error)
	searchReviewsFn    func(ctx context.Context, term string, page, limit int) (models.SearchReviewsResponse, error)
}

func (m *mockReviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, *float64, error) {
	if m.createReviewFn != nil {
		return m.createReviewFn(ctx, review)
	}
	review.ID = 1
	return review, nil, nil
}

func (m *mockReviewService) UpdateReview(ctx context.Context, userID, reviewID int64, rating int, comments string) (models.Review, *float64, error) {
	if m.updateReviewFn != nil {
		return m.updateReviewFn(ctx, userID, reviewID, rating, comments)
	}
	return models.Review{ID: reviewID, UserID: userID, Rating: rating, Comments: comments}, nil, nil
}

func (m *mockReviewService) DeleteReview(ctx context.Context, userID, reviewID int64) (*float64, error) {
	if m.deleteReviewFn != nil {
		return m.deleteReviewFn(ctx, userID, reviewID)
	}
	return nil, nil
}

func (m *mockReviewService) ListMovieReviews(ctx context.Context, movieID int64, page, limit int) ([]models.Review, error) {
	if m.listMovieReviewsFn != nil {
		return m.listMovieReviewsFn(ctx, movieID, page, limit)
	}
	return []models.Review{}, nil
}

func (m *mockReviewService) SearchReviews(ctx context.Context, term string, page, limit int) (models.SearchReviewsResponse, error) {
	if m.searchReviewsFn != nil {
		return m.searchReviewsFn(ctx, term, page, limit)
	}
	return models.SearchReviewsResponse{Reviews: []models.Review{}}, nil
}

// ─────────────────────────────────────────────
// Mock: service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	getAppVersionFn func(ctx context.Context) string
	pingFn          func(ctx context.Context) error
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	if m.getAppVersionFn != nil {
		return m.getAppVersionFn(ctx)
	}
	return "v1.0.0-test"
}

func (m *mockAppInfoService) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Test fixture
// ─────────────────────────────────────────────

// testServices bundles one mock per service so individual tests can override
// just the call they care about.
type testServices struct {
	auth    *mockAuthService
	movies  *mockMovieService
	reviews *mockReviewService
	appInfo *mockAppInfoService
}

func newTestServices() *testServices {
	return &testServices{
		auth:    &mockAuthService{},
		movies:  &mockMovieService{},
		reviews: &mockReviewService{},
		appInfo: &mockAppInfoService{},
	}
}

// newTestHandler builds a Handler backed by the given mocks, the real payload
// validator, and a no-op logger.
func newTestHandler(s *testServices) *Handler {
	services := &service.Services{
		AuthService:    s.auth,
		MovieService:   s.movies,
		ReviewService:  s.reviews,
		AppInfoService: s.appInfo,
	}

	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "movie-reviews",
		TokenDuration: time.Hour,
		SecureCookie:  false,
		Version:       "v1.0.0-test",
	}

	return NewHandler(services, validators.NewPayloadValidator(), cfg, logger.Nop())
}
