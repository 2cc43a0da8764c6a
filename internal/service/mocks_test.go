// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/kinoshelf/go-movie-reviews/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.MovieRepository
// ─────────────────────────────────────────────

type mockMovieRepository struct {
	createMovieFn     func(ctx context.Context, movie models.Movie) (models.Movie, error)
	getMovieByIDFn    func(ctx context.Context, movieID int64) (models.Movie, error)
	listMoviesFn      func(ctx context.Context, search string, page models.PageRequest) ([]models.Movie, error)
	updateMovieNameFn func(ctx context.Context, movieID int64, name string) (models.Movie, error)
	deleteMovieFn     func(ctx context.Context, movieID int64) error
}

func (m *mockMovieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	if m.createMovieFn != nil {
		return m.createMovieFn(ctx, movie)
	}
	return movie, nil
}

func (m *mockMovieRepository) GetMovieByID(ctx context.Context, movieID int64) (models.Movie, error) {
	if m.getMovieByIDFn != nil {
		return m.getMovieByIDFn(ctx, movieID)
	}
	return models.Movie{}, nil
}

func (m *mockMovieRepository) ListMovies(ctx context.Context, search string, page models.PageRequest) ([]models.Movie, error) {
	if m.listMoviesFn != nil {
		return m.listMoviesFn(ctx, search, page)
	}
	return nil, nil
}

func (m *mockMovieRepository) UpdateMovieName(ctx context.Context, movieID int64, name string) (models.Movie, error) {
	if m.updateMovieNameFn != nil {
		return m.updateMovieNameFn(ctx, movieID, name)
	}
	return models.Movie{}, nil
}

func (m *mockMovieRepository) DeleteMovie(ctx context.Context, movieID int64) error {
	if m.deleteMovieFn != nil {
		return m.deleteMovieFn(ctx, movieID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ReviewRepository
// ─────────────────────────────────────────────

type mockReviewRepository struct {
	createReviewFn            func(ctx context.Context, review models.Review) (models.Review, *float64, error)
	getReviewByIDFn           func(ctx context.Context, reviewID int64) (models.Review, error)
	updateReviewFn            func(ctx context.Context, review models.Review) (models.Review, *float64, error)
	deleteReviewFn            func(ctx context.Context, reviewID int64) (*float64, error)
	listReviewsByMovieFn      func(ctx context.Context, movieID int64, page models.PageRequest) ([]models.Review, error)
	searchReviewsFn           func(ctx context.Context, term string, page models.PageRequest) ([]models.Review, int64, error)
	recomputeAverageRatingsFn func(ctx context.Context) error
}

func (m *mockReviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, *float64, error) {
	if m.createReviewFn != nil {
		return m.createReviewFn(ctx, review)
	}
	return review, nil, nil
}

func (m *mockReviewRepository) GetReviewByID(ctx context.Context, reviewID int64) (models.Review, error) {
	if m.getReviewByIDFn != nil {
		return m.getReviewByIDFn(ctx, reviewID)
	}
	return models.Review{}, nil
}

func (m *mockReviewRepository) UpdateReview(ctx context.Context, review models.Review) (models.Review, *float64, error) {
	if m.updateReviewFn != nil {
		return m.updateReviewFn(ctx, review)
	}
	return review, nil, nil
}

func (m *mockReviewRepository) DeleteReview(ctx context.Context, reviewID int64) (*float64, error) {
	if m.deleteReviewFn != nil {
		return m.deleteReviewFn(ctx, reviewID)
	}
	return nil, nil
}

func (m *mockReviewRepository) ListReviewsByMovie(ctx context.Context, movieID int64, page models.PageRequest) ([]models.Review, error) {
	if m.listReviewsByMovieFn != nil {
		return m.listReviewsByMovieFn(ctx, movieID, page)
	}
	return nil, nil
}

func (m *mockReviewRepository) SearchReviews(ctx context.Context, term string, page models.PageRequest) ([]models.Review, int64, error) {
	if m.searchReviewsFn != nil {
		return m.searchReviewsFn(ctx, term, page)
	}
	return nil, 0, nil
}

func (m *mockReviewRepository) RecomputeAverageRatings(ctx context.Context) error {
	if m.recomputeAverageRatingsFn != nil {
		return m.recomputeAverageRatingsFn(ctx)
	}
	return nil
}
