package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/store"
	"github.com/kinoshelf/go-movie-reviews/models"
)

// reviewService is the concrete implementation of ReviewService.
//
// Ownership is enforced here: update and delete first load the review and
// compare its author against the acting user, failing with
// [ErrNotReviewOwner] before any mutation reaches the repository.
type reviewService struct {
	reviewRepository store.ReviewRepository

	logger *logger.Logger
}

// NewReviewService constructs a ReviewService backed by the given repository.
func NewReviewService(reviewRepository store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

// CreateReview persists a new review and returns it together with the
// movie's recomputed average rating.
//
// Returns [store.ErrMovieNotFound] when the referenced movie does not exist.
func (s *reviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, *float64, error) {
	log := logger.FromContext(ctx)

	created, average, err := s.reviewRepository.CreateReview(ctx, review)
	if err != nil {
		log.Err(err).Int64("movie_id", review.MovieID).Int64("user_id", review.UserID).Msg("review creation ended with error")
		return models.Review{}, nil, err
	}

	return created, average, nil
}

// UpdateReview changes the rating and comments of an existing review and
// returns it together with the movie's recomputed average rating.
//
// Returns:
//   - [store.ErrReviewNotFound] when the review does not exist.
//   - [ErrNotReviewOwner] when userID is not the review's author.
func (s *reviewService) UpdateReview(ctx context.Context, userID, reviewID int64, rating int, comments string) (models.Review, *float64, error) {
	log := logger.FromContext(ctx)

	existing, err := s.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		return models.Review{}, nil, err
	}

	if existing.UserID != userID {
		log.Warn().
			Int64("review_id", reviewID).
			Int64("owner_id", existing.UserID).
			Int64("user_id", userID).
			Msg("review update denied: not the author")
		return models.Review{}, nil, ErrNotReviewOwner
	}

	existing.Rating = rating
	existing.Comments = comments

	updated, average, err := s.reviewRepository.UpdateReview(ctx, existing)
	if err != nil {
		log.Err(err).Int64("review_id", reviewID).Msg("review update ended with error")
		return models.Review{}, nil, err
	}

	return updated, average, nil
}

// DeleteReview removes an existing review and returns the movie's recomputed
// average rating (nil when the deleted review was the last one).
//
// Returns:
//   - [store.ErrReviewNotFound] when the review does not exist.
//   - [ErrNotReviewOwner] when userID is not the review's author.
func (s *reviewService) DeleteReview(ctx context.Context, userID, reviewID int64) (*float64, error) {
	log := logger.FromContext(ctx)

	existing, err := s.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if existing.UserID != userID {
		log.Warn().
			Int64("review_id", reviewID).
			Int64("owner_id", existing.UserID).
			Int64("user_id", userID).
			Msg("review delete denied: not the author")
		return nil, ErrNotReviewOwner
	}

	average, err := s.reviewRepository.DeleteReview(ctx, reviewID)
	if err != nil {
		log.Err(err).Int64("review_id", reviewID).Msg("review delete ended with error")
		return nil, err
	}

	return average, nil
}

// ListMovieReviews returns one page of a movie's reviews, newest first.
// Page and limit are normalised here (limit defaults to [DefaultReviewLimit]).
func (s *reviewService) ListMovieReviews(ctx context.Context, movieID int64, page, limit int) ([]models.Review, error) {
	return s.reviewRepository.ListReviewsByMovie(ctx, movieID, normalizePage(page, limit, DefaultReviewLimit))
}

// SearchReviews runs the case-insensitive review search and assembles the
// paginated response envelope.
//
// Returns [ErrSearchTermRequired] when the term is empty or blank.
func (s *reviewService) SearchReviews(ctx context.Context, term string, page, limit int) (models.SearchReviewsResponse, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(term) == "" {
		return models.SearchReviewsResponse{}, ErrSearchTermRequired
	}

	pageRequest := normalizePage(page, limit, DefaultReviewLimit)

	reviews, total, err := s.reviewRepository.SearchReviews(ctx, term, pageRequest)
	if err != nil {
		log.Err(err).Str("term", term).Msg("review search ended with error")
		return models.SearchReviewsResponse{}, fmt.Errorf("review search ended with error: %w", err)
	}

	totalPages := total / int64(pageRequest.Limit)
	if total%int64(pageRequest.Limit) != 0 {
		totalPages++
	}

	return models.SearchReviewsResponse{
		Reviews:    reviews,
		Total:      total,
		Page:       pageRequest.Page,
		Limit:      pageRequest.Limit,
		TotalPages: totalPages,
	}, nil
}
