package service

import (
	"context"
	"fmt"

	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/store"
	"github.com/kinoshelf/go-movie-reviews/models"
)

// movieService is the concrete implementation of MovieService.
//
// Any authenticated user may rename or delete a movie: the original admin
// gate is a pass-through, so the service adds no ownership check on top of a
// valid login.
type movieService struct {
	movieRepository store.MovieRepository

	logger *logger.Logger
}

// NewMovieService constructs a MovieService backed by the given repository.
func NewMovieService(movieRepository store.MovieRepository, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		logger:          logger,
	}
}

// CreateMovie adds a new movie to the catalogue. Validation (non-empty name,
// parseable release date) happens at the handler boundary.
func (s *movieService) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	created, err := s.movieRepository.CreateMovie(ctx, movie)
	if err != nil {
		log.Err(err).Str("name", movie.Name).Msg("movie creation ended with error")
		return models.Movie{}, fmt.Errorf("movie creation ended with error: %w", err)
	}

	return created, nil
}

// GetMovie returns a movie with its reviews embedded.
//
// Returns [store.ErrMovieNotFound] when the movie does not exist.
func (s *movieService) GetMovie(ctx context.Context, movieID int64) (models.Movie, error) {
	return s.movieRepository.GetMovieByID(ctx, movieID)
}

// ListMovies returns one page of the catalogue, optionally filtered by a
// case-insensitive substring match on the name. Page and limit are
// normalised here (page >= 1, limit defaults to [DefaultMovieLimit]).
func (s *movieService) ListMovies(ctx context.Context, search string, page, limit int) ([]models.Movie, error) {
	return s.movieRepository.ListMovies(ctx, search, normalizePage(page, limit, DefaultMovieLimit))
}

// RenameMovie updates a movie's name.
//
// Returns [store.ErrMovieNotFound] when the movie does not exist.
func (s *movieService) RenameMovie(ctx context.Context, movieID int64, name string) (models.Movie, error) {
	return s.movieRepository.UpdateMovieName(ctx, movieID, name)
}

// DeleteMovie removes a movie and, through the cascade constraint, all of
// its reviews.
//
// Returns [store.ErrMovieNotFound] when the movie does not exist.
func (s *movieService) DeleteMovie(ctx context.Context, movieID int64) error {
	return s.movieRepository.DeleteMovie(ctx, movieID)
}
