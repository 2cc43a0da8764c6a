// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/store"
	"github.com/kinoshelf/go-movie-reviews/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieService_CreateMovie(t *testing.T) {
	repo := &mockMovieRepository{
		createMovieFn: func(ctx context.Context, movie models.Movie) (models.Movie, error) {
			movie.ID = 1
			return movie, nil
		},
	}
	svc := NewMovieService(repo, logger.Nop())

	created, err := svc.CreateMovie(context.Background(), models.Movie{
		Name:        "Inception",
		ReleaseDate: time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, created.ID)
	assert.Nil(t, created.AverageRating)
}

func TestMovieService_GetMovie_NotFound(t *testing.T) {
	repo := &mockMovieRepository{
		getMovieByIDFn: func(ctx context.Context, movieID int64) (models.Movie, error) {
			return models.Movie{}, store.ErrMovieNotFound
		},
	}
	svc := NewMovieService(repo, logger.Nop())

	_, err := svc.GetMovie(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrMovieNotFound)
}

func TestMovieService_ListMovies_NormalisesPaging(t *testing.T) {
	var gotSearch string
	var gotPage models.PageRequest
	repo := &mockMovieRepository{
		listMoviesFn: func(ctx context.Context, search string, page models.PageRequest) ([]models.Movie, error) {
			gotSearch = search
			gotPage = page
			return nil, nil
		},
	}
	svc := NewMovieService(repo, logger.Nop())

	_, err := svc.ListMovies(context.Background(), "incep", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "incep", gotSearch)
	assert.Equal(t, models.PageRequest{Page: 1, Limit: DefaultMovieLimit}, gotPage)

	_, err = svc.ListMovies(context.Background(), "", 2, 9)
	require.NoError(t, err)
	assert.Equal(t, models.PageRequest{Page: 2, Limit: 9}, gotPage)
}

func TestMovieService_DeleteMovie(t *testing.T) {
	var deletedID int64
	repo := &mockMovieRepository{
		deleteMovieFn: func(ctx context.Context, movieID int64) error {
			deletedID = movieID
			return nil
		},
	}
	svc := NewMovieService(repo, logger.Nop())

	require.NoError(t, svc.DeleteMovie(context.Background(), 5))
	assert.EqualValues(t, 5, deletedID)
}
