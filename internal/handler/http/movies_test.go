// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinoshelf/go-movie-reviews/internal/store"
	"github.com/kinoshelf/go-movie-reviews/models"
)

// serveRequest runs the request through the full router so that routing,
// path parameters, and middleware all behave as in production.
func serveRequest(h *Handler, method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if authenticated {
		request.AddCookie(&http.Cookie{Name: authCookieName, Value: "signed-token"})
	}

	recorder := httptest.NewRecorder()
	h.Init().ServeHTTP(recorder, request)
	return recorder
}

func TestListMovies(t *testing.T) {
	t.Run("passes search and pagination through to the service", func(t *testing.T) {
		rating := 8.0
		services := newTestServices()
		services.movies.listMoviesFn = func(ctx context.Context, search string, page, limit int) ([]models.Movie, error) {
			assert.Equal(t, "incep", search)
			assert.Equal(t, 2, page)
			assert.Equal(t, 5, limit)
			return []models.Movie{{ID: 1, Name: "Inception", AverageRating: &rating}}, nil
		}
		h := newTestHandler(services)

		recorder := serveRequest(h, http.MethodGet, "/api/movies?search=incep&page=2&limit=5", "", false)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var movies []models.Movie
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&movies))
		require.Len(t, movies, 1)
		assert.Equal(t, "Inception", movies[0].Name)
		require.NotNil(t, movies[0].AverageRating)
		assert.InDelta(t, 8.0, *movies[0].AverageRating, 0.0001)
	})

	t.Run("missing pagination params come through as zero", func(t *testing.T) {
		services := newTestServices()
		services.movies.listMoviesFn = func(ctx context.Context, search string, page, limit int) ([]models.Movie, error) {
			assert.Zero(t, page)
			assert.Zero(t, limit)
			return []models.Movie{}, nil
		}
		h := newTestHandler(services)

		recorder := serveRequest(h, http.MethodGet, "/api/movies", "", false)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestCreateMovie(t *testing.T) {
	t.Run("valid payload creates the movie with a parsed release date", func(t *testing.T) {
		services := newTestServices()
		services.movies.createMovieFn = func(ctx context.Context, movie models.Movie) (models.Movie, error) {
			assert.Equal(t, "Inception", movie.Name)
			assert.Equal(t, time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC), movie.ReleaseDate)
			movie.ID = 3
			return movie, nil
		}
		h := newTestHandler(services)

		recorder := serveRequest(h, http.MethodPost, "/api/movies",
			`{"name":"Inception","releaseDate":"2010-07-16"}`, false)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var movie models.Movie
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&movie))
		assert.Equal(t, int64(3), movie.ID)
		assert.Nil(t, movie.AverageRating)
	})

	t.Run("invalid release date is rejected with a field error", func(t *testing.T) {
		h := newTestHandler(newTestServices())

		recorder := serveRequest(h, http.MethodPost, "/api/movies",
			`{"name":"Inception","releaseDate":"16/07/2010"}`, false)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response models.ValidationErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Equal(t, "Valid release date is required", response.Errors["releaseDate"])
	})
}

func TestGetMovie(t *testing.T) {
	t.Run("unknown movie returns 404", func(t *testing.T) {
		services := newTestServices()
		services.movies.getMovieFn = func(ctx context.Context, movieID int64) (models.Movie, error) {
			return models.Movie{}, store.ErrMovieNotFound
		}
		h := newTestHandler(services)

		recorder := serveRequest(h, http.MethodGet, "/api/movies/99", "", false)

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var response models.ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Equal(t, store.ErrMovieNotFound.Error(), response.Error)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		h := newTestHandler(newTestServices())

		recorder := serveRequest(h, http.MethodGet, "/api/movies/abc", "", false)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("found movie is returned with its embedded reviews", func(t *testing.T) {
		services := newTestServices()
		services.movies.getMovieFn = func(ctx context.Context, movieID int64) (models.Movie, error) {
			return models.Movie{
				ID:   movieID,
				Name: "Inception",
				Reviews: []models.Review{
					{ID: 1, MovieID: movieID, Rating: 9, User: &models.UserInfo{ID: 2, Username: "gopher"}},
				},
			}, nil
		}
		h := newTestHandler(services)

		recorder := serveRequest(h, http.MethodGet, "/api/movies/1", "", false)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var movie models.Movie
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&movie))
		require.Len(t, movie.Reviews, 1)
		assert.Equal(t, "gopher", movie.Reviews[0].User.Username)
	})
}

func TestUpdateMovie(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		h := newTestHandler(newTestServices())

		recorder := serveRequest(h, http.MethodPut, "/api/movies/1", `{"name":"Renamed"}`, false)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)

		var response models.ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Equal(t, ErrNoAuthCookie.Error(), response.Error)
	})

	t.Run("renames the movie for an authenticated user", func(t *testing.T) {
		services := newTestServices()
		services.movies.renameMovieFn = func(ctx context.Context, movieID int64, name string) (models.Movie, error) {
			assert.Equal(t, int64(1), movieID)
			assert.Equal(t, "Renamed", name)
			return models.Movie{ID: movieID, Name: name}, nil
		}
		h := newTestHandler(services)

		recorder := serveRequest(h, http.MethodPut, "/api/movies/1", `{"name":"Renamed"}`, true)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var movie models.Movie
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&movie))
		assert.Equal(t, "Renamed", movie.Name)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		h := newTestHandler(newTestServices())

		recorder := serveRequest(h, http.MethodPut, "/api/movies/1", `{"name":"  "}`, true)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response models.ValidationErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Equal(t, "Movie name is required", response.Errors["name"])
	})
}

func TestDeleteMovie(t *testing.T) {
	t.Run("deletes and reports cascade", func(t *testing.T) {
		deleted := false
		services := newTestServices()
		services.movies.deleteMovieFn = func(ctx context.Context, movieID int64) error {
			deleted = true
			assert.Equal(t, int64(4), movieID)
			return nil
		}
		h := newTestHandler(services)

		recorder := serveRequest(h, http.MethodDelete, "/api/movies/4", "", true)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, deleted)

		var response models.MessageResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
		assert.Equal(t, "movie and associated reviews deleted successfully", response.Message)
	})

	t.Run("unknown movie returns 404", func(t *testing.T) {
		services := newTestServices()
		services.movies.deleteMovieFn = func(ctx context.Context, movieID int64) error {
			return store.ErrMovieNotFound
		}
		h := newTestHandler(services)

		recorder := serveRequest(h, http.MethodDelete, "/api/movies/4", "", true)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestListMovieReviews(t *testing.T) {
	services := newTestServices()
	services.reviews.listMovieReviewsFn = func(ctx context.Context, movieID int64, page, limit int) ([]models.Review, error) {
		assert.Equal(t, int64(2), movieID)
		return []models.Review{
			{ID: 5, MovieID: movieID, Rating: 7, Comments: "Solid", User: &models.UserInfo{ID: 1, Username: "gopher"}},
		}, nil
	}
	h := newTestHandler(services)

	recorder := serveRequest(h, http.MethodGet, "/api/movies/2/reviews", "", false)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var reviews []models.Review
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, "Solid", reviews[0].Comments)
}
