package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kinoshelf/go-movie-reviews/models"
)

func newTestMovieRepo(t *testing.T) (*movieRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	return &movieRepository{db: db, logger: db.logger}, mock
}

func TestCreateMovie_Success(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	ctx := context.Background()
	releaseDate := time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "name", "release_date", "average_rating", "created_at"}).
		AddRow(1, "Inception", releaseDate, nil, now)

	mock.ExpectQuery("INSERT INTO movies").
		WithArgs("Inception", releaseDate).
		WillReturnRows(rows)

	created, err := repo.CreateMovie(ctx, models.Movie{Name: "Inception", ReleaseDate: releaseDate})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.AverageRating != nil {
		t.Errorf("expected nil average rating for a movie with no reviews, got %v", *created.AverageRating)
	}
}

func TestGetMovieByID_WithReviews(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	ctx := context.Background()
	releaseDate := time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	movieRows := sqlmock.
		NewRows([]string{"id", "name", "release_date", "average_rating", "created_at"}).
		AddRow(1, "Inception", releaseDate, 8.5, now)

	mock.ExpectQuery("SELECT id, name, release_date, average_rating, created_at FROM movies").
		WithArgs(int64(1)).
		WillReturnRows(movieRows)

	reviewRows := sqlmock.
		NewRows([]string{"id", "movie_id", "user_id", "rating", "comments", "created_at", "u_id", "username"}).
		AddRow(10, 1, 7, 9, "great", now, 7, "john").
		AddRow(11, 1, 8, 8, "good", now, 8, "jane")

	mock.ExpectQuery("SELECT r.id, r.movie_id, r.user_id, r.rating, r.comments, r.created_at, u.id, u.username FROM reviews").
		WillReturnRows(reviewRows)

	movie, err := repo.GetMovieByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie.AverageRating == nil || *movie.AverageRating != 8.5 {
		t.Errorf("expected average rating 8.5, got %v", movie.AverageRating)
	}
	if len(movie.Reviews) != 2 {
		t.Fatalf("expected 2 embedded reviews, got %d", len(movie.Reviews))
	}
	if movie.Reviews[0].User == nil || movie.Reviews[0].User.Username != "john" {
		t.Errorf("expected embedded author info, got %+v", movie.Reviews[0].User)
	}
}

func TestGetMovieByID_NotFound(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, name, release_date, average_rating, created_at FROM movies").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetMovieByID(ctx, 99)
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestListMovies_EmptyPage(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "release_date", "average_rating", "created_at"})

	mock.ExpectQuery("SELECT id, name, release_date, average_rating, created_at FROM movies").
		WillReturnRows(rows)

	movies, err := repo.ListMovies(ctx, "", models.PageRequest{Page: 3, Limit: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("expected empty page, got %d movies", len(movies))
	}
	// no review query is issued for an empty page
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListMovies_SearchFilter(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	ctx := context.Background()
	releaseDate := time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	movieRows := sqlmock.
		NewRows([]string{"id", "name", "release_date", "average_rating", "created_at"}).
		AddRow(1, "Inception", releaseDate, nil, now)

	mock.ExpectQuery("LOWER\\(name\\) LIKE").
		WithArgs("%incep%").
		WillReturnRows(movieRows)

	reviewRows := sqlmock.NewRows([]string{"id", "movie_id", "user_id", "rating", "comments", "created_at", "u_id", "username"})
	mock.ExpectQuery("SELECT r.id, r.movie_id, r.user_id, r.rating, r.comments, r.created_at, u.id, u.username FROM reviews").
		WillReturnRows(reviewRows)

	movies, err := repo.ListMovies(ctx, "Incep", models.PageRequest{Page: 1, Limit: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 1 || movies[0].Name != "Inception" {
		t.Fatalf("expected the matching movie, got %+v", movies)
	}
}

func TestListMovies_SearchWildcardsAreLiteral(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "release_date", "average_rating", "created_at"})

	// "%" and "_" in the search term must arrive escaped, so a term of "100%"
	// only matches names containing the literal string.
	mock.ExpectQuery(`LOWER\(name\) LIKE \$1 ESCAPE`).
		WithArgs(`%100\%\_%`).
		WillReturnRows(rows)

	movies, err := repo.ListMovies(ctx, "100%_", models.PageRequest{Page: 1, Limit: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("expected no movies, got %d", len(movies))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateMovieName_NotFound(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	ctx := context.Background()

	mock.ExpectQuery("UPDATE movies SET name").
		WithArgs("New Name", int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateMovieName(ctx, 99, "New Name")
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestDeleteMovie_Success(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM movies").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteMovie(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteMovie_NotFound(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM movies").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteMovie(ctx, 99)
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}
