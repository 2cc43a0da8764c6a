package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/models"
)

// movieRepository is the SQL-backed implementation of [MovieRepository].
// It manages the "movies" table and loads embedded reviews (with author
// info) for the listing and detail queries.
type movieRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMovieRepository constructs a [MovieRepository] backed by the provided
// database connection and logger.
func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		db:     db,
		logger: logger,
	}
}

// movieColumns is the canonical column order scanned into [models.Movie].
var movieColumns = []string{"id", "name", "release_date", "average_rating", "created_at"}

// CreateMovie persists a new movie and returns the record with
// server-assigned fields (ID, CreatedAt). AverageRating starts as NULL:
// a movie with no reviews has no average.
func (r *movieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(movie.TableName()).
		Columns("name", "release_date").
		Values(movie.Name, movie.ReleaseDate).
		Suffix("RETURNING " + strings.Join(movieColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.CreateMovie").Msg("error building insert query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Movie
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanMovie(row, &saved); err != nil {
		log.Err(err).Str("func", "*movieRepository.CreateMovie").Msg("error: scanning error")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	log.Info().Str("func", "*movieRepository.CreateMovie").Int64("movie_id", saved.ID).Msg("movie created")
	return saved, nil
}

// GetMovieByID retrieves a single movie together with all of its reviews,
// each carrying the author's public info. Reviews are ordered newest first.
//
// Returns [ErrMovieNotFound] when no movie with the given ID exists.
func (r *movieRepository) GetMovieByID(ctx context.Context, movieID int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(movieColumns...).
		From(models.Movie{}.TableName()).
		Where(sq.Eq{"id": movieID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.GetMovieByID").Msg("error building select query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var movie models.Movie
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanMovie(row, &movie); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}

		log.Err(err).Str("func", "*movieRepository.GetMovieByID").Msg("error: scanning error")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	reviewsByMovie, err := r.loadReviews(ctx, []int64{movieID})
	if err != nil {
		return models.Movie{}, err
	}
	movie.Reviews = reviewsByMovie[movieID]

	return movie, nil
}

// ListMovies returns one page of movies ordered by name, each with its
// reviews embedded. A non-empty search filters by case-insensitive substring
// match on the movie name.
func (r *movieRepository) ListMovies(ctx context.Context, search string, page models.PageRequest) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	builder := r.db.Builder().
		Select(movieColumns...).
		From(models.Movie{}.TableName()).
		OrderBy("name ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset()))

	if search != "" {
		builder = builder.Where(sq.Expr(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(search))+"%"))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0, page.Limit)
	movieIDs := make([]int64, 0, page.Limit)
	for rows.Next() {
		var movie models.Movie
		if err := scanMovie(rows, &movie); err != nil {
			log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		movies = append(movies, movie)
		movieIDs = append(movieIDs, movie.ID)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(movieIDs) == 0 {
		return movies, nil
	}

	reviewsByMovie, err := r.loadReviews(ctx, movieIDs)
	if err != nil {
		return nil, err
	}
	for i := range movies {
		movies[i].Reviews = reviewsByMovie[movies[i].ID]
	}

	return movies, nil
}

// UpdateMovieName renames a movie and returns the updated record.
//
// Returns [ErrMovieNotFound] when no movie with the given ID exists.
func (r *movieRepository) UpdateMovieName(ctx context.Context, movieID int64, name string) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(models.Movie{}.TableName()).
		Set("name", name).
		Where(sq.Eq{"id": movieID}).
		Suffix("RETURNING " + strings.Join(movieColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.UpdateMovieName").Msg("error building update query")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Movie
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanMovie(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}

		log.Err(err).Str("func", "*movieRepository.UpdateMovieName").Msg("error: scanning error")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteMovie removes a movie; the reviews referencing it are removed by the
// ON DELETE CASCADE constraint.
//
// Returns [ErrMovieNotFound] when no movie with the given ID exists.
func (r *movieRepository) DeleteMovie(ctx context.Context, movieID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.Movie{}.TableName()).
		Where(sq.Eq{"id": movieID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.DeleteMovie").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.DeleteMovie").Msg("error executing delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.DeleteMovie").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMovieNotFound
	}

	log.Info().Str("func", "*movieRepository.DeleteMovie").Int64("movie_id", movieID).Msg("movie and associated reviews deleted")
	return nil
}

// loadReviews fetches the reviews for the given movie IDs in one query,
// joined with the author's public info, grouped by movie and ordered newest
// first within each movie.
func (r *movieRepository) loadReviews(ctx context.Context, movieIDs []int64) (map[int64][]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("r.id", "r.movie_id", "r.user_id", "r.rating", "r.comments", "r.created_at", "u.id", "u.username").
		From(models.Review{}.TableName() + " r").
		Join("users u ON u.id = r.user_id").
		Where(sq.Eq{"r.movie_id": movieIDs}).
		OrderBy("r.created_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.loadReviews").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.loadReviews").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviewsByMovie := make(map[int64][]models.Review, len(movieIDs))
	for rows.Next() {
		var review models.Review
		var user models.UserInfo
		if err := rows.Scan(&review.ID, &review.MovieID, &review.UserID, &review.Rating, &review.Comments, &review.CreatedAt, &user.ID, &user.Username); err != nil {
			log.Err(err).Str("func", "*movieRepository.loadReviews").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		review.User = &user
		reviewsByMovie[review.MovieID] = append(reviewsByMovie[review.MovieID], review)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*movieRepository.loadReviews").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviewsByMovie, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanMovie scans the [movieColumns] projection into dst, converting the
// nullable average_rating column.
func scanMovie(row rowScanner, dst *models.Movie) error {
	var avg sql.NullFloat64
	if err := row.Scan(&dst.ID, &dst.Name, &dst.ReleaseDate, &avg, &dst.CreatedAt); err != nil {
		return err
	}

	if avg.Valid {
		dst.AverageRating = &avg.Float64
	}

	return nil
}
