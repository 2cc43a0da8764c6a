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

// reviewRepository is the SQL-backed implementation of [ReviewRepository].
//
// Every review mutation (create, update, delete) runs inside a single
// transaction that also recomputes the affected movie's average rating, so
// the stored average always reflects the review set the mutation left
// behind. Concurrent mutations on the same movie serialise on the movie row.
type reviewRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReviewRepository constructs a [ReviewRepository] backed by the provided
// database connection and logger.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

// reviewColumns is the canonical column order scanned into [models.Review].
var reviewColumns = []string{"id", "movie_id", "user_id", "rating", "comments", "created_at"}

// CreateReview persists a new review and recomputes the movie's average
// rating in the same transaction. Returns the saved review and the new
// average.
//
// Error handling:
//   - foreign-key violation on movie_id → [ErrMovieNotFound].
//   - Any other driver-level error → wrapped low-level sentinel.
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, *float64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(review.TableName()).
		Columns("movie_id", "user_id", "rating", "comments").
		Values(review.MovieID, review.UserID, review.Rating, review.Comments).
		Suffix("RETURNING " + strings.Join(reviewColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("error building insert query")
		return models.Review{}, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("failed to begin transaction")
		return models.Review{}, nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var saved models.Review
	row := tx.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&saved.ID, &saved.MovieID, &saved.UserID, &saved.Rating, &saved.Comments, &saved.CreatedAt); err != nil {
		if r.db.Classificator().IsForeignKeyViolation(err) {
			// The insert references two parents, but user rows are never
			// deleted (no such operation exists), so the violated constraint
			// is always the movie one. SQLite does not report which foreign
			// key failed, so a per-constraint mapping is not possible anyway.
			log.Warn().Str("func", "*reviewRepository.CreateReview").Int64("movie_id", review.MovieID).Msg("review references missing movie")
			return models.Review{}, nil, ErrMovieNotFound
		}

		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("error: scanning error")
		return models.Review{}, nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	average, err := r.recomputeMovieAverage(ctx, tx, saved.MovieID)
	if err != nil {
		return models.Review{}, nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("failed to commit transaction")
		return models.Review{}, nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "*reviewRepository.CreateReview").
		Int64("review_id", saved.ID).
		Int64("movie_id", saved.MovieID).
		Msg("review created and average recomputed")

	return saved, average, nil
}

// GetReviewByID retrieves a single review without embedded info.
//
// Returns [ErrReviewNotFound] when no review with the given ID exists.
func (r *reviewRepository) GetReviewByID(ctx context.Context, reviewID int64) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(reviewColumns...).
		From(models.Review{}.TableName()).
		Where(sq.Eq{"id": reviewID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.GetReviewByID").Msg("error building select query")
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Review
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.ID, &found.MovieID, &found.UserID, &found.Rating, &found.Comments, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, ErrReviewNotFound
		}

		log.Err(err).Str("func", "*reviewRepository.GetReviewByID").Msg("error: scanning error")
		return models.Review{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateReview replaces a review's rating and comments and recomputes the
// movie's average rating in the same transaction. Ownership is checked by
// the service layer before this is called.
//
// Returns [ErrReviewNotFound] when no review with the given ID exists.
func (r *reviewRepository) UpdateReview(ctx context.Context, review models.Review) (models.Review, *float64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(review.TableName()).
		Set("rating", review.Rating).
		Set("comments", review.Comments).
		Where(sq.Eq{"id": review.ID}).
		Suffix("RETURNING " + strings.Join(reviewColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Msg("error building update query")
		return models.Review{}, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Msg("failed to begin transaction")
		return models.Review{}, nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var updated models.Review
	row := tx.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.MovieID, &updated.UserID, &updated.Rating, &updated.Comments, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, nil, ErrReviewNotFound
		}

		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Msg("error: scanning error")
		return models.Review{}, nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	average, err := r.recomputeMovieAverage(ctx, tx, updated.MovieID)
	if err != nil {
		return models.Review{}, nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Msg("failed to commit transaction")
		return models.Review{}, nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return updated, average, nil
}

// DeleteReview removes a review and recomputes the movie's average rating in
// the same transaction. Returns the new average, which is nil when the
// deleted review was the movie's last one.
//
// Returns [ErrReviewNotFound] when no review with the given ID exists.
func (r *reviewRepository) DeleteReview(ctx context.Context, reviewID int64) (*float64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.Review{}.TableName()).
		Where(sq.Eq{"id": reviewID}).
		Suffix("RETURNING movie_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Msg("error building delete query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var movieID int64
	row := tx.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&movieID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}

		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	average, err := r.recomputeMovieAverage(ctx, tx, movieID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "*reviewRepository.DeleteReview").
		Int64("review_id", reviewID).
		Int64("movie_id", movieID).
		Msg("review deleted and average recomputed")

	return average, nil
}

// ListReviewsByMovie returns one page of a movie's reviews, newest first,
// each carrying the author's public info.
func (r *reviewRepository) ListReviewsByMovie(ctx context.Context, movieID int64, page models.PageRequest) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("r.id", "r.movie_id", "r.user_id", "r.rating", "r.comments", "r.created_at", "u.id", "u.username").
		From(models.Review{}.TableName() + " r").
		Join("users u ON u.id = r.user_id").
		Where(sq.Eq{"r.movie_id": movieID}).
		OrderBy("r.created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListReviewsByMovie").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListReviewsByMovie").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, page.Limit)
	for rows.Next() {
		var review models.Review
		var user models.UserInfo
		if err := rows.Scan(&review.ID, &review.MovieID, &review.UserID, &review.Rating, &review.Comments, &review.CreatedAt, &user.ID, &user.Username); err != nil {
			log.Err(err).Str("func", "*reviewRepository.ListReviewsByMovie").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		review.User = &user
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListReviewsByMovie").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}

// SearchReviews returns one page of reviews whose comments, movie name, or
// author username contains the term (case-insensitive), together with the
// total number of matches. Results are ordered by review ID for a stable
// pagination order.
func (r *reviewRepository) SearchReviews(ctx context.Context, term string, page models.PageRequest) ([]models.Review, int64, error) {
	log := logger.FromContext(ctx)

	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	match := sq.Or{
		sq.Expr(`LOWER(r.comments) LIKE ? ESCAPE '\'`, pattern),
		sq.Expr(`LOWER(m.name) LIKE ? ESCAPE '\'`, pattern),
		sq.Expr(`LOWER(u.username) LIKE ? ESCAPE '\'`, pattern),
	}

	countQuery, countArgs, err := r.db.Builder().
		Select("COUNT(*)").
		From(models.Review{}.TableName() + " r").
		Join("users u ON u.id = r.user_id").
		Join("movies m ON m.id = r.movie_id").
		Where(match).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.SearchReviews").Msg("error building count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*reviewRepository.SearchReviews").Msg("error executing count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := r.db.Builder().
		Select("r.id", "r.movie_id", "r.user_id", "r.rating", "r.comments", "r.created_at", "u.username", "m.name").
		From(models.Review{}.TableName() + " r").
		Join("users u ON u.id = r.user_id").
		Join("movies m ON m.id = r.movie_id").
		Where(match).
		OrderBy("r.id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.SearchReviews").Msg("error building select query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.SearchReviews").Msg("error executing select query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, page.Limit)
	for rows.Next() {
		var review models.Review
		var user models.UserInfo
		var movie models.MovieInfo
		if err := rows.Scan(&review.ID, &review.MovieID, &review.UserID, &review.Rating, &review.Comments, &review.CreatedAt, &user.Username, &movie.Name); err != nil {
			log.Err(err).Str("func", "*reviewRepository.SearchReviews").Msg("error: scanning error")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		review.User = &user
		review.Movie = &movie
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.SearchReviews").Msg("error iterating rows")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, total, nil
}

// RecomputeAverageRatings rewrites every movie's average_rating from its
// current review set in a single statement. Used by the background
// reconciler as a safety net for the per-mutation recompute.
func (r *reviewRepository) RecomputeAverageRatings(ctx context.Context) error {
	log := logger.FromContext(ctx)

	const query = `UPDATE movies SET average_rating = (SELECT AVG(rating) FROM reviews WHERE reviews.movie_id = movies.id)`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		log.Err(err).Str("func", "*reviewRepository.RecomputeAverageRatings").Msg("error executing recompute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// recomputeMovieAverage sets the movie's average_rating to the mean of its
// current reviews inside the caller's transaction and returns the new value.
// AVG over an empty set is NULL, so a movie whose last review was removed
// ends up with a nil average.
func (r *reviewRepository) recomputeMovieAverage(ctx context.Context, tx *sql.Tx, movieID int64) (*float64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(models.Movie{}.TableName()).
		Set("average_rating", sq.Expr("(SELECT AVG(rating) FROM reviews WHERE movie_id = ?)", movieID)).
		Where(sq.Eq{"id": movieID}).
		Suffix("RETURNING average_rating").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.recomputeMovieAverage").Msg("error building update query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var average sql.NullFloat64
	row := tx.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&average); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}

		log.Err(err).Str("func", "*reviewRepository.recomputeMovieAverage").Msg("error: scanning error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if !average.Valid {
		return nil, nil
	}

	return &average.Float64, nil
}
