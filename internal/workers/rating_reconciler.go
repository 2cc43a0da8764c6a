package workers

import (
	"context"
	"time"

	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/store"
)

// maxRecomputeAttempts bounds the retries of a single reconcile pass when
// the database reports a transient failure.
const maxRecomputeAttempts = 3

// averageRatingRecomputer is the slice of the review repository the
// reconciler needs.
type averageRatingRecomputer interface {
	RecomputeAverageRatings(ctx context.Context) error
}

// RatingReconciler periodically recomputes every movie's average rating from
// its current review set.
//
// Per-mutation recomputation keeps the stored averages correct in normal
// operation; the reconciler is the safety net that repairs drift after
// manual data fixes or partially applied migrations.
type RatingReconciler struct {
	interval time.Duration
	reviews  averageRatingRecomputer

	// classificator decides whether a failed pass is worth retrying.
	classificator store.ErrorClassificator

	// retryBackoff is the pause between retry attempts within one pass.
	retryBackoff time.Duration

	logger *logger.Logger
}

func NewRatingReconciler(interval time.Duration, reviews averageRatingRecomputer, classificator store.ErrorClassificator, logger *logger.Logger) *RatingReconciler {
	return &RatingReconciler{
		interval:      interval,
		reviews:       reviews,
		classificator: classificator,
		retryBackoff:  time.Second,
		logger:        logger,
	}
}

// Run ticks every interval and reconciles the stored averages, blocking
// until ctx is cancelled.
func (w *RatingReconciler) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("rating reconciler started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("rating reconciler stopped")
			return
		case <-ticker.C:
			w.reconcile(ctx)
		}
	}
}

// reconcile runs one recompute pass, retrying transient database failures
// up to maxRecomputeAttempts times.
func (w *RatingReconciler) reconcile(ctx context.Context) {
	for attempt := 1; attempt <= maxRecomputeAttempts; attempt++ {
		err := w.reviews.RecomputeAverageRatings(ctx)
		if err == nil {
			w.logger.Debug().Msg("average ratings reconciled")
			return
		}

		if w.classificator.Classify(err) != store.Retryable {
			w.logger.Err(err).Str("func", "*RatingReconciler.reconcile").Msg("reconcile pass failed")
			return
		}

		w.logger.Warn().Err(err).Int("attempt", attempt).Msg("transient reconcile failure, retrying")

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.retryBackoff):
		}
	}

	w.logger.Error().Str("func", "*RatingReconciler.reconcile").Msg("reconcile pass exhausted retries")
}
