package workers

import (
	"context"

	"github.com/kinoshelf/go-movie-reviews/internal/config"
	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/internal/store"
)

// Workers aggregates the configured background jobs.
type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background jobs enabled by cfg. With a zero
// reconcile interval the returned aggregate is empty and Run is a no-op.
func NewWorkers(cfg config.Workers, storages *store.Storages, classificator store.ErrorClassificator, logger *logger.Logger) *Workers {
	var active []Worker

	if cfg.RatingReconcileInterval > 0 {
		active = append(active, NewRatingReconciler(cfg.RatingReconcileInterval, storages.ReviewRepository, classificator, logger))
	}

	return &Workers{workers: active}
}

// Run starts every worker in its own goroutine and returns immediately.
// The workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
