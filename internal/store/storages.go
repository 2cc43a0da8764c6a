package store

import "github.com/kinoshelf/go-movie-reviews/internal/logger"

// Storages aggregates all repositories backed by a single database connection.
type Storages struct {
	UserRepository   UserRepository
	MovieRepository  MovieRepository
	ReviewRepository ReviewRepository
}

// NewStorages constructs every repository on top of the given database.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		MovieRepository:  NewMovieRepository(db, log),
		ReviewRepository: NewReviewRepository(db, log),
	}
}
