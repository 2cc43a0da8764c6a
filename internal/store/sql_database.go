package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/kinoshelf/go-movie-reviews/internal/config"
	"github.com/kinoshelf/go-movie-reviews/internal/logger"
	"github.com/kinoshelf/go-movie-reviews/migrations"
)

// likeEscaper escapes the LIKE metacharacters in user-supplied terms so a
// pattern built from them is a literal substring match. Queries using it must
// carry an ESCAPE '\' clause.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// DB wraps a database/sql connection together with the driver-specific pieces
// the repositories need: a squirrel statement builder configured with the
// driver's placeholder format and an [ErrorClassificator] for the driver's
// error codes.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Builder returns the statement builder configured for the underlying driver.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Classificator returns the driver's error classificator.
func (db *DB) Classificator() ErrorClassificator {
	return db.errorClassificator
}

// Migrate applies all pending schema migrations. The SQLite backend creates
// its schema at connect time, so Migrate is a no-op for it.
func (db *DB) Migrate() error {
	if db.driver == config.DriverSQLite {
		return nil
	}

	return migrations.Migrate(db.DB)
}

// Ping verifies the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}
