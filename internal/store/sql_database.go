package store

import (
	"database/sql"

	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/migrations"
)

// DB is the shared PostgreSQL handle injected into every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened pool.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// retryable reports whether err is classified as transient.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// logError writes a database failure with its SQLSTATE and retryability.
func (db *DB) logError(log *logger.Logger, fn string, err error, msg string) {
	log.Err(err).
		Str("func", fn).
		Str("sqlstate", postgresError(err)).
		Bool("retryable", db.retryable(err)).
		Msg(msg)
}
