package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/utils"
	"github.com/MKhiriev/flight-guardian/models"
	sq "github.com/Masterminds/squirrel"
)

// entityRepository is the PostgreSQL-backed implementation of
// [EntityRepository]. The statements it runs are derived from table.
type entityRepository[T any] struct {
	db     *DB
	table  Table[T]
	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

func newEntityRepository[T any](db *DB, table Table[T], ids utils.IDGenerator, now func() time.Time, log *logger.Logger) *entityRepository[T] {
	log.Debug().Str("table", table.Name).Msg("creating entity repository")
	return &entityRepository[T]{
		db:     db,
		table:  table,
		ids:    ids,
		now:    now,
		logger: log,
	}
}

// NewEntityRepository constructs an [EntityRepository] over table.
func NewEntityRepository[T any](db *DB, table Table[T], ids utils.IDGenerator, now func() time.Time, log *logger.Logger) EntityRepository[T] {
	return newEntityRepository(db, table, ids, now, log)
}

func (r *entityRepository[T]) fn(method string) string {
	return "entityRepository[" + r.table.Name + "]." + method
}

// Create inserts entity under a new id stamped with the repository clock and
// reads the stored row back.
func (r *entityRepository[T]) Create(ctx context.Context, entity T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	id := r.ids.Generate()
	stmt, err := r.table.insertStatement(id, entity, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", r.fn("Create")).Msg("failed to build insert query")
		return zero, err
	}

	if _, err = r.db.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
		r.db.logError(log, r.fn("Create"), err, "failed to insert record")
		return zero, translateError(err, ErrExecutingStatement)
	}

	return r.Get(ctx, id)
}

// Get returns the row whose id matches.
func (r *entityRepository[T]) Get(ctx context.Context, id string) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	stmt, err := r.table.getStatement(sq.Eq{r.table.column("id"): id})
	if err != nil {
		log.Err(err).Str("func", r.fn("Get")).Msg("failed to build select query")
		return zero, err
	}

	entity, err := r.table.Scan(r.db.QueryRowContext(ctx, stmt.query, stmt.args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, r.table.NotFound
	}
	if err != nil {
		r.db.logError(log, r.fn("Get"), err, "failed to select record")
		return zero, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entity, nil
}

// List counts every row matching query and returns the requested page.
func (r *entityRepository[T]) List(ctx context.Context, query models.ListQuery) (models.ListResult[T], error) {
	log := logger.FromContext(ctx)

	count, page, err := r.table.listStatements(query)
	if err != nil {
		log.Err(err).Str("func", r.fn("List")).Msg("failed to build list queries")
		return models.ListResult[T]{}, err
	}

	var total int
	if err = r.db.QueryRowContext(ctx, count.query, count.args...).Scan(&total); err != nil {
		r.db.logError(log, r.fn("List"), err, "failed to count records")
		return models.ListResult[T]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, page.query, page.args...)
	if err != nil {
		r.db.logError(log, r.fn("List"), err, "failed to select page")
		return models.ListResult[T]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		entity, scanErr := r.table.Scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", r.fn("List")).Msg("failed to scan row")
			return models.ListResult[T]{}, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		results = append(results, entity)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", r.fn("List")).Msg("rows iteration error")
		return models.ListResult[T]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.ListResult[T]{
		Results: results,
		Total:   total,
		Page:    query.Page,
		Limit:   query.Limit,
	}, nil
}

// Update overwrites the writable columns and bumps updated_at.
func (r *entityRepository[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	stmt, err := r.table.updateStatement(id, entity, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", r.fn("Update")).Msg("failed to build update query")
		return zero, err
	}

	res, err := r.db.ExecContext(ctx, stmt.query, stmt.args...)
	if err != nil {
		r.db.logError(log, r.fn("Update"), err, "failed to update record")
		return zero, translateError(err, ErrExecutingStatement)
	}

	if err = expectAffected(res, r.table.NotFound); err != nil {
		return zero, err
	}

	return r.Get(ctx, id)
}

// Delete removes the row and returns its last state.
func (r *entityRepository[T]) Delete(ctx context.Context, id string) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	entity, err := r.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	stmt, err := r.table.deleteStatement(id)
	if err != nil {
		log.Err(err).Str("func", r.fn("Delete")).Msg("failed to build delete query")
		return zero, err
	}

	res, err := r.db.ExecContext(ctx, stmt.query, stmt.args...)
	if err != nil {
		r.db.logError(log, r.fn("Delete"), err, "failed to delete record")
		return zero, translateError(err, ErrExecutingStatement)
	}

	if err = expectAffected(res, r.table.NotFound); err != nil {
		return zero, err
	}

	return entity, nil
}

// expectAffected returns notFound when res reports zero affected rows.
func expectAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
