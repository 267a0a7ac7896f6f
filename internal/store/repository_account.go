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

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository] over the "accounts" table. Generic CRUD is inherited
// from [entityRepository]; the credential row is written alongside on
// creation.
type accountRepository struct {
	*entityRepository[models.Account]
}

// NewAccountRepository constructs an [AccountRepository].
func NewAccountRepository(db *DB, ids utils.IDGenerator, now func() time.Time, log *logger.Logger) AccountRepository {
	return &accountRepository{
		entityRepository: newEntityRepository(db, accountsTable, ids, now, log),
	}
}

// GetByEmail returns the account whose email equals email byte for byte.
func (r *accountRepository) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	stmt, err := r.table.getStatement(sq.Eq{r.table.column("email"): email})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.GetByEmail").Msg("failed to build select query")
		return models.Account{}, err
	}

	account, err := r.table.Scan(r.db.QueryRowContext(ctx, stmt.query, stmt.args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		r.db.logError(log, "*accountRepository.GetByEmail", err, "failed to select account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// CreateWithCredential inserts the account and a credential carrying
// passwordHash in one transaction. A duplicate email yields [ErrDuplicateKey]
// and nothing is written.
func (r *accountRepository) CreateWithCredential(ctx context.Context, account models.Account, passwordHash string) (models.Account, error) {
	log := logger.FromContext(ctx)

	id := r.ids.Generate()
	now := r.now().UTC()

	stmt, err := r.table.insertStatement(id, account, now)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateWithCredential").Msg("failed to build insert query")
		return models.Account{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateWithCredential").Msg("failed to begin transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
		r.db.logError(log, "*accountRepository.CreateWithCredential", err, "failed to insert account")
		return models.Account{}, translateError(err, ErrExecutingStatement)
	}

	if _, err = tx.ExecContext(ctx, insertCredential, id, passwordHash, now); err != nil {
		r.db.logError(log, "*accountRepository.CreateWithCredential", err, "failed to insert credential")
		return models.Account{}, translateError(err, ErrExecutingStatement)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateWithCredential").Msg("failed to commit transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return r.Get(ctx, id)
}
