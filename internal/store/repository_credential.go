package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/models"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository] over the "credentials" table.
type credentialRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository].
func NewCredentialRepository(db *DB, now func() time.Time, log *logger.Logger) CredentialRepository {
	log.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		now:    now,
		logger: log,
	}
}

// GetByAccountID returns the credential of the account or
// [ErrCredentialNotFound].
func (r *credentialRepository) GetByAccountID(ctx context.Context, accountID string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var (
		credential models.Credential
		tokenHash  sql.NullString
		expiry     sql.NullInt64
	)

	err := r.db.QueryRowContext(ctx, getCredentialByAccountID, accountID).Scan(
		&credential.AccountID,
		&credential.PasswordHash,
		&tokenHash,
		&expiry,
		&credential.Used,
		&credential.CreatedAt,
		&credential.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		r.db.logError(log, "*credentialRepository.GetByAccountID", err, "failed to select credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	credential.ResetTokenHash = tokenHash.String
	credential.TokenExpiry = expiry.Int64

	return credential, nil
}

// SetResetToken stores a fresh reset token hash, overwriting any previous one.
func (r *credentialRepository) SetResetToken(ctx context.Context, accountID, tokenHash string, expiry int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, setResetToken, accountID, tokenHash, expiry, r.now().UTC())
	if err != nil {
		r.db.logError(log, "*credentialRepository.SetResetToken", err, "failed to store reset token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrCredentialNotFound)
}

// ConsumeResetToken sets the new password hash and marks the token used in a
// single conditional UPDATE, so a token authorizes at most one change.
func (r *credentialRepository) ConsumeResetToken(ctx context.Context, accountID, tokenHash, passwordHash string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, consumeResetToken, accountID, tokenHash, passwordHash, r.now().UTC())
	if err != nil {
		r.db.logError(log, "*credentialRepository.ConsumeResetToken", err, "failed to update password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrResetTokenNotConsumable)
}

// ClearExpiredResetTokens nulls the reset material of every credential whose
// token expired before the given epoch milliseconds.
func (r *credentialRepository) ClearExpiredResetTokens(ctx context.Context, before int64) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, clearExpiredResetTokens, before, r.now().UTC())
	if err != nil {
		r.db.logError(log, "*credentialRepository.ClearExpiredResetTokens", err, "failed to clear expired reset tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	cleared, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return cleared, nil
}
