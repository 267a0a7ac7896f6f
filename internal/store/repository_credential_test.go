// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/flight-guardian/internal/logger"
)

var credentialColumns = []string{
	"account_id", "password_hash", "reset_token_hash", "token_expiry", "used", "created_at", "updated_at",
}

func newTestCredentialRepo(t *testing.T) (*credentialRepository, sqlmock.Sqlmock, *sql.DB) {
	store, mock, db := newTestDB(t)
	repo := NewCredentialRepository(store, fixedClock, logger.Nop()).(*credentialRepository)
	return repo, mock, db
}

// ─────────────────────────────────────────────
// GetByAccountID
// ─────────────────────────────────────────────

func TestGetByAccountID_WithResetToken(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getCredentialByAccountID)).
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows(credentialColumns).
			AddRow("acc-1", "pw-hash", "token-hash", int64(1710410000000), false, testNow, testNow))

	credential, err := repo.GetByAccountID(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !credential.HasResetToken() || credential.ResetTokenHash != "token-hash" {
		t.Errorf("expected reset token hash, got %q", credential.ResetTokenHash)
	}
	if credential.TokenExpiry != 1710410000000 {
		t.Errorf("unexpected expiry %d", credential.TokenExpiry)
	}
	if credential.Used {
		t.Error("expected unused token")
	}
}

func TestGetByAccountID_NullResetToken(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM credentials").
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows(credentialColumns).
			AddRow("acc-1", "pw-hash", nil, nil, false, testNow, testNow))

	credential, err := repo.GetByAccountID(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if credential.HasResetToken() || credential.TokenExpiry != 0 {
		t.Errorf("expected no reset token, got %+v", credential)
	}
}

func TestGetByAccountID_NotFound(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM credentials").
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows(credentialColumns))

	_, err := repo.GetByAccountID(context.Background(), "acc-1")
	if !errors.Is(err, ErrCredentialNotFound) {
		t.Fatalf("expected ErrCredentialNotFound, got %v", err)
	}
}

// ─────────────────────────────────────────────
// SetResetToken
// ─────────────────────────────────────────────

func TestSetResetToken_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(setResetToken)).
		WithArgs("acc-1", "token-hash", int64(1710410000000), testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetResetToken(context.Background(), "acc-1", "token-hash", 1710410000000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestSetResetToken_NoCredential(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE credentials").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetResetToken(context.Background(), "acc-1", "token-hash", 1)
	if !errors.Is(err, ErrCredentialNotFound) {
		t.Fatalf("expected ErrCredentialNotFound, got %v", err)
	}
}

func TestSetResetToken_DBError(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE credentials").WillReturnError(errors.New("broken pipe"))

	err := repo.SetResetToken(context.Background(), "acc-1", "token-hash", 1)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

// ─────────────────────────────────────────────
// ConsumeResetToken
// ─────────────────────────────────────────────

func TestConsumeResetToken_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(consumeResetToken)).
		WithArgs("acc-1", "token-hash", "new-pw-hash", testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ConsumeResetToken(context.Background(), "acc-1", "token-hash", "new-pw-hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestConsumeResetToken_AlreadyUsed(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec("AND used = FALSE").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ConsumeResetToken(context.Background(), "acc-1", "token-hash", "new-pw-hash")
	if !errors.Is(err, ErrResetTokenNotConsumable) {
		t.Fatalf("expected ErrResetTokenNotConsumable, got %v", err)
	}
}

// ─────────────────────────────────────────────
// ClearExpiredResetTokens
// ─────────────────────────────────────────────

func TestClearExpiredResetTokens_ReturnsCount(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(clearExpiredResetTokens)).
		WithArgs(int64(1000), testNow).
		WillReturnResult(sqlmock.NewResult(0, 4))

	cleared, err := repo.ClearExpiredResetTokens(context.Background(), 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleared != 4 {
		t.Errorf("expected 4 cleared rows, got %d", cleared)
	}
}

func TestClearExpiredResetTokens_DBError(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE credentials").WillReturnError(errors.New("timeout"))

	_, err := repo.ClearExpiredResetTokens(context.Background(), 1000)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
