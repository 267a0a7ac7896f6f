package store

import (
	"context"

	"github.com/MKhiriev/flight-guardian/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntityRepository is the CRUD and list surface shared by every entity table.
type EntityRepository[T any] interface {
	// Create inserts entity under a freshly generated id and returns the
	// stored record.
	Create(ctx context.Context, entity T) (T, error)

	// Get returns the record with the given id or the table's not-found error.
	Get(ctx context.Context, id string) (T, error)

	// List applies the filter, search and pagination protocol.
	List(ctx context.Context, query models.ListQuery) (models.ListResult[T], error)

	// Update overwrites the writable columns of the record with the given id.
	Update(ctx context.Context, id string, entity T) (T, error)

	// Delete removes the record and returns it as it was before removal.
	Delete(ctx context.Context, id string) (T, error)
}

// AccountRepository is the account directory.
type AccountRepository interface {
	EntityRepository[models.Account]

	// GetByEmail matches email exactly (case-sensitive).
	GetByEmail(ctx context.Context, email string) (models.Account, error)

	// CreateWithCredential inserts the account and its credential in one
	// transaction.
	CreateWithCredential(ctx context.Context, account models.Account, passwordHash string) (models.Account, error)
}

// CredentialRepository is the credential store. It holds at most one row per
// account.
type CredentialRepository interface {
	GetByAccountID(ctx context.Context, accountID string) (models.Credential, error)

	// SetResetToken overwrites the reset token hash and expiry and marks the
	// token unused.
	SetResetToken(ctx context.Context, accountID, tokenHash string, expiry int64) error

	// ConsumeResetToken replaces the password hash and marks the token used,
	// provided the row still carries tokenHash and used is false.
	ConsumeResetToken(ctx context.Context, accountID, tokenHash, passwordHash string) error

	// ClearExpiredResetTokens removes reset material whose expiry lies before
	// the given epoch milliseconds and returns the number of rows touched.
	ClearExpiredResetTokens(ctx context.Context, before int64) (int64, error)
}

// ReportRepository selects the rows exported into spreadsheet reports.
type ReportRepository interface {
	InspectionReportRows(ctx context.Context, filter models.ReportFilter) ([]models.InspectionReportRow, error)
	IssueReportRows(ctx context.Context, filter models.ReportFilter) ([]models.IssueReportRow, error)
}

// DashboardRepository computes the aggregate counters of the dashboard.
type DashboardRepository interface {
	Summary(ctx context.Context) (models.DashboardSummary, error)
	AccountsByRole(ctx context.Context) (models.RoleCounts, error)
	InspectionStats(ctx context.Context) (models.InspectionStats, error)
	IssueStats(ctx context.Context) (models.IssueStats, error)
}
