// Package service holds the business logic of flight-guardian: the
// credential lifecycle, entity CRUD with validation, report generation and
// dashboard aggregation. Services depend on store repositories and on the
// notification sink through interfaces only.
package service

import (
	"context"

	"github.com/MKhiriev/flight-guardian/models"
)

// AuthService drives the credential lifecycle: invitation, login, password
// reset requests and password resets, plus session token verification.
type AuthService interface {
	// SendInvite creates an account with a temporary password and emails the
	// invitation.
	SendInvite(ctx context.Context, req models.InviteRequest) (models.EmailPayload, error)

	// Login verifies the password and issues a session token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// RequestPasswordReset issues a fresh reset token and emails the reset link.
	RequestPasswordReset(ctx context.Context, req models.ResetRequestPayload) (models.EmailPayload, error)

	// ResetPassword consumes a reset token and replaces the password.
	ResetPassword(ctx context.Context, req models.PasswordResetRequest) (models.EmailPayload, error)

	// ParseToken verifies a session token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.SessionClaims, error)
}

// EntityService is the validated CRUD and list surface of one entity kind.
type EntityService[T any] interface {
	Create(ctx context.Context, entity T) (T, error)
	Get(ctx context.Context, id string) (T, error)
	List(ctx context.Context, query models.ListQuery) (models.ListResult[T], error)
	Update(ctx context.Context, id string, entity T) (T, error)
	Delete(ctx context.Context, id string) (T, error)
}

// ReportService builds spreadsheet reports and emails them to the requested
// recipient.
type ReportService interface {
	SendInspectionReport(ctx context.Context, req models.ReportRequest) error
	SendIssueReport(ctx context.Context, req models.ReportRequest) error
}

// DashboardService serves the aggregate counters of the dashboard.
type DashboardService interface {
	Summary(ctx context.Context) (models.DashboardSummary, error)
	UsersByRole(ctx context.Context) (models.RoleCounts, error)
	InspectionStats(ctx context.Context) (models.InspectionStats, error)
	IssueStats(ctx context.Context) (models.IssueStats, error)
}

// AppInfoService exposes the version and build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
