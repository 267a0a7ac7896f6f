package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/models"
)

type dashboardRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDashboardRepository constructs a [DashboardRepository].
func NewDashboardRepository(db *DB, log *logger.Logger) DashboardRepository {
	log.Debug().Msg("creating dashboard repository")
	return &dashboardRepository{
		db:     db,
		logger: log,
	}
}

func (r *dashboardRepository) Summary(ctx context.Context) (models.DashboardSummary, error) {
	log := logger.FromContext(ctx)

	var summary models.DashboardSummary
	err := r.db.QueryRowContext(ctx, dashboardSummary).Scan(
		&summary.Users,
		&summary.Airports,
		&summary.Inspections,
		&summary.Issues,
	)
	if err != nil {
		r.db.logError(log, "*dashboardRepository.Summary", err, "failed to count records")
		return models.DashboardSummary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return summary, nil
}

// AccountsByRole returns the number of accounts per role. Roles without any
// account are absent from the result.
func (r *dashboardRepository) AccountsByRole(ctx context.Context) (models.RoleCounts, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, accountsByRole)
	if err != nil {
		r.db.logError(log, "*dashboardRepository.AccountsByRole", err, "failed to group accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(models.RoleCounts)
	for rows.Next() {
		var (
			role  models.Role
			count int
		)
		if err = rows.Scan(&role, &count); err != nil {
			log.Err(err).Str("func", "*dashboardRepository.AccountsByRole").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts[role] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

func (r *dashboardRepository) InspectionStats(ctx context.Context) (models.InspectionStats, error) {
	log := logger.FromContext(ctx)

	var stats models.InspectionStats
	if err := r.db.QueryRowContext(ctx, inspectionStats).Scan(&stats.Completed, &stats.Incomplete); err != nil {
		r.db.logError(log, "*dashboardRepository.InspectionStats", err, "failed to count inspections")
		return models.InspectionStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}

func (r *dashboardRepository) IssueStats(ctx context.Context) (models.IssueStats, error) {
	log := logger.FromContext(ctx)

	var stats models.IssueStats
	if err := r.db.QueryRowContext(ctx, issueStats).Scan(&stats.Resolved, &stats.Unresolved); err != nil {
		r.db.logError(log, "*dashboardRepository.IssueStats", err, "failed to count issues")
		return models.IssueStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}
