package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/store"
	"github.com/MKhiriev/flight-guardian/models"
)

type dashboardService struct {
	repository store.DashboardRepository
	logger     *logger.Logger
}

func NewDashboardService(repository store.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		repository: repository,
		logger:     logger,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (models.DashboardSummary, error) {
	summary, err := s.repository.Summary(ctx)
	if err != nil {
		return models.DashboardSummary{}, fmt.Errorf("dashboard summary failed: %w", err)
	}
	return summary, nil
}

// UsersByRole returns the number of accounts per role. Every known role is
// present, with zero when no account holds it.
func (s *dashboardService) UsersByRole(ctx context.Context) (models.RoleCounts, error) {
	counts, err := s.repository.AccountsByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("users by role failed: %w", err)
	}

	filled := make(models.RoleCounts, len(models.Roles))
	for _, role := range models.Roles {
		filled[role] = counts[role]
	}
	return filled, nil
}

func (s *dashboardService) InspectionStats(ctx context.Context) (models.InspectionStats, error) {
	stats, err := s.repository.InspectionStats(ctx)
	if err != nil {
		return models.InspectionStats{}, fmt.Errorf("inspection stats failed: %w", err)
	}
	return stats, nil
}

func (s *dashboardService) IssueStats(ctx context.Context) (models.IssueStats, error) {
	stats, err := s.repository.IssueStats(ctx)
	if err != nil {
		return models.IssueStats{}, fmt.Errorf("issue stats failed: %w", err)
	}
	return stats, nil
}
