package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/models"
)

func testReportFilter() models.ReportFilter {
	return models.ReportFilter{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
	}
}

func TestInspectionReportRows_FiltersByStatus(t *testing.T) {
	store, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewReportRepository(store, logger.Nop())

	filter := testReportFilter()
	filter.Status = models.ReportStatus{Valid: true, Bool: true}

	deadline := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM inspections i WHERE (i.created_at >= $1 AND i.created_at <= $2 AND i.is_complete = $3) ORDER BY i.created_at ASC")).
		WithArgs(filter.From, filter.To, true).
		WillReturnRows(sqlmock.NewRows([]string{"airport_id", "inspector_id", "is_complete", "deadline", "created_at"}).
			AddRow("ap-1", "acc-1", true, deadline, testNow).
			AddRow("", "acc-2", true, nil, testNow))

	rows, err := repo.InspectionReportRows(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Deadline == nil || !rows[0].Deadline.Equal(deadline) {
		t.Errorf("expected deadline %v, got %v", deadline, rows[0].Deadline)
	}
	if rows[1].Deadline != nil {
		t.Errorf("expected nil deadline, got %v", rows[1].Deadline)
	}
	expectationsMet(t, mock)
}

func TestInspectionReportRows_AllStatuses(t *testing.T) {
	store, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewReportRepository(store, logger.Nop())

	filter := testReportFilter()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (i.created_at >= $1 AND i.created_at <= $2) ORDER BY")).
		WithArgs(filter.From, filter.To).
		WillReturnRows(sqlmock.NewRows([]string{"airport_id", "inspector_id", "is_complete", "deadline", "created_at"}))

	rows, err := repo.InspectionReportRows(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
	expectationsMet(t, mock)
}

func TestInspectionReportRows_QueryError(t *testing.T) {
	store, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewReportRepository(store, logger.Nop())

	mock.ExpectQuery("FROM inspections").WillReturnError(errors.New("boom"))

	_, err := repo.InspectionReportRows(context.Background(), testReportFilter())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestIssueReportRows_SubjectAndStatus(t *testing.T) {
	store, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewReportRepository(store, logger.Nop())

	filter := testReportFilter()
	filter.Status = models.ReportStatus{Valid: true, Bool: false}
	filter.Entity = "runwayId"

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN maintenance_organizations mo ON mo.id = iss.maintenance_org_id WHERE (iss.created_at >= $1 AND iss.created_at <= $2 AND iss.is_resolved = $3 AND iss.runway_id IS NOT NULL)")).
		WithArgs(filter.From, filter.To, false).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "airport_name", "runway_number", "taxiway_number", "airline_name", "ans_station_name",
			"maintenance_org_name", "inspection_type", "entity", "comment", "is_resolved", "created_at",
		}).AddRow("iss-1", "JKIA", "06/24", "", "", "", "", "Surface", "Runway", "Rubber deposits", false, testNow))

	rows, err := repo.IssueReportRows(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].RunwayNumber != "06/24" || rows[0].AirportName != "JKIA" {
		t.Errorf("unexpected rows: %+v", rows)
	}
	expectationsMet(t, mock)
}

func TestIssueReportRows_AllEntities(t *testing.T) {
	store, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewReportRepository(store, logger.Nop())

	filter := testReportFilter()
	filter.Entity = models.ReportAll

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (iss.created_at >= $1 AND iss.created_at <= $2) ORDER BY iss.created_at ASC")).
		WithArgs(filter.From, filter.To).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.IssueReportRows(context.Background(), filter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}

func TestIssueReportRows_UnknownEntity(t *testing.T) {
	store, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewReportRepository(store, logger.Nop())

	filter := testReportFilter()
	filter.Entity = "hangarId"

	_, err := repo.IssueReportRows(context.Background(), filter)
	if !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	expectationsMet(t, mock)
}
