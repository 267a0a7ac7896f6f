package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/models"
	"github.com/jackc/pgerrcode"
)

var airportColumns = []string{
	"id", "name", "email", "phone_number", "postal_code",
	"postal_address", "physical_address", "created_at", "updated_at",
}

func newTestAirportRepo(t *testing.T) (*entityRepository[models.Airport], sqlmock.Sqlmock, *sql.DB) {
	store, mock, db := newTestDB(t)
	repo := newEntityRepository(store, airportsTable, fixedIDs{id: "ap-1"}, fixedClock, logger.Nop())
	return repo, mock, db
}

func testAirport() models.Airport {
	return models.Airport{
		Name:            "Jomo Kenyatta International",
		Email:           "jkia@kaa.go.ke",
		PhoneNumber:     "+254709000000",
		PostalCode:      "00501",
		PostalAddress:   "P.O. Box 19001",
		PhysicalAddress: "Embakasi, Nairobi",
	}
}

func airportRow(id string, a models.Airport) *sqlmock.Rows {
	return sqlmock.NewRows(airportColumns).
		AddRow(id, a.Name, a.Email, a.PhoneNumber, a.PostalCode, a.PostalAddress, a.PhysicalAddress, testNow, testNow)
}

const selectAirportByID = `SELECT ap.id, ap.name, ap.email, ap.phone_number, ap.postal_code, ap.postal_address, ap.physical_address, ap.created_at, ap.updated_at FROM airports ap WHERE ap.id = $1`

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestEntityCreate_Success(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	a := testAirport()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO airports (id,name,email,phone_number,postal_code,postal_address,physical_address,created_at,updated_at)")).
		WithArgs("ap-1", a.Name, a.Email, a.PhoneNumber, a.PostalCode, a.PostalAddress, a.PhysicalAddress, testNow, testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectAirportByID)).
		WithArgs("ap-1").
		WillReturnRows(airportRow("ap-1", a))

	created, err := repo.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "ap-1" {
		t.Errorf("expected id ap-1, got %s", created.ID)
	}
	if !created.CreatedAt.Equal(testNow) || !created.UpdatedAt.Equal(testNow) {
		t.Errorf("expected timestamps stamped with the repository clock, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}
	expectationsMet(t, mock)
}

func TestEntityCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO airports").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), testAirport())
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestEntityCreate_ForeignKeyViolation(t *testing.T) {
	store, mock, db := newTestDB(t)
	defer db.Close()
	repo := newEntityRepository(store, runwaysTable, fixedIDs{id: "rw-1"}, fixedClock, logger.Nop())

	mock.ExpectExec("INSERT INTO runways").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.Create(context.Background(), models.Runway{AirportID: "missing", Number: "06/24"})
	if !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
}

func TestEntityCreate_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO airports").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(context.Background(), testAirport())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

// ─────────────────────────────────────────────
// Get
// ─────────────────────────────────────────────

func TestEntityGet_NotFound(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectAirportByID)).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(airportColumns))

	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestEntityGet_QueryError(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := repo.Get(context.Background(), "ap-1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestEntityGet_NullableReferences(t *testing.T) {
	store, mock, db := newTestDB(t)
	defer db.Close()
	repo := newEntityRepository(store, issuesTable, fixedIDs{}, fixedClock, logger.Nop())

	rows := sqlmock.NewRows([]string{
		"id", "airport_id", "runway_id", "taxiway_id", "airline_id", "ans_station_id", "maintenance_org_id",
		"inspection_type", "entity", "comment", "is_resolved", "created_at", "updated_at",
	}).AddRow("iss-1", "ap-1", nil, nil, nil, nil, nil, "Runway", "Runway", "FOD on 06/24", false, testNow, testNow)

	mock.ExpectQuery("FROM issues iss WHERE iss.id = ").WithArgs("iss-1").WillReturnRows(rows)

	issue, err := repo.Get(context.Background(), "iss-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if issue.AirportID == nil || *issue.AirportID != "ap-1" {
		t.Errorf("expected airport id ap-1, got %v", issue.AirportID)
	}
	if issue.RunwayID != nil {
		t.Errorf("expected nil runway id, got %v", *issue.RunwayID)
	}
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestEntityList_Success(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	q := models.ListQuery{Page: 2, Limit: 5, Filters: map[string]string{"name": "Jomo"}}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM airports ap WHERE (ap.name ILIKE $1)")).
		WithArgs("%Jomo%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE (ap.name ILIKE $1) ORDER BY ap.created_at DESC LIMIT 5 OFFSET 5")).
		WithArgs("%Jomo%").
		WillReturnRows(airportRow("ap-6", testAirport()))

	result, err := repo.List(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 6 {
		t.Errorf("expected total 6, got %d", result.Total)
	}
	if result.Page != 2 || result.Limit != 5 {
		t.Errorf("expected page 2 limit 5 echoed, got %d/%d", result.Page, result.Limit)
	}
	if len(result.Results) != 1 || result.Results[0].ID != "ap-6" {
		t.Errorf("unexpected results: %+v", result.Results)
	}
	expectationsMet(t, mock)
}

func TestEntityList_EmptyPageKeepsTotal(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM airports ap")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("LIMIT 10 OFFSET 90").
		WillReturnRows(sqlmock.NewRows(airportColumns))

	result, err := repo.List(context.Background(), models.ListQuery{Page: 10, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 3 {
		t.Errorf("expected total 3, got %d", result.Total)
	}
	if result.Results == nil || len(result.Results) != 0 {
		t.Errorf("expected empty non-nil results, got %#v", result.Results)
	}
}

func TestEntityList_InvalidFilterRunsNoQuery(t *testing.T) {
	store, mock, db := newTestDB(t)
	defer db.Close()
	repo := newEntityRepository(store, inspectionsTable, fixedIDs{}, fixedClock, logger.Nop())

	_, err := repo.List(context.Background(), models.ListQuery{
		Page: 1, Limit: 10, Filters: map[string]string{"isComplete": "perhaps"},
	})
	if !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestEntityList_ScanError(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("ORDER BY").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ap-1"))

	_, err := repo.List(context.Background(), models.ListQuery{Page: 1, Limit: 10})
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

// ─────────────────────────────────────────────
// Update / Delete
// ─────────────────────────────────────────────

func TestEntityUpdate_Success(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	a := testAirport()
	a.Name = "JKIA"

	mock.ExpectExec(regexp.QuoteMeta("UPDATE airports SET name = $1")).
		WithArgs(a.Name, a.Email, a.PhoneNumber, a.PostalCode, a.PostalAddress, a.PhysicalAddress, testNow, "ap-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectAirportByID)).
		WithArgs("ap-1").
		WillReturnRows(airportRow("ap-1", a))

	updated, err := repo.Update(context.Background(), "ap-1", a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "JKIA" {
		t.Errorf("expected updated name, got %s", updated.Name)
	}
	expectationsMet(t, mock)
}

func TestEntityUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE airports").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), "missing", testAirport())
	if !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestEntityUpdate_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE airports").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Update(context.Background(), "ap-1", testAirport())
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestEntityDelete_ReturnsRemovedRecord(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectAirportByID)).
		WithArgs("ap-1").
		WillReturnRows(airportRow("ap-1", testAirport()))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM airports WHERE id = $1")).
		WithArgs("ap-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), "ap-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.ID != "ap-1" {
		t.Errorf("expected deleted record ap-1, got %s", deleted.ID)
	}
	expectationsMet(t, mock)
}

func TestEntityDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestAirportRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectAirportByID)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(airportColumns))

	_, err := repo.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
	expectationsMet(t, mock)
}
