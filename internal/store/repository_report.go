package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/models"
	sq "github.com/Masterminds/squirrel"
)

// issueSubjectColumns maps the subject keys accepted by issue reports to the
// foreign key that must be set.
var issueSubjectColumns = map[string]string{
	"airportId":        "iss.airport_id",
	"runwayId":         "iss.runway_id",
	"taxiwayId":        "iss.taxiway_id",
	"airlineId":        "iss.airline_id",
	"ansStationId":     "iss.ans_station_id",
	"maintenanceOrgId": "iss.maintenance_org_id",
}

// reportRepository is the PostgreSQL-backed implementation of [ReportRepository].
type reportRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewReportRepository constructs a [ReportRepository].
func NewReportRepository(db *DB, log *logger.Logger) ReportRepository {
	log.Debug().Msg("creating report repository")
	return &reportRepository{
		db:     db,
		logger: log,
	}
}

// InspectionReportRows selects inspections created within the filter window,
// optionally narrowed by completion state, oldest first.
func (r *reportRepository) InspectionReportRows(ctx context.Context, filter models.ReportFilter) ([]models.InspectionReportRow, error) {
	log := logger.FromContext(ctx)

	where := createdWithin("i.created_at", filter)
	if filter.Status.Valid {
		where = append(where, sq.Eq{"i.is_complete": filter.Status.Bool})
	}

	builder := psql.
		Select("COALESCE(i.airport_id, '')", "i.inspector_id", "i.is_complete", "i.deadline", "i.created_at").
		From("inspections i").
		OrderBy("i.created_at ASC")
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.InspectionReportRows").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logError(log, "*reportRepository.InspectionReportRows", err, "failed to select inspections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.InspectionReportRow, 0)
	for rows.Next() {
		var row models.InspectionReportRow
		if err = rows.Scan(&row.AirportID, &row.InspectorID, &row.IsComplete, &row.Deadline, &row.CreatedAt); err != nil {
			log.Err(err).Str("func", "*reportRepository.InspectionReportRows").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// IssueReportRows selects issues created within the filter window with the
// names of every referenced facility resolved. filter.Entity, unless empty or
// "All", keeps only issues whose matching foreign key is set.
func (r *reportRepository) IssueReportRows(ctx context.Context, filter models.ReportFilter) ([]models.IssueReportRow, error) {
	log := logger.FromContext(ctx)

	where := createdWithin("iss.created_at", filter)
	if filter.Status.Valid {
		where = append(where, sq.Eq{"iss.is_resolved": filter.Status.Bool})
	}
	if filter.Entity != "" && filter.Entity != models.ReportAll {
		column, ok := issueSubjectColumns[filter.Entity]
		if !ok {
			return nil, fmt.Errorf("%w: unknown entity %q", ErrInvalidFilter, filter.Entity)
		}
		where = append(where, sq.NotEq{column: nil})
	}

	builder := psql.
		Select(
			"iss.id",
			"COALESCE(ap.name, '')",
			"COALESCE(rw.number, '')",
			"COALESCE(tw.number, '')",
			"COALESCE(al.name, '')",
			"COALESCE(ans.name, '')",
			"COALESCE(mo.name, '')",
			"iss.inspection_type",
			"iss.entity",
			"iss.comment",
			"iss.is_resolved",
			"iss.created_at",
		).
		From("issues iss").
		LeftJoin("airports ap ON ap.id = iss.airport_id").
		LeftJoin("runways rw ON rw.id = iss.runway_id").
		LeftJoin("taxiways tw ON tw.id = iss.taxiway_id").
		LeftJoin("airlines al ON al.id = iss.airline_id").
		LeftJoin("ans_stations ans ON ans.id = iss.ans_station_id").
		LeftJoin("maintenance_organizations mo ON mo.id = iss.maintenance_org_id").
		OrderBy("iss.created_at ASC")
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.IssueReportRows").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logError(log, "*reportRepository.IssueReportRows", err, "failed to select issues")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.IssueReportRow, 0)
	for rows.Next() {
		var row models.IssueReportRow
		err = rows.Scan(
			&row.ID,
			&row.AirportName,
			&row.RunwayNumber,
			&row.TaxiwayNumber,
			&row.AirlineName,
			&row.ANSStationName,
			&row.MaintenanceOrgName,
			&row.InspectionType,
			&row.Entity,
			&row.Comment,
			&row.IsResolved,
			&row.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*reportRepository.IssueReportRows").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// createdWithin bounds column by the filter window. Zero bounds are open.
func createdWithin(column string, filter models.ReportFilter) sq.And {
	where := sq.And{}
	if !filter.From.IsZero() {
		where = append(where, sq.GtOrEq{column: filter.From})
	}
	if !filter.To.IsZero() {
		where = append(where, sq.LtOrEq{column: filter.To})
	}
	return where
}
