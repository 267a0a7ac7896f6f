package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/flight-guardian/models"
)

const (
	FieldSendTo    = "sendTo"
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"
	FieldDateRange = "dateRange"
)

// IssueSubjectKeys lists the issue references a report may be narrowed to.
var IssueSubjectKeys = []string{
	FieldAirportID,
	FieldRunwayID,
	FieldTaxiwayID,
	FieldAirlineID,
	FieldANSStationID,
	FieldMaintenanceOrgID,
}

// ReportValidator implements [Validator] for report download requests.
type ReportValidator struct {
}

// NewReportValidator constructs a ReportValidator.
func NewReportValidator() Validator {
	return &ReportValidator{}
}

func (v *ReportValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ReportRequest:
		return evaluate(reportRules(value), fields...)
	case *models.ReportRequest:
		return evaluate(reportRules(*value), fields...)
	default:
		return ErrUnsupportedType
	}
}

func reportRules(r models.ReportRequest) []rule {
	start, startErr := models.ParseDate(r.StartDate)
	end, endErr := models.ParseDate(r.EndDate)

	return []rule{
		isEmail(FieldSendTo, r.SendTo),
		{field: FieldStartDate, ok: startErr == nil, msg: FieldStartDate + " must be a valid date"},
		{field: FieldEndDate, ok: endErr == nil, msg: FieldEndDate + " must be a valid date"},
		{field: FieldDateRange, ok: startErr != nil || endErr != nil || !end.Before(start), msg: FieldEndDate + " must not be before " + FieldStartDate},
		{
			field: FieldEntity,
			ok:    r.Entity == "" || r.Entity == models.ReportAll || slices.Contains(IssueSubjectKeys, r.Entity),
			msg:   FieldEntity + " must be All or a subject reference",
		},
	}
}
