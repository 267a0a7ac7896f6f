package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ReportAll selects every record regardless of state or subject.
const ReportAll = "All"

// ErrInvalidDate is returned by [ParseDate] for unsupported date layouts.
var ErrInvalidDate = errors.New("invalid date")

// ReportStatus selects records by their completion (inspections) or
// resolution (issues) flag. The zero value selects all records.
type ReportStatus struct {
	// Valid is false when every state is requested.
	Valid bool
	Bool  bool
}

// UnmarshalJSON accepts a JSON boolean, a boolean string, or "All".
func (s *ReportStatus) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*s = ReportStatus{}
	case bool:
		*s = ReportStatus{Valid: true, Bool: v}
	case string:
		if v == "" || strings.EqualFold(v, ReportAll) {
			*s = ReportStatus{}
			return nil
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid report status %q", v)
		}
		*s = ReportStatus{Valid: true, Bool: parsed}
	default:
		return fmt.Errorf("invalid report status %v", v)
	}

	return nil
}

// MarshalJSON renders the status as a boolean or "All".
func (s ReportStatus) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return json.Marshal(ReportAll)
	}
	return json.Marshal(s.Bool)
}

// ReportRequest is the body of the report download endpoints.
type ReportRequest struct {
	// SendTo is the recipient of the generated spreadsheet.
	SendTo string `json:"sendTo"`

	Status ReportStatus `json:"status"`

	// Entity narrows issue reports to issues referencing the given subject
	// (e.g. "airportId"). "All" or empty disables the narrowing.
	Entity string `json:"entity,omitempty"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ReportFilter is the parsed, store-facing form of a [ReportRequest].
type ReportFilter struct {
	Status ReportStatus
	Entity string
	From   time.Time
	To     time.Time
}

// InspectionReportRow is one line of the inspections spreadsheet.
type InspectionReportRow struct {
	AirportID   string
	InspectorID string
	IsComplete  bool
	Deadline    *time.Time
	CreatedAt   time.Time
}

// IssueReportRow is one line of the issues spreadsheet. Subject names are
// empty when the reference is not set.
type IssueReportRow struct {
	ID                 string
	AirportName        string
	RunwayNumber       string
	TaxiwayNumber      string
	AirlineName        string
	ANSStationName     string
	MaintenanceOrgName string
	InspectionType     string
	Entity             string
	Comment            string
	IsResolved         bool
	CreatedAt          time.Time
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", time.DateOnly}

// ParseDate parses an RFC 3339 timestamp or a plain YYYY-MM-DD date (UTC).
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// IsDateOnly reports whether raw is a plain YYYY-MM-DD date without a time
// component.
func IsDateOnly(raw string) bool {
	_, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
	return err == nil
}
