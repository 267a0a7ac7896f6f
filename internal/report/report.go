// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders inspection and issue exports as xlsx workbooks.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/flight-guardian/models"
	"github.com/xuri/excelize/v2"
)

// Attachment file names of the generated workbooks.
const (
	InspectionReportFilename = "inspection-report.xlsx"
	IssueReportFilename      = "issues-report.xlsx"
)

const (
	inspectionSheet = "Inspections"
	issueSheet      = "Issues Report"

	// timestampLayout formats every date cell.
	timestampLayout = "2006-01-02 15:04:05"

	// notAvailable fills name cells whose reference is unset.
	notAvailable = "N/A"
)

// ErrWritingWorkbook wraps every excelize failure.
var ErrWritingWorkbook = errors.New("error writing report workbook")

type column struct {
	header string
	width  float64
}

var inspectionColumns = []column{
	{header: "Airport ID", width: 20},
	{header: "Inspector ID", width: 20},
	{header: "Is Complete", width: 15},
	{header: "Deadline", width: 20},
	{header: "Timestamp", width: 20},
}

var issueColumns = []column{
	{header: "Issue ID", width: 38},
	{header: "Airport Name", width: 20},
	{header: "Runway Number", width: 20},
	{header: "Taxiway Number", width: 20},
	{header: "Airline Name", width: 20},
	{header: "ANS Station Name", width: 20},
	{header: "Maintenance Org Name", width: 25},
	{header: "Inspection Type", width: 20},
	{header: "Entity", width: 15},
	{header: "Comment", width: 50},
	{header: "Resolved", width: 10},
	{header: "Timestamp", width: 25},
}

// InspectionWorkbook returns the xlsx bytes of an inspection export, one row
// per inspection below a bold header.
func InspectionWorkbook(rows []models.InspectionReportRow) ([]byte, error) {
	values := make([][]any, 0, len(rows))
	for _, r := range rows {
		values = append(values, []any{
			r.AirportID,
			r.InspectorID,
			r.IsComplete,
			formatOptionalTime(r.Deadline),
			r.CreatedAt.UTC().Format(timestampLayout),
		})
	}
	return writeWorkbook(inspectionSheet, inspectionColumns, values)
}

// IssueWorkbook returns the xlsx bytes of an issue export. Unset facility
// names are written as N/A.
func IssueWorkbook(rows []models.IssueReportRow) ([]byte, error) {
	values := make([][]any, 0, len(rows))
	for _, r := range rows {
		values = append(values, []any{
			r.ID,
			orNotAvailable(r.AirportName),
			orNotAvailable(r.RunwayNumber),
			orNotAvailable(r.TaxiwayNumber),
			orNotAvailable(r.AirlineName),
			orNotAvailable(r.ANSStationName),
			orNotAvailable(r.MaintenanceOrgName),
			r.InspectionType,
			r.Entity,
			r.Comment,
			yesNo(r.IsResolved),
			r.CreatedAt.UTC().Format(timestampLayout),
		})
	}
	return writeWorkbook(issueSheet, issueColumns, values)
}

func writeWorkbook(sheet string, columns []column, rows [][]any) (data []byte, err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWritingWorkbook, closeErr)
		}
	}()

	if err = f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}

	header := make([]any, 0, len(columns))
	for i, c := range columns {
		header = append(header, c.header)

		name, nameErr := excelize.ColumnNumberToName(i + 1)
		if nameErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrWritingWorkbook, nameErr)
		}
		if err = f.SetColWidth(sheet, name, name, c.width); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
		}
	}

	if err = f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}
	if err = f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}

	for i, row := range rows {
		cell, cellErr := excelize.CoordinatesToCellName(1, i+2)
		if cellErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrWritingWorkbook, cellErr)
		}
		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWritingWorkbook, err)
	}

	return buf.Bytes(), nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
