package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/notify"
	"github.com/MKhiriev/flight-guardian/internal/report"
	"github.com/MKhiriev/flight-guardian/internal/store"
	"github.com/MKhiriev/flight-guardian/internal/validators"
	"github.com/MKhiriev/flight-guardian/models"
)

const (
	inspectionReportSubject = "Inspections Report"
	issueReportSubject      = "Issues Report"
)

type reportService struct {
	repository store.ReportRepository
	sink       notify.Sink
	validator  validators.Validator
	logger     *logger.Logger
}

func NewReportService(repository store.ReportRepository, sink notify.Sink, logger *logger.Logger) ReportService {
	return &reportService{
		repository: repository,
		sink:       sink,
		validator:  validators.NewReportValidator(),
		logger:     logger,
	}
}

// SendInspectionReport selects inspections by completion and creation date,
// renders them into an xlsx workbook and emails it to req.SendTo.
func (s *reportService) SendInspectionReport(ctx context.Context, req models.ReportRequest) error {
	filter, err := s.filter(ctx, req)
	if err != nil {
		return err
	}
	filter.Entity = ""

	rows, err := s.repository.InspectionReportRows(ctx, filter)
	if err != nil {
		return fmt.Errorf("inspection report selection failed: %w", err)
	}

	data, err := report.InspectionWorkbook(rows)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingReport, err)
	}

	return s.send(ctx, req, inspectionReportSubject, report.InspectionReportFilename, data)
}

// SendIssueReport selects issues by resolution, subject reference and
// creation date, renders them into an xlsx workbook and emails it to
// req.SendTo.
func (s *reportService) SendIssueReport(ctx context.Context, req models.ReportRequest) error {
	filter, err := s.filter(ctx, req)
	if err != nil {
		return err
	}

	rows, err := s.repository.IssueReportRows(ctx, filter)
	if err != nil {
		return fmt.Errorf("issue report selection failed: %w", err)
	}

	data, err := report.IssueWorkbook(rows)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingReport, err)
	}

	return s.send(ctx, req, issueReportSubject, report.IssueReportFilename, data)
}

// filter validates req and converts it to the store form. A date-only end
// date covers that whole day.
func (s *reportService) filter(ctx context.Context, req models.ReportRequest) (models.ReportFilter, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ReportFilter{}, err
	}

	// both dates were checked by the validator
	from, _ := models.ParseDate(req.StartDate)
	to, _ := models.ParseDate(req.EndDate)
	if models.IsDateOnly(req.EndDate) {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	entity := req.Entity
	if entity == models.ReportAll {
		entity = ""
	}

	return models.ReportFilter{
		Status: req.Status,
		Entity: entity,
		From:   from,
		To:     to,
	}, nil
}

func (s *reportService) send(ctx context.Context, req models.ReportRequest, subject, filename string, data []byte) error {
	err := s.sink.Send(ctx, notify.Message{
		To:       []string{req.SendTo},
		Subject:  subject,
		Template: notify.TemplateReport,
		Context: map[string]any{
			"reportName": subject,
			"startDate":  req.StartDate,
			"endDate":    req.EndDate,
		},
		Attachments: []notify.Attachment{{
			Filename:    filename,
			ContentType: notify.ContentTypeXLSX,
			Data:        data,
		}},
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reportService.send").Str("report", filename).Msg("report was not delivered")
		return fmt.Errorf("%w: %w", ErrSendingNotification, err)
	}

	return nil
}
