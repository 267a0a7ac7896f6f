package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/flight-guardian/internal/app"
	"github.com/MKhiriev/flight-guardian/models"
)

func (h *Handler) downloadInspectionReport(w http.ResponseWriter, r *http.Request) {
	h.sendReport(w, r, h.services.ReportService.SendInspectionReport)
}

func (h *Handler) downloadIssueReport(w http.ResponseWriter, r *http.Request) {
	h.sendReport(w, r, h.services.ReportService.SendIssueReport)
}

func (h *Handler) sendReport(w http.ResponseWriter, r *http.Request, send func(context.Context, models.ReportRequest) error) {
	var req models.ReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := send(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgReportSent, nil)
}
