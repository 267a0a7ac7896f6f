package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/flight-guardian/internal/app"
	"github.com/MKhiriev/flight-guardian/internal/service"
)

// dashboardEndpoint adapts a dashboard query, given as a method expression
// of service.DashboardService, to a handler.
func dashboardEndpoint[T any](svc service.DashboardService, query func(service.DashboardService, context.Context) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := query(svc, r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeSuccess(w, r, http.StatusOK, app.MsgSuccess, result)
	}
}
