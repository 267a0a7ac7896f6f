package http

import (
	"github.com/MKhiriev/flight-guardian/internal/app"
	"github.com/MKhiriev/flight-guardian/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withCORS())
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(compressionLevel, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/request-reset", h.requestReset)
		r.Post("/auth/reset-password", h.resetPassword)

		r.Get("/version", h.getServerVersion)
		r.Method("GET", "/metrics", h.metricsHandler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		s := h.services

		r.Post("/auth/send-invite", h.sendInvite)

		// accounts are created by invitation only
		r.Route("/users", func(r chi.Router) {
			entityRoutes(r, s.UserService, false, app.MsgUserRemoved)
		})
		r.Route("/airports", func(r chi.Router) {
			r.Get("/runways/{id}", listByAirport(s.RunwayService))
			r.Get("/taxiways/{id}", listByAirport(s.TaxiwayService))
			entityRoutes(r, s.AirportService, true, app.MsgSuccess)
		})
		r.Route("/runways", func(r chi.Router) {
			entityRoutes(r, s.RunwayService, true, app.MsgSuccess)
		})
		r.Route("/taxiways", func(r chi.Router) {
			entityRoutes(r, s.TaxiwayService, true, app.MsgSuccess)
		})
		r.Route("/airlines", func(r chi.Router) {
			entityRoutes(r, s.AirlineService, true, app.MsgSuccess)
		})
		r.Route("/ans-stations", func(r chi.Router) {
			entityRoutes(r, s.ANSStationService, true, app.MsgSuccess)
		})
		r.Route("/maintenance-organizations", func(r chi.Router) {
			entityRoutes(r, s.MaintenanceOrganizationService, true, app.MsgSuccess)
		})
		r.Route("/inspections", func(r chi.Router) {
			r.Post("/download-report", h.downloadInspectionReport)
			entityRoutes(r, s.InspectionService, true, app.MsgSuccess)
		})
		r.Route("/issues", func(r chi.Router) {
			r.Post("/download-report", h.downloadIssueReport)
			entityRoutes(r, s.IssueService, true, app.MsgSuccess)
		})
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/summary", dashboardEndpoint(s.DashboardService, service.DashboardService.Summary))
			r.Get("/users/stats", dashboardEndpoint(s.DashboardService, service.DashboardService.UsersByRole))
			r.Get("/inspections/stats", dashboardEndpoint(s.DashboardService, service.DashboardService.InspectionStats))
			r.Get("/issues/stats", dashboardEndpoint(s.DashboardService, service.DashboardService.IssueStats))
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
