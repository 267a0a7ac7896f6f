package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// corsMaxAge is the preflight cache lifetime in seconds.
const corsMaxAge = 300

// withCORS answers browser requests from the configured origins, with
// credentials allowed. Preflight requests are completed here.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.corsAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}
