package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/utils"
)

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, payload any) {
	if _, err := utils.WriteEnvelope(w, status, message, payload); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

// writeError writes the envelope of err. Server-side failures are logged
// at error level, client errors at debug.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	writeErrorMessage(w, r, err, status, messageFromError(err))
}

func writeErrorMessage(w http.ResponseWriter, r *http.Request, err error, status int, message string) {
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteEnvelope(w, status, message, payloadFromError(err)); writeErr != nil {
		log.Err(writeErr).Msg("writing response failed")
	}
}
