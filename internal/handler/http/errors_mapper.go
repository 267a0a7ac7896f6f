package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/flight-guardian/internal/app"
	"github.com/MKhiriev/flight-guardian/internal/service"
	"github.com/MKhiriev/flight-guardian/internal/store"
	"github.com/MKhiriev/flight-guardian/internal/validators"
)

// errorStatusMap maps sentinel errors to transport status codes. The
// sentinels never wrap one another, so at most one entry matches an error.
var errorStatusMap = map[error]int{
	validators.ErrValidation:   http.StatusBadRequest,
	ErrInvalidJSON:             http.StatusBadRequest,
	store.ErrInvalidFilter:     http.StatusBadRequest,
	store.ErrReferenceNotFound: http.StatusBadRequest,

	store.ErrDuplicateKey: http.StatusConflict,

	store.ErrAccountNotFound:    http.StatusNotFound,
	store.ErrCredentialNotFound: http.StatusNotFound,
	store.ErrEntityNotFound:     http.StatusNotFound,
	ErrRouteNotFound:            http.StatusNotFound,

	service.ErrInvalidCredentials: http.StatusBadRequest,
	service.ErrInvalidResetToken:  http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	service.ErrTokenIsInvalid:     http.StatusUnauthorized,
	service.ErrTokenValidation:    http.StatusUnauthorized,
	service.ErrTokenIsExpired:     http.StatusForbidden,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	validators.ErrValidation:   app.MsgValidationError,
	ErrInvalidJSON:             app.MsgInvalidJSON,
	store.ErrInvalidFilter:     app.MsgInvalidFilter,
	store.ErrReferenceNotFound: app.MsgReferenceNotFound,

	store.ErrDuplicateKey: app.MsgDuplicateKey,

	store.ErrAccountNotFound:    app.MsgUserNotFound,
	store.ErrCredentialNotFound: app.MsgCredentialNotFound,
	store.ErrEntityNotFound:     app.MsgRecordNotFound,
	ErrRouteNotFound:            app.MsgRouteNotFound,

	service.ErrInvalidCredentials: app.MsgInvalidCredentials,
	service.ErrInvalidResetToken:  app.MsgInvalidResetToken,

	ErrEmptyAuthorizationHeader:   app.MsgAuthHeaderMissing,
	ErrInvalidAuthorizationHeader: app.MsgInvalidAuthHeader,
	ErrEmptyToken:                 app.MsgTokenMissing,
	service.ErrTokenIsInvalid:     app.MsgTokenInvalid,
	service.ErrTokenValidation:    app.MsgTokenValidation,
	service.ErrTokenIsExpired:     app.MsgTokenExpired,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}

// payloadFromError returns the client-facing details of err: the joined
// rule violations of a validation failure or the rejected list filter.
// Every other failure carries no payload.
func payloadFromError(err error) any {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return strings.Join(vErr.Messages, ", ")
	}
	if errors.Is(err, store.ErrInvalidFilter) {
		if _, detail, ok := strings.Cut(err.Error(), store.ErrInvalidFilter.Error()+": "); ok {
			return detail
		}
	}
	return nil
}
