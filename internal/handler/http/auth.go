package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/flight-guardian/internal/app"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/store"
	"github.com/MKhiriev/flight-guardian/internal/utils"
	"github.com/MKhiriev/flight-guardian/models"
)

func (h *Handler) sendInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.InviteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	log := logger.FromRequest(r)
	if session, ok := utils.GetSessionFromContext(ctx); ok {
		log.Debug().Str("invited_by", session.AccountID()).Str("role", string(req.Role)).Msg("sending invitation")
	}

	result, err := h.services.AuthService.SendInvite(ctx, req)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			writeErrorMessage(w, r, err, http.StatusConflict, app.MsgEmailAlreadyUsed)
			return
		}
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, app.MsgInviteSent, result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("account_id", result.User.ID).Msg("user successfully logged in")
	writeSuccess(w, r, http.StatusOK, app.MsgLoginSuccessful, result)
}

func (h *Handler) requestReset(w http.ResponseWriter, r *http.Request) {
	var req models.ResetRequestPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.RequestPasswordReset(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgResetEmailSent, result)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.ResetPassword(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgPasswordReset, result)
}
