package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/dialisis/admin/internal/admin/service"
	"github.com/dialisis/admin/pkg/adminsdk"
	"github.com/dialisis/admin/pkg/httpx"
	"github.com/dialisis/admin/pkg/slogx"
)

type TOTPHandler struct {
	AuthService *service.AuthService
}

// HandleEnroll godoc
//
//	@Summary		TOTP Enrollment Endpoint
//	@Description	Generate a TOTP secret for the authenticated superadmin. The secret
//	@Description	does not gate logins until activated with a valid code.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	adminsdk.TOTPEnrollResponse	"secret, otpauth_url"
//	@Failure		401	{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/auth/totp/enroll [post].
func (h *TOTPHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	secret, otpauthURL, err := h.AuthService.EnrollTOTP(ctx, userID)
	if err != nil {
		log.Error("totp enrollment failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to enroll TOTP")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, adminsdk.TOTPEnrollResponse{
		Secret:     secret,
		OTPAuthURL: otpauthURL,
	})
}

// HandleActivate godoc
//
//	@Summary		TOTP Activation Endpoint
//	@Description	Confirm TOTP enrollment with a code from the authenticator. From this
//	@Description	point on, logins require a code.
//	@Tags			Auth
//	@Accept			json
//	@Param			request	body	adminsdk.TOTPCodeRequest	true	"Authenticator code"
//	@Success		204		"totp active"
//	@Failure		400		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/auth/totp/activate [post].
func (h *TOTPHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	h.confirm(w, r, h.AuthService.ActivateTOTP)
}

// HandleDisable godoc
//
//	@Summary		TOTP Disable Endpoint
//	@Description	Remove the TOTP enrollment. An active enrollment requires a valid code.
//	@Tags			Auth
//	@Accept			json
//	@Param			request	body	adminsdk.TOTPCodeRequest	true	"Authenticator code"
//	@Success		204		"totp removed"
//	@Failure		400		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/auth/totp [delete].
func (h *TOTPHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	h.confirm(w, r, h.AuthService.DisableTOTP)
}

func (h *TOTPHandler) confirm(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, userID, code string) error,
) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req adminsdk.TOTPCodeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := op(ctx, userID, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrMFACodeInvalid):
			writeError(w, http.StatusBadRequest, "totp_invalid", "The TOTP code is not valid")
		case errors.Is(err, service.ErrMFANotEnrolled):
			writeError(w, http.StatusBadRequest, "totp_not_enrolled", "No TOTP enrollment exists")
		default:
			log.Error("totp operation failed", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to update TOTP")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
