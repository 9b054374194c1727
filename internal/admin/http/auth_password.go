package http

import (
	"errors"
	"net/http"

	"github.com/dialisis/admin/internal/admin/service"
	"github.com/dialisis/admin/pkg/adminsdk"
	"github.com/dialisis/admin/pkg/httpx"
	"github.com/dialisis/admin/pkg/slogx"
)

type PasswordHandler struct {
	AuthService *service.AuthService
}

// HandleForgot godoc
//
//	@Summary		Forgot Password Endpoint
//	@Description	Start the password reset flow. Always answers 202 so callers cannot
//	@Description	probe which emails are registered.
//	@Tags			Auth
//	@Accept			json
//	@Param			request	body	adminsdk.ForgotPasswordRequest	true	"Account email"
//	@Success		202		"reset email sent if the account exists"
//	@Failure		400		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/forgot-password [post].
func (h *PasswordHandler) HandleForgot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.ForgotPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email is required")
		return
	}

	if err := h.AuthService.ForgotPassword(ctx, req.Email); err != nil {
		log.Error("forgot-password failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to process request")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// HandleReset godoc
//
//	@Summary		Reset Password Endpoint
//	@Description	Redeem a reset token for a new password. The token is single use and
//	@Description	all existing sessions of the account are revoked.
//	@Tags			Auth
//	@Accept			json
//	@Param			request	body	adminsdk.ResetPasswordRequest	true	"Token and new password"
//	@Success		204		"password replaced"
//	@Failure		400		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/reset-password [post].
func (h *PasswordHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.AuthService.ResetPassword(ctx, req.Token, req.Password); err != nil {
		if errors.Is(err, service.ErrResetTokenInvalid) {
			writeError(w, http.StatusBadRequest, "invalid_token",
				"The reset link is invalid or has expired")
			return
		}
		log.Error("reset-password failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to reset password")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleChange godoc
//
//	@Summary		Change Password Endpoint
//	@Description	Replace the password of the authenticated account. Requires the
//	@Description	current password and revokes all sessions on success.
//	@Tags			Auth
//	@Accept			json
//	@Param			request	body	adminsdk.ChangePasswordRequest	true	"Current and new password"
//	@Success		204		"password replaced"
//	@Failure		400		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/auth/change-password [post].
func (h *PasswordHandler) HandleChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req adminsdk.ChangePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.AuthService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "Current password is wrong")
		case errors.Is(err, service.ErrSignUpInvalid):
			writeError(w, http.StatusBadRequest, "invalid_request",
				"New password must be at least 8 characters")
		default:
			log.Error("change-password failed", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to change password")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
