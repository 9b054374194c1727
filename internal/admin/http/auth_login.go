package http

import (
	"errors"
	"net/http"

	"github.com/dialisis/admin/internal/admin/service"
	"github.com/dialisis/admin/pkg/adminsdk"
	"github.com/dialisis/admin/pkg/httpx"
	"github.com/dialisis/admin/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password. Accounts with an active TOTP
//	@Description	enrollment must also supply totp_code. Returns a session token and
//	@Description	sets it as an HTTP-only cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	adminsdk.LoginResponse	"token, expires_at, user"
//	@Failure		400		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	token, session, user, err := h.AuthService.Login(ctx, req.Email, req.Password, req.TOTPCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		case errors.Is(err, service.ErrMFACodeRequired):
			writeError(w, http.StatusUnauthorized, "totp_required", "A TOTP code is required for this account")
		case errors.Is(err, service.ErrMFACodeInvalid):
			writeError(w, http.StatusUnauthorized, "totp_invalid", "The TOTP code is not valid")
		default:
			log.Error("login failed", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to log in")
		}
		return
	}

	centerIDs, err := h.UserService.GetUserCenterIDs(ctx, user.ID)
	if err != nil {
		log.Error("failed to list user centers", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, adminsdk.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt.Unix(),
		User:      userToWire(user, centerIDs),
	})
}

type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Revoke the current session and clear the session cookie.
//	@Tags			Auth
//	@Success		204	"session revoked"
//	@Failure		401	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sessionID := httpx.SessionIDFromCtx(ctx)
	if sessionID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	if err := h.AuthService.Logout(ctx, sessionID); err != nil {
		log.Error("logout failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to log out")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
