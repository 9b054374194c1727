package http

import (
	"errors"
	"net/http"

	"github.com/dialisis/admin/internal/admin/service"
	"github.com/dialisis/admin/pkg/adminsdk"
	"github.com/dialisis/admin/pkg/httpx"
	"github.com/dialisis/admin/pkg/slogx"
)

type SignUpHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Sign-Up Endpoint
//	@Description	Register a new account, optionally redeeming an invitation token for
//	@Description	center access. Registration succeeds even when the invitation turns
//	@Description	out to be dead; centers_assigned reports whether access was granted.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.SignUpRequest	true	"Registration data"
//	@Success		201		{object}	adminsdk.SignUpResponse	"user, centers_assigned"
//	@Failure		400		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/sign-up [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.SignUpRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.AuthService.SignUp(ctx, req.Name, req.Email, req.Password, req.InviteToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSignUpInvalid):
			writeError(w, http.StatusBadRequest, "invalid_request",
				"name, email and a password of at least 8 characters are required")
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "email_taken", "This email is already registered")
		default:
			log.Error("sign-up failed", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to sign up")
		}
		return
	}

	resp := adminsdk.SignUpResponse{
		User:            userToWire(res.User, grantCenterIDs(res)),
		CentersAssigned: res.CentersAssigned,
	}
	if res.InviteErr != nil {
		resp.InviteError = inviteErrorCode(res.InviteErr)
	}

	httpx.WriteJSON(w, http.StatusCreated, resp)
}

func grantCenterIDs(res service.SignUpResult) []string {
	ids := make([]string, 0, len(res.Grants))
	for _, g := range res.Grants {
		ids = append(ids, g.CenterID)
	}
	return ids
}

// inviteErrorCode maps invitation failures to stable wire codes. Lookup and
// sign-up share the vocabulary so the UI can reuse its messages.
func inviteErrorCode(err error) string {
	switch {
	case errors.Is(err, service.ErrInvitationExpired):
		return "invite_expired"
	case errors.Is(err, service.ErrInvitationConsumed):
		return "invite_consumed"
	case errors.Is(err, service.ErrInvitationNotFound):
		return "invite_not_found"
	default:
		return "invite_failed"
	}
}
