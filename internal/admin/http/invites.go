package http

import (
	"errors"
	"net/http"

	"github.com/dialisis/admin/internal/admin/service"
	"github.com/dialisis/admin/pkg/adminsdk"
	"github.com/dialisis/admin/pkg/httpx"
	"github.com/dialisis/admin/pkg/slogx"
)

type InviteHandler struct {
	InviteService *service.InviteService
	UserService   *service.UserService
}

// HandleCreate godoc
//
//	@Summary		Create Invitation Endpoint
//	@Description	Mint a single-use invitation token granting access to the listed
//	@Description	centers once redeemed. Superadmin only. The token is returned exactly
//	@Description	once; only its fingerprint is stored.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.InviteCreateRequest	true	"Centers and validity"
//	@Success		200		{object}	adminsdk.InviteCreateResponse	"invite_token, expires_at"
//	@Failure		400		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InviteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromContext(ctx, h.UserService, w)
	if !ok {
		return
	}

	var req adminsdk.InviteCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ExpiresInDays == 0 {
		req.ExpiresInDays = service.DefaultInvitationDays
	}

	inv, token, err := h.InviteService.CreateInvitation(ctx, actor, req.CenterIDs, req.ExpiresInDays)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotSuperadmin):
			writeError(w, http.StatusForbidden, "insufficient_role", "Superadmin role required")
		case errors.Is(err, service.ErrInvitationInvalid):
			writeError(w, http.StatusBadRequest, "invalid_request",
				"center_ids and a positive expires_in_days are required")
		case errors.Is(err, service.ErrUnknownCenter):
			writeError(w, http.StatusBadRequest, "unknown_center",
				"One or more centers do not exist")
		default:
			log.Error("failed to create invitation", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to create invitation")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, adminsdk.InviteCreateResponse{
		InviteToken: token,
		ExpiresAt:   inv.ExpiresAt.Unix(),
	})
}

// HandleLookup godoc
//
//	@Summary		Validate Invitation Endpoint
//	@Description	Check a token before sign-up and list the centers it grants. Does not
//	@Description	consume the token; expired and already-used tokens are told apart so
//	@Description	the holder sees an accurate message.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string							true	"Invitation token"
//	@Success		200		{object}	adminsdk.InviteLookupResponse	"expires_at, centers"
//	@Failure		404		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		410		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/invites/{token} [get].
func (h *InviteHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	inv, centers, err := h.InviteService.LookupInvitation(ctx, r.PathValue("token"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationInvalid), errors.Is(err, service.ErrInvitationNotFound):
			writeError(w, http.StatusNotFound, "invite_not_found", "This invitation does not exist")
		case errors.Is(err, service.ErrInvitationExpired):
			writeError(w, http.StatusGone, "invite_expired", "This invitation has expired")
		case errors.Is(err, service.ErrInvitationConsumed):
			writeError(w, http.StatusGone, "invite_consumed", "This invitation has already been used")
		default:
			log.Error("failed to look up invitation", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to look up invitation")
		}
		return
	}

	wire := make([]adminsdk.CenterSummary, 0, len(centers))
	for _, c := range centers {
		wire = append(wire, adminsdk.CenterSummary{
			ID:    c.ID,
			Name:  c.Name,
			Town:  c.Town,
			State: c.State,
		})
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, adminsdk.InviteLookupResponse{
		ExpiresAt: inv.ExpiresAt.Unix(),
		Centers:   wire,
	})
}
