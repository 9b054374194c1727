package http

import (
	"net/http"

	"github.com/dialisis/admin/internal/admin/service"
	"github.com/dialisis/admin/pkg/httpx"
	"github.com/dialisis/admin/pkg/slogx"
)

type UserInfoHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		User Info Endpoint
//	@Description	Return the authenticated user's profile, role and granted center ids.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	adminsdk.UserInfo		"id, email, name, role, center_ids"
//	@Failure		401	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/userinfo [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := actorFromContext(ctx, h.UserService, w)
	if !ok {
		return
	}

	centerIDs, err := h.UserService.GetUserCenterIDs(ctx, user.ID)
	if err != nil {
		log.Error("failed to list user centers", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to fetch user info")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, userToWire(user, centerIDs))
}
