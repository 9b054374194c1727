package http

import (
	"errors"
	"net/http"

	"github.com/dialisis/admin/internal/admin/service"
	"github.com/dialisis/admin/pkg/adminsdk"
	"github.com/dialisis/admin/pkg/httpx"
	"github.com/dialisis/admin/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap Endpoint
//	@Description	One-time provisioning of the initial superadmin on an empty database,
//	@Description	gated by the configured bootstrap token. When no password is supplied
//	@Description	a generated one is returned exactly once.
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.BootstrapRequest	true	"Bootstrap data"
//	@Success		201		{object}	adminsdk.BootstrapResponse	"user_id, generated_password"
//	@Failure		401		{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.BootstrapRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name and email are required")
		return
	}

	admin, generated, err := h.BootstrapService.Bootstrap(ctx, req.Token, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready):
			writeError(w, http.StatusConflict, "already_bootstrapped", "The system already has users")
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			writeError(w, http.StatusUnauthorized, "unauthorized", "Invalid bootstrap token")
		default:
			log.Error("bootstrap failed", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to bootstrap")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, adminsdk.BootstrapResponse{
		UserID:            admin.ID,
		GeneratedPassword: generated,
	})
}
