package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dialisis/admin/internal/admin/domain"
	"github.com/dialisis/admin/internal/admin/service"
	"github.com/dialisis/admin/pkg/adminsdk"
	"github.com/dialisis/admin/pkg/httpx"
	"github.com/dialisis/admin/pkg/slogx"
)

type CentersHandler struct {
	CenterService *service.CenterService
	UserService   *service.UserService
}

// HandleList godoc
//
//	@Summary		List Centers Endpoint
//	@Description	List the centers visible to the authenticated user: all of them for
//	@Description	superadmins, granted ones for PIC users. Ordered by name.
//	@Tags			Centers
//	@Produce		json
//	@Success		200	{object}	adminsdk.CentersResponse	"centers"
//	@Failure		401	{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/centers [get].
func (h *CentersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromContext(ctx, h.UserService, w)
	if !ok {
		return
	}

	centers, err := h.CenterService.ListCentersForUser(ctx, actor)
	if err != nil {
		log.Error("failed to list centers", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list centers")
		return
	}

	wire := make([]adminsdk.Center, 0, len(centers))
	for _, c := range centers {
		wire = append(wire, centerToWire(c))
	}
	httpx.WriteJSON(w, http.StatusOK, adminsdk.CentersResponse{Centers: wire})
}

// HandleGet godoc
//
//	@Summary		Get Center Endpoint
//	@Description	Fetch one center. PIC users need an access grant for it.
//	@Tags			Centers
//	@Produce		json
//	@Param			id	path		string					true	"Center id"
//	@Success		200	{object}	adminsdk.Center			"center record"
//	@Failure		403	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/centers/{id} [get].
func (h *CentersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromContext(ctx, h.UserService, w)
	if !ok {
		return
	}

	center, err := h.CenterService.GetCenter(ctx, actor, r.PathValue("id"))
	if err != nil {
		writeCenterError(w, log, err, "Failed to fetch center")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, centerToWire(center))
}

// HandleCreate godoc
//
//	@Summary		Create Center Endpoint
//	@Description	Create a new center record. Superadmin only.
//	@Tags			Centers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.CenterCreateRequest	true	"Center data"
//	@Success		201		{object}	adminsdk.Center					"created record"
//	@Failure		400		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/centers [post].
func (h *CentersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromContext(ctx, h.UserService, w)
	if !ok {
		return
	}

	var req adminsdk.CenterCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	center, err := h.CenterService.CreateCenter(ctx, actor, domain.Center{
		Name:              req.Name,
		Sector:            req.Sector,
		Town:              req.Town,
		Address:           req.Address,
		StateID:           req.StateID,
		DrInCharge:        req.DrInCharge,
		DrInChargeTel:     req.DrInChargeTel,
		Tel:               req.Tel,
		Fax:               req.Fax,
		Email:             req.Email,
		Website:           req.Website,
		PanelNephrologist: req.PanelNephrologist,
		CentreManager:     req.CentreManager,
		CentreCoordinator: req.CentreCoordinator,
		HepatitisBay:      req.HepatitisBay,
		Units:             req.Units,
		Description:       req.Description,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		Featured:          req.Featured,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCenterInvalid):
			writeError(w, http.StatusBadRequest, "invalid_request", "name and state_id are required")
		case errors.Is(err, service.ErrNotSuperadmin):
			writeError(w, http.StatusForbidden, "insufficient_role", "Superadmin role required")
		default:
			log.Error("failed to create center", "err", err)
			writeError(w, http.StatusInternalServerError, "server_error", "Failed to create center")
		}
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, centerToWire(center))
}

// HandleUpdate godoc
//
//	@Summary		Update Center Endpoint
//	@Description	Partially update a center. PIC users need an access grant and cannot
//	@Description	change the featured flag; it is dropped from their updates.
//	@Tags			Centers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Center id"
//	@Param			request	body		adminsdk.CenterUpdateRequest	true	"Fields to change"
//	@Success		200		{object}	adminsdk.Center				"updated record"
//	@Failure		403		{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/centers/{id} [patch].
func (h *CentersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromContext(ctx, h.UserService, w)
	if !ok {
		return
	}

	var req adminsdk.CenterUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	center, err := h.CenterService.UpdateCenter(ctx, actor, r.PathValue("id"), domain.CenterUpdate{
		Name:              req.Name,
		Sector:            req.Sector,
		Town:              req.Town,
		Address:           req.Address,
		StateID:           req.StateID,
		DrInCharge:        req.DrInCharge,
		DrInChargeTel:     req.DrInChargeTel,
		Tel:               req.Tel,
		Fax:               req.Fax,
		Email:             req.Email,
		Website:           req.Website,
		PanelNephrologist: req.PanelNephrologist,
		CentreManager:     req.CentreManager,
		CentreCoordinator: req.CentreCoordinator,
		HepatitisBay:      req.HepatitisBay,
		Units:             req.Units,
		Description:       req.Description,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		Featured:          req.Featured,
	})
	if err != nil {
		writeCenterError(w, log, err, "Failed to update center")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, centerToWire(center))
}

// HandleDelete godoc
//
//	@Summary		Delete Center Endpoint
//	@Description	Delete a center and its access grants. Superadmin only.
//	@Tags			Centers
//	@Param			id	path	string	true	"Center id"
//	@Success		204	"center deleted"
//	@Failure		403	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/centers/{id} [delete].
func (h *CentersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actor, ok := actorFromContext(ctx, h.UserService, w)
	if !ok {
		return
	}

	if err := h.CenterService.DeleteCenter(ctx, actor, r.PathValue("id")); err != nil {
		writeCenterError(w, log, err, "Failed to delete center")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleStates godoc
//
//	@Summary		List States Endpoint
//	@Description	List the Malaysian states and federal territories, for center forms.
//	@Tags			Centers
//	@Produce		json
//	@Success		200	{object}	adminsdk.StatesResponse	"states"
//	@Router			/v1/states [get].
func (h *CentersHandler) HandleStates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	states, err := h.CenterService.ListStates(ctx)
	if err != nil {
		log.Error("failed to list states", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", "Failed to list states")
		return
	}

	wire := make([]adminsdk.State, 0, len(states))
	for _, s := range states {
		wire = append(wire, adminsdk.State{ID: s.ID, Name: s.Name})
	}
	httpx.WriteJSON(w, http.StatusOK, adminsdk.StatesResponse{States: wire})
}

func writeCenterError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrCenterNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Center not found")
	case errors.Is(err, service.ErrAccessDenied):
		writeError(w, http.StatusForbidden, "access_denied", "No access to this center")
	case errors.Is(err, service.ErrNotSuperadmin):
		writeError(w, http.StatusForbidden, "insufficient_role", "Superadmin role required")
	default:
		log.Error("center operation failed", "err", err)
		writeError(w, http.StatusInternalServerError, "server_error", fallback)
	}
}
