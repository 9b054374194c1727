package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dialisis/admin/internal/admin/domain"
	"github.com/dialisis/admin/internal/admin/service"
	"github.com/dialisis/admin/pkg/adminsdk"
	"github.com/dialisis/admin/pkg/httpx"
)

func writeError(w http.ResponseWriter, status int, code, description string) {
	httpx.WriteJSON(w, status, adminsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: description,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return false
	}
	return true
}

// actorFromContext resolves the authenticated user behind the request. The
// authn middleware guarantees a user id is present; a lookup miss here means
// the account was deleted mid-session.
func actorFromContext(ctx context.Context, users *service.UserService, w http.ResponseWriter) (domain.User, bool) {
	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return domain.User{}, false
	}
	user, err := users.GetUser(ctx, userID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Account no longer exists")
		return domain.User{}, false
	}
	return user, true
}

func centerToWire(c domain.Center) adminsdk.Center {
	return adminsdk.Center{
		ID:                c.ID,
		Name:              c.Name,
		Sector:            c.Sector,
		Town:              c.Town,
		Address:           c.Address,
		StateID:           c.StateID,
		StateName:         c.StateName,
		DrInCharge:        c.DrInCharge,
		DrInChargeTel:     c.DrInChargeTel,
		Tel:               c.Tel,
		Fax:               c.Fax,
		Email:             c.Email,
		Website:           c.Website,
		PanelNephrologist: c.PanelNephrologist,
		CentreManager:     c.CentreManager,
		CentreCoordinator: c.CentreCoordinator,
		HepatitisBay:      c.HepatitisBay,
		Units:             c.Units,
		Description:       c.Description,
		Latitude:          c.Latitude,
		Longitude:         c.Longitude,
		Featured:          c.Featured,
	}
}

func userToWire(u domain.User, centerIDs []string) adminsdk.UserInfo {
	if centerIDs == nil {
		centerIDs = []string{}
	}
	return adminsdk.UserInfo{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		CenterIDs:   centerIDs,
		TOTPEnabled: u.TOTPActive(),
	}
}
