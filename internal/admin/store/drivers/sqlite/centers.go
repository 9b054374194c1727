package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dialisis/admin/internal/admin/domain"
)

type centersRepo struct {
	db dbtx
}

const centerColumns = `c.id, c.name, c.sector, c.town, c.address, c.state_id,
	c.dr_in_charge, c.dr_in_charge_tel, c.tel, c.fax, c.email, c.website,
	c.panel_nephrologist, c.centre_manager, c.centre_coordinator,
	c.hepatitis_bay, c.units, c.description, c.latitude, c.longitude,
	c.featured, c.created_at, c.updated_at, s.name`

const centerSelect = `SELECT ` + centerColumns + `
	FROM centers c JOIN states s ON s.id = c.state_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCenter(row rowScanner) (domain.Center, error) {
	var (
		c        domain.Center
		lat, lng sql.NullFloat64
	)
	err := row.Scan(&c.ID, &c.Name, &c.Sector, &c.Town, &c.Address, &c.StateID,
		&c.DrInCharge, &c.DrInChargeTel, &c.Tel, &c.Fax, &c.Email, &c.Website,
		&c.PanelNephrologist, &c.CentreManager, &c.CentreCoordinator,
		&c.HepatitisBay, &c.Units, &c.Description, &lat, &lng,
		&c.Featured, &c.CreatedAt, &c.UpdatedAt, &c.StateName)
	if err != nil {
		return domain.Center{}, err
	}
	c.Latitude = mapNullFloatPtr(lat)
	c.Longitude = mapNullFloatPtr(lng)
	return c, nil
}

func (r *centersRepo) GetCenterByID(ctx context.Context, id string) (domain.Center, error) {
	c, err := scanCenter(r.db.QueryRowContext(ctx, centerSelect+` WHERE c.id = ?`, id))
	if err != nil {
		return domain.Center{}, mapNotFound(err)
	}
	return c, nil
}

func (r *centersRepo) ListCenters(ctx context.Context) ([]domain.Center, error) {
	return r.queryCenters(ctx, centerSelect+` ORDER BY c.name`)
}

func (r *centersRepo) ListCentersByIDs(ctx context.Context, ids []string) ([]domain.Center, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return r.queryCenters(ctx,
		centerSelect+` WHERE c.id IN (`+placeholders+`) ORDER BY c.name`, args...)
}

func (r *centersRepo) queryCenters(ctx context.Context, query string, args ...any) ([]domain.Center, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Center
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *centersRepo) CreateCenter(ctx context.Context, c domain.Center) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO centers (id, name, sector, town, address, state_id,
			dr_in_charge, dr_in_charge_tel, tel, fax, email, website,
			panel_nephrologist, centre_manager, centre_coordinator,
			hepatitis_bay, units, description, latitude, longitude,
			featured, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Sector, c.Town, c.Address, c.StateID,
		c.DrInCharge, c.DrInChargeTel, c.Tel, c.Fax, c.Email, c.Website,
		c.PanelNephrologist, c.CentreManager, c.CentreCoordinator,
		c.HepatitisBay, c.Units, c.Description,
		mapOptionalFloat(c.Latitude), mapOptionalFloat(c.Longitude),
		c.Featured, c.CreatedAt, c.UpdatedAt)
	return mapConstraint(err)
}

// UpdateCenter builds the SET clause from the non-nil fields of upd. A call
// with nothing to change still bumps updated_at.
func (r *centersRepo) UpdateCenter(ctx context.Context, id string, upd domain.CenterUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	set := func(column string, val any) {
		sets = append(sets, column+" = ?")
		args = append(args, val)
	}

	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Sector != nil {
		set("sector", *upd.Sector)
	}
	if upd.Town != nil {
		set("town", *upd.Town)
	}
	if upd.Address != nil {
		set("address", *upd.Address)
	}
	if upd.StateID != nil {
		set("state_id", *upd.StateID)
	}
	if upd.DrInCharge != nil {
		set("dr_in_charge", *upd.DrInCharge)
	}
	if upd.DrInChargeTel != nil {
		set("dr_in_charge_tel", *upd.DrInChargeTel)
	}
	if upd.Tel != nil {
		set("tel", *upd.Tel)
	}
	if upd.Fax != nil {
		set("fax", *upd.Fax)
	}
	if upd.Email != nil {
		set("email", *upd.Email)
	}
	if upd.Website != nil {
		set("website", *upd.Website)
	}
	if upd.PanelNephrologist != nil {
		set("panel_nephrologist", *upd.PanelNephrologist)
	}
	if upd.CentreManager != nil {
		set("centre_manager", *upd.CentreManager)
	}
	if upd.CentreCoordinator != nil {
		set("centre_coordinator", *upd.CentreCoordinator)
	}
	if upd.HepatitisBay != nil {
		set("hepatitis_bay", *upd.HepatitisBay)
	}
	if upd.Units != nil {
		set("units", *upd.Units)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.Latitude != nil {
		set("latitude", *upd.Latitude)
	}
	if upd.Longitude != nil {
		set("longitude", *upd.Longitude)
	}
	if upd.Featured != nil {
		set("featured", *upd.Featured)
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE centers SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return requireRow(res, err)
}

func (r *centersRepo) DeleteCenter(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM centers WHERE id = ?`, id)
	return requireRow(res, err)
}

func (r *centersRepo) CountByIDs(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM centers WHERE id IN (`+placeholders+`)`, args...).Scan(&n)
	return n, err
}

type statesRepo struct {
	db dbtx
}

func (r *statesRepo) ListStates(ctx context.Context) ([]domain.State, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM states ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.State
	for rows.Next() {
		var s domain.State
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type centerAccessRepo struct {
	db dbtx
}

func (r *centerAccessRepo) GrantAccess(ctx context.Context, userID, centerID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO center_access (user_id, center_id, created_at) VALUES (?, ?, ?)
		 ON CONFLICT DO NOTHING`,
		userID, centerID, time.Now().UTC())
	return err
}

func (r *centerAccessRepo) HasAccess(ctx context.Context, userID, centerID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM center_access WHERE user_id = ? AND center_id = ?`,
		userID, centerID).Scan(&n)
	return n > 0, err
}

func (r *centerAccessRepo) ListUserCenterIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT center_id FROM center_access WHERE user_id = ? ORDER BY center_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
