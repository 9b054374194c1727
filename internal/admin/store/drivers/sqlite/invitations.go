package sqlite

import (
	"context"
	"time"

	"github.com/dialisis/admin/internal/admin/domain"
)

type invitationsRepo struct {
	db dbtx
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invitations (id, token_hash, created_by, expires_at, status, consumed_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.TokenHash, inv.CreatedBy, inv.ExpiresAt, inv.Status, inv.ConsumedBy,
		inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return mapConstraint(err)
	}
	for _, centerID := range inv.CenterIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO invitation_centers (invitation_id, center_id) VALUES (?, ?)
			 ON CONFLICT DO NOTHING`,
			inv.ID, centerID); err != nil {
			return err
		}
	}
	return nil
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	var inv domain.Invitation
	err := r.db.QueryRowContext(ctx,
		`SELECT id, token_hash, created_by, expires_at, status, consumed_by, created_at, updated_at
		 FROM invitations WHERE token_hash = ?`, hash).
		Scan(&inv.ID, &inv.TokenHash, &inv.CreatedBy, &inv.ExpiresAt, &inv.Status,
			&inv.ConsumedBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT center_id FROM invitation_centers WHERE invitation_id = ? ORDER BY center_id`, inv.ID)
	if err != nil {
		return domain.Invitation{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var centerID string
		if err := rows.Scan(&centerID); err != nil {
			return domain.Invitation{}, err
		}
		inv.CenterIDs = append(inv.CenterIDs, centerID)
	}
	return inv, rows.Err()
}

// ConsumeInvitation is the single conditional transition pending -> consumed.
// The WHERE clause carries the status and expiry checks so that under
// concurrency exactly one caller observes an affected row.
func (r *invitationsRepo) ConsumeInvitation(ctx context.Context, tokenHash, userID string, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitations
		 SET status = 'consumed', consumed_by = ?, updated_at = ?
		 WHERE token_hash = ? AND status = 'pending' AND expires_at > ?`,
		userID, now, tokenHash, now)
	return requireRow(res, err)
}

func (r *invitationsRepo) DeleteExpiredInvitations(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invitations WHERE status = 'pending' AND expires_at <= ?`, time.Now().UTC())
	return err
}
