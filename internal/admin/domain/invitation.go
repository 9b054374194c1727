package domain

import "time"

// Invitation statuses. There is deliberately no stored "expired" status:
// expiry is computed from ExpiresAt at check time, so the only transition a
// row ever makes is pending -> consumed.
const (
	InvitationPending  = "pending"
	InvitationConsumed = "consumed"
)

type Invitation struct {
	ID         string
	TokenHash  string   // SHA-256 fingerprint of the opaque invitation token
	CenterIDs  []string // centers granted on consumption, immutable after creation
	CreatedBy  string
	ExpiresAt  time.Time
	Status     string
	ConsumedBy string // set exactly once, at consumption
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired reports whether the invitation is past its validity window,
// regardless of stored status.
func (i Invitation) Expired(now time.Time) bool { return now.After(i.ExpiresAt) }

// CenterAccess is a persisted (user, center) authorization grant. Grants are
// additive only; there is no revocation flow.
type CenterAccess struct {
	UserID    string
	CenterID  string
	CreatedAt time.Time
}
