package store

import (
	"context"
	"errors"
	"time"

	"github.com/dialisis/admin/internal/admin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Sessions() Sessions
	Invitations() Invitations
	CenterAccess() CenterAccess
	Centers() Centers
	States() States
	PasswordResets() PasswordResets

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx for multi-step operations that must be atomic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and password reset. Matching is
	// case-insensitive; emails are stored lowercased.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash replaces the credential record and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// UpdateTOTPSecret sets the TOTP secret for a user (enrollment, pre-activation).
	UpdateTOTPSecret(ctx context.Context, userID string, secret string) error

	// EnableTOTP marks TOTP as active (sets totp_enabled_at).
	EnableTOTP(ctx context.Context, userID string) error

	// DisableTOTP clears the secret and the enabled timestamp.
	DisableTOTP(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users (bootstrap gate).
	IsEmpty(ctx context.Context) (bool, error)
}

type Sessions interface {
	// CreateSession stores a new session row.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByID returns a session row by id.
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)

	// RevokeSession flips revoked=1 for one session (logout).
	RevokeSession(ctx context.Context, id string) error

	// RevokeAllUserSessions bulk revocation for a user (password reset/change).
	RevokeAllUserSessions(ctx context.Context, userID string) error

	// DeleteDeadSessions removes expired or revoked sessions (housekeeping).
	DeleteDeadSessions(ctx context.Context) error
}

type Invitations interface {
	// CreateInvitation writes a new pending invitation and its center list.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByTokenHash returns an invitation by fingerprint with its
	// center ids populated, regardless of status or expiry.
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// ConsumeInvitation atomically transitions pending -> consumed for a
	// still-valid invitation. Returns ErrNotFound when no row matched the
	// token hash, status and expiry conditions; callers classify by
	// re-reading the row.
	ConsumeInvitation(ctx context.Context, tokenHash, userID string, now time.Time) error

	// DeleteExpiredInvitations removes pending invitations past their
	// validity window (housekeeping). Consumed rows are kept for audit.
	DeleteExpiredInvitations(ctx context.Context) error
}

type CenterAccess interface {
	// GrantAccess inserts a (user, center) grant. Duplicate pairs are a
	// no-op, grants are additive only.
	GrantAccess(ctx context.Context, userID, centerID string) error

	// HasAccess reports whether a grant exists for the pair.
	HasAccess(ctx context.Context, userID, centerID string) (bool, error)

	// ListUserCenterIDs returns the center ids a user holds grants for.
	ListUserCenterIDs(ctx context.Context, userID string) ([]string, error)
}

type Centers interface {
	// GetCenterByID returns a center with its state name resolved.
	GetCenterByID(ctx context.Context, id string) (domain.Center, error)

	// ListCenters returns all centers ordered by name.
	ListCenters(ctx context.Context) ([]domain.Center, error)

	// ListCentersByIDs returns the centers matching ids, ordered by name.
	// Missing ids are skipped, not an error.
	ListCentersByIDs(ctx context.Context, ids []string) ([]domain.Center, error)

	// CreateCenter inserts a new center (id is ULID).
	CreateCenter(ctx context.Context, c domain.Center) error

	// UpdateCenter applies the non-nil fields of upd and bumps updated_at.
	UpdateCenter(ctx context.Context, id string, upd domain.CenterUpdate) error

	// DeleteCenter removes a center. Access grants cascade per schema.
	DeleteCenter(ctx context.Context, id string) error

	// CountByIDs returns how many of the given ids exist.
	CountByIDs(ctx context.Context, ids []string) (int, error)
}

type States interface {
	// ListStates returns the state lookup table ordered by name.
	ListStates(ctx context.Context) ([]domain.State, error)
}

type PasswordResets interface {
	// CreatePasswordReset stores a new reset token row.
	CreatePasswordReset(ctx context.Context, pr domain.PasswordReset) error

	// GetPasswordResetByTokenHash returns a reset row by fingerprint.
	GetPasswordResetByTokenHash(ctx context.Context, hash string) (domain.PasswordReset, error)

	// MarkPasswordResetUsed flips used=1 for one row.
	MarkPasswordResetUsed(ctx context.Context, id string) error

	// DeleteDeadPasswordResets removes expired or used rows (housekeeping).
	DeleteDeadPasswordResets(ctx context.Context) error
}
