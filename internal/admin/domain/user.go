package domain

import "time"

// Roles the admin app knows about. Superadmins manage every center and mint
// invitations; PIC (person-in-charge) users only see centers they hold an
// access grant for.
const (
	RoleSuperadmin = "superadmin"
	RolePIC        = "pic"
)

type User struct {
	ID            string
	Email         string
	Name          string
	PasswordHash  string // base64(salt || pbkdf2 key)
	Role          string
	TOTPSecret    *string    // base32 TOTP secret (nullable)
	TOTPEnabledAt *time.Time // set once the secret is confirmed with a code
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u User) IsSuperadmin() bool { return u.Role == RoleSuperadmin }

// TOTPActive reports whether login requires a TOTP code for this user.
func (u User) TOTPActive() bool { return u.TOTPSecret != nil && u.TOTPEnabledAt != nil }
