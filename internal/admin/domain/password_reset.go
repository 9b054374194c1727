package domain

import "time"

// PasswordReset is a single-use, time-limited token allowing a user to set a
// new password. Only the token fingerprint is stored.
type PasswordReset struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
