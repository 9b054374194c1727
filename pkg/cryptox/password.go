package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"math/big"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters for credential records. These must stay fixed: stored
// records carry no parameter header, so verification always re-derives with
// the same salt length, iteration count, and key length.
const (
	saltLength = 16
	iterations = 100_000
	keyLength  = 32
)

// HashPassword derives a credential record from a password using
// PBKDF2-SHA256 with a fresh random salt. The record is base64(salt || key),
// standard encoding with padding, which keeps it compatible with records
// written by earlier deployments of the admin app.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("cryptox: failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	combined := make([]byte, 0, saltLength+keyLength)
	combined = append(combined, salt...)
	combined = append(combined, key...)

	return base64.StdEncoding.EncodeToString(combined), nil
}

// VerifyPassword reports whether password matches the stored credential
// record. It fails closed: any decoding error, truncation, or length mismatch
// yields false, never an error, so a malformed record is indistinguishable
// from a wrong password. The key comparison is constant time.
func VerifyPassword(password, record string) bool {
	combined, err := base64.StdEncoding.DecodeString(record)
	if err != nil {
		return false
	}
	if len(combined) != saltLength+keyLength {
		return false
	}

	salt := combined[:saltLength]
	stored := combined[saltLength:]

	derived := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	return subtle.ConstantTimeCompare(derived, stored) == 1
}

// GeneratePassword returns a random 12-character alphanumeric password.
// Used when bootstrapping the initial superadmin without an explicit password.
func GeneratePassword() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 12
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("cryptox: failed to generate random password: %w", err)
		}
		password[i] = charset[n.Int64()]
	}
	return string(password), nil
}
