// Package jwtx signs and verifies the admin app's session tokens.
//
// Sessions are HS256-signed JWTs carrying the user id, role, and a session id
// that points at a revocable database row. The signing secret is injected at
// construction; there is no process-global secret lookup.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret  = errors.New("jwtx: signing secret must not be empty")
	ErrInvalidToken = errors.New("jwtx: invalid session token")
)

// SessionClaims is the decoded payload of a session token.
type SessionClaims struct {
	UserID    string
	SessionID string
	Role      string
	ExpiresAt time.Time
}

type sessionClaims struct {
	Role      string `json:"role"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Signer mints and verifies session tokens with a single HMAC-SHA256 secret.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewSigner(secret []byte, issuer string, ttl time.Duration) (*Signer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Signer{secret: secret, issuer: issuer, ttl: ttl}, nil
}

// TTL returns the session lifetime tokens are minted with.
func (s *Signer) TTL() time.Duration { return s.ttl }

// Mint creates a signed session token for the given user and session row.
func (s *Signer) Mint(userID, sessionID, role string, now time.Time) (string, error) {
	claims := sessionClaims{
		Role:      role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, algorithm, issuer, and expiry of a session
// token and returns its claims. Any failure is reported as ErrInvalidToken so
// callers cannot accidentally leak why a token was rejected.
func (s *Signer) Verify(raw string) (SessionClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return SessionClaims{}, ErrInvalidToken
	}
	if claims.Subject == "" || claims.SessionID == "" {
		return SessionClaims{}, ErrInvalidToken
	}

	return SessionClaims{
		UserID:    claims.Subject,
		SessionID: claims.SessionID,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
