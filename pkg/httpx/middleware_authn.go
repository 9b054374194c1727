package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/dialisis/admin/pkg/jwtx"
	"github.com/dialisis/admin/pkg/slogx"
)

// SessionCookieName is the cookie the browser UI stores session tokens in.
// API clients may instead send the token as a bearer Authorization header.
const SessionCookieName = "admin_session"

// SessionChecker reports whether the session row behind a verified token is
// still live (exists, not revoked, not expired). This keeps logout and
// password-reset revocation effective even though tokens are self-signed.
type SessionChecker interface {
	SessionActive(ctx context.Context, sessionID string) (bool, error)
}

// AuthnMiddleware authenticates requests via session token, from either the
// Authorization header or the session cookie, and injects the user identity
// into the request context.
func AuthnMiddleware(signer *jwtx.Signer, sessions SessionChecker) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := tokenFromRequest(r)
			if raw == "" {
				writeBearerError(w, "missing session token")
				return
			}

			claims, err := signer.Verify(raw)
			if err != nil {
				writeBearerError(w, "session verification failed")
				return
			}

			active, err := sessions.SessionActive(ctx, claims.SessionID)
			if err != nil {
				log.Error("session check failed", "err", err)
				writeBearerError(w, "session verification failed")
				return
			}
			if !active {
				writeBearerError(w, "session revoked or expired")
				return
			}

			ctx = contextWithSession(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

func contextWithSession(ctx context.Context, c jwtx.SessionClaims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.UserID)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	ctx = context.WithValue(ctx, CtxKeySessionID, c.SessionID)
	return ctx
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "unauthorized",
		"error_description": desc,
	})
}
