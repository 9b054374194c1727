package httpx

import "net/http"

// RequireRole restricts a handler to callers whose session carries one of the
// listed roles. It must run after AuthnMiddleware.
func RequireRole(roles ...string) Middleware {
	want := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := want[RoleFromCtx(r.Context())]; !ok {
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":             "insufficient_role",
					"error_description": "The session role does not permit this operation",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
