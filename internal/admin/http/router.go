package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dialisis/admin/internal/admin/service"
	"github.com/dialisis/admin/internal/admin/store"
	"github.com/dialisis/admin/pkg/httpx"
	"github.com/dialisis/admin/pkg/jwtx"
	"github.com/dialisis/admin/pkg/slogx"

	_ "github.com/dialisis/admin/api/admin" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/dialisis/admin/internal/admin/domain"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService      *service.AuthService
	InviteService    *service.InviteService
	CenterService    *service.CenterService
	UserService      *service.UserService
	BootstrapService *service.BootstrapService
}

func NewRouter(
	signer *jwtx.Signer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerInvites()
	r.registerCenters()
	r.registerUsers()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Dialisis Admin API
//	@version		0.1.0
//	@description	Administrative backend for the dialysis center registry: accounts,
//	@description	invitation-based onboarding, per-center access control and center records.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn verifies the session token (header or cookie) and checks the session
// row is still active.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.signer, r.AuthService)
}

func (r *Router) registerAuth() {
	login := &LoginHandler{AuthService: r.AuthService, UserService: r.UserService}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(login,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	logout := &LogoutHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logout,
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	signUp := &SignUpHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/sign-up",
		httpx.Chain(signUp,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	pw := &PasswordHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/forgot-password",
		httpx.Chain(http.HandlerFunc(pw.HandleForgot),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/reset-password",
		httpx.Chain(http.HandlerFunc(pw.HandleReset),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/change-password",
		httpx.Chain(http.HandlerFunc(pw.HandleChange),
			r.authn(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	totp := &TOTPHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/totp/enroll",
		httpx.Chain(http.HandlerFunc(totp.HandleEnroll),
			r.authn(),
			httpx.RequireRole(domain.RoleSuperadmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/totp/activate",
		httpx.Chain(http.HandlerFunc(totp.HandleActivate),
			r.authn(),
			httpx.RequireRole(domain.RoleSuperadmin),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/auth/totp",
		httpx.Chain(http.HandlerFunc(totp.HandleDisable),
			r.authn(),
			httpx.RequireRole(domain.RoleSuperadmin),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerInvites() {
	h := &InviteHandler{InviteService: r.InviteService, UserService: r.UserService}

	// Minting is superadmin-only; the service enforces it too.
	r.Mux.Handle("POST /v1/invites",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RequireRole(domain.RoleSuperadmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Lookup is public: prospective users validate tokens before signing up.
	r.Mux.Handle("GET /v1/invites/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleLookup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerCenters() {
	h := &CentersHandler{CenterService: r.CenterService, UserService: r.UserService}

	r.Mux.Handle("GET /v1/centers",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/centers/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/centers",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RequireRole(domain.RoleSuperadmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/centers/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/centers/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.authn(),
			httpx.RequireRole(domain.RoleSuperadmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/states",
		httpx.Chain(http.HandlerFunc(h.HandleStates),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UserInfoHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/userinfo",
		httpx.Chain(h,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
