package service

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/dialisis/admin/internal/admin/domain"
	"github.com/dialisis/admin/internal/admin/store"
	"github.com/dialisis/admin/pkg/jwtx"
)

// captureMailer records outbound mail for assertions.
type captureMailer struct {
	mu        sync.Mutex
	resetURLs []string
}

func (m *captureMailer) SendPasswordReset(ctx context.Context, to, resetURL string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetURLs = append(m.resetURLs, resetURL)
	return nil
}

func (m *captureMailer) SendInvitation(ctx context.Context, to, inviteURL string, expiresAt time.Time) error {
	return nil
}

func newAuthService(t *testing.T, st store.Store, m *captureMailer) *AuthService {
	t.Helper()

	signer, err := jwtx.NewSigner([]byte("test-secret-test-secret-test-sec"), "dialisis-admin", time.Hour)
	require.NoError(t, err)
	if m == nil {
		m = &captureMailer{}
	}
	return &AuthService{
		Store:      st,
		Signer:     signer,
		Mailer:     m,
		Invites:    &InviteService{Store: st},
		SessionTTL: time.Hour,
		BaseURL:    "https://admin.example.com",
		TOTPIssuer: "dialisis-admin",
	}
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(t, st, nil)

	admin := seedUser(t, st, domain.RoleSuperadmin, "admin@example.com", "password-123")
	center := seedCenter(t, st, "Pusat Dialisis Baru")

	t.Run("creates pic account", func(t *testing.T) {
		res, err := svc.SignUp(ctx, "Aisyah", "aisyah@example.com", "password-123", "")
		require.NoError(t, err)
		require.Equal(t, domain.RolePIC, res.User.Role)
		require.False(t, res.CentersAssigned)

		_, _, got, err := svc.Login(ctx, "aisyah@example.com", "password-123", "")
		require.NoError(t, err)
		require.Equal(t, res.User.ID, got.ID)
	})

	t.Run("rejects taken email", func(t *testing.T) {
		_, err := svc.SignUp(ctx, "Dup", "aisyah@example.com", "password-123", "")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("email matching is case-insensitive", func(t *testing.T) {
		_, err := svc.SignUp(ctx, "Dup", "AISYAH@example.com", "password-123", "")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := svc.SignUp(ctx, "Short", "short@example.com", "short", "")
		require.ErrorIs(t, err, ErrSignUpInvalid)
	})

	t.Run("valid invitation assigns centers", func(t *testing.T) {
		_, token, err := svc.Invites.CreateInvitation(ctx, admin, []string{center.ID}, 7)
		require.NoError(t, err)

		res, err := svc.SignUp(ctx, "Farid", "farid@example.com", "password-123", token)
		require.NoError(t, err)
		require.True(t, res.CentersAssigned)
		require.Len(t, res.Grants, 1)

		ids, err := st.CenterAccess().ListUserCenterIDs(ctx, res.User.ID)
		require.NoError(t, err)
		require.Equal(t, []string{center.ID}, ids)
	})

	t.Run("dead invitation does not destroy the account", func(t *testing.T) {
		_, token, err := svc.Invites.CreateInvitation(ctx, admin, []string{center.ID}, 7)
		require.NoError(t, err)

		// Someone else consumes the token first.
		other, err := svc.SignUp(ctx, "First", "first@example.com", "password-123", token)
		require.NoError(t, err)
		require.True(t, other.CentersAssigned)

		res, err := svc.SignUp(ctx, "Second", "second@example.com", "password-123", token)
		require.NoError(t, err)
		require.False(t, res.CentersAssigned)
		require.ErrorIs(t, res.InviteErr, ErrInvitationConsumed)

		// The account exists and can log in, it just has no centers.
		_, _, _, err = svc.Login(ctx, "second@example.com", "password-123", "")
		require.NoError(t, err)

		ids, err := st.CenterAccess().ListUserCenterIDs(ctx, res.User.ID)
		require.NoError(t, err)
		require.Empty(t, ids)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(t, st, nil)

	user := seedUser(t, st, domain.RolePIC, "login@example.com", "password-123")

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "nobody@example.com", "password-123", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, _, err = svc.Login(ctx, "login@example.com", "wrong-password", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("success mints a verifiable session token", func(t *testing.T) {
		token, session, got, err := svc.Login(ctx, "login@example.com", "password-123", "")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)

		claims, err := svc.Signer.Verify(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.UserID)
		require.Equal(t, session.ID, claims.SessionID)
		require.Equal(t, domain.RolePIC, claims.Role)

		active, err := svc.SessionActive(ctx, session.ID)
		require.NoError(t, err)
		require.True(t, active)
	})

	t.Run("logout revokes the session", func(t *testing.T) {
		_, session, _, err := svc.Login(ctx, "login@example.com", "password-123", "")
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, session.ID))

		active, err := svc.SessionActive(ctx, session.ID)
		require.NoError(t, err)
		require.False(t, active)

		// Logout is idempotent.
		require.NoError(t, svc.Logout(ctx, session.ID))
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(t, st, nil)

	user := seedUser(t, st, domain.RolePIC, "change@example.com", "password-123")

	t.Run("requires the current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "wrong-password", "new-password-123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("revokes existing sessions", func(t *testing.T) {
		_, session, _, err := svc.Login(ctx, "change@example.com", "password-123", "")
		require.NoError(t, err)

		require.NoError(t, svc.ChangePassword(ctx, user.ID, "password-123", "new-password-123"))

		active, err := svc.SessionActive(ctx, session.ID)
		require.NoError(t, err)
		require.False(t, active)

		_, _, _, err = svc.Login(ctx, "change@example.com", "password-123", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, _, _, err = svc.Login(ctx, "change@example.com", "new-password-123", "")
		require.NoError(t, err)
	})
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	m := &captureMailer{}
	svc := newAuthService(t, st, m)

	seedUser(t, st, domain.RolePIC, "reset@example.com", "password-123")

	t.Run("unknown email is silently accepted", func(t *testing.T) {
		require.NoError(t, svc.ForgotPassword(ctx, "nobody@example.com"))
		require.Empty(t, m.resetURLs)
	})

	t.Run("full reset flow", func(t *testing.T) {
		require.NoError(t, svc.ForgotPassword(ctx, "reset@example.com"))
		require.Len(t, m.resetURLs, 1)

		token := tokenFromResetURL(t, m.resetURLs[0])
		require.NoError(t, svc.ResetPassword(ctx, token, "after-reset-123"))

		_, _, _, err := svc.Login(ctx, "reset@example.com", "password-123", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, _, _, err = svc.Login(ctx, "reset@example.com", "after-reset-123", "")
		require.NoError(t, err)

		// Single use.
		err = svc.ResetPassword(ctx, token, "again-456789")
		require.ErrorIs(t, err, ErrResetTokenInvalid)
	})

	t.Run("garbage token", func(t *testing.T) {
		err := svc.ResetPassword(ctx, "not-a-token", "whatever-123")
		require.ErrorIs(t, err, ErrResetTokenInvalid)
	})
}

func TestTOTP(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newAuthService(t, st, nil)

	user := seedUser(t, st, domain.RoleSuperadmin, "totp@example.com", "password-123")

	secret, otpauthURL, err := svc.EnrollTOTP(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, secret)
	require.Contains(t, otpauthURL, "otpauth://totp/")

	t.Run("inactive enrollment does not gate login", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "totp@example.com", "password-123", "")
		require.NoError(t, err)
	})

	t.Run("activation requires a valid code", func(t *testing.T) {
		require.ErrorIs(t, svc.ActivateTOTP(ctx, user.ID, "000000"), ErrMFACodeInvalid)

		code, err := totp.GenerateCode(secret, time.Now())
		require.NoError(t, err)
		require.NoError(t, svc.ActivateTOTP(ctx, user.ID, code))
	})

	t.Run("active enrollment gates login", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "totp@example.com", "password-123", "")
		require.ErrorIs(t, err, ErrMFACodeRequired)

		_, _, _, err = svc.Login(ctx, "totp@example.com", "password-123", "000000")
		require.ErrorIs(t, err, ErrMFACodeInvalid)

		code, err := totp.GenerateCode(secret, time.Now())
		require.NoError(t, err)
		_, _, _, err = svc.Login(ctx, "totp@example.com", "password-123", code)
		require.NoError(t, err)
	})

	t.Run("disable requires a valid code", func(t *testing.T) {
		require.ErrorIs(t, svc.DisableTOTP(ctx, user.ID, "000000"), ErrMFACodeInvalid)

		code, err := totp.GenerateCode(secret, time.Now())
		require.NoError(t, err)
		require.NoError(t, svc.DisableTOTP(ctx, user.ID, code))

		_, _, _, err = svc.Login(ctx, "totp@example.com", "password-123", "")
		require.NoError(t, err)
	})
}

func tokenFromResetURL(t *testing.T, raw string) string {
	t.Helper()

	u, err := url.Parse(raw)
	require.NoError(t, err)
	token := u.Query().Get("token")
	require.NotEmpty(t, token)
	return token
}
