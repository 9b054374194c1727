package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pquerna/otp/totp"

	"github.com/dialisis/admin/internal/admin/domain"
	"github.com/dialisis/admin/internal/admin/mailer"
	"github.com/dialisis/admin/internal/admin/store"
	"github.com/dialisis/admin/pkg/cryptox"
	"github.com/dialisis/admin/pkg/idx"
	"github.com/dialisis/admin/pkg/jwtx"
	"github.com/dialisis/admin/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSignUpInvalid      = errors.New("invalid sign-up request")
	ErrMFACodeRequired    = errors.New("totp code required")
	ErrMFACodeInvalid     = errors.New("totp code invalid")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
	ErrMFANotEnrolled     = errors.New("totp not enrolled")
)

// ResetTokenTTL is the validity window for password reset links.
const ResetTokenTTL = time.Hour

const minPasswordLength = 8

// dummyRecord is a well-formed credential record that matches no password.
// Verifying against it keeps unknown-email logins as slow as wrong-password
// ones.
var dummyRecord = base64.StdEncoding.EncodeToString(make([]byte, 48))

type AuthService struct {
	Store      store.Store
	Signer     *jwtx.Signer
	Mailer     mailer.Mailer
	Invites    *InviteService
	SessionTTL time.Duration
	BaseURL    string
	TOTPIssuer string
}

// SignUpResult reports what actually happened during sign-up. The account is
// never rolled back when invitation consumption fails, so CentersAssigned can
// be false on an otherwise successful registration.
type SignUpResult struct {
	User            domain.User
	CentersAssigned bool
	Grants          []domain.CenterAccess
	InviteErr       error
}

// SignUp registers a new PIC account and, when an invitation token is
// supplied, redeems it for center access. Account creation and invitation
// consumption are deliberately separate steps: a dead token must not destroy
// the account the user just created.
func (s *AuthService) SignUp(
	ctx context.Context,
	name, email, password, inviteToken string,
) (SignUpResult, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return SignUpResult{}, ErrSignUpInvalid
	}
	if len(password) < minPasswordLength {
		return SignUpResult{}, ErrSignUpInvalid
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return SignUpResult{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RolePIC,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("sign-up with taken email")
			return SignUpResult{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return SignUpResult{}, err
	}

	result := SignUpResult{User: user}
	if inviteToken == "" {
		log.Info("user signed up without invitation", slog.String("user_id", user.ID))
		return result, nil
	}

	grants, err := s.Invites.ConsumeInvitation(ctx, inviteToken, user.ID)
	if err != nil {
		// The account stands; the caller is told no centers were assigned.
		log.Warn("sign-up completed but invitation consumption failed",
			slog.String("user_id", user.ID),
			slog.Any("reason", err),
		)
		result.InviteErr = err
		return result, nil
	}

	result.CentersAssigned = true
	result.Grants = grants
	log.Info("user signed up via invitation",
		slog.String("user_id", user.ID),
		slog.Int("grants", len(grants)),
	)
	return result, nil
}

// Login authenticates email/password (plus a TOTP code when the account has
// one enrolled), creates a session row and returns the signed session token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(
	ctx context.Context,
	email, password, totpCode string,
) (string, domain.Session, domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a full verification anyway so unknown emails cost the
			// same as wrong passwords.
			cryptox.VerifyPassword(password, dummyRecord)
			return "", domain.Session{}, domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return "", domain.Session{}, domain.User{}, err
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		log.Warn("login with wrong password", slog.String("user_id", user.ID))
		return "", domain.Session{}, domain.User{}, ErrInvalidCredentials
	}

	if user.TOTPActive() {
		if totpCode == "" {
			return "", domain.Session{}, domain.User{}, ErrMFACodeRequired
		}
		if !totp.Validate(totpCode, *user.TOTPSecret) {
			log.Warn("login with invalid totp code", slog.String("user_id", user.ID))
			return "", domain.Session{}, domain.User{}, ErrMFACodeInvalid
		}
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        idx.New().String(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.SessionTTL),
		CreatedAt: now,
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		log.Error("failed to create session", slog.Any("error", err))
		return "", domain.Session{}, domain.User{}, err
	}

	token, err := s.Signer.Mint(user.ID, session.ID, user.Role, now)
	if err != nil {
		log.Error("failed to mint session token", slog.Any("error", err))
		return "", domain.Session{}, domain.User{}, err
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("session_id", session.ID),
	)
	return token, session, user, nil
}

// Logout revokes a single session. Revoking an already-revoked or unknown
// session is not an error; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	err := s.Store.Sessions().RevokeSession(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

// SessionActive reports whether a session may still authenticate requests.
// Satisfies httpx.SessionChecker.
func (s *AuthService) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	session, err := s.Store.Sessions().GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return session.Active(time.Now().UTC()), nil
}

// ChangePassword replaces the credential record after verifying the current
// password, then revokes every session of the user.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	log := slogx.FromContext(ctx)

	if len(next) < minPasswordLength {
		return ErrSignUpInvalid
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !cryptox.VerifyPassword(current, user.PasswordHash) {
		log.Warn("password change with wrong current password", slog.String("user_id", userID))
		return ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
			return err
		}
		return tx.Sessions().RevokeAllUserSessions(ctx, userID)
	})
	if err != nil {
		log.Error("failed to change password", slog.Any("error", err))
		return err
	}

	log.Info("password changed", slog.String("user_id", userID))
	return nil
}

// ForgotPassword starts the reset flow. It reports success whether or not the
// email is registered so callers cannot enumerate accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	reset := domain.PasswordReset{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: now.Add(ResetTokenTTL),
		CreatedAt: now,
	}
	if err := s.Store.PasswordResets().CreatePasswordReset(ctx, reset); err != nil {
		log.Error("failed to store reset token", slog.Any("error", err))
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(s.BaseURL, "/"), token)
	if err := s.Mailer.SendPasswordReset(ctx, user.Email, resetURL, reset.ExpiresAt); err != nil {
		log.Error("failed to send reset email", slog.Any("error", err))
		return err
	}

	log.Info("password reset issued", slog.String("user_id", user.ID))
	return nil
}

// ResetPassword redeems a reset token: replaces the credential record, marks
// the token used and revokes every session of the user, all atomically.
func (s *AuthService) ResetPassword(ctx context.Context, token, next string) error {
	log := slogx.FromContext(ctx)

	if token == "" || len(next) < minPasswordLength {
		return ErrResetTokenInvalid
	}

	reset, err := s.Store.PasswordResets().GetPasswordResetByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}
	if reset.Used || time.Now().UTC().After(reset.ExpiresAt) {
		return ErrResetTokenInvalid
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.PasswordResets().MarkPasswordResetUsed(ctx, reset.ID); err != nil {
			return err
		}
		if err := tx.Users().UpdatePasswordHash(ctx, reset.UserID, hash); err != nil {
			return err
		}
		return tx.Sessions().RevokeAllUserSessions(ctx, reset.UserID)
	})
	if err != nil {
		log.Error("failed to reset password", slog.Any("error", err))
		return err
	}

	log.Info("password reset completed", slog.String("user_id", reset.UserID))
	return nil
}

// EnrollTOTP generates a fresh TOTP secret for a user and stores it inactive.
// The secret only starts gating logins after ActivateTOTP confirms the user's
// authenticator produces valid codes.
func (s *AuthService) EnrollTOTP(ctx context.Context, userID string) (secret, otpauthURL string, err error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return "", "", err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.TOTPIssuer,
		AccountName: user.Email,
	})
	if err != nil {
		log.Error("failed to generate totp secret", slog.Any("error", err))
		return "", "", err
	}

	if err := s.Store.Users().UpdateTOTPSecret(ctx, userID, key.Secret()); err != nil {
		return "", "", err
	}

	log.Info("totp enrollment started", slog.String("user_id", userID))
	return key.Secret(), key.URL(), nil
}

// ActivateTOTP confirms enrollment with a code from the authenticator.
func (s *AuthService) ActivateTOTP(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.TOTPSecret == nil {
		return ErrMFANotEnrolled
	}
	if !totp.Validate(code, *user.TOTPSecret) {
		return ErrMFACodeInvalid
	}
	return s.Store.Users().EnableTOTP(ctx, userID)
}

// DisableTOTP removes the enrollment. An active enrollment requires a valid
// code to remove, so a hijacked session alone cannot weaken the account.
func (s *AuthService) DisableTOTP(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.TOTPSecret == nil {
		return ErrMFANotEnrolled
	}
	if user.TOTPActive() && !totp.Validate(code, *user.TOTPSecret) {
		return ErrMFACodeInvalid
	}
	return s.Store.Users().DisableTOTP(ctx, userID)
}
