package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dialisis/admin/internal/admin/domain"
	"github.com/dialisis/admin/internal/admin/store"
	"github.com/dialisis/admin/pkg/cryptox"
	"github.com/dialisis/admin/pkg/idx"
)

func TestHousekeepingCleanup(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	admin := seedUser(t, st, domain.RoleSuperadmin, "admin@example.com", "password-123")
	center := seedCenter(t, st, "Sweep Dialisis")

	// A live invitation, an expired one.
	liveToken := seedDeadInvitation(t, st, admin.ID, center.ID, time.Hour, domain.InvitationPending)
	deadToken := seedDeadInvitation(t, st, admin.ID, center.ID, -time.Hour, domain.InvitationPending)

	// A live session, a revoked one.
	now := time.Now().UTC()
	live := domain.Session{ID: idx.New().String(), UserID: admin.ID, ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	dead := domain.Session{ID: idx.New().String(), UserID: admin.ID, ExpiresAt: now.Add(time.Hour), Revoked: true, CreatedAt: now}
	require.NoError(t, st.Sessions().CreateSession(ctx, live))
	require.NoError(t, st.Sessions().CreateSession(ctx, dead))

	// A used reset token.
	reset := domain.PasswordReset{
		ID:        idx.New().String(),
		UserID:    admin.ID,
		TokenHash: cryptox.FingerprintToken("spent"),
		ExpiresAt: now.Add(time.Hour),
		Used:      true,
		CreatedAt: now,
	}
	require.NoError(t, st.PasswordResets().CreatePasswordReset(ctx, reset))

	svc := NewHousekeepingService(st, slog.Default(), time.Hour)
	svc.Start()
	svc.Stop()

	_, err := st.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(liveToken))
	require.NoError(t, err)
	_, err = st.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(deadToken))
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Sessions().GetSessionByID(ctx, live.ID)
	require.NoError(t, err)
	_, err = st.Sessions().GetSessionByID(ctx, dead.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.PasswordResets().GetPasswordResetByTokenHash(ctx, cryptox.FingerprintToken("spent"))
	require.ErrorIs(t, err, store.ErrNotFound)
}
