package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dialisis/admin/internal/admin/domain"
	"github.com/dialisis/admin/internal/admin/store"
	"github.com/dialisis/admin/pkg/cryptox"
	"github.com/dialisis/admin/pkg/idx"
)

func TestCreateInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &InviteService{Store: st}

	admin := seedUser(t, st, domain.RoleSuperadmin, "admin@example.com", "password-123")
	pic := seedUser(t, st, domain.RolePIC, "pic@example.com", "password-123")
	center := seedCenter(t, st, "Pusat Dialisis Utara")

	t.Run("requires superadmin", func(t *testing.T) {
		_, _, err := svc.CreateInvitation(ctx, pic, []string{center.ID}, 7)
		require.ErrorIs(t, err, ErrNotSuperadmin)
	})

	t.Run("rejects empty center list", func(t *testing.T) {
		_, _, err := svc.CreateInvitation(ctx, admin, nil, 7)
		require.ErrorIs(t, err, ErrInvitationInvalid)
	})

	t.Run("rejects non-positive validity", func(t *testing.T) {
		_, _, err := svc.CreateInvitation(ctx, admin, []string{center.ID}, 0)
		require.ErrorIs(t, err, ErrInvitationInvalid)
	})

	t.Run("rejects unknown centers", func(t *testing.T) {
		_, _, err := svc.CreateInvitation(ctx, admin, []string{center.ID, "nope"}, 7)
		require.ErrorIs(t, err, ErrUnknownCenter)
	})

	t.Run("stores fingerprint, returns token once", func(t *testing.T) {
		inv, token, err := svc.CreateInvitation(ctx, admin, []string{center.ID}, 7)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.NotEqual(t, token, inv.TokenHash)
		require.Equal(t, domain.InvitationPending, inv.Status)
		require.Equal(t, []string{center.ID}, inv.CenterIDs)

		stored, err := st.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
		require.NoError(t, err)
		require.Equal(t, inv.ID, stored.ID)
	})

	t.Run("deduplicates center ids", func(t *testing.T) {
		inv, _, err := svc.CreateInvitation(ctx, admin, []string{center.ID, center.ID}, 7)
		require.NoError(t, err)
		require.Len(t, inv.CenterIDs, 1)
	})
}

func TestLookupInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &InviteService{Store: st}

	admin := seedUser(t, st, domain.RoleSuperadmin, "admin@example.com", "password-123")
	center := seedCenter(t, st, "Pusat Dialisis Selatan")

	t.Run("unknown token", func(t *testing.T) {
		_, _, err := svc.LookupInvitation(ctx, "no-such-token")
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("empty token", func(t *testing.T) {
		_, _, err := svc.LookupInvitation(ctx, "")
		require.ErrorIs(t, err, ErrInvitationInvalid)
	})

	t.Run("valid token resolves center summaries", func(t *testing.T) {
		_, token, err := svc.CreateInvitation(ctx, admin, []string{center.ID}, 7)
		require.NoError(t, err)

		inv, centers, err := svc.LookupInvitation(ctx, token)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, inv.Status)
		require.Len(t, centers, 1)
		require.Equal(t, center.ID, centers[0].ID)
		require.Equal(t, "Johor", centers[0].State)
	})

	t.Run("expired token", func(t *testing.T) {
		token := seedDeadInvitation(t, st, admin.ID, center.ID, -time.Hour, domain.InvitationPending)

		_, _, err := svc.LookupInvitation(ctx, token)
		require.ErrorIs(t, err, ErrInvitationExpired)
	})

	t.Run("consumed token", func(t *testing.T) {
		token := seedDeadInvitation(t, st, admin.ID, center.ID, time.Hour, domain.InvitationConsumed)

		_, _, err := svc.LookupInvitation(ctx, token)
		require.ErrorIs(t, err, ErrInvitationConsumed)
	})

	t.Run("expiry wins over consumption", func(t *testing.T) {
		token := seedDeadInvitation(t, st, admin.ID, center.ID, -time.Hour, domain.InvitationConsumed)

		_, _, err := svc.LookupInvitation(ctx, token)
		require.ErrorIs(t, err, ErrInvitationExpired)
	})
}

func TestConsumeInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &InviteService{Store: st}

	admin := seedUser(t, st, domain.RoleSuperadmin, "admin@example.com", "password-123")
	center1 := seedCenter(t, st, "Pusat Dialisis Satu")
	center2 := seedCenter(t, st, "Pusat Dialisis Dua")

	t.Run("grants every listed center", func(t *testing.T) {
		user := seedUser(t, st, domain.RolePIC, "grantee@example.com", "password-123")
		_, token, err := svc.CreateInvitation(ctx, admin, []string{center1.ID, center2.ID}, 7)
		require.NoError(t, err)

		grants, err := svc.ConsumeInvitation(ctx, token, user.ID)
		require.NoError(t, err)
		require.Len(t, grants, 2)

		ids, err := st.CenterAccess().ListUserCenterIDs(ctx, user.ID)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{center1.ID, center2.ID}, ids)

		stored, err := st.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
		require.NoError(t, err)
		require.Equal(t, domain.InvitationConsumed, stored.Status)
		require.Equal(t, user.ID, stored.ConsumedBy)
	})

	t.Run("second consumption fails", func(t *testing.T) {
		user := seedUser(t, st, domain.RolePIC, "second@example.com", "password-123")
		_, token, err := svc.CreateInvitation(ctx, admin, []string{center1.ID}, 7)
		require.NoError(t, err)

		_, err = svc.ConsumeInvitation(ctx, token, user.ID)
		require.NoError(t, err)

		_, err = svc.ConsumeInvitation(ctx, token, user.ID)
		require.ErrorIs(t, err, ErrInvitationConsumed)
	})

	t.Run("expired token cannot be consumed", func(t *testing.T) {
		user := seedUser(t, st, domain.RolePIC, "late@example.com", "password-123")
		token := seedDeadInvitation(t, st, admin.ID, center1.ID, -time.Hour, domain.InvitationPending)

		_, err := svc.ConsumeInvitation(ctx, token, user.ID)
		require.ErrorIs(t, err, ErrInvitationExpired)

		ids, err := st.CenterAccess().ListUserCenterIDs(ctx, user.ID)
		require.NoError(t, err)
		require.Empty(t, ids)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.ConsumeInvitation(ctx, "no-such-token", "whoever")
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("pre-existing grant does not block consumption", func(t *testing.T) {
		user := seedUser(t, st, domain.RolePIC, "repeat@example.com", "password-123")
		require.NoError(t, st.CenterAccess().GrantAccess(ctx, user.ID, center1.ID))

		_, token, err := svc.CreateInvitation(ctx, admin, []string{center1.ID, center2.ID}, 7)
		require.NoError(t, err)

		_, err = svc.ConsumeInvitation(ctx, token, user.ID)
		require.NoError(t, err)

		ids, err := st.CenterAccess().ListUserCenterIDs(ctx, user.ID)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{center1.ID, center2.ID}, ids)
	})
}

func TestConsumeInvitationConcurrent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &InviteService{Store: st}

	admin := seedUser(t, st, domain.RoleSuperadmin, "admin@example.com", "password-123")
	center := seedCenter(t, st, "Pusat Dialisis Tengah")

	_, token, err := svc.CreateInvitation(ctx, admin, []string{center.ID}, 7)
	require.NoError(t, err)

	const racers = 8
	users := make([]domain.User, racers)
	for i := range users {
		users[i] = seedUser(t, st, domain.RolePIC,
			"racer"+string(rune('a'+i))+"@example.com", "password-123")
	}

	errs := make([]error, racers)
	var wg sync.WaitGroup
	for i := range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.ConsumeInvitation(ctx, token, users[i].ID)
		}()
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			require.ErrorIs(t, err, ErrInvitationConsumed)
		}
	}
	require.Equal(t, 1, winners, "exactly one concurrent consumer must win")

	// Only the winner holds a grant.
	stored, err := st.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	require.NoError(t, err)
	granted := 0
	for _, u := range users {
		ids, err := st.CenterAccess().ListUserCenterIDs(ctx, u.ID)
		require.NoError(t, err)
		if len(ids) > 0 {
			granted++
			require.Equal(t, u.ID, stored.ConsumedBy)
		}
	}
	require.Equal(t, 1, granted)
}

// seedDeadInvitation inserts an invitation row directly so tests can shape
// expiry and status without going through the service.
func seedDeadInvitation(
	t *testing.T,
	st store.Store,
	createdBy, centerID string,
	ttl time.Duration,
	status string,
) string {
	t.Helper()

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)

	now := time.Now().UTC()
	err = st.Invitations().CreateInvitation(context.Background(), domain.Invitation{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		CenterIDs: []string{centerID},
		CreatedBy: createdBy,
		ExpiresAt: now.Add(ttl),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return token
}
