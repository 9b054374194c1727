package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dialisis/admin/internal/admin/domain"
)

func TestListCentersForUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CenterService{Store: st}

	admin := seedUser(t, st, domain.RoleSuperadmin, "admin@example.com", "password-123")
	pic := seedUser(t, st, domain.RolePIC, "pic@example.com", "password-123")
	c1 := seedCenter(t, st, "Alpha Dialisis")
	c2 := seedCenter(t, st, "Beta Dialisis")
	seedCenter(t, st, "Gamma Dialisis")

	require.NoError(t, st.CenterAccess().GrantAccess(ctx, pic.ID, c1.ID))
	require.NoError(t, st.CenterAccess().GrantAccess(ctx, pic.ID, c2.ID))

	t.Run("superadmin sees everything", func(t *testing.T) {
		centers, err := svc.ListCentersForUser(ctx, admin)
		require.NoError(t, err)
		require.Len(t, centers, 3)
	})

	t.Run("pic sees only granted centers, ordered by name", func(t *testing.T) {
		centers, err := svc.ListCentersForUser(ctx, pic)
		require.NoError(t, err)
		require.Len(t, centers, 2)
		require.Equal(t, "Alpha Dialisis", centers[0].Name)
		require.Equal(t, "Beta Dialisis", centers[1].Name)
	})

	t.Run("pic with no grants sees nothing", func(t *testing.T) {
		lonely := seedUser(t, st, domain.RolePIC, "lonely@example.com", "password-123")
		centers, err := svc.ListCentersForUser(ctx, lonely)
		require.NoError(t, err)
		require.Empty(t, centers)
	})
}

func TestGetCenter(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CenterService{Store: st}

	admin := seedUser(t, st, domain.RoleSuperadmin, "admin@example.com", "password-123")
	pic := seedUser(t, st, domain.RolePIC, "pic@example.com", "password-123")
	granted := seedCenter(t, st, "Granted Dialisis")
	other := seedCenter(t, st, "Other Dialisis")

	require.NoError(t, st.CenterAccess().GrantAccess(ctx, pic.ID, granted.ID))

	t.Run("resolves state name", func(t *testing.T) {
		c, err := svc.GetCenter(ctx, admin, granted.ID)
		require.NoError(t, err)
		require.Equal(t, "Johor", c.StateName)
	})

	t.Run("pic without grant is denied", func(t *testing.T) {
		_, err := svc.GetCenter(ctx, pic, other.ID)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing center is not found, even for pic", func(t *testing.T) {
		_, err := svc.GetCenter(ctx, pic, "missing")
		require.ErrorIs(t, err, ErrCenterNotFound)
	})
}

func TestUpdateCenter(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CenterService{Store: st}

	admin := seedUser(t, st, domain.RoleSuperadmin, "admin@example.com", "password-123")
	pic := seedUser(t, st, domain.RolePIC, "pic@example.com", "password-123")
	center := seedCenter(t, st, "Edit Dialisis")
	require.NoError(t, st.CenterAccess().GrantAccess(ctx, pic.ID, center.ID))

	strptr := func(s string) *string { return &s }
	boolptr := func(b bool) *bool { return &b }

	t.Run("pic may edit granted centers", func(t *testing.T) {
		updated, err := svc.UpdateCenter(ctx, pic, center.ID, domain.CenterUpdate{
			Town: strptr("Johor Bahru"),
		})
		require.NoError(t, err)
		require.Equal(t, "Johor Bahru", updated.Town)
	})

	t.Run("featured flag is dropped for pic", func(t *testing.T) {
		updated, err := svc.UpdateCenter(ctx, pic, center.ID, domain.CenterUpdate{
			Featured: boolptr(true),
			Tel:      strptr("07-1234567"),
		})
		require.NoError(t, err)
		require.False(t, updated.Featured)
		require.Equal(t, "07-1234567", updated.Tel)
	})

	t.Run("featured flag applies for superadmin", func(t *testing.T) {
		updated, err := svc.UpdateCenter(ctx, admin, center.ID, domain.CenterUpdate{
			Featured: boolptr(true),
		})
		require.NoError(t, err)
		require.True(t, updated.Featured)
	})

	t.Run("pic without grant is denied", func(t *testing.T) {
		stranger := seedCenter(t, st, "Stranger Dialisis")
		_, err := svc.UpdateCenter(ctx, pic, stranger.ID, domain.CenterUpdate{
			Town: strptr("Nope"),
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestCreateDeleteCenter(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CenterService{Store: st}

	admin := seedUser(t, st, domain.RoleSuperadmin, "admin@example.com", "password-123")
	pic := seedUser(t, st, domain.RolePIC, "pic@example.com", "password-123")

	t.Run("superadmin only", func(t *testing.T) {
		_, err := svc.CreateCenter(ctx, pic, domain.Center{Name: "X", StateID: "JHR"})
		require.ErrorIs(t, err, ErrNotSuperadmin)

		require.ErrorIs(t, svc.DeleteCenter(ctx, pic, "whatever"), ErrNotSuperadmin)
	})

	t.Run("create validates required fields", func(t *testing.T) {
		_, err := svc.CreateCenter(ctx, admin, domain.Center{StateID: "JHR"})
		require.ErrorIs(t, err, ErrCenterInvalid)
	})

	t.Run("create then delete", func(t *testing.T) {
		created, err := svc.CreateCenter(ctx, admin, domain.Center{
			Name:    "Lifecycle Dialisis",
			StateID: "SGR",
		})
		require.NoError(t, err)
		require.Equal(t, "Selangor", created.StateName)

		// Deletion removes grants with the center.
		require.NoError(t, st.CenterAccess().GrantAccess(ctx, pic.ID, created.ID))
		require.NoError(t, svc.DeleteCenter(ctx, admin, created.ID))

		_, err = svc.GetCenter(ctx, admin, created.ID)
		require.ErrorIs(t, err, ErrCenterNotFound)

		ids, err := st.CenterAccess().ListUserCenterIDs(ctx, pic.ID)
		require.NoError(t, err)
		require.Empty(t, ids)
	})

	t.Run("delete unknown center", func(t *testing.T) {
		require.ErrorIs(t, svc.DeleteCenter(ctx, admin, "missing"), ErrCenterNotFound)
	})
}

func TestListStates(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CenterService{Store: st}

	states, err := svc.ListStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, 16)
	require.Equal(t, "Johor", states[0].Name)
}
