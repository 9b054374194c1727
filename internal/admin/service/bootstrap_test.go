package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dialisis/admin/internal/admin/domain"
	"github.com/dialisis/admin/pkg/cryptox"
)

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BootstrapService{Store: st, Token: "bootstrap-token"}

	t.Run("rejects wrong token", func(t *testing.T) {
		_, _, err := svc.Bootstrap(ctx, "wrong", "Admin", "admin@example.com", "")
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("creates superadmin with generated password", func(t *testing.T) {
		admin, generated, err := svc.Bootstrap(ctx, "bootstrap-token", "Admin", "admin@example.com", "")
		require.NoError(t, err)
		require.Equal(t, domain.RoleSuperadmin, admin.Role)
		require.NotEmpty(t, generated)
		require.True(t, cryptox.VerifyPassword(generated, admin.PasswordHash))

		bootstrapped, err := svc.IsBootstrapped(ctx)
		require.NoError(t, err)
		require.True(t, bootstrapped)
	})

	t.Run("refuses once bootstrapped", func(t *testing.T) {
		_, _, err := svc.Bootstrap(ctx, "bootstrap-token", "Again", "again@example.com", "")
		require.ErrorIs(t, err, ErrBootstrapAlready)
	})
}

func TestBootstrapWithoutConfiguredToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BootstrapService{Store: st, Token: ""}

	// An empty configured token disables bootstrap entirely.
	_, _, err := svc.Bootstrap(ctx, "", "Admin", "admin@example.com", "")
	require.ErrorIs(t, err, ErrBootstrapUnauthorized)
}
