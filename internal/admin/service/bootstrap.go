package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/dialisis/admin/internal/admin/domain"
	"github.com/dialisis/admin/internal/admin/store"
	"github.com/dialisis/admin/pkg/cryptox"
	"github.com/dialisis/admin/pkg/idx"
	"github.com/dialisis/admin/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService provisions the first superadmin on an empty database,
// gated by a pre-configured token.
type BootstrapService struct {
	Store store.Store
	Token string
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap creates the initial superadmin. When no password is supplied a
// random one is generated and returned exactly once.
func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token, name, email, password string,
) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	if bootstrapped, err := s.IsBootstrapped(ctx); err != nil {
		return domain.User{}, "", err
	} else if bootstrapped {
		log.Warn("attempted bootstrap on already-bootstrapped system")
		return domain.User{}, "", ErrBootstrapAlready
	}

	if s.Token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		log.Warn("unauthorized bootstrap attempt")
		return domain.User{}, "", ErrBootstrapUnauthorized
	}

	generated := ""
	if password == "" {
		var err error
		password, err = cryptox.GeneratePassword()
		if err != nil {
			return domain.User{}, "", err
		}
		generated = password
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash bootstrap password", slog.Any("error", err))
		return domain.User{}, "", err
	}

	now := time.Now().UTC()
	admin := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleSuperadmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, admin); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrBootstrapAlready
		}
		log.Error("failed to create superadmin", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("system bootstrapped", slog.String("admin_user_id", admin.ID))
	return admin, generated, nil
}
