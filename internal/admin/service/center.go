package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dialisis/admin/internal/admin/domain"
	"github.com/dialisis/admin/internal/admin/store"
	"github.com/dialisis/admin/pkg/idx"
	"github.com/dialisis/admin/pkg/slogx"
)

var (
	ErrAccessDenied   = errors.New("no access to this center")
	ErrCenterNotFound = errors.New("center not found")
	ErrCenterInvalid  = errors.New("invalid center data")
)

type CenterService struct {
	Store store.Store
}

// ListCentersForUser returns every center a user may see: all of them for
// superadmins, granted ones for PIC users.
func (s *CenterService) ListCentersForUser(ctx context.Context, actor domain.User) ([]domain.Center, error) {
	if actor.IsSuperadmin() {
		return s.Store.Centers().ListCenters(ctx)
	}

	ids, err := s.Store.CenterAccess().ListUserCenterIDs(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.Store.Centers().ListCentersByIDs(ctx, ids)
}

// GetCenter fetches one center, enforcing the grant check for PIC users.
// A center the user cannot see reports ErrAccessDenied, not ErrCenterNotFound,
// only when the center actually exists.
func (s *CenterService) GetCenter(ctx context.Context, actor domain.User, centerID string) (domain.Center, error) {
	center, err := s.Store.Centers().GetCenterByID(ctx, centerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Center{}, ErrCenterNotFound
		}
		return domain.Center{}, err
	}

	if !actor.IsSuperadmin() {
		ok, err := s.Store.CenterAccess().HasAccess(ctx, actor.ID, centerID)
		if err != nil {
			return domain.Center{}, err
		}
		if !ok {
			return domain.Center{}, ErrAccessDenied
		}
	}
	return center, nil
}

// UpdateCenter applies a partial update under the same access rule as
// GetCenter. The featured flag is superadmin-only: for PIC callers it is
// silently dropped rather than rejected, so shared edit forms keep working.
func (s *CenterService) UpdateCenter(
	ctx context.Context,
	actor domain.User,
	centerID string,
	upd domain.CenterUpdate,
) (domain.Center, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.GetCenter(ctx, actor, centerID); err != nil {
		return domain.Center{}, err
	}

	if !actor.IsSuperadmin() && upd.Featured != nil {
		log.Debug("dropping featured flag from non-superadmin update",
			slog.String("user_id", actor.ID),
			slog.String("center_id", centerID),
		)
		upd.Featured = nil
	}

	if err := s.Store.Centers().UpdateCenter(ctx, centerID, upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Center{}, ErrCenterNotFound
		}
		return domain.Center{}, err
	}

	log.Info("center updated",
		slog.String("center_id", centerID),
		slog.String("user_id", actor.ID),
	)
	return s.Store.Centers().GetCenterByID(ctx, centerID)
}

// CreateCenter inserts a new center. Superadmin only.
func (s *CenterService) CreateCenter(ctx context.Context, actor domain.User, c domain.Center) (domain.Center, error) {
	log := slogx.FromContext(ctx)

	if !actor.IsSuperadmin() {
		return domain.Center{}, ErrNotSuperadmin
	}
	if c.Name == "" || c.StateID == "" {
		return domain.Center{}, ErrCenterInvalid
	}

	now := time.Now().UTC()
	c.ID = idx.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.Store.Centers().CreateCenter(ctx, c); err != nil {
		log.Error("failed to create center", slog.Any("error", err))
		return domain.Center{}, err
	}

	log.Info("center created",
		slog.String("center_id", c.ID),
		slog.String("user_id", actor.ID),
	)
	return s.Store.Centers().GetCenterByID(ctx, c.ID)
}

// DeleteCenter removes a center and, via the schema, its access grants.
// Superadmin only.
func (s *CenterService) DeleteCenter(ctx context.Context, actor domain.User, centerID string) error {
	log := slogx.FromContext(ctx)

	if !actor.IsSuperadmin() {
		return ErrNotSuperadmin
	}

	err := s.Store.Centers().DeleteCenter(ctx, centerID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrCenterNotFound
	}
	if err != nil {
		return err
	}

	log.Info("center deleted",
		slog.String("center_id", centerID),
		slog.String("user_id", actor.ID),
	)
	return nil
}

// ListStates returns the static state lookup table.
func (s *CenterService) ListStates(ctx context.Context) ([]domain.State, error) {
	return s.Store.States().ListStates(ctx)
}
