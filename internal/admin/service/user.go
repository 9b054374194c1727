package service

import (
	"context"

	"github.com/dialisis/admin/internal/admin/domain"
	"github.com/dialisis/admin/internal/admin/store"
)

type UserService struct {
	Store store.Store
}

// GetUser returns a user by id.
func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// GetUserCenterIDs returns the center ids a user holds grants for.
func (s *UserService) GetUserCenterIDs(ctx context.Context, userID string) ([]string, error) {
	return s.Store.CenterAccess().ListUserCenterIDs(ctx, userID)
}
