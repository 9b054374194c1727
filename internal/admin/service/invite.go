package service

import (
	"context"
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
	ErrInvitationInvalid  = errors.New("invalid invitation request")
	ErrNotSuperadmin      = errors.New("superadmin role required")
	ErrUnknownCenter      = errors.New("invitation references unknown center")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationExpired  = errors.New("invitation has expired")
	ErrInvitationConsumed = errors.New("invitation has already been used")
)

// DefaultInvitationDays is the validity window used when the caller does not
// pick one.
const DefaultInvitationDays = 7

type InviteService struct {
	Store store.Store
}

// CreateInvitation mints a new single-use invitation granting access to the
// given centers once consumed. Only superadmins may mint. Returns the stored
// invitation together with the opaque token; the token is shown exactly once
// and only its fingerprint is persisted.
func (s *InviteService) CreateInvitation(
	ctx context.Context,
	actor domain.User,
	centerIDs []string,
	expiresInDays int,
) (domain.Invitation, string, error) {
	log := slogx.FromContext(ctx)

	if !actor.IsSuperadmin() {
		log.Warn("non-superadmin attempted to create invitation",
			slog.String("user_id", actor.ID),
			slog.String("role", actor.Role),
		)
		return domain.Invitation{}, "", ErrNotSuperadmin
	}

	centerIDs = dedupe(centerIDs)
	if len(centerIDs) == 0 || expiresInDays <= 0 {
		log.Warn("invitation request missing centers or validity window")
		return domain.Invitation{}, "", ErrInvitationInvalid
	}

	// Every referenced center must exist before a token is handed out.
	count, err := s.Store.Centers().CountByIDs(ctx, centerIDs)
	if err != nil {
		log.Error("failed to check invitation centers", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}
	if count != len(centerIDs) {
		log.Warn("invitation references unknown centers",
			slog.Int("requested", len(centerIDs)),
			slog.Int("found", count),
		)
		return domain.Invitation{}, "", ErrUnknownCenter
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	now := time.Now().UTC()
	inv := domain.Invitation{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		CenterIDs: centerIDs,
		CreatedBy: actor.ID,
		ExpiresAt: now.AddDate(0, 0, expiresInDays),
		Status:    domain.InvitationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Invitations().CreateInvitation(ctx, inv)
	})
	if err != nil {
		log.Error("failed to store invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, "", err
	}

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("created_by", actor.ID),
		slog.Int("centers", len(centerIDs)),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	return inv, token, nil
}

// LookupInvitation validates a token without consuming it, for showing the
// granted centers on a sign-up page. Read-only and idempotent.
func (s *InviteService) LookupInvitation(
	ctx context.Context,
	token string,
) (domain.Invitation, []domain.CenterSummary, error) {
	log := slogx.FromContext(ctx)

	if token == "" {
		return domain.Invitation{}, nil, ErrInvitationInvalid
	}

	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("lookup of unknown invitation token")
			return domain.Invitation{}, nil, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Invitation{}, nil, err
	}

	if err := classifyInvitation(inv, time.Now().UTC()); err != nil {
		log.Warn("lookup of dead invitation",
			slog.String("invitation_id", inv.ID),
			slog.String("status", inv.Status),
		)
		return domain.Invitation{}, nil, err
	}

	centers, err := s.Store.Centers().ListCentersByIDs(ctx, inv.CenterIDs)
	if err != nil {
		log.Error("failed to resolve invitation centers", slog.Any("error", err))
		return domain.Invitation{}, nil, err
	}

	summaries := make([]domain.CenterSummary, 0, len(centers))
	for _, c := range centers {
		summaries = append(summaries, c.Summary())
	}
	return inv, summaries, nil
}

// ConsumeInvitation redeems a token for a user: the pending -> consumed
// transition and the access grant inserts commit in one transaction, and the
// transition's conditional UPDATE guarantees at most one concurrent caller
// wins. Losers get the same classified errors as LookupInvitation.
func (s *InviteService) ConsumeInvitation(
	ctx context.Context,
	token string,
	userID string,
) ([]domain.CenterAccess, error) {
	log := slogx.FromContext(ctx)

	if token == "" || userID == "" {
		return nil, ErrInvitationInvalid
	}

	fingerprint := cryptox.FingerprintToken(token)
	now := time.Now().UTC()

	var grants []domain.CenterAccess
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().ConsumeInvitation(ctx, fingerprint, userID, now); err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}
			// Zero rows matched: re-read to tell the caller why.
			inv, readErr := tx.Invitations().GetInvitationByTokenHash(ctx, fingerprint)
			if readErr != nil {
				if errors.Is(readErr, store.ErrNotFound) {
					return ErrInvitationNotFound
				}
				return readErr
			}
			if classified := classifyInvitation(inv, now); classified != nil {
				return classified
			}
			return err
		}

		inv, err := tx.Invitations().GetInvitationByTokenHash(ctx, fingerprint)
		if err != nil {
			return err
		}

		for _, centerID := range inv.CenterIDs {
			if err := tx.CenterAccess().GrantAccess(ctx, userID, centerID); err != nil {
				return err
			}
			grants = append(grants, domain.CenterAccess{
				UserID:    userID,
				CenterID:  centerID,
				CreatedAt: now,
			})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvitationNotFound) ||
			errors.Is(err, ErrInvitationExpired) ||
			errors.Is(err, ErrInvitationConsumed) {
			log.Warn("invitation consumption rejected", slog.Any("reason", err))
		} else {
			log.Error("failed to consume invitation", slog.Any("error", err))
		}
		return nil, err
	}

	log.Info("invitation consumed",
		slog.String("user_id", userID),
		slog.Int("grants", len(grants)),
	)
	return grants, nil
}

// classifyInvitation maps a dead invitation row to its sentinel. Expiry wins
// over consumption: a consumed invitation past its window reports expired.
func classifyInvitation(inv domain.Invitation, now time.Time) error {
	if inv.Expired(now) {
		return ErrInvitationExpired
	}
	if inv.Status == domain.InvitationConsumed {
		return ErrInvitationConsumed
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
