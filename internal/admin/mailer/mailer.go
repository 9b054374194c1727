// Package mailer is the outbound email boundary. The service layer hands it
// fully formed URLs and never learns how delivery happens, so swapping in a
// real provider is a wiring change only.
package mailer

import (
	"context"
	"log/slog"
	"time"
)

type Mailer interface {
	// SendPasswordReset delivers a reset link to the given address. The link
	// stops working at expiresAt.
	SendPasswordReset(ctx context.Context, to, resetURL string, expiresAt time.Time) error

	// SendInvitation delivers an invitation link to the given address.
	SendInvitation(ctx context.Context, to, inviteURL string, expiresAt time.Time) error
}

// LogMailer writes outbound mail to the log instead of sending it. Used in
// development and tests.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, to, resetURL string, expiresAt time.Time) error {
	m.Logger.Info("password reset email",
		slog.String("to", to),
		slog.String("url", resetURL),
		slog.Time("expires_at", expiresAt),
	)
	return nil
}

func (m *LogMailer) SendInvitation(ctx context.Context, to, inviteURL string, expiresAt time.Time) error {
	m.Logger.Info("invitation email",
		slog.String("to", to),
		slog.String("url", inviteURL),
		slog.Time("expires_at", expiresAt),
	)
	return nil
}
