// Package notify holds outbound delivery implementations.
package notify

import (
	"context"
	"log/slog"

	"vitrine/internal/domain/service"
)

// resetLinkLogger writes password-reset links to the structured log. The
// single-admin deployment has no mail pipeline; the operator lifts the link
// from the logs. Swap this for an SMTP implementation when one exists.
type resetLinkLogger struct {
	logger *slog.Logger
}

// NewResetLinkLogger builds the log-backed ResetLinkSender.
func NewResetLinkLogger(logger *slog.Logger) service.ResetLinkSender {
	return &resetLinkLogger{logger: logger}
}

func (s *resetLinkLogger) SendResetLink(ctx context.Context, email, resetURL string) error {
	s.logger.InfoContext(ctx, "password reset link issued",
		slog.String("email", email),
		slog.String("reset_url", resetURL),
	)

	return nil
}
