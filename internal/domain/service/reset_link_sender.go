package service

import "context"

// ResetLinkSender delivers a password-reset link to an admin. The auth
// usecase only depends on this contract; how the link actually reaches the
// person (mail, chat, operator log) is an infrastructure concern.
type ResetLinkSender interface {
	SendResetLink(ctx context.Context, email, resetURL string) error
}
