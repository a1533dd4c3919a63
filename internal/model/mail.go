package model

import "context"

// Mailer delivers out-of-band messages to users.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, resetLink string) error
}
