package interfaces

import "context"

// IEmailSender abstracts the transactional e-mail provider used by the
// password recovery flow.
type IEmailSender interface {
	SendPasswordResetCode(ctx context.Context, email, nome, code string) error
}
