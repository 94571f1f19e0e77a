package email

import "context"

// EmailService sends account lifecycle emails. Registration treats send
// failures as non-fatal: the account is created either way.
type EmailService interface {
	SendWelcomeEmail(ctx context.Context, to, name string) error
}

// EmailConfig holds email service configuration.
type EmailConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}
