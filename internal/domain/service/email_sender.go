package service

import "context"

// EmailPurpose tells the mail pipeline which template to render.
type EmailPurpose string

const (
	EmailPurposeVerifyEmail   EmailPurpose = "verify_email"
	EmailPurposeResetPassword EmailPurpose = "reset_password"
)

// ActionEmail asks the mail pipeline to send a single call-to-action link.
type ActionEmail struct {
	RequestID string       `json:"request_id,omitempty"`
	To        string       `json:"to"`
	Name      string       `json:"name,omitempty"`
	Purpose   EmailPurpose `json:"purpose"`
	ActionURL string       `json:"action_url"`
}

// EmailSender hands action emails to an outbound delivery system.
type EmailSender interface {
	// Send dispatches the email; delivery itself happens asynchronously downstream.
	Send(ctx context.Context, email *ActionEmail) error

	// Close releases any resources held by the sender
	Close() error
}
