// Package mail wraps the transactional email provider behind a small Sender
// interface so the contact pipeline can be tested without network access.
package mail

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidConfig = errors.New("mail: invalid config")
	ErrSendFailed    = errors.New("mail: failed to send email")
)

// Message is a fully-composed outbound email.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Receipt is the provider's acknowledgment of an accepted message. It is
// treated as opaque by callers and echoed back to the submitter as-is.
type Receipt struct {
	MessageID   string    `json:"message_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	To          string    `json:"to"`
}

// Sender delivers a message through the configured provider.
type Sender interface {
	Send(ctx context.Context, msg Message) (*Receipt, error)
}
