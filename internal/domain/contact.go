package domain

import "context"

// ContactRequest represents a contact form submission as received on the
// wire. All three fields must be present as strings; anything else fails
// binding before the rules run.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SanitizedContact is the server-side-only record derived from a validated
// request. It is what the outbound email is composed from and is never
// returned to the caller.
type SanitizedContact struct {
	Name    string
	Email   string
	Message string
}

// SendResult carries the provider's opaque acknowledgment back to the
// handler on success.
type SendResult struct {
	Receipt any
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates, sanitizes and relays a contact form
	// message to the mail provider.
	SendContactMessage(ctx context.Context, req *ContactRequest) (*SendResult, error)
}
