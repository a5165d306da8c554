package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client *postmark.Client
}

// NewPostmarkSender creates a Postmark-backed sender. The server token is
// required; the account token is only needed for account-level API calls and
// may be empty.
func NewPostmarkSender(serverToken, accountToken string) (Sender, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("%w: server token is required", ErrInvalidConfig)
	}
	return &postmarkSender{
		client: postmark.NewClient(serverToken, accountToken),
	}, nil
}

func (s *postmarkSender) Send(ctx context.Context, msg Message) (*Receipt, error) {
	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     msg.From,
		To:       msg.To,
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		HTMLBody: msg.HTML,
	})
	if err != nil {
		return nil, errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return nil, errors.Join(
			ErrSendFailed,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return &Receipt{
		MessageID:   resp.MessageID,
		SubmittedAt: resp.SubmittedAt,
		To:          resp.To,
	}, nil
}
