package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-portfolio-site/internal/domain"
	"go-portfolio-site/internal/usecase"
	"go-portfolio-site/internal/validation"
	"go-portfolio-site/pkg/mail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mail.Message) (*mail.Receipt, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mail.Receipt), args.Error(1)
}

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Al",
		Email:   "al@example.com",
		Message: "Hello there, this is long enough.",
	}
}

func TestSendContactMessageComposesAndSends(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewContactUsecase(sender, "noreply@example.com", "operator@example.com")

	var sent mail.Message
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
		sent = msg
		return true
	})).Return(&mail.Receipt{MessageID: "msg-1"}, nil).Once()

	result, err := uc.SendContactMessage(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, result)

	sender.AssertExpectations(t)
	assert.Equal(t, "noreply@example.com", sent.From)
	assert.Equal(t, "operator@example.com", sent.To)
	assert.Equal(t, "al@example.com", sent.ReplyTo)
	assert.Equal(t, "New Portfolio Contact from Al", sent.Subject)
	assert.Contains(t, sent.HTML, "Hello there, this is long enough.")
}

func TestSendContactMessageSanitizesBeforeComposing(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewContactUsecase(sender, "noreply@example.com", "operator@example.com")

	var sent mail.Message
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
		sent = msg
		return true
	})).Return(&mail.Receipt{}, nil).Once()

	req := &domain.ContactRequest{
		Name:    "  <b>Al</b>  ",
		Email:   "  AL@Example.COM ",
		Message: "first line\nsecond <script>line</script>",
	}
	_, err := uc.SendContactMessage(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "al@example.com", sent.ReplyTo)
	assert.Equal(t, "New Portfolio Contact from bAl/b", sent.Subject)
	// Angle brackets never reach the outbound body, newlines become <br>
	assert.NotContains(t, sent.HTML, "<script>")
	assert.Contains(t, sent.HTML, "first line<br>second scriptline/script")
}

func TestSendContactMessageValidatesFirst(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewContactUsecase(sender, "noreply@example.com", "operator@example.com")

	cases := []struct {
		name string
		req  *domain.ContactRequest
		want string
	}{
		{"missing fields", &domain.ContactRequest{Name: "Al"}, validation.MsgMissingFields},
		{"short name", &domain.ContactRequest{Name: "A", Email: "al@example.com", Message: "Hello there, this is long enough."}, validation.MsgNameLength},
		{"bad email", &domain.ContactRequest{Name: "Al", Email: "not-an-email", Message: "Hello there, this is long enough."}, validation.MsgEmailFormat},
		{"short message", &domain.ContactRequest{Name: "Al", Email: "al@example.com", Message: "too short"}, validation.MsgMessageLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.SendContactMessage(context.Background(), tc.req)
			var vErr *usecase.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.want, vErr.Message)
		})
	}

	// The provider is never touched on validation failure
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendContactMessageProviderError(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewContactUsecase(sender, "noreply@example.com", "operator@example.com")

	providerErr := errors.Join(mail.ErrSendFailed, errors.New("postmark error: 300 - invalid token"))
	sender.On("Send", mock.Anything, mock.Anything).Return(nil, providerErr).Once()

	result, err := uc.SendContactMessage(context.Background(), validRequest())
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, mail.ErrSendFailed)

	var vErr *usecase.ValidationError
	assert.False(t, errors.As(err, &vErr))
}
