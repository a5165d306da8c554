package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"go-portfolio-site/internal/domain"
	"go-portfolio-site/internal/validation"
	"go-portfolio-site/pkg/mail"
)

// ValidationError is returned when a field rule fails. The handler maps it
// to a 400 with the exact message; everything else becomes a 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type contactUsecase struct {
	sender    mail.Sender
	fromEmail string
	toEmail   string
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender mail.Sender, fromEmail, toEmail string) domain.ContactUsecase {
	return &contactUsecase{
		sender:    sender,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// SendContactMessage validates the contact request, sanitizes it and relays
// it to the mail provider. Validation is authoritative here regardless of
// what the browser form already checked.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.SendResult, error) {
	if msg := validation.FirstFailure(req.Name, req.Email, req.Message); msg != "" {
		return nil, &ValidationError{Message: msg}
	}

	record := domain.SanitizedContact{
		Name:    validation.SanitizeName(req.Name),
		Email:   validation.SanitizeEmail(req.Email),
		Message: validation.SanitizeMessage(req.Message),
	}

	body, err := composeContactEmail(record)
	if err != nil {
		return nil, fmt.Errorf("failed to compose contact email: %w", err)
	}

	receipt, err := uc.sender.Send(ctx, mail.Message{
		From:    uc.fromEmail,
		To:      uc.toEmail,
		ReplyTo: record.Email, // lets the operator reply directly to the sender
		Subject: fmt.Sprintf("New Portfolio Contact from %s", record.Name),
		HTML:    body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send contact email: %w", err)
	}

	return &domain.SendResult{Receipt: receipt}, nil
}

// contactEmailTemplate is the HTML template for contact form emails
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Message</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.MessageHTML}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Sent from the portfolio contact form.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

// composeContactEmail renders the sanitized record into the outbound HTML
// body. The message is escaped line by line and rejoined with <br> so
// newlines survive as line breaks.
func composeContactEmail(record domain.SanitizedContact) (string, error) {
	lines := strings.Split(record.Message, "\n")
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = template.HTMLEscapeString(line)
	}

	var body bytes.Buffer
	err := contactTmpl.Execute(&body, struct {
		Name        string
		Email       string
		MessageHTML template.HTML
	}{
		Name:        record.Name,
		Email:       record.Email,
		MessageHTML: template.HTML(strings.Join(escaped, "<br>")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}
