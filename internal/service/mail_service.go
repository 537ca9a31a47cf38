package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ContactMessage is a submission handed to a Mailer for dispatch
type ContactMessage struct {
	Reference string // correlation ID, shows up in logs and the email subject
	Name      string
	Email     string
	Subject   string
	Message   string
}

// Mailer dispatches a contact submission. Implementations must not retain msg.
type Mailer interface {
	Send(ctx context.Context, msg *ContactMessage) error
}

// ResendMailer dispatches submissions through the Resend API to a single
// fixed mailbox. The reply-to is the submitter's address so replies go
// straight back to them.
type ResendMailer struct {
	client  *resend.Client
	mailbox string
}

// NewResendMailer creates a mailer for the configured mailbox
func NewResendMailer(apiKey, mailbox string) *ResendMailer {
	return &ResendMailer{
		client:  resend.NewClient(apiKey),
		mailbox: mailbox,
	}
}

// Send implements Mailer
func (m *ResendMailer) Send(ctx context.Context, msg *ContactMessage) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Portfolio Contact <%s>", m.mailbox),
		To:      []string{m.mailbox},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("[Contact] %s", msg.Subject),
		Text:    FormatBody(msg),
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}

// FormatBody renders the plain-text email body embedding the submission
func FormatBody(msg *ContactMessage) string {
	return fmt.Sprintf(
		"New contact form submission\n\n"+
			"Reference: %s\n"+
			"Name: %s\n"+
			"Email: %s\n\n"+
			"%s\n",
		msg.Reference,
		msg.Name,
		msg.Email,
		msg.Message,
	)
}
