package service

import (
	"context"

	"github.com/anamtn/portfolio-api/internal/logging"
)

// ConsoleMailer is the degraded-but-functional dispatch mode used when no
// email provider is configured: submissions land in the operational log
// instead of a mailbox.
type ConsoleMailer struct {
	logger *logging.Logger
}

// NewConsoleMailer creates a log-only mailer
func NewConsoleMailer(logger *logging.Logger) *ConsoleMailer {
	return &ConsoleMailer{logger: logger}
}

// Send implements Mailer. It never fails.
func (m *ConsoleMailer) Send(_ context.Context, msg *ContactMessage) error {
	m.logger.Info("Contact submission (email provider not configured): ref=%s name=%q email=%q subject=%q message=%q",
		msg.Reference, msg.Name, msg.Email, msg.Subject, msg.Message)
	return nil
}
