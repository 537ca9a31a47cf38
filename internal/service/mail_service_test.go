package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/anamtn/portfolio-api/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBody(t *testing.T) {
	msg := &ContactMessage{
		Reference: "ref-123",
		Name:      "Ana",
		Email:     "ana@example.com",
		Subject:   "Hello there",
		Message:   "This is a test message.",
	}

	body := FormatBody(msg)

	assert.Contains(t, body, "Name: Ana")
	assert.Contains(t, body, "Email: ana@example.com")
	assert.Contains(t, body, "This is a test message.")
	assert.Contains(t, body, "Reference: ref-123")
}

func TestConsoleMailerWritesSubmissionToLog(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "mailer.log")
	logger, err := logging.NewLogger(&logging.LogConfig{
		File:       logFile,
		MaxSize:    10,
		MaxBackups: 1,
		MaxAge:     1,
	})
	require.NoError(t, err)
	defer logger.Close()

	mailer := NewConsoleMailer(logger)
	err = mailer.Send(context.Background(), &ContactMessage{
		Reference: "ref-456",
		Name:      "Ana",
		Email:     "ana@example.com",
		Subject:   "Hello there",
		Message:   "This is a test message.",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	assert.Contains(t, string(content), "ana@example.com")
	assert.Contains(t, string(content), "Hello there")
	assert.Contains(t, string(content), "This is a test message.")
}
