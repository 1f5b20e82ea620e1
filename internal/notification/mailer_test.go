package notification_test

import (
	"context"
	"testing"

	"go-event-registration/config"
	"go-event-registration/internal/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMailer_Send(t *testing.T) {
	mailer := notification.NewLogMailer()

	err := mailer.Send(context.Background(), notification.KeyRegistrationConfirmation, "jordan@example.com", "en", map[string]string{
		"recipient_name": "Jordan Smith",
		"event_title":    "Tech Symposium",
	})

	require.NoError(t, err)
}

func TestSMTPMailer_UnknownTemplateKey(t *testing.T) {
	// an unknown key fails during rendering, before any connection is made
	mailer := notification.NewSMTPMailer(config.MailConfig{
		SMTPHost: "smtp.example.test",
		SMTPPort: "587",
		From:     "noreply@example.test",
	})

	err := mailer.Send(context.Background(), "password_reset", "jordan@example.com", "en", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mail template key")
}
