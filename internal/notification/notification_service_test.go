package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-event-registration/config"
	"go-event-registration/internal/model"
	"go-event-registration/internal/notification"
	"go-event-registration/internal/notification/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func sampleEvent() *model.Event {
	return &model.Event{
		ID:        1,
		Name:      "Tech Symposium",
		Category:  "Technology",
		EventDate: "2026-09-15",
		Location:  strPtr("Main Hall"),
	}
}

func sampleEntry() *model.RegistrationEntry {
	return &model.RegistrationEntry{
		ID:         42,
		EventID:    1,
		FullName:   "Jordan Smith",
		Email:      "jordan@example.com",
		College:    "Engineering",
		Department: "Computer Science",
		Created:    time.Date(2026, 8, 31, 14, 5, 0, 0, time.UTC),
	}
}

func TestNotificationService_SendConfirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - full parameter set", func(t *testing.T) {
		mailer := mocks.NewMockMailer(t)
		svc := notification.NewNotificationService(mailer, config.MailConfig{AdminEmail: "admin@example.test"})

		mailer.EXPECT().Send(ctx, notification.KeyRegistrationConfirmation, "jordan@example.com", "en", map[string]string{
			"recipient_name": "Jordan Smith",
			"event_title":    "Tech Symposium",
			"event_date":     "September 15, 2026",
			"event_location": "Main Hall",
			"event_category": "Technology",
		}).Return(nil).Once()

		err := svc.SendConfirmation(ctx, "jordan@example.com", "Jordan Smith", sampleEvent())

		require.NoError(t, err)
	})

	t.Run("Success - missing location and category fall back", func(t *testing.T) {
		mailer := mocks.NewMockMailer(t)
		svc := notification.NewNotificationService(mailer, config.MailConfig{AdminEmail: "admin@example.test"})

		event := sampleEvent()
		event.Location = nil
		event.Category = ""

		mailer.EXPECT().Send(ctx, notification.KeyRegistrationConfirmation, "jordan@example.com", "en", map[string]string{
			"recipient_name": "Jordan Smith",
			"event_title":    "Tech Symposium",
			"event_date":     "September 15, 2026",
			"event_location": "TBD",
			"event_category": "N/A",
		}).Return(nil).Once()

		err := svc.SendConfirmation(ctx, "jordan@example.com", "Jordan Smith", event)

		require.NoError(t, err)
	})

	t.Run("Failed - mailer error surfaces", func(t *testing.T) {
		mailer := mocks.NewMockMailer(t)
		svc := notification.NewNotificationService(mailer, config.MailConfig{AdminEmail: "admin@example.test"})

		mailer.EXPECT().
			Send(ctx, notification.KeyRegistrationConfirmation, "jordan@example.com", "en", mock.Anything).
			Return(errors.New("smtp error")).Once()

		err := svc.SendConfirmation(ctx, "jordan@example.com", "Jordan Smith", sampleEvent())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "smtp error")
	})
}

func TestNotificationService_SendAdminNotification(t *testing.T) {
	ctx := context.Background()

	adminParams := map[string]string{
		"registrant_name":       "Jordan Smith",
		"registrant_email":      "jordan@example.com",
		"registrant_college":    "Engineering",
		"registrant_department": "Computer Science",
		"event_title":           "Tech Symposium",
		"event_date":            "September 15, 2026",
		"registration_time":     "August 31, 2026 at 2:05 PM",
	}

	t.Run("Success - configured admin address", func(t *testing.T) {
		mailer := mocks.NewMockMailer(t)
		svc := notification.NewNotificationService(mailer, config.MailConfig{
			AdminEmail: "admin@example.test",
			SiteMail:   "contact@example.test",
		})

		mailer.EXPECT().Send(ctx, notification.KeyAdminNotification, "admin@example.test", "en", adminParams).
			Return(nil).Once()

		err := svc.SendAdminNotification(ctx, sampleEntry(), sampleEvent())

		require.NoError(t, err)
	})

	t.Run("Success - falls back to the site mail", func(t *testing.T) {
		mailer := mocks.NewMockMailer(t)
		svc := notification.NewNotificationService(mailer, config.MailConfig{
			SiteMail: "contact@example.test",
		})

		mailer.EXPECT().Send(ctx, notification.KeyAdminNotification, "contact@example.test", "en", adminParams).
			Return(nil).Once()

		err := svc.SendAdminNotification(ctx, sampleEntry(), sampleEvent())

		require.NoError(t, err)
	})

	t.Run("Success - skips the send when no address is configured", func(t *testing.T) {
		mailer := mocks.NewMockMailer(t)
		svc := notification.NewNotificationService(mailer, config.MailConfig{})

		err := svc.SendAdminNotification(ctx, sampleEntry(), sampleEvent())

		require.NoError(t, err)
		mailer.AssertNotCalled(t, "Send")
	})

	t.Run("Failed - mailer error surfaces", func(t *testing.T) {
		mailer := mocks.NewMockMailer(t)
		svc := notification.NewNotificationService(mailer, config.MailConfig{AdminEmail: "admin@example.test"})

		mailer.EXPECT().Send(ctx, notification.KeyAdminNotification, "admin@example.test", "en", adminParams).
			Return(errors.New("smtp error")).Once()

		err := svc.SendAdminNotification(ctx, sampleEntry(), sampleEvent())

		require.Error(t, err)
	})
}
