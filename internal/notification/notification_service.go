package notification

import (
	"context"

	"go-event-registration/config"
	"go-event-registration/internal/model"
	"go-event-registration/pkg/logger"

	"go.uber.org/zap"
)

const (
	mailLangcode = "en"

	// registrationTimeFormat mirrors the long "at" format used in the admin
	// notification, e.g. "August 31, 2026 at 2:05 PM".
	registrationTimeFormat = "January 2, 2006 at 3:04 PM"
)

// NotificationService formats and dispatches the two registration mails. Both
// operations are fire-and-forget from the registration flow's perspective:
// outcomes are logged, errors surface only to the worker for accounting.
type NotificationService interface {
	SendConfirmation(ctx context.Context, recipientEmail, recipientName string, event *model.Event) error
	// SendAdminNotification resolves its destination from configuration
	// (admin address, falling back to the site contact address) and skips
	// the send with a warning when neither is set.
	SendAdminNotification(ctx context.Context, entry *model.RegistrationEntry, event *model.Event) error
}

type NotificationServiceImpl struct {
	mailer Mailer
	cfg    config.MailConfig
}

func NewNotificationService(mailer Mailer, cfg config.MailConfig) NotificationService {
	return &NotificationServiceImpl{mailer: mailer, cfg: cfg}
}

func (s *NotificationServiceImpl) SendConfirmation(ctx context.Context, recipientEmail, recipientName string, event *model.Event) error {
	log := logger.WithComponent("notification").With(
		zap.String("event_name", event.Name),
		zap.String("recipient", recipientEmail),
	)

	params := map[string]string{
		"recipient_name": recipientName,
		"event_title":    event.Name,
		"event_date":     event.FormattedDate(),
		"event_location": event.LocationOrDefault(),
		"event_category": event.CategoryOrDefault(),
	}

	if err := s.mailer.Send(ctx, KeyRegistrationConfirmation, recipientEmail, mailLangcode, params); err != nil {
		log.Error("failed to send registration confirmation email", zap.Error(err))
		return err
	}

	log.Info("registration confirmation email sent")
	return nil
}

func (s *NotificationServiceImpl) SendAdminNotification(ctx context.Context, entry *model.RegistrationEntry, event *model.Event) error {
	log := logger.WithComponent("notification").With(
		zap.String("event_name", event.Name),
		zap.String("registrant", entry.FullName),
	)

	adminEmail := s.cfg.AdminEmail
	if adminEmail == "" {
		adminEmail = s.cfg.SiteMail
	}
	if adminEmail == "" {
		// intentionally skippable: not configured means no admin mail
		log.Warn("no admin email configured for registration notifications")
		return nil
	}

	params := map[string]string{
		"registrant_name":       entry.FullName,
		"registrant_email":      entry.Email,
		"registrant_college":    entry.College,
		"registrant_department": entry.Department,
		"event_title":           event.Name,
		"event_date":            event.FormattedDate(),
		// the server-assigned submission time, distinct from the event date
		"registration_time": entry.Created.Format(registrationTimeFormat),
	}

	if err := s.mailer.Send(ctx, KeyAdminNotification, adminEmail, mailLangcode, params); err != nil {
		log.Error("failed to send admin notification email", zap.Error(err))
		return err
	}

	log.Info("admin notification email sent")
	return nil
}
