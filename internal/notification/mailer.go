package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"sort"
	"strings"

	"go-event-registration/config"
	"go-event-registration/pkg/logger"

	"go.uber.org/zap"
)

// Template keys understood by the mailer.
const (
	KeyRegistrationConfirmation = "registration_confirmation"
	KeyAdminNotification        = "admin_notification"
)

// Mailer is the mail-dispatch boundary: a template key, a recipient, a
// langcode and a parameter map. The concrete transport is an external
// collaborator; the registration flow depends only on this contract.
type Mailer interface {
	Send(ctx context.Context, key string, to string, langcode string, params map[string]string) error
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort),
		from: cfg.From,
		auth: auth,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, key string, to string, langcode string, params map[string]string) error {
	subject, body, err := renderTemplate(key, params)
	if err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Content-Language: %s\r\n", langcode)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg.String()))
}

// LogMailer records sends instead of delivering them; used when no SMTP host
// is configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(ctx context.Context, key string, to string, langcode string, params map[string]string) error {
	fields := make([]zap.Field, 0, len(params)+3)
	fields = append(fields, zap.String("key", key), zap.String("to", to), zap.String("langcode", langcode))
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, zap.String(k, params[k]))
	}
	logger.WithComponent("mailer").Info("mail send (log transport)", fields...)
	return nil
}

func renderTemplate(key string, params map[string]string) (subject, body string, err error) {
	switch key {
	case KeyRegistrationConfirmation:
		subject = fmt.Sprintf("Registration confirmed: %s", params["event_title"])
		body = fmt.Sprintf(
			"Dear %s,\n\nYour registration for %s has been received.\n\nDate: %s\nLocation: %s\nCategory: %s\n\nWe look forward to seeing you there.\n",
			params["recipient_name"],
			params["event_title"],
			params["event_date"],
			params["event_location"],
			params["event_category"],
		)
	case KeyAdminNotification:
		subject = fmt.Sprintf("New registration: %s", params["event_title"])
		body = fmt.Sprintf(
			"A new registration was received for %s (%s).\n\nName: %s\nEmail: %s\nCollege: %s\nDepartment: %s\nRegistered: %s\n",
			params["event_title"],
			params["event_date"],
			params["registrant_name"],
			params["registrant_email"],
			params["registrant_college"],
			params["registrant_department"],
			params["registration_time"],
		)
	default:
		return "", "", fmt.Errorf("unknown mail template key: %s", key)
	}
	return subject, body, nil
}
