package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"time"

	"go-event-registration/internal/model"
	"go-event-registration/internal/queue"
	"go-event-registration/internal/repository"
	apperrors "go-event-registration/pkg/app_errors"
	"go-event-registration/pkg/logger"
	"go-event-registration/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// User-facing messages. Storage errors are never leaked; they collapse into
// MsgFormError (validation) or the handler's generic message (submission).
const (
	MsgEventNotAvailable  = "The selected event is not available."
	MsgRegistrationClosed = "Registration for the selected event is not currently open."
	MsgFullNameRequired   = "Full name is required."
	MsgFullNameTooShort   = "Full name must be at least 2 characters."
	MsgEmailInvalid       = "A valid email address is required."
	MsgDuplicateEmail     = "This email address is already registered for the selected event."
	MsgCollegeRequired    = "College is required."
	MsgDepartmentRequired = "Department is required."
	MsgFormError          = "Unable to process the registration. Please try again later."
)

// RegistrationService runs the registration workflow: field validation,
// availability- and capacity-checked persistence, and the read/export path.
type RegistrationService interface {
	// Validate evaluates every field rule independently and returns the full
	// set of errors; an empty result means the submission is valid.
	Validate(ctx context.Context, req model.RegistrationRequest) model.FieldErrors
	// Submit re-checks availability at write time and persists the entry.
	// Notification dispatch happens after the commit and never affects the
	// returned result.
	Submit(ctx context.Context, req model.RegistrationRequest) (*model.RegistrationEntry, error)
	List(ctx context.Context) ([]*model.RegistrationRecord, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type RegistrationServiceImpl struct {
	events   repository.EventRepository
	entries  repository.RegistrationRepository
	queue    queue.NotificationQueue
	validate *validator.Validate
	clock    func() time.Time
}

func NewRegistrationService(
	events repository.EventRepository,
	entries repository.RegistrationRepository,
	notificationQueue queue.NotificationQueue,
	validate *validator.Validate,
	clock func() time.Time,
) RegistrationService {
	return &RegistrationServiceImpl{
		events:   events,
		entries:  entries,
		queue:    notificationQueue,
		validate: validate,
		clock:    clock,
	}
}

func (s *RegistrationServiceImpl) Validate(ctx context.Context, req model.RegistrationRequest) model.FieldErrors {
	log := logger.WithComponent("service").With(zap.String("operation", "Validate"))
	req = req.Normalized()
	now := s.clock()
	errs := model.FieldErrors{}

	// Every rule runs regardless of earlier failures so the form can report
	// all problems at once.
	var event *model.Event
	if req.EventID <= 0 {
		errs[model.FieldEvent] = MsgEventNotAvailable
	} else {
		found, err := s.events.FindByID(ctx, req.EventID)
		switch {
		case errors.Is(err, apperrors.ErrEventNotFound):
			errs[model.FieldEvent] = MsgEventNotAvailable
		case err != nil:
			log.Error("event lookup failed during validation", zap.Int("event_id", req.EventID), zap.Error(err))
			errs[model.FieldForm] = MsgFormError
		case !found.Status:
			errs[model.FieldEvent] = MsgEventNotAvailable
		case !found.IsOpenAt(now):
			errs[model.FieldEvent] = MsgRegistrationClosed
		default:
			event = found
		}
	}

	if req.FullName == "" {
		errs[model.FieldFullName] = MsgFullNameRequired
	} else if len([]rune(req.FullName)) < 2 {
		errs[model.FieldFullName] = MsgFullNameTooShort
	}

	emailValid := req.Email != "" && s.validate.Var(req.Email, "email") == nil
	if !emailValid {
		errs[model.FieldEmail] = MsgEmailInvalid
	}

	// The duplicate check only makes sense once both sides of the pair are
	// individually valid.
	if event != nil && emailValid {
		exists, err := s.entries.ExistsByEventAndEmail(ctx, event.ID, req.Email)
		if err != nil {
			log.Error("duplicate lookup failed during validation", zap.Int("event_id", event.ID), zap.Error(err))
			errs[model.FieldForm] = MsgFormError
		} else if exists {
			errs[model.FieldEmail] = MsgDuplicateEmail
		}
	}

	if req.College == "" {
		errs[model.FieldCollege] = MsgCollegeRequired
	}
	if req.Department == "" {
		errs[model.FieldDepartment] = MsgDepartmentRequired
	}

	return errs
}

func (s *RegistrationServiceImpl) Submit(ctx context.Context, req model.RegistrationRequest) (*model.RegistrationEntry, error) {
	log := logger.WithComponent("service").With(zap.String("operation", "Submit"))
	req = req.Normalized()
	now := s.clock()

	// Availability is re-checked here regardless of any earlier Validate
	// call: the window may have closed in between, or validation may have
	// been bypassed entirely.
	event, err := s.events.FindOpenByID(ctx, req.EventID, now)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotAvailable) {
			metrics.RegistrationsRejected.WithLabelValues("unavailable").Inc()
			return nil, apperrors.ErrEventNotAvailable
		}
		log.Error("event lookup failed during submission", zap.Int("event_id", req.EventID), zap.Error(err))
		metrics.RegistrationsRejected.WithLabelValues("error").Inc()
		return nil, err
	}

	// Best-effort early capacity check for a precise error message. The
	// decisive check runs inside the repository transaction.
	if limit, ok := event.CapacityLimit(); ok {
		count, err := s.entries.CountByEvent(ctx, event.ID)
		if err != nil {
			log.Error("capacity count failed during submission", zap.Int("event_id", event.ID), zap.Error(err))
			metrics.RegistrationsRejected.WithLabelValues("error").Inc()
			return nil, err
		}
		if count >= limit {
			metrics.RegistrationsRejected.WithLabelValues("full").Inc()
			return nil, apperrors.ErrEventFull
		}
	}

	entry := &model.RegistrationEntry{
		EventID:    event.ID,
		FullName:   req.FullName,
		Email:      req.Email,
		College:    req.College,
		Department: req.Department,
	}

	created, err := s.entries.Create(ctx, entry, now)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateRegistration):
			metrics.RegistrationsRejected.WithLabelValues("duplicate").Inc()
		case errors.Is(err, apperrors.ErrEventFull):
			metrics.RegistrationsRejected.WithLabelValues("full").Inc()
		case errors.Is(err, apperrors.ErrEventNotAvailable):
			metrics.RegistrationsRejected.WithLabelValues("unavailable").Inc()
		default:
			log.Error("registration insert failed", zap.Int("event_id", event.ID), zap.Error(err))
			metrics.RegistrationsRejected.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.RegistrationsCreated.Inc()
	log.Info("registration created",
		zap.Int("registration_id", created.ID),
		zap.Int("event_id", event.ID),
		zap.String("event_name", event.Name),
	)

	// Post-commit hook: a publish failure is logged and the success stands.
	notification := &model.RegistrationNotification{Entry: *created, Event: *event}
	if err := s.queue.PublishNotification(ctx, notification); err != nil {
		log.Warn("failed to enqueue registration notification",
			zap.Int("registration_id", created.ID),
			zap.Error(err),
		)
	}

	return created, nil
}

func (s *RegistrationServiceImpl) List(ctx context.Context) ([]*model.RegistrationRecord, error) {
	return s.entries.ListWithEvents(ctx)
}

var csvHeader = []string{"ID", "Event Name", "Full Name", "Email", "College", "Department", "Registration Date"}

func (s *RegistrationServiceImpl) ExportCSV(ctx context.Context, w io.Writer) error {
	records, err := s.entries.ListWithEvents(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.EventName,
			record.FullName,
			record.Email,
			record.College,
			record.Department,
			record.Created.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
