package apperrors

import "errors"

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrEventNotAvailable     = errors.New("event not available for registration")
	ErrEventFull             = errors.New("event registration capacity reached")
	ErrDuplicateRegistration = errors.New("email already registered for event")
	ErrEventsUnavailable     = errors.New("unable to load events")
	ErrCacheMiss             = errors.New("cache miss")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInternalServerError   = errors.New("internal server error")
)
