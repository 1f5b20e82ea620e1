package model

import (
	"strings"
	"time"
)

// RegistrationEntry is a row of the registration_entries table. Entries are
// immutable once written; there is no update or delete path.
type RegistrationEntry struct {
	ID         int       `json:"id" db:"id"`
	EventID    int       `json:"event_id" db:"event_id"`
	FullName   string    `json:"full_name" db:"full_name"`
	Email      string    `json:"email" db:"email"`
	College    string    `json:"college" db:"college"`
	Department string    `json:"department" db:"department"`
	Created    time.Time `json:"created" db:"created"`
}

// RegistrationRequest is a candidate form submission.
type RegistrationRequest struct {
	EventID    int    `json:"event_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	College    string `json:"college"`
	Department string `json:"department"`
}

// Normalized returns a copy with surrounding whitespace stripped from every
// text field, so " A " and "A" validate identically.
func (r RegistrationRequest) Normalized() RegistrationRequest {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.College = strings.TrimSpace(r.College)
	r.Department = strings.TrimSpace(r.Department)
	return r
}

// Field keys for validation errors.
const (
	FieldEvent      = "event"
	FieldFullName   = "full_name"
	FieldEmail      = "email"
	FieldCollege    = "college"
	FieldDepartment = "department"
	// FieldForm carries the single generic form-level error used when an
	// unexpected storage failure interrupts validation.
	FieldForm = "form"
)

// FieldErrors maps field keys to user-facing validation messages. An empty
// map means the submission is valid.
type FieldErrors map[string]string

// HasFormError reports whether validation was interrupted by a storage
// failure rather than rejected on field rules.
func (e FieldErrors) HasFormError() bool {
	_, ok := e[FieldForm]
	return ok
}

// RegistrationRecord is a registration entry joined with its event's display
// name, as shown on the admin list and in the CSV export.
type RegistrationRecord struct {
	RegistrationEntry
	EventName string `json:"event_name" db:"event_name"`
}

// RegistrationNotification is the payload published to the notification queue
// after a successful write.
type RegistrationNotification struct {
	Entry RegistrationEntry `json:"entry"`
	Event Event             `json:"event"`
}
