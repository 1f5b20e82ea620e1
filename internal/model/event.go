package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// DisplayDateFormat is the long human-readable date used in option labels
// and notification emails.
const DisplayDateFormat = "January 2, 2006"

// Event is a row of the events table. Rows are written by external admin
// tooling; this service only reads them.
type Event struct {
	ID                int       `json:"id" db:"id"`
	Name              string    `json:"event_name" db:"event_name"`
	Category          string    `json:"category" db:"category"`
	EventDate         string    `json:"event_date" db:"event_date"`
	Location          *string   `json:"location,omitempty" db:"location"`
	RegistrationStart int64     `json:"registration_start" db:"registration_start"`
	RegistrationEnd   int64     `json:"registration_end" db:"registration_end"`
	Status            bool      `json:"status" db:"status"`
	MaxAttendees      *int      `json:"max_attendees,omitempty" db:"max_attendees"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// IsOpenAt reports whether the event accepts registrations at t: the event is
// active and t falls inside [registration_start, registration_end].
func (e *Event) IsOpenAt(t time.Time) bool {
	unix := t.Unix()
	return e.Status && e.RegistrationStart <= unix && unix <= e.RegistrationEnd
}

// CapacityLimit returns the attendee limit and whether one applies. NULL or
// non-positive max_attendees means unlimited.
func (e *Event) CapacityLimit() (int, bool) {
	if e.MaxAttendees == nil || *e.MaxAttendees <= 0 {
		return 0, false
	}
	return *e.MaxAttendees, true
}

// FormattedDate normalizes the stored event_date for display. A numeric value
// is read as a Unix timestamp, anything else is parsed as a datetime string,
// and unparsable values fall through as the raw stored value.
func (e *Event) FormattedDate() string {
	if ts, err := strconv.ParseInt(e.EventDate, 10, 64); err == nil {
		return time.Unix(ts, 0).UTC().Format(DisplayDateFormat)
	}
	if t, err := dateparse.ParseAny(e.EventDate); err == nil {
		return t.Format(DisplayDateFormat)
	}
	return e.EventDate
}

// DisplayLabel is the selector label shown on the registration form.
func (e *Event) DisplayLabel() string {
	return fmt.Sprintf("%s - %s (%s)", e.Category, e.Name, e.FormattedDate())
}

// LocationOrDefault falls back to "TBD" when no location is recorded.
func (e *Event) LocationOrDefault() string {
	if e.Location == nil || *e.Location == "" {
		return "TBD"
	}
	return *e.Location
}

// CategoryOrDefault falls back to "N/A" when no category is recorded.
func (e *Event) CategoryOrDefault() string {
	if e.Category == "" {
		return "N/A"
	}
	return e.Category
}

// EventOption is one entry of the registration form's event selector.
type EventOption struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}
