package model_test

import (
	"testing"
	"time"

	"go-event-registration/internal/model"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestEvent_IsOpenAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	event := &model.Event{
		Status:            true,
		RegistrationStart: start.Unix(),
		RegistrationEnd:   end.Unix(),
	}

	t.Run("open inside the window", func(t *testing.T) {
		assert.True(t, event.IsOpenAt(start.Add(24*time.Hour)))
	})

	t.Run("open exactly at the boundaries", func(t *testing.T) {
		assert.True(t, event.IsOpenAt(start))
		assert.True(t, event.IsOpenAt(end))
	})

	t.Run("closed before the window", func(t *testing.T) {
		assert.False(t, event.IsOpenAt(start.Add(-time.Second)))
	})

	t.Run("closed after the window", func(t *testing.T) {
		assert.False(t, event.IsOpenAt(end.Add(time.Second)))
	})

	t.Run("closed when inactive", func(t *testing.T) {
		inactive := *event
		inactive.Status = false
		assert.False(t, inactive.IsOpenAt(start.Add(24*time.Hour)))
	})
}

func TestEvent_CapacityLimit(t *testing.T) {
	t.Run("positive limit applies", func(t *testing.T) {
		event := &model.Event{MaxAttendees: intPtr(50)}
		limit, ok := event.CapacityLimit()
		assert.True(t, ok)
		assert.Equal(t, 50, limit)
	})

	t.Run("nil means unlimited", func(t *testing.T) {
		event := &model.Event{}
		_, ok := event.CapacityLimit()
		assert.False(t, ok)
	})

	t.Run("zero means unlimited", func(t *testing.T) {
		event := &model.Event{MaxAttendees: intPtr(0)}
		_, ok := event.CapacityLimit()
		assert.False(t, ok)
	})

	t.Run("negative means unlimited", func(t *testing.T) {
		event := &model.Event{MaxAttendees: intPtr(-3)}
		_, ok := event.CapacityLimit()
		assert.False(t, ok)
	})
}

func TestEvent_FormattedDate(t *testing.T) {
	t.Run("unix timestamp", func(t *testing.T) {
		// 2026-09-15 10:00:00 UTC
		event := &model.Event{EventDate: "1789466400"}
		assert.Equal(t, "September 15, 2026", event.FormattedDate())
	})

	t.Run("datetime string", func(t *testing.T) {
		event := &model.Event{EventDate: "2026-09-15 10:00:00"}
		assert.Equal(t, "September 15, 2026", event.FormattedDate())
	})

	t.Run("date-only string", func(t *testing.T) {
		event := &model.Event{EventDate: "2026-09-15"}
		assert.Equal(t, "September 15, 2026", event.FormattedDate())
	})

	t.Run("unparsable value falls through raw", func(t *testing.T) {
		event := &model.Event{EventDate: "sometime next spring"}
		assert.Equal(t, "sometime next spring", event.FormattedDate())
	})
}

func TestEvent_DisplayLabel(t *testing.T) {
	event := &model.Event{
		Name:      "Annual Tech Symposium",
		Category:  "Technology",
		EventDate: "2026-09-15",
	}
	assert.Equal(t, "Technology - Annual Tech Symposium (September 15, 2026)", event.DisplayLabel())
}

func TestEvent_Defaults(t *testing.T) {
	t.Run("location falls back to TBD", func(t *testing.T) {
		assert.Equal(t, "TBD", (&model.Event{}).LocationOrDefault())
		assert.Equal(t, "TBD", (&model.Event{Location: strPtr("")}).LocationOrDefault())
		assert.Equal(t, "Main Hall", (&model.Event{Location: strPtr("Main Hall")}).LocationOrDefault())
	})

	t.Run("category falls back to N/A", func(t *testing.T) {
		assert.Equal(t, "N/A", (&model.Event{}).CategoryOrDefault())
		assert.Equal(t, "Workshops", (&model.Event{Category: "Workshops"}).CategoryOrDefault())
	})
}
