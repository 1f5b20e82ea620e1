package repository

import (
	"context"
	"time"

	"go-event-registration/internal/model"
	apperrors "go-event-registration/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository reads the events table. The table is populated by external
// admin tooling; this service never writes it.
type EventRepository interface {
	FindByID(ctx context.Context, id int) (*model.Event, error)
	// FindOpenByID fetches the event only if it is active and now falls
	// inside its registration window.
	FindOpenByID(ctx context.Context, id int, now time.Time) (*model.Event, error)
	// FindOpen lists events accepting registrations at now, ordered by
	// (category, event_date, event_name).
	FindOpen(ctx context.Context, now time.Time) ([]*model.Event, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, event_name, category, event_date, location,
		registration_start, registration_end, status, max_attendees,
		created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Category,
		&event.EventDate,
		&event.Location,
		&event.RegistrationStart,
		&event.RegistrationEnd,
		&event.Status,
		&event.MaxAttendees,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) FindOpenByID(ctx context.Context, id int, now time.Time) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
		  AND status
		  AND registration_start <= $2
		  AND registration_end >= $2
	`

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id, now.Unix()))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotAvailable
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) FindOpen(ctx context.Context, now time.Time) ([]*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status
		  AND registration_start <= $1
		  AND registration_end >= $1
		ORDER BY category, event_date, event_name
	`

	rows, err := r.pool.Query(ctx, query, now.Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
