package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-event-registration/internal/model"
	apperrors "go-event-registration/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// RegistrationRepository writes and reads registration entries. Entries are
// insert-only; the schema's UNIQUE(event_id, email) constraint is the
// decisive duplicate guard.
type RegistrationRepository interface {
	// Create persists one entry. Window, capacity and uniqueness are
	// enforced inside a single transaction so no partial state survives a
	// failed submission.
	Create(ctx context.Context, entry *model.RegistrationEntry, now time.Time) (*model.RegistrationEntry, error)
	ExistsByEventAndEmail(ctx context.Context, eventID int, email string) (bool, error)
	CountByEvent(ctx context.Context, eventID int) (int, error)
	// ListWithEvents joins entries to their event's display name, newest
	// first.
	ListWithEvents(ctx context.Context) ([]*model.RegistrationRecord, error)
}

type RegistrationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRegistrationRepository(pool *pgxpool.Pool) RegistrationRepository {
	return &RegistrationRepositoryImpl{
		pool: pool,
	}
}

func (r *RegistrationRepositoryImpl) Create(ctx context.Context, entry *model.RegistrationEntry, now time.Time) (*model.RegistrationEntry, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock the event row and re-check availability under the lock, so the
	// count below cannot race a concurrent submission.
	lockQuery := `
		SELECT max_attendees
		FROM events
		WHERE id = $1
		  AND status
		  AND registration_start <= $2
		  AND registration_end >= $2
		FOR UPDATE
	`

	var maxAttendees *int
	err = tx.QueryRow(ctx, lockQuery, entry.EventID, now.Unix()).Scan(&maxAttendees)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotAvailable
		}
		return nil, fmt.Errorf("lock event for registration: %w", err)
	}

	if maxAttendees != nil && *maxAttendees > 0 {
		var count int
		countQuery := `SELECT COUNT(*) FROM registration_entries WHERE event_id = $1`
		if err := tx.QueryRow(ctx, countQuery, entry.EventID).Scan(&count); err != nil {
			return nil, fmt.Errorf("count registrations: %w", err)
		}
		if count >= *maxAttendees {
			return nil, apperrors.ErrEventFull
		}
	}

	insertQuery := `
		INSERT INTO registration_entries (event_id, full_name, email, college, department, created)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, event_id, full_name, email, college, department, created
	`

	err = tx.QueryRow(ctx, insertQuery,
		entry.EventID, entry.FullName, entry.Email, entry.College, entry.Department, now.UTC(),
	).Scan(
		&entry.ID,
		&entry.EventID,
		&entry.FullName,
		&entry.Email,
		&entry.College,
		&entry.Department,
		&entry.Created,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("insert registration entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *RegistrationRepositoryImpl) ExistsByEventAndEmail(ctx context.Context, eventID int, email string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM registration_entries
			WHERE event_id = $1 AND email = $2
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, eventID, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *RegistrationRepositoryImpl) CountByEvent(ctx context.Context, eventID int) (int, error) {
	query := `SELECT COUNT(*) FROM registration_entries WHERE event_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, eventID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *RegistrationRepositoryImpl) ListWithEvents(ctx context.Context) ([]*model.RegistrationRecord, error) {
	query := `
		SELECT r.id, r.event_id, r.full_name, r.email, r.college, r.department, r.created,
		       e.event_name
		FROM registration_entries r
		JOIN events e ON r.event_id = e.id
		ORDER BY r.created DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*model.RegistrationRecord, 0)
	for rows.Next() {
		var record model.RegistrationRecord
		err := rows.Scan(
			&record.ID,
			&record.EventID,
			&record.FullName,
			&record.Email,
			&record.College,
			&record.Department,
			&record.Created,
			&record.EventName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
