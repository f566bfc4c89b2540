package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"utsav/internal/domain"
	"utsav/internal/port"
)

type eventRepo struct {
	db *sqlx.DB
}

// NewEventRepo creates a new PostgreSQL-backed EventRepository.
func NewEventRepo(db *sqlx.DB) port.EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *domain.Event) error {
	event.ID = uuid.New()
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	query := `INSERT INTO events (id, client_id, name, event_type, venue, event_date, guest_count, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.ClientID, event.Name, event.EventType, event.Venue,
		event.EventDate, event.GuestCount, event.Status, event.Notes,
		event.CreatedAt, event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("eventRepo.Create: %w", err)
	}
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var event domain.Event
	err := r.db.GetContext(ctx, &event, "SELECT * FROM events WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("eventRepo.GetByID: %w", err)
	}
	return &event, nil
}

func (r *eventRepo) List(ctx context.Context, offset, limit int) ([]domain.Event, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM events")
	if err != nil {
		return nil, 0, fmt.Errorf("eventRepo.List count: %w", err)
	}

	var events []domain.Event
	err = r.db.SelectContext(ctx, &events,
		"SELECT * FROM events ORDER BY event_date DESC NULLS LAST, created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("eventRepo.List: %w", err)
	}
	return events, total, nil
}

func (r *eventRepo) Update(ctx context.Context, event *domain.Event) error {
	event.UpdatedAt = time.Now().UTC()
	query := `UPDATE events SET client_id = $1, name = $2, event_type = $3, venue = $4,
		event_date = $5, guest_count = $6, status = $7, notes = $8, updated_at = $9
		WHERE id = $10`
	result, err := r.db.ExecContext(ctx, query,
		event.ClientID, event.Name, event.EventType, event.Venue,
		event.EventDate, event.GuestCount, event.Status, event.Notes,
		event.UpdatedAt, event.ID)
	if err != nil {
		return fmt.Errorf("eventRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("eventRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
