package port

import (
	"context"

	"github.com/google/uuid"

	"utsav/internal/domain"
)

// ClientRepository defines the contract for client persistence.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	// GetByName performs a case-insensitive exact-name lookup, used by the
	// client resolver.
	GetByName(ctx context.Context, name string) (*domain.Client, error)
	List(ctx context.Context, offset, limit int) ([]domain.Client, int, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventRepository defines the contract for event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context, offset, limit int) ([]domain.Event, int, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SequenceRepository allocates sequential document numbers. Next must be
// atomic under concurrent callers; two simultaneous allocations for the same
// document type and year never observe the same value.
type SequenceRepository interface {
	Next(ctx context.Context, docType string, year int) (int64, error)
}

// StatsRepository computes dashboard aggregates.
type StatsRepository interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}
