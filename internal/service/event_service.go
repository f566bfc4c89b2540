package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"utsav/internal/domain"
	"utsav/internal/port"
)

// SaveEventInput is the DTO for creating or updating an event.
type SaveEventInput struct {
	Name       string     `json:"name" binding:"required"`
	ClientID   *uuid.UUID `json:"client_id"`
	EventType  string     `json:"event_type"`
	Venue      string     `json:"venue"`
	EventDate  *time.Time `json:"event_date"`
	GuestCount int        `json:"guest_count"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes"`
}

// EventService manages event bookings.
type EventService interface {
	Create(ctx context.Context, input SaveEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context, offset, limit int) ([]domain.Event, int, error)
	Update(ctx context.Context, id uuid.UUID, input SaveEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventService struct {
	repo port.EventRepository
}

// NewEventService creates a new EventService implementation.
func NewEventService(repo port.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) Create(ctx context.Context, input SaveEventInput) (*domain.Event, error) {
	event, err := eventFromInput(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *eventService) List(ctx context.Context, offset, limit int) ([]domain.Event, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, input SaveEventInput) (*domain.Event, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event, err := eventFromInput(input)
	if err != nil {
		return nil, err
	}
	event.ID = existing.ID
	event.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func eventFromInput(input SaveEventInput) (*domain.Event, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrNameRequired
	}
	status := domain.EventStatus(input.Status)
	if status == "" {
		status = domain.EventStatusUpcoming
	}
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	return &domain.Event{
		ClientID:   input.ClientID,
		Name:       input.Name,
		EventType:  input.EventType,
		Venue:      input.Venue,
		EventDate:  input.EventDate,
		GuestCount: input.GuestCount,
		Status:     status,
		Notes:      input.Notes,
	}, nil
}
