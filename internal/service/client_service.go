package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"utsav/internal/domain"
	"utsav/internal/port"
)

// SaveClientInput is the DTO for creating or updating a client.
type SaveClientInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	GSTNumber string `json:"gst_number"`
	City      string `json:"city"`
	State     string `json:"state"`
	Address   string `json:"address"`
}

// ClientService manages the client directory and resolves free-text client
// names to canonical records.
type ClientService interface {
	Create(ctx context.Context, input SaveClientInput) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, offset, limit int) ([]domain.Client, int, error)
	Update(ctx context.Context, id uuid.UUID, input SaveClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Resolve maps a free-text client name to a client id, creating the
	// client when no case-insensitive match exists. An explicit id always
	// wins. Resolution is best-effort: a store failure during the implicit
	// create is logged and yields "no client" instead of an error, so the
	// caller's save never aborts over it.
	Resolve(ctx context.Context, name string, explicitID *uuid.UUID) *uuid.UUID
}

type clientService struct {
	repo port.ClientRepository
}

// NewClientService creates a new ClientService implementation.
func NewClientService(repo port.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Create(ctx context.Context, input SaveClientInput) (*domain.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrNameRequired
	}
	client := clientFromInput(input)
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context, offset, limit int) ([]domain.Client, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, input SaveClientInput) (*domain.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrNameRequired
	}
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := clientFromInput(input)
	updated.ID = client.ID
	updated.CreatedAt = client.CreatedAt

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *clientService) Resolve(ctx context.Context, name string, explicitID *uuid.UUID) *uuid.UUID {
	if explicitID != nil {
		return explicitID
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	existing, err := s.repo.GetByName(ctx, name)
	if err == nil {
		return &existing.ID
	}
	if !errors.Is(err, domain.ErrNotFound) {
		log.Printf("client resolution lookup failed for %q: %v", name, err)
		return nil
	}

	client := &domain.Client{Name: name}
	if err := s.repo.Create(ctx, client); err != nil {
		log.Printf("implicit client creation failed for %q: %v", name, err)
		return nil
	}
	return &client.ID
}

func clientFromInput(input SaveClientInput) *domain.Client {
	return &domain.Client{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Company:   input.Company,
		GSTNumber: input.GSTNumber,
		City:      input.City,
		State:     input.State,
		Address:   input.Address,
	}
}
