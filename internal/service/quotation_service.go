package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"utsav/internal/domain"
	"utsav/internal/money"
	"utsav/internal/port"
)

// SaveQuotationInput is the DTO for creating or updating a quotation. Tax is
// given either as a flat GST percentage or as a CGST/SGST/IGST split; every
// non-zero rate is applied independently to the discounted subtotal.
type SaveQuotationInput struct {
	Title         string          `json:"title" binding:"required"`
	ClientID      *uuid.UUID      `json:"client_id"`
	ClientName    string          `json:"client_name"`
	EventID       *uuid.UUID      `json:"event_id"`
	EventName     string          `json:"event_name"`
	Discount      decimal.Decimal `json:"discount"`
	GSTPercentage decimal.Decimal `json:"gst_percentage"`
	CGSTRate      decimal.Decimal `json:"cgst_rate"`
	SGSTRate      decimal.Decimal `json:"sgst_rate"`
	IGSTRate      decimal.Decimal `json:"igst_rate"`
	Notes         string          `json:"notes"`
	Terms         string          `json:"terms"`
	Items         []LineItemInput `json:"items"`
}

func (in *SaveQuotationInput) taxRates() money.TaxRates {
	return money.TaxRates{
		GST:  in.GSTPercentage,
		CGST: in.CGSTRate,
		SGST: in.SGSTRate,
		IGST: in.IGSTRate,
	}
}

// QuotationService manages the quotation aggregate: header, ordered line
// items, derived totals, and status.
type QuotationService interface {
	Create(ctx context.Context, input SaveQuotationInput) (*domain.Quotation, error)
	Update(ctx context.Context, id uuid.UUID, input SaveQuotationInput) (*domain.Quotation, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.QuotationDetail, error)
	List(ctx context.Context, status domain.QuotationStatus, offset, limit int) ([]domain.QuotationListItem, int, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.QuotationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type quotationService struct {
	repo      port.QuotationRepository
	sequences port.SequenceRepository
	clients   ClientService
}

// NewQuotationService creates a new QuotationService implementation.
func NewQuotationService(repo port.QuotationRepository, sequences port.SequenceRepository, clients ClientService) QuotationService {
	return &quotationService{repo: repo, sequences: sequences, clients: clients}
}

func (s *quotationService) Create(ctx context.Context, input SaveQuotationInput) (*domain.Quotation, error) {
	q, items, err := s.build(ctx, input)
	if err != nil {
		return nil, err
	}

	year := time.Now().Year()
	seq, err := s.sequences.Next(ctx, domain.DocTypeQuotation, year)
	if err != nil {
		return nil, err
	}
	q.QuotationNumber = formatDocNumber(domain.QuotationNumberPrefix, year, seq)
	q.Status = domain.QuotationStatusNew

	quotationItems := make([]domain.QuotationItem, len(items))
	for i, item := range items {
		quotationItems[i] = domain.QuotationItem{LineItem: item}
	}
	if err := s.repo.Create(ctx, q, quotationItems); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *quotationService) Update(ctx context.Context, id uuid.UUID, input SaveQuotationInput) (*domain.Quotation, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// A converted quotation's financials are frozen; an invoice already
	// carries its snapshot.
	if existing.Status == domain.QuotationStatusConverted {
		return nil, domain.ErrQuotationConverted
	}

	q, items, err := s.build(ctx, input)
	if err != nil {
		return nil, err
	}
	q.ID = existing.ID
	q.QuotationNumber = existing.QuotationNumber
	q.Status = existing.Status
	q.CreatedAt = existing.CreatedAt

	quotationItems := make([]domain.QuotationItem, len(items))
	for i, item := range items {
		quotationItems[i] = domain.QuotationItem{LineItem: item}
	}
	if err := s.repo.Update(ctx, q, quotationItems); err != nil {
		return nil, err
	}
	return q, nil
}

// build validates the input, resolves the client reference, and computes the
// derived financial state.
func (s *quotationService) build(ctx context.Context, input SaveQuotationInput) (*domain.Quotation, []domain.LineItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, nil, domain.ErrTitleRequired
	}

	items, err := buildLineItems(input.Items)
	if err != nil {
		return nil, nil, err
	}

	rates := input.taxRates()
	totals := money.Compute(money.Subtotal(lineAmounts(items)), input.Discount, rates)

	q := &domain.Quotation{
		Title:      input.Title,
		ClientID:   s.clients.Resolve(ctx, input.ClientName, input.ClientID),
		ClientName: input.ClientName,
		EventID:    input.EventID,
		EventName:  input.EventName,
		Subtotal:   totals.Subtotal,
		Discount:   totals.Discount,
		TaxRates:   rates,
		TaxAmount:  totals.TaxAmount,
		Total:      totals.Total,
		Notes:      input.Notes,
		Terms:      input.Terms,
	}
	return q, items, nil
}

func (s *quotationService) GetDetail(ctx context.Context, id uuid.UUID) (*domain.QuotationDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

func (s *quotationService) List(ctx context.Context, status domain.QuotationStatus, offset, limit int) ([]domain.QuotationListItem, int, error) {
	return s.repo.List(ctx, status, offset, limit)
}

// SetStatus assigns any known status value; there is no transition table.
// Sending, accepting, rejecting are external actions expressed through this
// single mutation.
func (s *quotationService) SetStatus(ctx context.Context, id uuid.UUID, status domain.QuotationStatus) error {
	if !status.IsValid() {
		return domain.ErrInvalidStatus
	}
	return s.repo.SetStatus(ctx, id, status)
}

func (s *quotationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
