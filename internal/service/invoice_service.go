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

// SaveInvoiceInput is the DTO for creating or updating a standalone invoice.
type SaveInvoiceInput struct {
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

func (in *SaveInvoiceInput) taxRates() money.TaxRates {
	return money.TaxRates{
		GST:  in.GSTPercentage,
		CGST: in.CGSTRate,
		SGST: in.SGSTRate,
		IGST: in.IGSTRate,
	}
}

// InvoiceService manages the invoice aggregate. Saves mirror quotation
// semantics (full item replacement, eager recomputation); payment-derived
// fields are owned by the payment recorder and preserved across updates.
type InvoiceService interface {
	Create(ctx context.Context, input SaveInvoiceInput) (*domain.Invoice, error)
	Update(ctx context.Context, id uuid.UUID, input SaveInvoiceInput) (*domain.Invoice, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.InvoiceDetail, error)
	List(ctx context.Context, status domain.InvoiceStatus, offset, limit int) ([]domain.InvoiceListItem, int, error)
	ListAll(ctx context.Context) ([]domain.InvoiceListItem, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceService struct {
	repo      port.InvoiceRepository
	sequences port.SequenceRepository
	clients   ClientService
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(repo port.InvoiceRepository, sequences port.SequenceRepository, clients ClientService) InvoiceService {
	return &invoiceService{repo: repo, sequences: sequences, clients: clients}
}

func (s *invoiceService) Create(ctx context.Context, input SaveInvoiceInput) (*domain.Invoice, error) {
	inv, items, err := s.build(ctx, input)
	if err != nil {
		return nil, err
	}

	year := time.Now().Year()
	seq, err := s.sequences.Next(ctx, domain.DocTypeInvoice, year)
	if err != nil {
		return nil, err
	}
	inv.InvoiceNumber = formatDocNumber(domain.InvoiceNumberPrefix, year, seq)
	inv.AmountPaid = decimal.Zero
	inv.BalanceDue = inv.Total
	inv.Status = domain.InvoiceStatusUnpaid

	invoiceItems := make([]domain.InvoiceItem, len(items))
	for i, item := range items {
		invoiceItems[i] = domain.InvoiceItem{LineItem: item}
	}
	if err := s.repo.Create(ctx, inv, invoiceItems); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, input SaveInvoiceInput) (*domain.Invoice, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inv, items, err := s.build(ctx, input)
	if err != nil {
		return nil, err
	}
	inv.ID = existing.ID
	inv.InvoiceNumber = existing.InvoiceNumber
	inv.QuotationID = existing.QuotationID
	inv.CreatedAt = existing.CreatedAt

	// Payment-derived state is never recomputed on save, only the balance
	// against the possibly-changed total.
	inv.AmountPaid = existing.AmountPaid
	inv.BalanceDue = money.BalanceDue(inv.Total, existing.AmountPaid)
	inv.Status = existing.Status

	invoiceItems := make([]domain.InvoiceItem, len(items))
	for i, item := range items {
		invoiceItems[i] = domain.InvoiceItem{LineItem: item}
	}
	if err := s.repo.Update(ctx, inv, invoiceItems); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) build(ctx context.Context, input SaveInvoiceInput) (*domain.Invoice, []domain.LineItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, nil, domain.ErrTitleRequired
	}

	items, err := buildLineItems(input.Items)
	if err != nil {
		return nil, nil, err
	}

	rates := input.taxRates()
	totals := money.Compute(money.Subtotal(lineAmounts(items)), input.Discount, rates)

	inv := &domain.Invoice{
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
	return inv, items, nil
}

func (s *invoiceService) GetDetail(ctx context.Context, id uuid.UUID) (*domain.InvoiceDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, status domain.InvoiceStatus, offset, limit int) ([]domain.InvoiceListItem, int, error) {
	return s.repo.List(ctx, status, offset, limit)
}

func (s *invoiceService) ListAll(ctx context.Context) ([]domain.InvoiceListItem, error) {
	return s.repo.ListAll(ctx)
}

// SetStatus assigns any known status value. Overdue and cancelled only ever
// arrive through here; the payment recorder owns unpaid/partial/paid.
func (s *invoiceService) SetStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	if !status.IsValid() {
		return domain.ErrInvalidStatus
	}
	return s.repo.SetStatus(ctx, id, status)
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
