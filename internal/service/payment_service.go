package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"utsav/internal/domain"
	"utsav/internal/money"
	"utsav/internal/port"
)

// RecordPaymentInput is the DTO for recording a payment against an invoice.
type RecordPaymentInput struct {
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod   string          `json:"payment_method"`
	ReferenceNumber string          `json:"reference_number"`
	PaymentDate     *time.Time      `json:"payment_date"`
	Notes           string          `json:"notes"`
}

// PaymentService appends payments to an invoice's ledger and keeps the
// invoice's amount-paid, balance, and status consistent with it.
type PaymentService interface {
	Record(ctx context.Context, invoiceID uuid.UUID, input RecordPaymentInput) (*domain.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error)
}

type paymentService struct {
	payments port.PaymentRepository
	invoices port.InvoiceRepository
}

// NewPaymentService creates a new PaymentService implementation.
func NewPaymentService(payments port.PaymentRepository, invoices port.InvoiceRepository) PaymentService {
	return &paymentService{payments: payments, invoices: invoices}
}

func (s *paymentService) Record(ctx context.Context, invoiceID uuid.UUID, input RecordPaymentInput) (*domain.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidPaymentAmount
	}

	inv, err := s.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.InvoiceStatusCancelled {
		return nil, domain.ErrInvoiceCancelled
	}

	newPaid := inv.AmountPaid.Add(input.Amount)
	newBalance := money.BalanceDue(inv.Total, newPaid)

	// Paid when nothing remains outstanding; partial otherwise. Overdue and
	// cancelled never arise here.
	status := domain.InvoiceStatusPartial
	if inv.Total.LessThanOrEqual(newPaid) {
		status = domain.InvoiceStatusPaid
	}

	payment := &domain.Payment{
		InvoiceID:       invoiceID,
		Amount:          input.Amount,
		PaymentMethod:   input.PaymentMethod,
		ReferenceNumber: input.ReferenceNumber,
		Notes:           input.Notes,
	}
	if input.PaymentDate != nil {
		payment.PaymentDate = *input.PaymentDate
	}

	if err := s.payments.Record(ctx, payment, newPaid, newBalance, status); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error) {
	return s.payments.ListByInvoice(ctx, invoiceID)
}
