package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"utsav/internal/domain"
)

// PaymentRepository defines the contract for the payment ledger. Record
// inserts the payment and updates the invoice's derived fields in one
// transaction so the ledger and the invoice header can never diverge.
// Payments are immutable; there is no update or delete.
type PaymentRepository interface {
	Record(ctx context.Context, payment *domain.Payment, amountPaid, balanceDue decimal.Decimal, status domain.InvoiceStatus) error
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.Payment, error)
}
