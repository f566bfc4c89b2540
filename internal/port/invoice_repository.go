package port

import (
	"context"

	"github.com/google/uuid"

	"utsav/internal/domain"
)

// InvoiceRepository defines the contract for invoice persistence. Writes that
// span the header and the item collection run in a single transaction.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice, items []domain.InvoiceItem) error
	// CreateFromQuotation inserts the invoice with its items and marks the
	// source quotation (invoice.QuotationID) converted, all in one
	// transaction; a failure at any step leaves no partial state.
	CreateFromQuotation(ctx context.Context, invoice *domain.Invoice, items []domain.InvoiceItem) error
	Update(ctx context.Context, invoice *domain.Invoice, items []domain.InvoiceItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.InvoiceDetail, error)
	List(ctx context.Context, status domain.InvoiceStatus, offset, limit int) ([]domain.InvoiceListItem, int, error)
	// ListAll returns every invoice row, newest first, for export.
	ListAll(ctx context.Context) ([]domain.InvoiceListItem, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
