package port

import (
	"context"

	"github.com/google/uuid"

	"utsav/internal/domain"
)

// QuotationRepository defines the contract for quotation persistence.
// Create and Update write the header and the full line-item collection in a
// single transaction; Update replaces all items (delete then insert) so the
// stored collection always matches the aggregate exactly.
type QuotationRepository interface {
	Create(ctx context.Context, quotation *domain.Quotation, items []domain.QuotationItem) error
	Update(ctx context.Context, quotation *domain.Quotation, items []domain.QuotationItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quotation, error)
	// GetDetail returns the quotation composed with its ordered items and
	// the linked client, if any.
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.QuotationDetail, error)
	ListItems(ctx context.Context, quotationID uuid.UUID) ([]domain.QuotationItem, error)
	List(ctx context.Context, status domain.QuotationStatus, offset, limit int) ([]domain.QuotationListItem, int, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.QuotationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
