package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"utsav/internal/domain"
	"utsav/internal/port"
)

// ConversionService turns an accepted quotation into an invoice. The invoice
// carries the quotation's financial snapshot verbatim: what was quoted is
// what gets invoiced, even if rates change later.
type ConversionService interface {
	ConvertToInvoice(ctx context.Context, quotationID uuid.UUID) (*domain.Invoice, error)
}

type conversionService struct {
	quotations port.QuotationRepository
	invoices   port.InvoiceRepository
	sequences  port.SequenceRepository
}

// NewConversionService creates a new ConversionService implementation.
func NewConversionService(quotations port.QuotationRepository, invoices port.InvoiceRepository, sequences port.SequenceRepository) ConversionService {
	return &conversionService{quotations: quotations, invoices: invoices, sequences: sequences}
}

func (s *conversionService) ConvertToInvoice(ctx context.Context, quotationID uuid.UUID) (*domain.Invoice, error) {
	q, err := s.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if q.Status == domain.QuotationStatusConverted {
		return nil, domain.ErrQuotationConverted
	}

	items, err := s.quotations.ListItems(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	year := time.Now().Year()
	seq, err := s.sequences.Next(ctx, domain.DocTypeInvoice, year)
	if err != nil {
		return nil, err
	}

	inv := &domain.Invoice{
		InvoiceNumber: formatDocNumber(domain.InvoiceNumberPrefix, year, seq),
		QuotationID:   &q.ID,
		Title:         q.Title,
		ClientID:      q.ClientID,
		ClientName:    q.ClientName,
		EventID:       q.EventID,
		EventName:     q.EventName,
		Subtotal:      q.Subtotal,
		Discount:      q.Discount,
		TaxRates:      q.TaxRates,
		TaxAmount:     q.TaxAmount,
		Total:         q.Total,
		AmountPaid:    decimal.Zero,
		BalanceDue:    q.Total,
		Notes:         q.Notes,
		Terms:         q.Terms,
		Status:        domain.InvoiceStatusUnpaid,
	}

	invoiceItems := make([]domain.InvoiceItem, len(items))
	for i, item := range items {
		invoiceItems[i] = domain.InvoiceItem{
			LineItem: domain.LineItem{
				Description: item.Description,
				Quantity:    item.Quantity,
				Unit:        item.Unit,
				Rate:        item.Rate,
				Amount:      item.Amount,
				SortOrder:   item.SortOrder,
			},
		}
	}

	// Invoice insert, item copy, and marking the quotation converted happen
	// in one repository transaction.
	if err := s.invoices.CreateFromQuotation(ctx, inv, invoiceItems); err != nil {
		return nil, err
	}
	return inv, nil
}
