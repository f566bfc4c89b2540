package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"utsav/internal/domain"
	"utsav/internal/money"
	"utsav/internal/service"
	"utsav/mocks"
)

func newConversionService() (service.ConversionService, *mocks.MockQuotationRepo, *mocks.MockInvoiceRepo, *mocks.MockSequenceRepo) {
	quotations := new(mocks.MockQuotationRepo)
	invoices := new(mocks.MockInvoiceRepo)
	seq := new(mocks.MockSequenceRepo)
	return service.NewConversionService(quotations, invoices, seq), quotations, invoices, seq
}

func acceptedQuotation() *domain.Quotation {
	clientID := uuid.New()
	return &domain.Quotation{
		ID:              uuid.New(),
		QuotationNumber: "QT-2026-0004",
		Title:           "Corporate Gala",
		ClientID:        &clientID,
		ClientName:      "Acme Events",
		EventName:       "Annual Gala",
		Subtotal:        d("50000"),
		Discount:        d("5000"),
		TaxRates:        money.TaxRates{CGST: d("9"), SGST: d("9")},
		TaxAmount:       d("8100"),
		Total:           d("53100"),
		Notes:           "advance required",
		Terms:           "net 15",
		Status:          domain.QuotationStatusAccepted,
	}
}

func TestConvert_CopiesFinancialSnapshot(t *testing.T) {
	svc, quotations, invoices, seq := newConversionService()

	q := acceptedQuotation()
	items := []domain.QuotationItem{
		{LineItem: domain.LineItem{Description: "Venue", Quantity: d("1"), Unit: "nos", Rate: d("30000"), Amount: d("30000"), SortOrder: 0}},
		{LineItem: domain.LineItem{Description: "Catering", Quantity: d("200"), Unit: "pax", Rate: d("100"), Amount: d("20000"), SortOrder: 1}},
	}

	year := time.Now().Year()
	quotations.On("GetByID", mock.Anything, q.ID).Return(q, nil)
	quotations.On("ListItems", mock.Anything, q.ID).Return(items, nil)
	seq.On("Next", mock.Anything, domain.DocTypeInvoice, year).Return(int64(12), nil)

	var capturedItems []domain.InvoiceItem
	invoices.On("CreateFromQuotation", mock.Anything, mock.AnythingOfType("*domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceItem")).
		Run(func(args mock.Arguments) {
			capturedItems = args.Get(2).([]domain.InvoiceItem)
		}).
		Return(nil)

	inv, err := svc.ConvertToInvoice(context.Background(), q.ID)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("INV-%d-0012", year), inv.InvoiceNumber)
	require.NotNil(t, inv.QuotationID)
	assert.Equal(t, q.ID, *inv.QuotationID)

	// Header snapshot is verbatim.
	assert.Equal(t, q.Title, inv.Title)
	assert.Equal(t, q.ClientID, inv.ClientID)
	assert.True(t, q.Subtotal.Equal(inv.Subtotal))
	assert.True(t, q.Discount.Equal(inv.Discount))
	assert.True(t, q.TaxAmount.Equal(inv.TaxAmount))
	assert.True(t, q.Total.Equal(inv.Total))
	assert.True(t, q.CGST.Equal(inv.CGST))
	assert.True(t, q.SGST.Equal(inv.SGST))
	assert.Equal(t, q.Notes, inv.Notes)
	assert.Equal(t, q.Terms, inv.Terms)

	// Fresh ledger state.
	assert.True(t, decimal.Zero.Equal(inv.AmountPaid))
	assert.True(t, q.Total.Equal(inv.BalanceDue))
	assert.Equal(t, domain.InvoiceStatusUnpaid, inv.Status)

	// Items are copied with order and values intact.
	require.Len(t, capturedItems, 2)
	assert.Equal(t, "Venue", capturedItems[0].Description)
	assert.Equal(t, 0, capturedItems[0].SortOrder)
	assert.Equal(t, "pax", capturedItems[1].Unit)
	assert.True(t, d("20000").Equal(capturedItems[1].Amount))
}

func TestConvert_AlreadyConverted(t *testing.T) {
	svc, quotations, invoices, seq := newConversionService()

	q := acceptedQuotation()
	q.Status = domain.QuotationStatusConverted
	quotations.On("GetByID", mock.Anything, q.ID).Return(q, nil)

	_, err := svc.ConvertToInvoice(context.Background(), q.ID)
	assert.ErrorIs(t, err, domain.ErrQuotationConverted)
	seq.AssertNotCalled(t, "Next")
	invoices.AssertNotCalled(t, "CreateFromQuotation")
}

func TestConvert_QuotationNotFound(t *testing.T) {
	svc, quotations, _, _ := newConversionService()

	id := uuid.New()
	quotations.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := svc.ConvertToInvoice(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
