package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"utsav/internal/domain"
	"utsav/internal/service"
	"utsav/mocks"
)

// Walks a document through its full life: quote two line items under a
// CGST/SGST split, convert the quotation, then settle the invoice in two
// installments.
func TestQuoteToSettlementFlow(t *testing.T) {
	ctx := context.Background()

	// Quote: 2 x 500 + 1 x 1000 with CGST 9 + SGST 9.
	quotationRepo := new(mocks.MockQuotationRepo)
	seq := new(mocks.MockSequenceRepo)
	clients := new(mocks.MockClientService)
	quotationSvc := service.NewQuotationService(quotationRepo, seq, clients)

	clients.On("Resolve", mock.Anything, "Verma Events", (*uuid.UUID)(nil)).Return(nil)
	seq.On("Next", mock.Anything, domain.DocTypeQuotation, time.Now().Year()).Return(int64(1), nil)

	var savedItems []domain.QuotationItem
	quotationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Quotation"), mock.AnythingOfType("[]domain.QuotationItem")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Quotation).ID = uuid.New()
			savedItems = args.Get(2).([]domain.QuotationItem)
		}).
		Return(nil)

	q, err := quotationSvc.Create(ctx, service.SaveQuotationInput{
		Title:      "Sangeet Package",
		ClientName: "Verma Events",
		CGSTRate:   d("9"),
		SGSTRate:   d("9"),
		Items: []service.LineItemInput{
			{Description: "Stage Setup", Quantity: d("2"), Rate: d("500")},
			{Description: "Sound System", Quantity: d("1"), Rate: d("1000")},
		},
	})
	require.NoError(t, err)
	require.True(t, d("2000").Equal(q.Subtotal), "subtotal %s", q.Subtotal)
	require.True(t, d("360").Equal(q.TaxAmount), "tax %s", q.TaxAmount)
	require.True(t, d("2360").Equal(q.Total), "total %s", q.Total)

	// Convert: the invoice carries the snapshot and a fresh ledger.
	invoiceRepo := new(mocks.MockInvoiceRepo)
	conversionSvc := service.NewConversionService(quotationRepo, invoiceRepo, seq)

	quotationRepo.On("GetByID", mock.Anything, q.ID).Return(q, nil)
	quotationRepo.On("ListItems", mock.Anything, q.ID).Return(savedItems, nil)
	seq.On("Next", mock.Anything, domain.DocTypeInvoice, time.Now().Year()).Return(int64(1), nil)
	invoiceRepo.On("CreateFromQuotation", mock.Anything, mock.AnythingOfType("*domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceItem")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Invoice).ID = uuid.New()
		}).
		Return(nil)

	inv, err := conversionSvc.ConvertToInvoice(ctx, q.ID)
	require.NoError(t, err)
	require.True(t, d("2360").Equal(inv.Total))
	require.True(t, decimal.Zero.Equal(inv.AmountPaid))
	require.True(t, d("2360").Equal(inv.BalanceDue))
	require.Equal(t, domain.InvoiceStatusUnpaid, inv.Status)

	// First installment of 1000 leaves 1360 outstanding.
	paymentRepo := new(mocks.MockPaymentRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, invoiceRepo)

	invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil).Once()
	paymentRepo.On("Record", mock.Anything, mock.AnythingOfType("*domain.Payment"),
		mock.MatchedBy(func(paid decimal.Decimal) bool { return paid.Equal(d("1000")) }),
		mock.MatchedBy(func(balance decimal.Decimal) bool { return balance.Equal(d("1360")) }),
		domain.InvoiceStatusPartial).
		Run(func(args mock.Arguments) {
			inv.AmountPaid = args.Get(2).(decimal.Decimal)
			inv.BalanceDue = args.Get(3).(decimal.Decimal)
			inv.Status = args.Get(4).(domain.InvoiceStatus)
		}).
		Return(nil).Once()

	_, err = paymentSvc.Record(ctx, inv.ID, service.RecordPaymentInput{Amount: d("1000")})
	require.NoError(t, err)
	require.Equal(t, domain.InvoiceStatusPartial, inv.Status)
	require.True(t, d("1360").Equal(inv.BalanceDue))

	// Second installment of 1360 settles the invoice exactly.
	invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil).Once()
	paymentRepo.On("Record", mock.Anything, mock.AnythingOfType("*domain.Payment"),
		mock.MatchedBy(func(paid decimal.Decimal) bool { return paid.Equal(d("2360")) }),
		mock.MatchedBy(func(balance decimal.Decimal) bool { return balance.IsZero() }),
		domain.InvoiceStatusPaid).
		Run(func(args mock.Arguments) {
			inv.AmountPaid = args.Get(2).(decimal.Decimal)
			inv.BalanceDue = args.Get(3).(decimal.Decimal)
			inv.Status = args.Get(4).(domain.InvoiceStatus)
		}).
		Return(nil).Once()

	_, err = paymentSvc.Record(ctx, inv.ID, service.RecordPaymentInput{Amount: d("1360")})
	require.NoError(t, err)
	require.Equal(t, domain.InvoiceStatusPaid, inv.Status)
	require.True(t, inv.BalanceDue.IsZero())
	paymentRepo.AssertExpectations(t)
}
