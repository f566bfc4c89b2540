package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"utsav/internal/domain"
	"utsav/internal/service"
	"utsav/mocks"
)

func newPaymentService() (service.PaymentService, *mocks.MockPaymentRepo, *mocks.MockInvoiceRepo) {
	payments := new(mocks.MockPaymentRepo)
	invoices := new(mocks.MockInvoiceRepo)
	return service.NewPaymentService(payments, invoices), payments, invoices
}

func unpaidInvoice(total string) *domain.Invoice {
	return &domain.Invoice{
		ID:         uuid.New(),
		Total:      d(total),
		AmountPaid: decimal.Zero,
		BalanceDue: d(total),
		Status:     domain.InvoiceStatusUnpaid,
	}
}

func TestRecordPayment_Partial(t *testing.T) {
	svc, payments, invoices := newPaymentService()

	inv := unpaidInvoice("10000")
	invoices.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	payments.On("Record", mock.Anything, mock.AnythingOfType("*domain.Payment"),
		mock.MatchedBy(func(paid decimal.Decimal) bool { return paid.Equal(d("4000")) }),
		mock.MatchedBy(func(balance decimal.Decimal) bool { return balance.Equal(d("6000")) }),
		domain.InvoiceStatusPartial).Return(nil)

	p, err := svc.Record(context.Background(), inv.ID, service.RecordPaymentInput{
		Amount:        d("4000"),
		PaymentMethod: "upi",
	})
	require.NoError(t, err)
	assert.Equal(t, inv.ID, p.InvoiceID)
	assert.True(t, d("4000").Equal(p.Amount))
	payments.AssertExpectations(t)
}

func TestRecordPayment_SettlesExactly(t *testing.T) {
	svc, payments, invoices := newPaymentService()

	inv := unpaidInvoice("10000")
	inv.AmountPaid = d("4000")
	inv.BalanceDue = d("6000")
	inv.Status = domain.InvoiceStatusPartial

	invoices.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	payments.On("Record", mock.Anything, mock.Anything,
		mock.MatchedBy(func(paid decimal.Decimal) bool { return paid.Equal(d("10000")) }),
		mock.MatchedBy(func(balance decimal.Decimal) bool { return balance.IsZero() }),
		domain.InvoiceStatusPaid).Return(nil)

	_, err := svc.Record(context.Background(), inv.ID, service.RecordPaymentInput{Amount: d("6000")})
	require.NoError(t, err)
	payments.AssertExpectations(t)
}

func TestRecordPayment_OverpaymentClampsBalance(t *testing.T) {
	svc, payments, invoices := newPaymentService()

	inv := unpaidInvoice("1000")
	invoices.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	payments.On("Record", mock.Anything, mock.Anything,
		mock.MatchedBy(func(paid decimal.Decimal) bool { return paid.Equal(d("1500")) }),
		mock.MatchedBy(func(balance decimal.Decimal) bool { return balance.IsZero() }),
		domain.InvoiceStatusPaid).Return(nil)

	_, err := svc.Record(context.Background(), inv.ID, service.RecordPaymentInput{Amount: d("1500")})
	require.NoError(t, err)
	payments.AssertExpectations(t)
}

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	svc, payments, invoices := newPaymentService()

	_, err := svc.Record(context.Background(), uuid.New(), service.RecordPaymentInput{Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentAmount)

	_, err = svc.Record(context.Background(), uuid.New(), service.RecordPaymentInput{Amount: d("-50")})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentAmount)

	invoices.AssertNotCalled(t, "GetByID")
	payments.AssertNotCalled(t, "Record")
}

func TestRecordPayment_RejectsCancelledInvoice(t *testing.T) {
	svc, payments, invoices := newPaymentService()

	inv := unpaidInvoice("1000")
	inv.Status = domain.InvoiceStatusCancelled
	invoices.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)

	_, err := svc.Record(context.Background(), inv.ID, service.RecordPaymentInput{Amount: d("500")})
	assert.ErrorIs(t, err, domain.ErrInvoiceCancelled)
	payments.AssertNotCalled(t, "Record")
}

func TestRecordPayment_SequenceToSettlement(t *testing.T) {
	svc, payments, invoices := newPaymentService()

	// First installment leaves the invoice partial, second settles it.
	inv := unpaidInvoice("8000")
	invoices.On("GetByID", mock.Anything, inv.ID).Return(inv, nil).Once()
	payments.On("Record", mock.Anything, mock.Anything,
		mock.MatchedBy(func(paid decimal.Decimal) bool { return paid.Equal(d("3000")) }),
		mock.MatchedBy(func(balance decimal.Decimal) bool { return balance.Equal(d("5000")) }),
		domain.InvoiceStatusPartial).Return(nil).Once()

	_, err := svc.Record(context.Background(), inv.ID, service.RecordPaymentInput{Amount: d("3000")})
	require.NoError(t, err)

	after := unpaidInvoice("8000")
	after.ID = inv.ID
	after.AmountPaid = d("3000")
	after.BalanceDue = d("5000")
	after.Status = domain.InvoiceStatusPartial

	invoices.On("GetByID", mock.Anything, inv.ID).Return(after, nil).Once()
	payments.On("Record", mock.Anything, mock.Anything,
		mock.MatchedBy(func(paid decimal.Decimal) bool { return paid.Equal(d("8000")) }),
		mock.MatchedBy(func(balance decimal.Decimal) bool { return balance.IsZero() }),
		domain.InvoiceStatusPaid).Return(nil).Once()

	_, err = svc.Record(context.Background(), inv.ID, service.RecordPaymentInput{Amount: d("5000")})
	require.NoError(t, err)
	payments.AssertExpectations(t)
}
