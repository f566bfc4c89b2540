package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"utsav/internal/domain"
)

// MockQuotationRepo is a mock implementation of port.QuotationRepository.
type MockQuotationRepo struct {
	mock.Mock
}

func (m *MockQuotationRepo) Create(ctx context.Context, quotation *domain.Quotation, items []domain.QuotationItem) error {
	args := m.Called(ctx, quotation, items)
	return args.Error(0)
}

func (m *MockQuotationRepo) Update(ctx context.Context, quotation *domain.Quotation, items []domain.QuotationItem) error {
	args := m.Called(ctx, quotation, items)
	return args.Error(0)
}

func (m *MockQuotationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepo) GetDetail(ctx context.Context, id uuid.UUID) (*domain.QuotationDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuotationDetail), args.Error(1)
}

func (m *MockQuotationRepo) ListItems(ctx context.Context, quotationID uuid.UUID) ([]domain.QuotationItem, error) {
	args := m.Called(ctx, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuotationItem), args.Error(1)
}

func (m *MockQuotationRepo) List(ctx context.Context, status domain.QuotationStatus, offset, limit int) ([]domain.QuotationListItem, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.QuotationListItem), args.Int(1), args.Error(2)
}

func (m *MockQuotationRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.QuotationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockQuotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
