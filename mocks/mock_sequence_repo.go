package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSequenceRepo is a mock implementation of port.SequenceRepository.
type MockSequenceRepo struct {
	mock.Mock
}

func (m *MockSequenceRepo) Next(ctx context.Context, docType string, year int) (int64, error) {
	args := m.Called(ctx, docType, year)
	return args.Get(0).(int64), args.Error(1)
}
