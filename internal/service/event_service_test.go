package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"utsav/internal/domain"
	"utsav/internal/service"
	"utsav/mocks"
)

func TestEventCreate_DefaultsStatus(t *testing.T) {
	repo := new(mocks.MockEventRepo)
	svc := service.NewEventService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	event, err := svc.Create(context.Background(), service.SaveEventInput{Name: "Mehta Sangeet"})
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusUpcoming, event.Status)
}

func TestEventCreate_RejectsUnknownStatus(t *testing.T) {
	repo := new(mocks.MockEventRepo)
	svc := service.NewEventService(repo)

	_, err := svc.Create(context.Background(), service.SaveEventInput{Name: "Gala", Status: "postponed"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	repo.AssertNotCalled(t, "Create")
}

func TestEventCreate_RequiresName(t *testing.T) {
	repo := new(mocks.MockEventRepo)
	svc := service.NewEventService(repo)

	_, err := svc.Create(context.Background(), service.SaveEventInput{Name: " "})
	assert.ErrorIs(t, err, domain.ErrNameRequired)
}

func TestEventUpdate_PreservesIdentity(t *testing.T) {
	repo := new(mocks.MockEventRepo)
	svc := service.NewEventService(repo)

	existing := &domain.Event{ID: uuid.New(), Name: "Old", Status: domain.EventStatusUpcoming}
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	event, err := svc.Update(context.Background(), existing.ID, service.SaveEventInput{
		Name:   "Renamed",
		Status: string(domain.EventStatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, event.ID)
	assert.Equal(t, domain.EventStatusCompleted, event.Status)
	repo.AssertExpectations(t)
}
