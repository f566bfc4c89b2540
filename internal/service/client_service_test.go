package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"utsav/internal/domain"
	"utsav/internal/service"
	"utsav/mocks"
)

func TestClientCreate_RequiresName(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	_, err := svc.Create(context.Background(), service.SaveClientInput{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrNameRequired)
	repo.AssertNotCalled(t, "Create")
}

func TestClientUpdate_PreservesIdentity(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	existing := &domain.Client{ID: uuid.New(), Name: "Old Name"}
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	updated, err := svc.Update(context.Background(), existing.ID, service.SaveClientInput{Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, "New Name", updated.Name)
	repo.AssertExpectations(t)
}

func TestResolve_ExplicitIDWins(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	id := uuid.New()
	got := svc.Resolve(context.Background(), "Sharma Weddings", &id)

	require.NotNil(t, got)
	assert.Equal(t, id, *got)
	repo.AssertNotCalled(t, "GetByName")
	repo.AssertNotCalled(t, "Create")
}

func TestResolve_BlankNameYieldsNil(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	assert.Nil(t, svc.Resolve(context.Background(), "", nil))
	assert.Nil(t, svc.Resolve(context.Background(), "   ", nil))
	repo.AssertNotCalled(t, "GetByName")
}

func TestResolve_ExistingClientFound(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	existing := &domain.Client{ID: uuid.New(), Name: "Sharma Weddings"}
	repo.On("GetByName", mock.Anything, "Sharma Weddings").Return(existing, nil)

	got := svc.Resolve(context.Background(), "Sharma Weddings", nil)
	require.NotNil(t, got)
	assert.Equal(t, existing.ID, *got)
	repo.AssertNotCalled(t, "Create")
}

func TestResolve_CreatesWhenMissing(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	created := uuid.New()
	repo.On("GetByName", mock.Anything, "New Client").Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Client).ID = created
		}).
		Return(nil)

	got := svc.Resolve(context.Background(), "New Client", nil)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)
	repo.AssertExpectations(t)
}

func TestResolve_SwallowsStoreFailures(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	repo.On("GetByName", mock.Anything, "Flaky").Return(nil, errors.New("connection refused"))

	assert.Nil(t, svc.Resolve(context.Background(), "Flaky", nil))
	repo.AssertNotCalled(t, "Create")
}

func TestResolve_CreateFailureYieldsNil(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	repo.On("GetByName", mock.Anything, "New Client").Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(errors.New("insert failed"))

	assert.Nil(t, svc.Resolve(context.Background(), "New Client", nil))
}

func TestResolve_RepeatedNameIsStable(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := service.NewClientService(repo)

	existing := &domain.Client{ID: uuid.New(), Name: "Repeat Client"}
	repo.On("GetByName", mock.Anything, "Repeat Client").Return(existing, nil)

	first := svc.Resolve(context.Background(), "Repeat Client", nil)
	second := svc.Resolve(context.Background(), "Repeat Client", nil)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
	repo.AssertNotCalled(t, "Create")
}
