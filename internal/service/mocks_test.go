package service

import (
	"context"
	"errors"

	"github.com/bloodlink/donor-service/internal/domain"
	"github.com/bloodlink/donor-service/internal/repository"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var (
	_ repository.DonorRepository     = (*MockDonorRepository)(nil)
	_ repository.EmergencyRepository = (*MockEmergencyRepository)(nil)
)

// MockDonorRepository is a function-field mock of repository.DonorRepository.
type MockDonorRepository struct {
	CreateFunc         func(ctx context.Context, donor *domain.Donor) error
	ListFunc           func(ctx context.Context, filter repository.DonorFilter) ([]domain.Donor, error)
	GetByIDFunc        func(ctx context.Context, id int64) (*domain.Donor, error)
	CountAvailableFunc func(ctx context.Context) (int64, error)

	CreateCalls int
	ListCalls   int
}

func (m *MockDonorRepository) Create(ctx context.Context, donor *domain.Donor) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, donor)
	}
	return nil
}

func (m *MockDonorRepository) List(ctx context.Context, filter repository.DonorFilter) ([]domain.Donor, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockDonorRepository) GetByID(ctx context.Context, id int64) (*domain.Donor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockDonorRepository) CountAvailable(ctx context.Context) (int64, error) {
	if m.CountAvailableFunc != nil {
		return m.CountAvailableFunc(ctx)
	}
	return 0, nil
}

// MockEmergencyRepository is a function-field mock of repository.EmergencyRepository.
type MockEmergencyRepository struct {
	CreateFunc  func(ctx context.Context, request *domain.EmergencyRequest) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.EmergencyRequest, error)

	CreateCalls int
}

func (m *MockEmergencyRepository) Create(ctx context.Context, request *domain.EmergencyRequest) error {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, request)
	}
	return nil
}

func (m *MockEmergencyRepository) GetByID(ctx context.Context, id string) (*domain.EmergencyRequest, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}
