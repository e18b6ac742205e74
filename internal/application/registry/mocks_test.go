package registry

import (
	"context"

	"github.com/registry/backend/internal/domain/registry"
	"github.com/stretchr/testify/mock"
)

// MockNaturalPersonRepository is a mock implementation of registry.NaturalPersonRepository
type MockNaturalPersonRepository struct {
	mock.Mock
}

func (m *MockNaturalPersonRepository) FindByID(ctx context.Context, id uint64) (*registry.NaturalPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.NaturalPerson), args.Error(1)
}

func (m *MockNaturalPersonRepository) FindAll(ctx context.Context) ([]registry.NaturalPerson, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]registry.NaturalPerson), args.Error(1)
}

func (m *MockNaturalPersonRepository) FindByTaxID(ctx context.Context, taxID string) (*registry.NaturalPerson, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.NaturalPerson), args.Error(1)
}

func (m *MockNaturalPersonRepository) ExistsByTaxID(ctx context.Context, taxID string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, taxID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNaturalPersonRepository) Create(ctx context.Context, person *registry.NaturalPerson) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockNaturalPersonRepository) Update(ctx context.Context, person *registry.NaturalPerson) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockNaturalPersonRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLegalEntityRepository is a mock implementation of registry.LegalEntityRepository
type MockLegalEntityRepository struct {
	mock.Mock
}

func (m *MockLegalEntityRepository) FindByID(ctx context.Context, id uint64) (*registry.LegalEntity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.LegalEntity), args.Error(1)
}

func (m *MockLegalEntityRepository) FindAll(ctx context.Context) ([]registry.LegalEntity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]registry.LegalEntity), args.Error(1)
}

func (m *MockLegalEntityRepository) FindByRegistrationID(ctx context.Context, registrationID string) (*registry.LegalEntity, error) {
	args := m.Called(ctx, registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.LegalEntity), args.Error(1)
}

func (m *MockLegalEntityRepository) ExistsByRegistrationID(ctx context.Context, registrationID string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, registrationID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLegalEntityRepository) Create(ctx context.Context, entity *registry.LegalEntity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockLegalEntityRepository) Update(ctx context.Context, entity *registry.LegalEntity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockLegalEntityRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGoodRepository is a mock implementation of registry.GoodRepository
type MockGoodRepository struct {
	mock.Mock
}

func (m *MockGoodRepository) FindByID(ctx context.Context, id uint64) (*registry.Good, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.Good), args.Error(1)
}

func (m *MockGoodRepository) FindAll(ctx context.Context) ([]registry.Good, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]registry.Good), args.Error(1)
}

func (m *MockGoodRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]registry.Good, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]registry.Good), args.Error(1)
}

func (m *MockGoodRepository) Create(ctx context.Context, good *registry.Good) error {
	args := m.Called(ctx, good)
	return args.Error(0)
}

func (m *MockGoodRepository) Update(ctx context.Context, good *registry.Good) error {
	args := m.Called(ctx, good)
	return args.Error(0)
}

func (m *MockGoodRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
