package postal

import (
	"context"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/identity"
	"github.com/postalis/backend/internal/domain/postal"
	"github.com/stretchr/testify/mock"
)

// MockTenantRepository is a mock implementation of identity.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindBySubdomain(ctx context.Context, subdomain string) (*identity.Tenant, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identity.Tenant, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context) ([]identity.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	args := m.Called(ctx, subdomain)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *identity.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAssignmentRepository is a mock implementation of postal.AssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]postal.TenantOptionAssignment, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]postal.TenantOptionAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindByTenantAndKind(ctx context.Context, tenantID uuid.UUID, kind postal.OptionKind) ([]postal.TenantOptionAssignment, error) {
	args := m.Called(ctx, tenantID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]postal.TenantOptionAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindTenantIDsByOption(ctx context.Context, kind postal.OptionKind, optionID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, kind, optionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockAssignmentRepository) ReplaceForTenant(ctx context.Context, tenantID uuid.UUID, kind postal.OptionKind, optionIDs []uuid.UUID) error {
	args := m.Called(ctx, tenantID, kind, optionIDs)
	return args.Error(0)
}

func (m *MockAssignmentRepository) DeleteByOption(ctx context.Context, kind postal.OptionKind, optionID uuid.UUID) error {
	args := m.Called(ctx, kind, optionID)
	return args.Error(0)
}

func (m *MockAssignmentRepository) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

// MockOptionRepository is a mock implementation of postal.OptionRepository
type MockOptionRepository[T postal.CatalogOption] struct {
	mock.Mock
}

func (m *MockOptionRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockOptionRepository[T]) FindByCode(ctx context.Context, code string) (*T, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockOptionRepository[T]) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockOptionRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockOptionRepository[T]) Save(ctx context.Context, option *T) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *MockOptionRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRateRepository is a mock implementation of postal.PostageRateRepository
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*postal.PostageRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postal.PostageRate), args.Error(1)
}

func (m *MockRateRepository) FindByCode(ctx context.Context, code string) (*postal.PostageRate, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postal.PostageRate), args.Error(1)
}

func (m *MockRateRepository) FindByBand(ctx context.Context, fullName string, weightMinGrams, weightMaxGrams int) (*postal.PostageRate, error) {
	args := m.Called(ctx, fullName, weightMinGrams, weightMaxGrams)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postal.PostageRate), args.Error(1)
}

func (m *MockRateRepository) FindAll(ctx context.Context) ([]postal.PostageRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]postal.PostageRate), args.Error(1)
}

func (m *MockRateRepository) FindActive(ctx context.Context) ([]postal.PostageRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]postal.PostageRate), args.Error(1)
}

func (m *MockRateRepository) Save(ctx context.Context, rate *postal.PostageRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockConfigCache is a mock implementation of postal.ConfigCache
type MockConfigCache struct {
	mock.Mock
}

func (m *MockConfigCache) Get(ctx context.Context, tenantKey string) (*postal.ConfigurationView, bool, error) {
	args := m.Called(ctx, tenantKey)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*postal.ConfigurationView), args.Bool(1), args.Error(2)
}

func (m *MockConfigCache) Set(ctx context.Context, tenantKey string, view *postal.ConfigurationView) error {
	args := m.Called(ctx, tenantKey, view)
	return args.Error(0)
}

func (m *MockConfigCache) Evict(ctx context.Context, tenantKey string) error {
	args := m.Called(ctx, tenantKey)
	return args.Error(0)
}

func (m *MockConfigCache) EvictAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConfigCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
