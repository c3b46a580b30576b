package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	identitydomain "github.com/postalis/backend/internal/domain/identity"
	"github.com/postalis/backend/internal/domain/postal"
	"github.com/postalis/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identitydomain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identitydomain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindBySubdomain(ctx context.Context, subdomain string) (*identitydomain.Tenant, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identitydomain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identitydomain.Tenant, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identitydomain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context) ([]identitydomain.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identitydomain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	args := m.Called(ctx, subdomain)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *identitydomain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

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

func newTenantService() (*TenantService, *MockTenantRepository, *MockConfigCache) {
	repo := new(MockTenantRepository)
	cache := new(MockConfigCache)
	return NewTenantService(repo, cache, zap.NewNop()), repo, cache
}

func TestTenantServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates tenant without touching the cache", func(t *testing.T) {
		svc, repo, cache := newTenantService()
		repo.On("ExistsBySubdomain", ctx, "acme").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*identity.Tenant")).Return(nil)

		resp, err := svc.Create(ctx, CreateTenantRequest{Subdomain: "acme", Name: "Acme Corp"})

		require.NoError(t, err)
		assert.Equal(t, "acme", resp.Subdomain)
		assert.Equal(t, "Acme Corp", resp.Name)
		assert.True(t, resp.IsActive)
		cache.AssertNotCalled(t, "Evict", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate subdomain", func(t *testing.T) {
		svc, repo, _ := newTenantService()
		repo.On("ExistsBySubdomain", ctx, "acme").Return(true, nil)

		_, err := svc.Create(ctx, CreateTenantRequest{Subdomain: "acme", Name: "Acme Corp"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid subdomain", func(t *testing.T) {
		svc, repo, _ := newTenantService()
		repo.On("ExistsBySubdomain", ctx, "-bad-").Return(false, nil)

		_, err := svc.Create(ctx, CreateTenantRequest{Subdomain: "-bad-", Name: "Bad"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_SUBDOMAIN", domainErr.Code)
	})
}

func TestTenantServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivation evicts the cached configuration", func(t *testing.T) {
		svc, repo, cache := newTenantService()
		tenant, err := identitydomain.NewTenant("acme", "Acme Corp")
		require.NoError(t, err)

		repo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)
		repo.On("Save", ctx, tenant).Return(nil)
		cache.On("Evict", ctx, "acme").Return(nil)

		resp, err := svc.Update(ctx, tenant.ID, UpdateTenantRequest{Name: "Acme Corp", IsActive: false})

		require.NoError(t, err)
		assert.False(t, resp.IsActive)
		cache.AssertExpectations(t)
	})

	t.Run("eviction failure does not fail the mutation", func(t *testing.T) {
		svc, repo, cache := newTenantService()
		tenant, err := identitydomain.NewTenant("acme", "Acme Corp")
		require.NoError(t, err)

		repo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)
		repo.On("Save", ctx, tenant).Return(nil)
		cache.On("Evict", ctx, "acme").Return(errors.New("cache down"))

		resp, err := svc.Update(ctx, tenant.ID, UpdateTenantRequest{Name: "Renamed", IsActive: true})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", resp.Name)
	})
}

func TestTenantServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and evicts", func(t *testing.T) {
		svc, repo, cache := newTenantService()
		tenant, err := identitydomain.NewTenant("acme", "Acme Corp")
		require.NoError(t, err)

		repo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)
		repo.On("Delete", ctx, tenant.ID).Return(nil)
		cache.On("Evict", ctx, "acme").Return(nil)

		require.NoError(t, svc.Delete(ctx, tenant.ID))
		cache.AssertExpectations(t)
	})

	t.Run("missing tenant is reported before any delete", func(t *testing.T) {
		svc, repo, cache := newTenantService()
		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		err := svc.Delete(ctx, id)

		require.ErrorIs(t, err, shared.ErrNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		cache.AssertNotCalled(t, "Evict", mock.Anything, mock.Anything)
	})
}
