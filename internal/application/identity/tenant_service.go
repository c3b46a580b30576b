package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/identity"
	"github.com/postalis/backend/internal/domain/postal"
	"github.com/postalis/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CreateTenantRequest represents a request to register a new tenant
type CreateTenantRequest struct {
	Subdomain string `json:"subdomain" binding:"required,min=1,max=63"`
	Name      string `json:"name" binding:"required,min=1,max=200"`
}

// UpdateTenantRequest represents a request to update a tenant
type UpdateTenantRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	IsActive bool   `json:"is_active"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID        uuid.UUID `json:"id"`
	Subdomain string    `json:"subdomain"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTenantResponse converts a domain Tenant to TenantResponse
func ToTenantResponse(t *identity.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Subdomain: t.Subdomain,
		Name:      t.Name,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// TenantService manages tenant records. Tenant mutations evict the tenant's
// cached configuration so renames and deactivations become visible on the
// next resolve.
type TenantService struct {
	repo   identity.TenantRepository
	cache  postal.ConfigCache
	logger *zap.Logger
}

// NewTenantService creates a new TenantService
func NewTenantService(repo identity.TenantRepository, cache postal.ConfigCache, logger *zap.Logger) *TenantService {
	return &TenantService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Create registers a new tenant
func (s *TenantService) Create(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	exists, err := s.repo.ExistsBySubdomain(ctx, req.Subdomain)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Tenant with this subdomain already exists")
	}

	tenant, err := identity.NewTenant(req.Subdomain, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// GetBySubdomain retrieves a tenant by its subdomain
func (s *TenantService) GetBySubdomain(ctx context.Context, subdomain string) (*TenantResponse, error) {
	tenant, err := s.repo.FindBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// List retrieves all tenants
func (s *TenantService) List(ctx context.Context) ([]TenantResponse, error) {
	tenants, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TenantResponse, len(tenants))
	for i := range tenants {
		out[i] = ToTenantResponse(&tenants[i])
	}
	return out, nil
}

// Update renames or toggles a tenant, then evicts its cached configuration
func (s *TenantService) Update(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error) {
	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tenant.Rename(req.Name); err != nil {
		return nil, err
	}
	if req.IsActive {
		tenant.IsActive = true
	} else {
		tenant.Deactivate()
	}

	if err := s.repo.Save(ctx, tenant); err != nil {
		return nil, err
	}
	s.evict(ctx, tenant.Subdomain)

	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// Delete removes a tenant and evicts its cached configuration
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) error {
	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.evict(ctx, tenant.Subdomain)
	return nil
}

func (s *TenantService) evict(ctx context.Context, subdomain string) {
	if err := s.cache.Evict(ctx, subdomain); err != nil {
		s.logger.Error("Failed to evict tenant configuration from cache",
			zap.String("subdomain", subdomain),
			zap.Error(err))
	}
}
