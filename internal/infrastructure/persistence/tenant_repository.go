package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/identity"
	"github.com/postalis/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormTenantRepository implements identity.TenantRepository using GORM
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByID finds a tenant by its ID
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	var tenant identity.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// FindBySubdomain finds a tenant by its subdomain
func (r *GormTenantRepository) FindBySubdomain(ctx context.Context, subdomain string) (*identity.Tenant, error) {
	var tenant identity.Tenant
	if err := r.db.WithContext(ctx).
		Where("subdomain = ?", subdomain).
		First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// FindByIDs finds all tenants with the given IDs
func (r *GormTenantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identity.Tenant, error) {
	if len(ids) == 0 {
		return []identity.Tenant{}, nil
	}
	var tenants []identity.Tenant
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// FindAll finds all tenants ordered by subdomain
func (r *GormTenantRepository) FindAll(ctx context.Context) ([]identity.Tenant, error) {
	var tenants []identity.Tenant
	if err := r.db.WithContext(ctx).
		Order("subdomain asc").
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// ExistsBySubdomain checks whether a tenant with the subdomain exists
func (r *GormTenantRepository) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Tenant{}).
		Where("subdomain = ?", subdomain).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a tenant
func (r *GormTenantRepository) Save(ctx context.Context, tenant *identity.Tenant) error {
	return r.db.WithContext(ctx).Save(tenant).Error
}

// Delete removes a tenant by ID
func (r *GormTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.Tenant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormTenantRepository implements identity.TenantRepository
var _ identity.TenantRepository = (*GormTenantRepository)(nil)
