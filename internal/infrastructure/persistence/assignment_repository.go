package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/postal"
	"gorm.io/gorm"
)

// GormAssignmentRepository implements postal.AssignmentRepository using GORM
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GormAssignmentRepository
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// FindByTenant finds all assignments for a tenant
func (r *GormAssignmentRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]postal.TenantOptionAssignment, error) {
	var assignments []postal.TenantOptionAssignment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// FindByTenantAndKind finds a tenant's assignments for one catalog type
func (r *GormAssignmentRepository) FindByTenantAndKind(ctx context.Context, tenantID uuid.UUID, kind postal.OptionKind) ([]postal.TenantOptionAssignment, error) {
	var assignments []postal.TenantOptionAssignment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND kind = ?", tenantID, kind).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// FindTenantIDsByOption returns the distinct tenants that have the option
// enabled. This is the fan-out query behind targeted cache invalidation.
func (r *GormAssignmentRepository) FindTenantIDsByOption(ctx context.Context, kind postal.OptionKind, optionID uuid.UUID) ([]uuid.UUID, error) {
	var tenantIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&postal.TenantOptionAssignment{}).
		Distinct("tenant_id").
		Where("kind = ? AND option_id = ?", kind, optionID).
		Pluck("tenant_id", &tenantIDs).Error; err != nil {
		return nil, err
	}
	return tenantIDs, nil
}

// ReplaceForTenant swaps a tenant's enabled option set for one catalog type
// inside a single transaction: delete everything of that kind, then insert
// the selected rows.
func (r *GormAssignmentRepository) ReplaceForTenant(ctx context.Context, tenantID uuid.UUID, kind postal.OptionKind, optionIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("tenant_id = ? AND kind = ?", tenantID, kind).
			Delete(&postal.TenantOptionAssignment{}).Error; err != nil {
			return err
		}
		if len(optionIDs) == 0 {
			return nil
		}
		assignments := make([]postal.TenantOptionAssignment, 0, len(optionIDs))
		for _, optionID := range optionIDs {
			assignment, err := postal.NewTenantOptionAssignment(tenantID, kind, optionID)
			if err != nil {
				return err
			}
			assignments = append(assignments, *assignment)
		}
		return tx.Create(&assignments).Error
	})
}

// DeleteByOption removes every assignment referencing a catalog option.
// Called when the option itself is deleted.
func (r *GormAssignmentRepository) DeleteByOption(ctx context.Context, kind postal.OptionKind, optionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("kind = ? AND option_id = ?", kind, optionID).
		Delete(&postal.TenantOptionAssignment{}).Error
}

// DeleteByTenant removes every assignment of a tenant
func (r *GormAssignmentRepository) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&postal.TenantOptionAssignment{}).Error
}

// Ensure GormAssignmentRepository implements postal.AssignmentRepository
var _ postal.AssignmentRepository = (*GormAssignmentRepository)(nil)
