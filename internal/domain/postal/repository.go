package postal

import (
	"context"

	"github.com/google/uuid"
)

// OptionRepository defines the persistence operations shared by every flat
// catalog option entity. The type parameter is the concrete entity so that
// one GORM implementation serves colors, sides, speeds and envelopes.
type OptionRepository[T CatalogOption] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindByCode(ctx context.Context, code string) (*T, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error)
	FindAll(ctx context.Context) ([]T, error)
	Save(ctx context.Context, option *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PostageRateRepository defines the persistence operations for postage
// rates. Rates are global, never tenant-scoped.
type PostageRateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PostageRate, error)
	FindByCode(ctx context.Context, code string) (*PostageRate, error)
	// FindByBand matches the importer's reconciliation triple.
	FindByBand(ctx context.Context, fullName string, weightMinGrams, weightMaxGrams int) (*PostageRate, error)
	FindAll(ctx context.Context) ([]PostageRate, error)
	FindActive(ctx context.Context) ([]PostageRate, error)
	Save(ctx context.Context, rate *PostageRate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssignmentRepository defines the persistence operations for tenant option
// assignments.
type AssignmentRepository interface {
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]TenantOptionAssignment, error)
	FindByTenantAndKind(ctx context.Context, tenantID uuid.UUID, kind OptionKind) ([]TenantOptionAssignment, error)
	// FindTenantIDsByOption answers the invalidation fan-out question:
	// which tenants have this option enabled.
	FindTenantIDsByOption(ctx context.Context, kind OptionKind, optionID uuid.UUID) ([]uuid.UUID, error)
	// ReplaceForTenant swaps a tenant's enabled set for one kind inside a
	// single transaction (delete all, then insert the selected rows).
	ReplaceForTenant(ctx context.Context, tenantID uuid.UUID, kind OptionKind, optionIDs []uuid.UUID) error
	DeleteByOption(ctx context.Context, kind OptionKind, optionID uuid.UUID) error
	DeleteByTenant(ctx context.Context, tenantID uuid.UUID) error
}
