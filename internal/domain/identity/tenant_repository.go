package identity

import (
	"context"

	"github.com/google/uuid"
)

// TenantRepository defines the persistence operations for tenants
type TenantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)
	FindBySubdomain(ctx context.Context, subdomain string) (*Tenant, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Tenant, error)
	FindAll(ctx context.Context) ([]Tenant, error)
	ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error)
	Save(ctx context.Context, tenant *Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
}
