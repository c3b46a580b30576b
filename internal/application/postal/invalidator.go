package postal

import (
	"context"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/identity"
	"github.com/postalis/backend/internal/domain/postal"
	"go.uber.org/zap"
)

// cacheInvalidator walks the assignment join to find every tenant whose
// cached configuration a catalog write has made stale, and evicts each one.
// A failed eviction is logged but never aborts the mutation that triggered
// it, since the write itself has already committed.
type cacheInvalidator struct {
	assignmentRepo postal.AssignmentRepository
	tenantRepo     identity.TenantRepository
	cache          postal.ConfigCache
	logger         *zap.Logger
}

func newCacheInvalidator(
	assignmentRepo postal.AssignmentRepository,
	tenantRepo identity.TenantRepository,
	cache postal.ConfigCache,
	logger *zap.Logger,
) *cacheInvalidator {
	return &cacheInvalidator{
		assignmentRepo: assignmentRepo,
		tenantRepo:     tenantRepo,
		cache:          cache,
		logger:         logger,
	}
}

// EvictByOption evicts the cache entry of every tenant that has the given
// option enabled. Evicting a key the cache no longer holds is a no-op.
func (i *cacheInvalidator) EvictByOption(ctx context.Context, kind postal.OptionKind, optionID uuid.UUID) {
	tenantIDs, err := i.assignmentRepo.FindTenantIDsByOption(ctx, kind, optionID)
	if err != nil {
		i.logger.Error("failed to enumerate tenants for cache invalidation",
			zap.String("kind", string(kind)),
			zap.String("option_id", optionID.String()),
			zap.Error(err))
		return
	}
	if len(tenantIDs) == 0 {
		return
	}

	tenants, err := i.tenantRepo.FindByIDs(ctx, tenantIDs)
	if err != nil {
		i.logger.Error("failed to resolve tenants for cache invalidation",
			zap.String("kind", string(kind)),
			zap.String("option_id", optionID.String()),
			zap.Error(err))
		return
	}

	for _, tenant := range tenants {
		i.EvictTenant(ctx, tenant.Subdomain)
	}
}

// EvictTenantIDs evicts the cache entries of the given tenants. Used when
// the caller captured the fan-out set before deleting the assignments that
// defined it.
func (i *cacheInvalidator) EvictTenantIDs(ctx context.Context, tenantIDs []uuid.UUID) {
	if len(tenantIDs) == 0 {
		return
	}
	tenants, err := i.tenantRepo.FindByIDs(ctx, tenantIDs)
	if err != nil {
		i.logger.Error("failed to resolve tenants for cache invalidation", zap.Error(err))
		return
	}
	for _, tenant := range tenants {
		i.EvictTenant(ctx, tenant.Subdomain)
	}
}

// EvictTenant evicts a single tenant's cache entry by subdomain
func (i *cacheInvalidator) EvictTenant(ctx context.Context, subdomain string) {
	if err := i.cache.Evict(ctx, subdomain); err != nil {
		i.logger.Error("failed to evict tenant configuration cache entry",
			zap.String("tenant_key", subdomain),
			zap.Error(err))
	}
}

// EvictAll clears the whole cache. Used when a write's blast radius cannot
// be enumerated through the assignment table, such as an envelope weight
// change that alters every tenant's admissible envelope list.
func (i *cacheInvalidator) EvictAll(ctx context.Context) {
	if err := i.cache.EvictAll(ctx); err != nil {
		i.logger.Error("failed to clear tenant configuration cache", zap.Error(err))
	}
}
