package postal

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/identity"
	"github.com/postalis/backend/internal/domain/postal"
	"github.com/postalis/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TenantConfigService resolves a tenant's enabled option set through the
// configuration cache. Reads go cache-first; a miss loads the assignments
// and joined catalog records from the store, filters inactive records,
// orders by sort order and stores the rebuilt view. Store failures are
// returned to the caller and never cached.
type TenantConfigService struct {
	tenantRepo     identity.TenantRepository
	assignmentRepo postal.AssignmentRepository
	colorRepo      postal.OptionRepository[postal.PrintColorOption]
	sideRepo       postal.OptionRepository[postal.PrintSideOption]
	envelopeRepo   postal.OptionRepository[postal.EnvelopeFormat]
	speedRepo      postal.OptionRepository[postal.PostageSpeedOption]
	cache          postal.ConfigCache
	logger         *zap.Logger
}

// NewTenantConfigService creates a new TenantConfigService
func NewTenantConfigService(
	tenantRepo identity.TenantRepository,
	assignmentRepo postal.AssignmentRepository,
	colorRepo postal.OptionRepository[postal.PrintColorOption],
	sideRepo postal.OptionRepository[postal.PrintSideOption],
	envelopeRepo postal.OptionRepository[postal.EnvelopeFormat],
	speedRepo postal.OptionRepository[postal.PostageSpeedOption],
	cache postal.ConfigCache,
	logger *zap.Logger,
) *TenantConfigService {
	return &TenantConfigService{
		tenantRepo:     tenantRepo,
		assignmentRepo: assignmentRepo,
		colorRepo:      colorRepo,
		sideRepo:       sideRepo,
		envelopeRepo:   envelopeRepo,
		speedRepo:      speedRepo,
		cache:          cache,
		logger:         logger,
	}
}

// Resolve returns the tenant's configuration view, rebuilding it from the
// catalog store on a cache miss. Two concurrent rebuilds of the same key may
// both store their result; last write wins, and either result is valid.
func (s *TenantConfigService) Resolve(ctx context.Context, subdomain string) (*postal.ConfigurationView, error) {
	view, found, err := s.cache.Get(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	if found {
		return view, nil
	}

	tenant, err := s.tenantRepo.FindBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	view, err = s.buildView(ctx, tenant)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, subdomain, view); err != nil {
		// The view is still correct; the next resolve rebuilds it.
		s.logger.Warn("failed to store tenant configuration in cache",
			zap.String("tenant_key", subdomain),
			zap.Error(err))
	}
	return view, nil
}

// ReplaceAssignments swaps the tenant's enabled set for one catalog kind and
// evicts that tenant's cache entry, so the next resolve observes the new set.
func (s *TenantConfigService) ReplaceAssignments(ctx context.Context, tenantID uuid.UUID, req ReplaceAssignmentsRequest) error {
	kind, err := postal.ParseOptionKind(req.Kind)
	if err != nil {
		return err
	}

	tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return err
	}

	if err := s.validateOptionIDs(ctx, kind, req.OptionIDs); err != nil {
		return err
	}

	if err := s.assignmentRepo.ReplaceForTenant(ctx, tenantID, kind, req.OptionIDs); err != nil {
		return err
	}

	if err := s.cache.Evict(ctx, tenant.Subdomain); err != nil {
		s.logger.Error("failed to evict tenant configuration cache entry",
			zap.String("tenant_key", tenant.Subdomain),
			zap.Error(err))
	}
	return nil
}

// buildView loads the tenant's assignments and the catalog records they
// reference, keeping only active records, each list ordered by sort order.
func (s *TenantConfigService) buildView(ctx context.Context, tenant *identity.Tenant) (*postal.ConfigurationView, error) {
	assignments, err := s.assignmentRepo.FindByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, err
	}

	byKind := make(map[postal.OptionKind][]uuid.UUID)
	for _, a := range assignments {
		byKind[a.Kind] = append(byKind[a.Kind], a.OptionID)
	}

	colors, err := loadEnabled(ctx, s.colorRepo, byKind[postal.KindColor])
	if err != nil {
		return nil, err
	}
	sides, err := loadEnabled(ctx, s.sideRepo, byKind[postal.KindSide])
	if err != nil {
		return nil, err
	}
	envelopes, err := loadEnabled(ctx, s.envelopeRepo, byKind[postal.KindEnvelope])
	if err != nil {
		return nil, err
	}
	speeds, err := loadEnabled(ctx, s.speedRepo, byKind[postal.KindSpeed])
	if err != nil {
		return nil, err
	}

	return &postal.ConfigurationView{
		TenantKey: tenant.Subdomain,
		Colors:    colors,
		Sides:     sides,
		Envelopes: envelopes,
		Speeds:    speeds,
	}, nil
}

// validateOptionIDs rejects assignment requests referencing catalog ids that
// do not exist, so orphaned assignments are never written.
func (s *TenantConfigService) validateOptionIDs(ctx context.Context, kind postal.OptionKind, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	var found int
	switch kind {
	case postal.KindColor:
		options, err := s.colorRepo.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		found = len(options)
	case postal.KindSide:
		options, err := s.sideRepo.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		found = len(options)
	case postal.KindEnvelope:
		options, err := s.envelopeRepo.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		found = len(options)
	case postal.KindSpeed:
		options, err := s.speedRepo.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		found = len(options)
	}
	if found != len(ids) {
		return shared.NewDomainError("UNKNOWN_OPTION", "Assignment references an unknown "+string(kind)+" option")
	}
	return nil
}

// loadEnabled fetches the assigned records of one kind and keeps the active
// ones, ordered by sort order then code for a stable view.
func loadEnabled[T postal.CatalogOption](ctx context.Context, repo postal.OptionRepository[T], ids []uuid.UUID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	records, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	enabled := make([]T, 0, len(records))
	for _, r := range records {
		if r.Active() {
			enabled = append(enabled, r)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		if enabled[i].Order() != enabled[j].Order() {
			return enabled[i].Order() < enabled[j].Order()
		}
		return enabled[i].OptionCode() < enabled[j].OptionCode()
	})
	return enabled, nil
}
