package postal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/identity"
	"github.com/postalis/backend/internal/domain/postal"
	"github.com/postalis/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OptionService is the mutation gateway for one flat catalog option kind.
// Every successful write is followed by eviction of the cache entries of the
// tenants that have the touched option enabled; the write and the eviction
// are sequential, not atomic, and an eviction failure is logged rather than
// rolled back.
//
// One generic implementation serves colors, sides and speeds; envelopes
// carry weights and get their own service.
type OptionService[T postal.CatalogOption] struct {
	kind        postal.OptionKind
	repo        postal.OptionRepository[T]
	invalidator *cacheInvalidator
	newOption   func(code, label string, sortOrder int) (*T, error)
	updOption   func(option *T, label string, sortOrder int, isActive bool) error
}

func newOptionService[T postal.CatalogOption](
	kind postal.OptionKind,
	repo postal.OptionRepository[T],
	assignmentRepo postal.AssignmentRepository,
	tenantRepo identity.TenantRepository,
	cache postal.ConfigCache,
	logger *zap.Logger,
	newOption func(code, label string, sortOrder int) (*T, error),
	updOption func(option *T, label string, sortOrder int, isActive bool) error,
) *OptionService[T] {
	return &OptionService[T]{
		kind:        kind,
		repo:        repo,
		invalidator: newCacheInvalidator(assignmentRepo, tenantRepo, cache, logger),
		newOption:   newOption,
		updOption:   updOption,
	}
}

// NewPrintColorService creates the mutation gateway for print color options
func NewPrintColorService(
	repo postal.OptionRepository[postal.PrintColorOption],
	assignmentRepo postal.AssignmentRepository,
	tenantRepo identity.TenantRepository,
	cache postal.ConfigCache,
	logger *zap.Logger,
) *OptionService[postal.PrintColorOption] {
	return newOptionService(postal.KindColor, repo, assignmentRepo, tenantRepo, cache, logger,
		postal.NewPrintColorOption, (*postal.PrintColorOption).Update)
}

// NewPrintSideService creates the mutation gateway for print side options
func NewPrintSideService(
	repo postal.OptionRepository[postal.PrintSideOption],
	assignmentRepo postal.AssignmentRepository,
	tenantRepo identity.TenantRepository,
	cache postal.ConfigCache,
	logger *zap.Logger,
) *OptionService[postal.PrintSideOption] {
	return newOptionService(postal.KindSide, repo, assignmentRepo, tenantRepo, cache, logger,
		postal.NewPrintSideOption, (*postal.PrintSideOption).Update)
}

// NewPostageSpeedService creates the mutation gateway for delivery speeds
func NewPostageSpeedService(
	repo postal.OptionRepository[postal.PostageSpeedOption],
	assignmentRepo postal.AssignmentRepository,
	tenantRepo identity.TenantRepository,
	cache postal.ConfigCache,
	logger *zap.Logger,
) *OptionService[postal.PostageSpeedOption] {
	return newOptionService(postal.KindSpeed, repo, assignmentRepo, tenantRepo, cache, logger,
		postal.NewPostageSpeedOption, (*postal.PostageSpeedOption).Update)
}

// Create creates a new catalog option. A freshly created option is not yet
// assigned to any tenant, so no cache entry can be stale.
func (s *OptionService[T]) Create(ctx context.Context, req CreateOptionRequest) (*OptionResponse, error) {
	if _, err := s.repo.FindByCode(ctx, req.Code); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Option with this code already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	option, err := s.newOption(req.Code, req.Label, req.SortOrder)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, option); err != nil {
		return nil, err
	}

	response := ToOptionResponse(*option)
	return &response, nil
}

// GetByID retrieves an option by id
func (s *OptionService[T]) GetByID(ctx context.Context, id uuid.UUID) (*OptionResponse, error) {
	option, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOptionResponse(*option)
	return &response, nil
}

// List retrieves all options of this kind, ordered by sort order
func (s *OptionService[T]) List(ctx context.Context) ([]OptionResponse, error) {
	options, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToOptionResponses(options), nil
}

// Update updates an option and evicts every tenant that has it enabled
func (s *OptionService[T]) Update(ctx context.Context, id uuid.UUID, req UpdateOptionRequest) (*OptionResponse, error) {
	option, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.updOption(option, req.Label, req.SortOrder, req.IsActive); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, option); err != nil {
		return nil, err
	}

	s.invalidator.EvictByOption(ctx, s.kind, id)

	response := ToOptionResponse(*option)
	return &response, nil
}

// Delete deletes an option, removes its assignments and evicts every tenant
// that had it enabled. Assignments go first so a resolve racing the delete
// cannot rebuild a view holding the vanished record.
func (s *OptionService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	tenantIDs, err := s.invalidator.assignmentRepo.FindTenantIDsByOption(ctx, s.kind, id)
	if err != nil {
		return err
	}

	if err := s.invalidator.assignmentRepo.DeleteByOption(ctx, s.kind, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidator.EvictTenantIDs(ctx, tenantIDs)
	return nil
}
