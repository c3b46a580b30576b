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

// RateService is the mutation gateway for postage rates. Rates are global
// and carry no tenant assignment table, so there is no fan-out to enumerate:
// every mutation clears the whole configuration cache.
type RateService struct {
	repo        postal.PostageRateRepository
	invalidator *cacheInvalidator
}

// NewRateService creates a new RateService
func NewRateService(
	repo postal.PostageRateRepository,
	assignmentRepo postal.AssignmentRepository,
	tenantRepo identity.TenantRepository,
	cache postal.ConfigCache,
	logger *zap.Logger,
) *RateService {
	return &RateService{
		repo:        repo,
		invalidator: newCacheInvalidator(assignmentRepo, tenantRepo, cache, logger),
	}
}

// Create creates a new postage rate
func (s *RateService) Create(ctx context.Context, req CreateRateRequest) (*RateResponse, error) {
	code := req.Code
	if code == "" {
		code = DeriveRateCode(req.FullName)
	}
	if _, err := s.repo.FindByCode(ctx, code); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Rate with this code already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	rate, err := postal.NewPostageRate(req.FullName, code, req.WeightMinGrams, req.WeightMaxGrams, req.Price)
	if err != nil {
		return nil, err
	}
	rate.EnvelopeFormatCode = req.EnvelopeFormatCode
	rate.SpeedID = req.SpeedID
	rate.SortOrder = req.SortOrder

	if err := s.repo.Save(ctx, rate); err != nil {
		return nil, err
	}

	s.invalidator.EvictAll(ctx)

	response := ToRateResponse(rate)
	return &response, nil
}

// GetByID retrieves a postage rate by id
func (s *RateService) GetByID(ctx context.Context, id uuid.UUID) (*RateResponse, error) {
	rate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToRateResponse(rate)
	return &response, nil
}

// List retrieves all postage rates
func (s *RateService) List(ctx context.Context) ([]RateResponse, error) {
	rates, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToRateResponses(rates), nil
}

// Update updates a postage rate
func (s *RateService) Update(ctx context.Context, id uuid.UUID, req UpdateRateRequest) (*RateResponse, error) {
	rate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName == "" {
		return nil, shared.NewDomainError("INVALID_RATE_NAME", "Rate name cannot be empty")
	}
	if err := postal.ValidateWeightRange(req.WeightMinGrams, req.WeightMaxGrams); err != nil {
		return nil, err
	}
	if err := rate.SetPrice(req.Price); err != nil {
		return nil, err
	}
	rate.FullName = req.FullName
	rate.WeightMinGrams = req.WeightMinGrams
	rate.WeightMaxGrams = req.WeightMaxGrams
	rate.SortOrder = req.SortOrder
	rate.IsActive = req.IsActive
	rate.SetSpeed(req.SpeedID)

	if err := s.repo.Save(ctx, rate); err != nil {
		return nil, err
	}

	s.invalidator.EvictAll(ctx)

	response := ToRateResponse(rate)
	return &response, nil
}

// Delete deletes a postage rate
func (s *RateService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidator.EvictAll(ctx)
	return nil
}

// DetectOverlaps reports every pair of active rates whose weight bands
// intersect within the same envelope and speed scope. Storage does not
// enforce disjoint bands; admins run this after manual edits or imports.
func (s *RateService) DetectOverlaps(ctx context.Context) ([]RateOverlapResponse, error) {
	rates, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	overlaps := postal.DetectRateOverlaps(rates)
	out := make([]RateOverlapResponse, len(overlaps))
	for i := range overlaps {
		out[i] = RateOverlapResponse{
			First:  ToRateResponse(&overlaps[i].First),
			Second: ToRateResponse(&overlaps[i].Second),
		}
	}
	return out, nil
}
