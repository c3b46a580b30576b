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

// EnvelopeService is the mutation gateway for envelope formats. Envelope
// weights feed the admissibility filter of every tenant's resolved view, so
// a weight change clears the whole cache instead of walking assignments;
// other edits evict only the tenants that have the envelope enabled.
type EnvelopeService struct {
	repo        postal.OptionRepository[postal.EnvelopeFormat]
	invalidator *cacheInvalidator
}

// NewEnvelopeService creates a new EnvelopeService
func NewEnvelopeService(
	repo postal.OptionRepository[postal.EnvelopeFormat],
	assignmentRepo postal.AssignmentRepository,
	tenantRepo identity.TenantRepository,
	cache postal.ConfigCache,
	logger *zap.Logger,
) *EnvelopeService {
	return &EnvelopeService{
		repo:        repo,
		invalidator: newCacheInvalidator(assignmentRepo, tenantRepo, cache, logger),
	}
}

// Create creates a new envelope format
func (s *EnvelopeService) Create(ctx context.Context, req CreateEnvelopeRequest) (*EnvelopeResponse, error) {
	if _, err := s.repo.FindByCode(ctx, req.Code); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Envelope with this code already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	envelope, err := postal.NewEnvelopeFormat(req.Code, req.Label, req.MaxCarryWeightGrams, req.SelfWeightGrams, req.SortOrder)
	if err != nil {
		return nil, err
	}
	if req.Window != nil {
		envelope.SetWindow(postal.AddressWindow{
			X:      req.Window.X,
			Y:      req.Window.Y,
			Height: req.Window.Height,
			Width:  req.Window.Width,
		})
	}
	if err := s.repo.Save(ctx, envelope); err != nil {
		return nil, err
	}

	response := ToEnvelopeResponse(envelope)
	return &response, nil
}

// GetByID retrieves an envelope format by id
func (s *EnvelopeService) GetByID(ctx context.Context, id uuid.UUID) (*EnvelopeResponse, error) {
	envelope, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEnvelopeResponse(envelope)
	return &response, nil
}

// List retrieves all envelope formats, ordered by sort order
func (s *EnvelopeService) List(ctx context.Context) ([]EnvelopeResponse, error) {
	envelopes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EnvelopeResponse, len(envelopes))
	for i := range envelopes {
		out[i] = ToEnvelopeResponse(&envelopes[i])
	}
	return out, nil
}

// Update updates an envelope format. A weight change alters which envelopes
// every tenant is offered, a blast radius the assignment table cannot
// enumerate, so the whole cache is cleared in that case.
func (s *EnvelopeService) Update(ctx context.Context, id uuid.UUID, req UpdateEnvelopeRequest) (*EnvelopeResponse, error) {
	envelope, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	weightsChanged := envelope.MaxCarryWeightGrams != req.MaxCarryWeightGrams ||
		envelope.SelfWeightGrams != req.SelfWeightGrams

	if err := envelope.Update(req.Label, req.MaxCarryWeightGrams, req.SelfWeightGrams, req.SortOrder, req.IsActive); err != nil {
		return nil, err
	}
	if req.Window != nil {
		envelope.SetWindow(postal.AddressWindow{
			X:      req.Window.X,
			Y:      req.Window.Y,
			Height: req.Window.Height,
			Width:  req.Window.Width,
		})
	}
	if err := s.repo.Save(ctx, envelope); err != nil {
		return nil, err
	}

	if weightsChanged {
		s.invalidator.EvictAll(ctx)
	} else {
		s.invalidator.EvictByOption(ctx, postal.KindEnvelope, id)
	}

	response := ToEnvelopeResponse(envelope)
	return &response, nil
}

// Delete deletes an envelope format along with its assignments and evicts
// every tenant that had it enabled
func (s *EnvelopeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	tenantIDs, err := s.invalidator.assignmentRepo.FindTenantIDsByOption(ctx, postal.KindEnvelope, id)
	if err != nil {
		return err
	}

	if err := s.invalidator.assignmentRepo.DeleteByOption(ctx, postal.KindEnvelope, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidator.EvictTenantIDs(ctx, tenantIDs)
	return nil
}
