package postal

import (
	"context"

	"github.com/postalis/backend/internal/domain/postal"
	"github.com/postalis/backend/internal/domain/shared"
)

// PostageService computes postage quotes. It validates the caller's selected
// option ids against the tenant's resolved configuration before handing the
// pure computation to the domain, so a tenant can never be quoted an option
// it does not have enabled.
type PostageService struct {
	configService *TenantConfigService
	rateRepo      postal.PostageRateRepository
}

// NewPostageService creates a new PostageService
func NewPostageService(configService *TenantConfigService, rateRepo postal.PostageRateRepository) *PostageService {
	return &PostageService{
		configService: configService,
		rateRepo:      rateRepo,
	}
}

// Quote resolves the postage for a submission against the tenant's enabled
// options and the active rate table.
func (s *PostageService) Quote(ctx context.Context, subdomain string, req QuoteRequest) (*QuoteResponse, error) {
	sideMode, err := postal.ParsePrintSideMode(req.SideMode)
	if err != nil {
		return nil, err
	}

	view, err := s.configService.Resolve(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	if !view.HasSideMode(sideMode) {
		return nil, shared.NewDomainError("OPTION_NOT_ENABLED", "Print side mode is not enabled for this tenant")
	}

	envelope, ok := view.Envelope(req.EnvelopeID)
	if !ok {
		return nil, shared.NewDomainError("OPTION_NOT_ENABLED", "Envelope is not enabled for this tenant")
	}

	if req.SpeedID != nil {
		if _, ok := view.Speed(*req.SpeedID); !ok {
			return nil, shared.NewDomainError("OPTION_NOT_ENABLED", "Delivery speed is not enabled for this tenant")
		}
	}

	rates, err := s.rateRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := postal.ResolvePostage(postal.PostageInput{
		SourcePageCount:   req.SourcePageCount,
		PagesPerRecipient: req.PagesPerRecipient,
		AnnexPageCount:    req.AnnexPageCount,
		SideMode:          sideMode,
	}, *envelope, req.SpeedID, rates)
	if err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// ListOfferedEnvelopes returns the tenant's enabled envelopes that can carry
// the submission's sheet weight, preserving sort order.
func (s *PostageService) ListOfferedEnvelopes(ctx context.Context, subdomain string, req OfferedEnvelopesRequest) ([]EnvelopeResponse, error) {
	sideMode, err := postal.ParsePrintSideMode(req.SideMode)
	if err != nil {
		return nil, err
	}

	input := postal.PostageInput{
		SourcePageCount:   req.PagesPerRecipient,
		PagesPerRecipient: req.PagesPerRecipient,
		AnnexPageCount:    req.AnnexPageCount,
		SideMode:          sideMode,
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	view, err := s.configService.Resolve(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	admissible := view.AdmissibleEnvelopes(input.SheetWeightGrams())
	out := make([]EnvelopeResponse, len(admissible))
	for i := range admissible {
		out[i] = ToEnvelopeResponse(&admissible[i])
	}
	return out, nil
}
