package postal

import (
	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// WeightPerSheetGrams is the fixed weight of one physical sheet of paper.
const WeightPerSheetGrams = 5

// PostageInput carries the page facts of a print submission. Separation is
// how many source pages go to each recipient; annex pages are appended to
// every recipient's envelope.
type PostageInput struct {
	SourcePageCount   int
	PagesPerRecipient int
	AnnexPageCount    int
	SideMode          PrintSideMode
}

// Validate checks the page counts and side mode
func (in PostageInput) Validate() error {
	if in.SourcePageCount <= 0 {
		return shared.NewDomainError("INVALID_PAGE_COUNT", "Source page count must be positive")
	}
	if in.PagesPerRecipient <= 0 {
		return shared.NewDomainError("INVALID_PAGE_COUNT", "Pages per recipient must be positive")
	}
	if in.AnnexPageCount < 0 {
		return shared.NewDomainError("INVALID_PAGE_COUNT", "Annex page count cannot be negative")
	}
	if !in.SideMode.IsValid() {
		return shared.NewDomainError("INVALID_SIDE_MODE", "Print side mode must be simplex or duplex")
	}
	return nil
}

// RecipientCount derives how many envelopes the submission produces
func (in PostageInput) RecipientCount() int {
	return ceilDiv(in.SourcePageCount, in.PagesPerRecipient)
}

// SheetsPerEnvelope derives the physical leaf count of one envelope.
// Duplex halves the page-to-sheet ratio, rounding an odd page up.
func (in PostageInput) SheetsPerEnvelope() int {
	pages := in.PagesPerRecipient + in.AnnexPageCount
	if in.SideMode == SideDuplex {
		return ceilDiv(pages, 2)
	}
	return pages
}

// SheetWeightGrams derives the paper weight of one envelope's content
func (in PostageInput) SheetWeightGrams() int {
	return in.SheetsPerEnvelope() * WeightPerSheetGrams
}

// Quote is the result of a postage resolution.
type Quote struct {
	RecipientCount    int
	SheetsPerEnvelope int
	SheetWeightGrams  int
	TotalWeightGrams  int
	Rate              PostageRate
	TotalCost         decimal.Decimal
}

// ResolvePostage turns page facts and the chosen envelope and speed into a
// billable quote against the given rate table. It is pure: no I/O, no
// mutation of its inputs.
//
// The envelope must carry the sheet weight alone; the carrier prices the
// assembled item, so the envelope's own weight joins the rate lookup.
func ResolvePostage(in PostageInput, envelope EnvelopeFormat, speedID *uuid.UUID, rates []PostageRate) (*Quote, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	sheetWeight := in.SheetWeightGrams()
	if !envelope.CanCarry(sheetWeight) {
		return nil, shared.ErrEnvelopeOverCapacity
	}

	totalWeight := sheetWeight + envelope.SelfWeightGrams
	rate := SelectRate(rates, totalWeight, speedID)
	if rate == nil {
		return nil, shared.ErrNoApplicableRate
	}

	recipients := in.RecipientCount()
	return &Quote{
		RecipientCount:    recipients,
		SheetsPerEnvelope: in.SheetsPerEnvelope(),
		SheetWeightGrams:  sheetWeight,
		TotalWeightGrams:  totalWeight,
		Rate:              *rate,
		TotalCost:         rate.Price.Mul(decimal.NewFromInt(int64(recipients))),
	}, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
