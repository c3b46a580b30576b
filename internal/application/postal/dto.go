package postal

import (
	"time"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/postal"
	"github.com/shopspring/decimal"
)

// CreateOptionRequest represents a request to create a flat catalog option
type CreateOptionRequest struct {
	Code      string `json:"code" binding:"required,min=1,max=50"`
	Label     string `json:"label" binding:"required,min=1,max=200"`
	SortOrder int    `json:"sort_order"`
}

// UpdateOptionRequest represents a request to update a flat catalog option
type UpdateOptionRequest struct {
	Label     string `json:"label" binding:"required,min=1,max=200"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// OptionResponse represents a flat catalog option in API responses
type OptionResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Label     string    `json:"label"`
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"sort_order"`
}

// WindowRequest represents an envelope's address window rectangle
type WindowRequest struct {
	X      int `json:"x" binding:"min=0"`
	Y      int `json:"y" binding:"min=0"`
	Height int `json:"height" binding:"min=0"`
	Width  int `json:"width" binding:"min=0"`
}

// CreateEnvelopeRequest represents a request to create an envelope format
type CreateEnvelopeRequest struct {
	Code                string         `json:"code" binding:"required,min=1,max=50"`
	Label               string         `json:"label" binding:"required,min=1,max=200"`
	MaxCarryWeightGrams int            `json:"max_carry_weight_grams" binding:"required,min=1"`
	SelfWeightGrams     int            `json:"self_weight_grams" binding:"min=0"`
	Window              *WindowRequest `json:"window"`
	SortOrder           int            `json:"sort_order"`
}

// UpdateEnvelopeRequest represents a request to update an envelope format
type UpdateEnvelopeRequest struct {
	Label               string         `json:"label" binding:"required,min=1,max=200"`
	MaxCarryWeightGrams int            `json:"max_carry_weight_grams" binding:"required,min=1"`
	SelfWeightGrams     int            `json:"self_weight_grams" binding:"min=0"`
	Window              *WindowRequest `json:"window"`
	SortOrder           int            `json:"sort_order"`
	IsActive            bool           `json:"is_active"`
}

// EnvelopeResponse represents an envelope format in API responses
type EnvelopeResponse struct {
	ID                  uuid.UUID            `json:"id"`
	Code                string               `json:"code"`
	Label               string               `json:"label"`
	MaxCarryWeightGrams int                  `json:"max_carry_weight_grams"`
	SelfWeightGrams     int                  `json:"self_weight_grams"`
	Window              postal.AddressWindow `json:"window"`
	IsActive            bool                 `json:"is_active"`
	SortOrder           int                  `json:"sort_order"`
}

// CreateRateRequest represents a request to create a postage rate
type CreateRateRequest struct {
	FullName           string          `json:"full_name" binding:"required,min=1,max=200"`
	Code               string          `json:"code" binding:"omitempty,max=50"`
	EnvelopeFormatCode *string         `json:"envelope_format_code" binding:"omitempty,max=50"`
	SpeedID            *uuid.UUID      `json:"speed_id"`
	WeightMinGrams     int             `json:"weight_min_grams" binding:"min=0"`
	WeightMaxGrams     int             `json:"weight_max_grams" binding:"min=0"`
	Price              decimal.Decimal `json:"price" binding:"required"`
	SortOrder          int             `json:"sort_order"`
}

// UpdateRateRequest represents a request to update a postage rate
type UpdateRateRequest struct {
	FullName       string          `json:"full_name" binding:"required,min=1,max=200"`
	SpeedID        *uuid.UUID      `json:"speed_id"`
	WeightMinGrams int             `json:"weight_min_grams" binding:"min=0"`
	WeightMaxGrams int             `json:"weight_max_grams" binding:"min=0"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	SortOrder      int             `json:"sort_order"`
	IsActive       bool            `json:"is_active"`
}

// RateResponse represents a postage rate in API responses
type RateResponse struct {
	ID                 uuid.UUID       `json:"id"`
	FullName           string          `json:"full_name"`
	Code               string          `json:"code"`
	EnvelopeFormatCode *string         `json:"envelope_format_code"`
	SpeedID            *uuid.UUID      `json:"speed_id"`
	WeightMinGrams     int             `json:"weight_min_grams"`
	WeightMaxGrams     int             `json:"weight_max_grams"`
	Price              decimal.Decimal `json:"price"`
	IsActive           bool            `json:"is_active"`
	SortOrder          int             `json:"sort_order"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// RateOverlapResponse reports a pair of overlapping rate bands
type RateOverlapResponse struct {
	First  RateResponse `json:"first"`
	Second RateResponse `json:"second"`
}

// ReplaceAssignmentsRequest represents a wholesale replacement of a tenant's
// enabled option set for one catalog kind
type ReplaceAssignmentsRequest struct {
	Kind      string      `json:"kind" binding:"required,oneof=color side envelope speed"`
	OptionIDs []uuid.UUID `json:"option_ids"`
}

// QuoteRequest represents a postage quote request
type QuoteRequest struct {
	SourcePageCount   int        `json:"source_page_count" binding:"required,min=1"`
	PagesPerRecipient int        `json:"pages_per_recipient" binding:"required,min=1"`
	AnnexPageCount    int        `json:"annex_page_count" binding:"min=0"`
	SideMode          string     `json:"side_mode" binding:"required,oneof=simplex duplex"`
	EnvelopeID        uuid.UUID  `json:"envelope_id" binding:"required"`
	SpeedID           *uuid.UUID `json:"speed_id"`
}

// QuoteResponse represents the computed postage for a submission
type QuoteResponse struct {
	RecipientCount    int             `json:"recipient_count"`
	SheetsPerEnvelope int             `json:"sheets_per_envelope"`
	SheetWeightGrams  int             `json:"sheet_weight_grams"`
	TotalWeightGrams  int             `json:"total_weight_grams"`
	Rate              RateResponse    `json:"rate"`
	TotalCost         decimal.Decimal `json:"total_cost"`
}

// OfferedEnvelopesRequest asks which enabled envelopes can carry a submission
type OfferedEnvelopesRequest struct {
	PagesPerRecipient int    `json:"pages_per_recipient" binding:"required,min=1"`
	AnnexPageCount    int    `json:"annex_page_count" binding:"min=0"`
	SideMode          string `json:"side_mode" binding:"required,oneof=simplex duplex"`
}

// ToOptionResponse converts a catalog option to OptionResponse
func ToOptionResponse(o postal.CatalogOption) OptionResponse {
	return OptionResponse{
		ID:        o.OptionID(),
		Code:      o.OptionCode(),
		Label:     o.OptionLabel(),
		IsActive:  o.Active(),
		SortOrder: o.Order(),
	}
}

// ToOptionResponses converts a slice of catalog options
func ToOptionResponses[T postal.CatalogOption](options []T) []OptionResponse {
	out := make([]OptionResponse, len(options))
	for i := range options {
		out[i] = ToOptionResponse(options[i])
	}
	return out
}

// ToEnvelopeResponse converts a domain EnvelopeFormat to EnvelopeResponse
func ToEnvelopeResponse(e *postal.EnvelopeFormat) EnvelopeResponse {
	return EnvelopeResponse{
		ID:                  e.ID,
		Code:                e.Code,
		Label:               e.Label,
		MaxCarryWeightGrams: e.MaxCarryWeightGrams,
		SelfWeightGrams:     e.SelfWeightGrams,
		Window:              e.Window,
		IsActive:            e.IsActive,
		SortOrder:           e.SortOrder,
	}
}

// ToRateResponse converts a domain PostageRate to RateResponse
func ToRateResponse(r *postal.PostageRate) RateResponse {
	return RateResponse{
		ID:                 r.ID,
		FullName:           r.FullName,
		Code:               r.Code,
		EnvelopeFormatCode: r.EnvelopeFormatCode,
		SpeedID:            r.SpeedID,
		WeightMinGrams:     r.WeightMinGrams,
		WeightMaxGrams:     r.WeightMaxGrams,
		Price:              r.Price,
		IsActive:           r.IsActive,
		SortOrder:          r.SortOrder,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// ToRateResponses converts a slice of postage rates
func ToRateResponses(rates []postal.PostageRate) []RateResponse {
	out := make([]RateResponse, len(rates))
	for i := range rates {
		out[i] = ToRateResponse(&rates[i])
	}
	return out
}

// ToQuoteResponse converts a domain Quote to QuoteResponse
func ToQuoteResponse(q *postal.Quote) QuoteResponse {
	return QuoteResponse{
		RecipientCount:    q.RecipientCount,
		SheetsPerEnvelope: q.SheetsPerEnvelope,
		SheetWeightGrams:  q.SheetWeightGrams,
		TotalWeightGrams:  q.TotalWeightGrams,
		Rate:              ToRateResponse(&q.Rate),
		TotalCost:         q.TotalCost,
	}
}
