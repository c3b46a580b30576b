package postal

import (
	"time"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/shared"
)

// AddressWindow is the transparent window rectangle on an envelope, in
// millimeters from the top-left corner. It is consumed by the rendering
// layer only; the postage engine ignores it.
type AddressWindow struct {
	X      int `gorm:"column:window_x;not null;default:0" json:"x"`
	Y      int `gorm:"column:window_y;not null;default:0" json:"y"`
	Height int `gorm:"column:window_height;not null;default:0" json:"height"`
	Width  int `gorm:"column:window_width;not null;default:0" json:"width"`
}

// EnvelopeFormat represents an envelope type a tenant can send mail in.
// MaxCarryWeightGrams bounds the paper weight the envelope can hold;
// SelfWeightGrams is added on top when pricing the assembled item.
type EnvelopeFormat struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Code                string        `gorm:"type:varchar(50);not null;uniqueIndex"`
	Label               string        `gorm:"type:varchar(200);not null"`
	MaxCarryWeightGrams int           `gorm:"not null"`
	SelfWeightGrams     int           `gorm:"not null"`
	Window              AddressWindow `gorm:"embedded"`
	IsActive            bool          `gorm:"not null;default:true"`
	SortOrder           int           `gorm:"not null;default:0"`
	CreatedAt           time.Time     `gorm:"not null;autoCreateTime"`
	UpdatedAt           time.Time     `gorm:"not null;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (EnvelopeFormat) TableName() string {
	return "envelope_formats"
}

// NewEnvelopeFormat creates a new envelope format
func NewEnvelopeFormat(code, label string, maxCarryWeightGrams, selfWeightGrams, sortOrder int) (*EnvelopeFormat, error) {
	if err := validateOptionCode(code); err != nil {
		return nil, err
	}
	if err := validateOptionLabel(label); err != nil {
		return nil, err
	}
	if err := validateEnvelopeWeights(maxCarryWeightGrams, selfWeightGrams); err != nil {
		return nil, err
	}
	return &EnvelopeFormat{
		ID:                  uuid.New(),
		Code:                code,
		Label:               label,
		MaxCarryWeightGrams: maxCarryWeightGrams,
		SelfWeightGrams:     selfWeightGrams,
		IsActive:            true,
		SortOrder:           sortOrder,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}, nil
}

// Update updates the envelope's mutable fields. Callers that change the
// weights must invalidate every tenant's cached configuration, since the
// admissibility filter depends on them plan-wide.
func (e *EnvelopeFormat) Update(label string, maxCarryWeightGrams, selfWeightGrams, sortOrder int, isActive bool) error {
	if err := validateOptionLabel(label); err != nil {
		return err
	}
	if err := validateEnvelopeWeights(maxCarryWeightGrams, selfWeightGrams); err != nil {
		return err
	}
	e.Label = label
	e.MaxCarryWeightGrams = maxCarryWeightGrams
	e.SelfWeightGrams = selfWeightGrams
	e.SortOrder = sortOrder
	e.IsActive = isActive
	e.UpdatedAt = time.Now()
	return nil
}

// SetWindow sets the address window rectangle
func (e *EnvelopeFormat) SetWindow(w AddressWindow) {
	e.Window = w
	e.UpdatedAt = time.Now()
}

// CanCarry reports whether the envelope can carry the given sheet weight.
// Capacity is checked against the paper alone, not the assembled item.
func (e *EnvelopeFormat) CanCarry(sheetWeightGrams int) bool {
	return e.MaxCarryWeightGrams >= sheetWeightGrams
}

func (e EnvelopeFormat) OptionID() uuid.UUID { return e.ID }
func (e EnvelopeFormat) OptionCode() string  { return e.Code }
func (e EnvelopeFormat) OptionLabel() string { return e.Label }
func (e EnvelopeFormat) Active() bool        { return e.IsActive }
func (e EnvelopeFormat) Order() int          { return e.SortOrder }

func validateEnvelopeWeights(maxCarry, self int) error {
	if maxCarry <= 0 {
		return shared.NewDomainError("INVALID_ENVELOPE_WEIGHT", "Max carry weight must be positive")
	}
	if self < 0 {
		return shared.NewDomainError("INVALID_ENVELOPE_WEIGHT", "Self weight cannot be negative")
	}
	return nil
}
