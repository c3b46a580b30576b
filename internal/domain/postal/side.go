package postal

import (
	"time"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/shared"
)

// PrintSideMode identifies how pages are laid onto physical sheets.
type PrintSideMode string

const (
	// SideSimplex prints one page per sheet.
	SideSimplex PrintSideMode = "simplex"
	// SideDuplex prints two pages per sheet, rounding an odd leftover page
	// up to a full sheet.
	SideDuplex PrintSideMode = "duplex"
)

// IsValid reports whether the mode is a known print side mode
func (m PrintSideMode) IsValid() bool {
	return m == SideSimplex || m == SideDuplex
}

// ParsePrintSideMode parses a print side mode from its wire value
func ParsePrintSideMode(s string) (PrintSideMode, error) {
	mode := PrintSideMode(s)
	if !mode.IsValid() {
		return "", shared.NewDomainError("INVALID_SIDE_MODE", "Print side mode must be simplex or duplex")
	}
	return mode, nil
}

// PrintSideOption represents a selectable print side mode. Its code carries
// the PrintSideMode value used by the postage engine.
type PrintSideOption struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Code      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Label     string    `gorm:"type:varchar(200);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (PrintSideOption) TableName() string {
	return "print_side_options"
}

// NewPrintSideOption creates a new print side option
func NewPrintSideOption(code, label string, sortOrder int) (*PrintSideOption, error) {
	if err := validateOptionCode(code); err != nil {
		return nil, err
	}
	if err := validateOptionLabel(label); err != nil {
		return nil, err
	}
	return &PrintSideOption{
		ID:        uuid.New(),
		Code:      code,
		Label:     label,
		IsActive:  true,
		SortOrder: sortOrder,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// Update updates the option's label and sort order
func (o *PrintSideOption) Update(label string, sortOrder int, isActive bool) error {
	if err := validateOptionLabel(label); err != nil {
		return err
	}
	o.Label = label
	o.SortOrder = sortOrder
	o.IsActive = isActive
	o.UpdatedAt = time.Now()
	return nil
}

func (o PrintSideOption) OptionID() uuid.UUID { return o.ID }
func (o PrintSideOption) OptionCode() string  { return o.Code }
func (o PrintSideOption) OptionLabel() string { return o.Label }
func (o PrintSideOption) Active() bool        { return o.IsActive }
func (o PrintSideOption) Order() int          { return o.SortOrder }
