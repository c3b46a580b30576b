package postal

import (
	"time"

	"github.com/google/uuid"
)

// PrintColorOption represents a selectable print color (e.g. black-and-white,
// full color). Tenants enable a subset through assignments.
type PrintColorOption struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Code      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Label     string    `gorm:"type:varchar(200);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (PrintColorOption) TableName() string {
	return "print_color_options"
}

// NewPrintColorOption creates a new print color option
func NewPrintColorOption(code, label string, sortOrder int) (*PrintColorOption, error) {
	if err := validateOptionCode(code); err != nil {
		return nil, err
	}
	if err := validateOptionLabel(label); err != nil {
		return nil, err
	}
	return &PrintColorOption{
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
func (o *PrintColorOption) Update(label string, sortOrder int, isActive bool) error {
	if err := validateOptionLabel(label); err != nil {
		return err
	}
	o.Label = label
	o.SortOrder = sortOrder
	o.IsActive = isActive
	o.UpdatedAt = time.Now()
	return nil
}

func (o PrintColorOption) OptionID() uuid.UUID { return o.ID }
func (o PrintColorOption) OptionCode() string  { return o.Code }
func (o PrintColorOption) OptionLabel() string { return o.Label }
func (o PrintColorOption) Active() bool        { return o.IsActive }
func (o PrintColorOption) Order() int          { return o.SortOrder }
