package postal

import (
	"time"

	"github.com/google/uuid"
)

// PostageSpeedOption represents a selectable delivery speed (e.g. economy,
// priority). A PostageRate may be scoped to one speed or match any.
type PostageSpeedOption struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Code      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Label     string    `gorm:"type:varchar(200);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (PostageSpeedOption) TableName() string {
	return "postage_speed_options"
}

// NewPostageSpeedOption creates a new postage speed option
func NewPostageSpeedOption(code, label string, sortOrder int) (*PostageSpeedOption, error) {
	if err := validateOptionCode(code); err != nil {
		return nil, err
	}
	if err := validateOptionLabel(label); err != nil {
		return nil, err
	}
	return &PostageSpeedOption{
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
func (o *PostageSpeedOption) Update(label string, sortOrder int, isActive bool) error {
	if err := validateOptionLabel(label); err != nil {
		return err
	}
	o.Label = label
	o.SortOrder = sortOrder
	o.IsActive = isActive
	o.UpdatedAt = time.Now()
	return nil
}

func (o PostageSpeedOption) OptionID() uuid.UUID { return o.ID }
func (o PostageSpeedOption) OptionCode() string  { return o.Code }
func (o PostageSpeedOption) OptionLabel() string { return o.Label }
func (o PostageSpeedOption) Active() bool        { return o.IsActive }
func (o PostageSpeedOption) Order() int          { return o.SortOrder }
