package postal

import (
	"time"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/shared"
)

// OptionKind identifies which catalog table an assignment row enables.
// Postage rates are global and deliberately have no kind.
type OptionKind string

const (
	KindColor    OptionKind = "color"
	KindSide     OptionKind = "side"
	KindEnvelope OptionKind = "envelope"
	KindSpeed    OptionKind = "speed"
)

// IsValid reports whether the kind names a known catalog table
func (k OptionKind) IsValid() bool {
	switch k {
	case KindColor, KindSide, KindEnvelope, KindSpeed:
		return true
	}
	return false
}

// ParseOptionKind parses an option kind from its wire value
func ParseOptionKind(s string) (OptionKind, error) {
	kind := OptionKind(s)
	if !kind.IsValid() {
		return "", shared.NewDomainError("INVALID_OPTION_KIND", "Option kind must be one of color, side, envelope, speed")
	}
	return kind, nil
}

// TenantOptionAssignment enables one catalog option for one tenant.
// Existence of the row means "enabled"; revoking an option's IsActive flag
// filters it out of resolution without touching assignments.
type TenantOptionAssignment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TenantID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tenant_kind_option,priority:1"`
	Kind      OptionKind `gorm:"type:varchar(20);not null;uniqueIndex:idx_tenant_kind_option,priority:2"`
	OptionID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_tenant_kind_option,priority:3;index"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime"`
}

// TableName returns the table name for GORM
func (TenantOptionAssignment) TableName() string {
	return "tenant_option_assignments"
}

// NewTenantOptionAssignment creates a new assignment row
func NewTenantOptionAssignment(tenantID uuid.UUID, kind OptionKind, optionID uuid.UUID) (*TenantOptionAssignment, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_OPTION_KIND", "Option kind must be one of color, side, envelope, speed")
	}
	if tenantID == uuid.Nil || optionID == uuid.Nil {
		return nil, shared.ErrInvalidInput
	}
	return &TenantOptionAssignment{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Kind:      kind,
		OptionID:  optionID,
		CreatedAt: time.Now(),
	}, nil
}
