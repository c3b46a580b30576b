package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/shared"
)

// subdomainPattern restricts subdomains to DNS-label-safe characters.
var subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Tenant represents an organization with its own enabled subset of the
// postal options catalog. The subdomain is the key under which the tenant's
// resolved configuration is cached.
type Tenant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Subdomain string    `gorm:"type:varchar(63);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(200);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (Tenant) TableName() string {
	return "tenants"
}

// NewTenant creates a new tenant with required fields
func NewTenant(subdomain, name string) (*Tenant, error) {
	subdomain = strings.ToLower(strings.TrimSpace(subdomain))
	if err := ValidateSubdomain(subdomain); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_TENANT_NAME", "Tenant name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_TENANT_NAME", "Tenant name cannot exceed 200 characters")
	}

	return &Tenant{
		ID:        uuid.New(),
		Subdomain: subdomain,
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// Rename updates the tenant's display name
func (t *Tenant) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_TENANT_NAME", "Tenant name cannot be empty")
	}
	t.Name = name
	t.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the tenant inactive
func (t *Tenant) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now()
}

// ValidateSubdomain validates a tenant subdomain
func ValidateSubdomain(subdomain string) error {
	if subdomain == "" {
		return shared.NewDomainError("INVALID_SUBDOMAIN", "Subdomain cannot be empty")
	}
	if len(subdomain) > 63 {
		return shared.NewDomainError("INVALID_SUBDOMAIN", "Subdomain cannot exceed 63 characters")
	}
	if !subdomainPattern.MatchString(subdomain) {
		return shared.NewDomainError("INVALID_SUBDOMAIN", "Subdomain must contain only lowercase letters, digits and hyphens")
	}
	return nil
}
