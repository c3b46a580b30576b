package postal

import (
	"github.com/google/uuid"
	"github.com/postalis/backend/internal/domain/shared"
)

// CatalogOption is implemented by every flat catalog option entity so that
// generic repositories and resolution code can treat them uniformly.
type CatalogOption interface {
	OptionID() uuid.UUID
	OptionCode() string
	OptionLabel() string
	Active() bool
	Order() int
}

// validateOptionCode validates a catalog option code
func validateOptionCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_OPTION_CODE", "Option code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_OPTION_CODE", "Option code cannot exceed 50 characters")
	}
	return nil
}

// validateOptionLabel validates a catalog option label
func validateOptionLabel(label string) error {
	if label == "" {
		return shared.NewDomainError("INVALID_OPTION_LABEL", "Option label cannot be empty")
	}
	if len(label) > 200 {
		return shared.NewDomainError("INVALID_OPTION_LABEL", "Option label cannot exceed 200 characters")
	}
	return nil
}
