package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState  = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)

// Postal-specific domain errors
var (
	// ErrNoApplicableRate is returned when no active postage rate covers the
	// computed total weight for the chosen speed.
	ErrNoApplicableRate = NewDomainError("NO_APPLICABLE_RATE", "No postage rate matches the computed weight")
	// ErrEnvelopeOverCapacity is returned when the chosen envelope cannot
	// carry the computed sheet weight.
	ErrEnvelopeOverCapacity = NewDomainError("ENVELOPE_OVER_CAPACITY", "Envelope cannot carry the computed sheet weight")
	// ErrStoreUnavailable wraps persistence failures surfaced to callers.
	// The configuration cache never caches this condition.
	ErrStoreUnavailable = NewDomainError("STORE_UNAVAILABLE", "Catalog store is unavailable")
)
