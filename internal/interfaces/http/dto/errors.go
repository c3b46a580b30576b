package dto

import (
	"net/http"
	"strings"
)

// API error codes
const (
	ErrCodeBadRequest           = "ERR_BAD_REQUEST"
	ErrCodeValidation           = "ERR_VALIDATION"
	ErrCodeUnauthorized         = "ERR_UNAUTHORIZED"
	ErrCodeForbidden            = "ERR_FORBIDDEN"
	ErrCodeNotFound             = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists        = "ERR_ALREADY_EXISTS"
	ErrCodeConflict             = "ERR_CONFLICT"
	ErrCodeInvalidState         = "ERR_INVALID_STATE"
	ErrCodeUnknownOption        = "ERR_UNKNOWN_OPTION"
	ErrCodeOptionNotEnabled     = "ERR_OPTION_NOT_ENABLED"
	ErrCodeNoApplicableRate     = "ERR_NO_APPLICABLE_RATE"
	ErrCodeEnvelopeOverCapacity = "ERR_ENVELOPE_OVER_CAPACITY"
	ErrCodeRateLimited          = "ERR_RATE_LIMITED"
	ErrCodeStoreUnavailable     = "ERR_STORE_UNAVAILABLE"
	ErrCodeInternal             = "ERR_INTERNAL"
)

// ErrorCodeHTTPStatus maps API error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:           http.StatusBadRequest,
	ErrCodeValidation:           http.StatusBadRequest,
	ErrCodeUnauthorized:         http.StatusUnauthorized,
	ErrCodeForbidden:            http.StatusForbidden,
	ErrCodeNotFound:             http.StatusNotFound,
	ErrCodeNoApplicableRate:     http.StatusNotFound,
	ErrCodeAlreadyExists:        http.StatusConflict,
	ErrCodeConflict:             http.StatusConflict,
	ErrCodeInvalidState:         http.StatusUnprocessableEntity,
	ErrCodeUnknownOption:        http.StatusUnprocessableEntity,
	ErrCodeOptionNotEnabled:     http.StatusUnprocessableEntity,
	ErrCodeEnvelopeOverCapacity: http.StatusUnprocessableEntity,
	ErrCodeRateLimited:          http.StatusTooManyRequests,
	ErrCodeStoreUnavailable:     http.StatusServiceUnavailable,
	ErrCodeInternal:             http.StatusInternalServerError,
}

// domainErrorCodeMapping translates domain error codes to API error codes
var domainErrorCodeMapping = map[string]string{
	"NOT_FOUND":               ErrCodeNotFound,
	"ALREADY_EXISTS":          ErrCodeAlreadyExists,
	"INVALID_STATE":           ErrCodeInvalidState,
	"UNKNOWN_OPTION":          ErrCodeUnknownOption,
	"OPTION_NOT_ENABLED":      ErrCodeOptionNotEnabled,
	"NO_APPLICABLE_RATE":      ErrCodeNoApplicableRate,
	"ENVELOPE_OVER_CAPACITY":  ErrCodeEnvelopeOverCapacity,
	"STORE_UNAVAILABLE":       ErrCodeStoreUnavailable,
	"INVALID_INPUT":           ErrCodeValidation,
	"INVALID_OPTION_CODE":     ErrCodeValidation,
	"INVALID_OPTION_LABEL":    ErrCodeValidation,
	"INVALID_OPTION_KIND":     ErrCodeValidation,
	"INVALID_SIDE_MODE":       ErrCodeValidation,
	"INVALID_PAGE_COUNT":      ErrCodeValidation,
	"INVALID_RATE_NAME":       ErrCodeValidation,
	"INVALID_RATE_PRICE":      ErrCodeValidation,
	"INVALID_WEIGHT_RANGE":    ErrCodeValidation,
	"INVALID_ENVELOPE_WEIGHT": ErrCodeValidation,
	"INVALID_SUBDOMAIN":       ErrCodeValidation,
	"INVALID_TENANT_NAME":     ErrCodeValidation,
}

// GetHTTPStatus returns the HTTP status for an API error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NormalizeErrorCode converts a domain error code to its API error code.
// Codes already in API form pass through unchanged.
func NormalizeErrorCode(code string) string {
	if normalized, ok := domainErrorCodeMapping[code]; ok {
		return normalized
	}
	if strings.HasPrefix(code, "ERR_") {
		return code
	}
	return ErrCodeInternal
}
