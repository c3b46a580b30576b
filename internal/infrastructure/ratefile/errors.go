package ratefile

import (
	"errors"
	"fmt"
)

// Rate file error codes
const (
	ErrCodeRateFileEmpty         = "ERR_RATEFILE_EMPTY"
	ErrCodeRateFileEncoding      = "ERR_RATEFILE_ENCODING"
	ErrCodeRateFileMissingHeader = "ERR_RATEFILE_MISSING_HEADER"
	ErrCodeRateFileRequiredField = "ERR_RATEFILE_REQUIRED_FIELD"
	ErrCodeRateFileInvalidType   = "ERR_RATEFILE_INVALID_TYPE"
	ErrCodeRateFileInvalidRange  = "ERR_RATEFILE_INVALID_RANGE"
)

// Common rate file errors
var (
	// ErrEmptyFile is returned when the price list file is empty
	ErrEmptyFile = errors.New("rate file is empty")

	// ErrInvalidEncoding is returned when the file is not valid UTF-8
	ErrInvalidEncoding = errors.New("rate file is not valid UTF-8")

	// ErrMissingHeader is returned when the file has no header row
	ErrMissingHeader = errors.New("rate file missing header row")
)

// RowError represents an error in a specific price list row
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Error implements the error interface
func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d, column '%s': %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// NewRowError creates a new RowError
func NewRowError(row int, column, code, message string) RowError {
	return RowError{
		Row:     row,
		Column:  column,
		Code:    code,
		Message: message,
	}
}

// NewRowErrorWithValue creates a new RowError carrying the offending value
func NewRowErrorWithValue(row int, column, code, message, value string) RowError {
	return RowError{
		Row:     row,
		Column:  column,
		Code:    code,
		Message: message,
		Value:   value,
	}
}
