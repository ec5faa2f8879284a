package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
	CodeDuplicate     ErrorCode = "DUPLICATE_VALUE"

	// Catalog specific errors
	CodeExerciseNotFound   ErrorCode = "EXERCISE_NOT_FOUND"
	CodeLocationNotFound   ErrorCode = "LOCATION_NOT_FOUND"
	CodeInvalidDifficulty  ErrorCode = "INVALID_DIFFICULTY"
	CodeCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	CodeCatalogLoading     ErrorCode = "CATALOG_LOADING"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a detail that is echoed in the error response.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewExerciseNotFoundError(exerciseID string) *DomainError {
	return NewError(CodeExerciseNotFound, fmt.Sprintf("Exercise not found with ID: %s", exerciseID), nil).
		WithContext("exercise_id", exerciseID)
}

func NewLocationNotFoundError(locationID string) *DomainError {
	return NewError(CodeLocationNotFound, fmt.Sprintf("Location not found with ID: %s", locationID), nil).
		WithContext("location_id", locationID)
}

func NewCatalogUnavailableError(cause error) *DomainError {
	return NewError(CodeCatalogUnavailable, "Exercise catalog could not be loaded", cause)
}

func NewCatalogLoadingError() *DomainError {
	return NewError(CodeCatalogLoading, "Exercise catalog is still loading", nil)
}

// ValidationError describes one invalid field.
type ValidationError struct {
	Code    ErrorCode   `json:"code"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every violation found in one pass.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError is a field-less validation failure.
func NewValidationError(message string) ValidationError {
	return ValidationError{Code: CodeValidation, Message: message}
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Code: CodeMissingField, Field: field, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Code: CodeInvalidFormat, Field: field, Message: "invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Code:    CodeOutOfRange,
		Field:   field,
		Message: fmt.Sprintf("must be between %d and %d", min, max),
		Value:   value,
	}
}

func NewDuplicateError(field string, value interface{}) ValidationError {
	return ValidationError{Code: CodeDuplicate, Field: field, Message: "duplicate value", Value: value}
}

func NewInvalidDifficultyError(value string) ValidationError {
	return ValidationError{
		Code:    CodeInvalidDifficulty,
		Field:   "difficulty",
		Message: "must be one of beginner, intermediate, advanced",
		Value:   value,
	}
}
