// Package errors provides custom error types for the Expensify API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// FieldIssue describes a single validation violation on a named field.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional per-field validation
// issues, and optional internal error.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Issues     []FieldIssue `json:"issues,omitempty"`
	StatusCode int          `json:"-"`
	Internal   error        `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// NewValidation creates a validation error carrying one issue per violated field.
func NewValidation(issues []FieldIssue) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Input validation failed",
		Issues:     issues,
		StatusCode: http.StatusBadRequest,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Asset errors. ErrAssetNotFound is returned both when a record is absent and
// when it belongs to another principal, so callers cannot probe for existence.
var (
	ErrAssetNotFound    = &AppError{Code: "ASSET_NOT_FOUND", Message: "Asset not found", StatusCode: http.StatusNotFound}
	ErrInvalidAssetType = &AppError{Code: "INVALID_ASSET_TYPE", Message: "Unsupported asset type", StatusCode: http.StatusBadRequest}
)

// Real-estate errors.
var (
	ErrPropertyNotFound = &AppError{Code: "PROPERTY_NOT_FOUND", Message: "Property not found", StatusCode: http.StatusNotFound}
)

// Document errors.
var (
	ErrDocumentNotFound  = &AppError{Code: "DOCUMENT_NOT_FOUND", Message: "Document not found", StatusCode: http.StatusNotFound}
	ErrInvalidObjectType = &AppError{Code: "INVALID_OBJECT_TYPE", Message: "Unsupported document object type", StatusCode: http.StatusBadRequest}
	ErrNoFile            = &AppError{Code: "NO_FILE", Message: "No file uploaded", StatusCode: http.StatusBadRequest}
	ErrStorageFailure    = &AppError{Code: "STORAGE_ERROR", Message: "Object storage operation failed", StatusCode: http.StatusInternalServerError}
)
