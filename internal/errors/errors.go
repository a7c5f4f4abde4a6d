// Package errors provides the application error type shared by the ledger,
// its storage adapters and the HTTP layer. Every failure that crosses a
// package boundary is an *AppError so callers can branch on Code and the API
// can answer without leaking internal details.
package errors

import (
	stderrors "errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil {
		return e.Message + ": " + e.Internal.Error()
	}
	return e.Message
}

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so wrapped
// copies still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

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

// Validation returns a ValidationError naming the offending field.
func Validation(field, message string) *AppError {
	return &AppError{
		Code:       ErrValidation.Code,
		Message:    message,
		Field:      field,
		StatusCode: ErrValidation.StatusCode,
	}
}

// IsCode reports whether err is, or wraps, an AppError carrying sentinel's code.
func IsCode(err error, sentinel *AppError) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Code == sentinel.Code
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Validation failed", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrTooManyRequest = &AppError{Code: "TOO_MANY_REQUESTS", Message: "Too many requests, please try again later", StatusCode: http.StatusTooManyRequests}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Local storage errors.
var (
	ErrStorageRead  = &AppError{Code: "STORAGE_READ_ERROR", Message: "Failed to retrieve transactions", StatusCode: http.StatusInternalServerError}
	ErrStorageWrite = &AppError{Code: "STORAGE_WRITE_ERROR", Message: "Failed to save transaction", StatusCode: http.StatusInternalServerError}
	ErrStorageClear = &AppError{Code: "STORAGE_WRITE_ERROR", Message: "Failed to clear transactions", StatusCode: http.StatusInternalServerError}
	ErrStoreClosed  = &AppError{Code: "STORE_CLOSED", Message: "Transaction store is closed", StatusCode: http.StatusServiceUnavailable}
)

// Remote storage errors.
var (
	ErrRemote         = &AppError{Code: "REMOTE_ERROR", Message: "Remote backend request failed", StatusCode: http.StatusBadGateway}
	ErrRemoteDisabled = &AppError{Code: "REMOTE_DISABLED", Message: "Remote backend is not configured", StatusCode: http.StatusNotFound}
)

// Budget errors.
var (
	ErrBudgetCategoryNotFound = &AppError{Code: "BUDGET_CATEGORY_NOT_FOUND", Message: "Budget category not found", StatusCode: http.StatusNotFound}
)
