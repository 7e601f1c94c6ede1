// Package errors provides custom error types for the Money Manager API.
// All service-layer errors should use AppError so that clients receive a
// stable code and a displayable message, never internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError carrying the same code, so that
// errors.Is(err, ErrEmptyName) matches wrapped copies of the sentinel.
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

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid passphrase", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Persistence errors. The messages are shown to the user as-is.
var (
	ErrLoadFailed = &AppError{Code: "LOAD_FAILED", Message: "load failed", StatusCode: http.StatusInternalServerError}
	ErrSaveFailed = &AppError{Code: "SAVE_FAILED", Message: "save failed", StatusCode: http.StatusInternalServerError}
)

// Validation errors raised before any persistence attempt.
var (
	ErrEmptyName         = &AppError{Code: "EMPTY_NAME", Message: "Category name can't be empty", StatusCode: http.StatusBadRequest}
	ErrNonPositiveAmount = &AppError{Code: "NON_POSITIVE_AMOUNT", Message: "Sum of transaction should be above zero", StatusCode: http.StatusBadRequest}
	ErrUnsavedID         = &AppError{Code: "UNSAVED_ID", Message: "Id can't be zero", StatusCode: http.StatusBadRequest}
)

// Category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryInUse    = &AppError{Code: "CATEGORY_IN_USE", Message: "Category is used by existing transactions", StatusCode: http.StatusConflict}
)

// Transaction errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
)

// Analytics errors.
var (
	ErrInvalidPeriod    = &AppError{Code: "INVALID_PERIOD", Message: "Invalid period", StatusCode: http.StatusBadRequest}
	ErrInvalidDirection = &AppError{Code: "INVALID_DIRECTION", Message: "Direction must be -1 or 1", StatusCode: http.StatusBadRequest}
)
