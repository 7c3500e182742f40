// Package errors defines the structured error type and error codes used
// across the repository.
package errors

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	CodeUnknown      = "UNKNOWN_ERROR"
	CodeInvalidInput = "INVALID_INPUT"
	CodeTimeout      = "TIMEOUT_ERROR"
	CodeConfigError  = "CONFIG_ERROR"

	// BVH traversal precondition / invariant error codes (see internal/bvh).
	CodeInvalidLevel      = "BVH_INVALID_LEVEL"
	CodeInvalidRayShape   = "BVH_INVALID_RAY_SHAPE"
	CodeIncompatibleCache = "BVH_INCOMPATIBLE_CACHE"
	CodeInvariant         = "BVH_INVARIANT_VIOLATION"
)

// AppError represents an application error with a code and message.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches errors by code, so errors.Is works against the sentinel
// instances below regardless of message or wrapped cause.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Sentinel instances for errors.Is checks.
var (
	ErrInvalidInput = New(CodeInvalidInput, "invalid input")
	ErrTimeout      = New(CodeTimeout, "operation timeout")
	ErrConfigError  = New(CodeConfigError, "configuration error")

	ErrInvalidLevel      = New(CodeInvalidLevel, "start level out of range")
	ErrInvalidRayShape   = New(CodeInvalidRayShape, "ray arrays malformed")
	ErrIncompatibleCache = New(CodeIncompatibleCache, "cache buffers incompatible")
	ErrInvariant         = New(CodeInvariant, "traversal invariant violated")
)

// IsInvalidLevel checks if the error is a start-level precondition violation.
func IsInvalidLevel(err error) bool {
	return errors.Is(err, ErrInvalidLevel)
}

// IsInvalidRayShape checks if the error is a ray-array shape violation.
func IsInvalidRayShape(err error) bool {
	return errors.Is(err, ErrInvalidRayShape)
}

// IsIncompatibleCache checks if the error is a cache-compatibility violation.
func IsIncompatibleCache(err error) bool {
	return errors.Is(err, ErrIncompatibleCache)
}

// IsInvariant checks if the error is a traversal invariant violation.
func IsInvariant(err error) bool {
	return errors.Is(err, ErrInvariant)
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetErrorMessage extracts the error message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
