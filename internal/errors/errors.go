package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a skup error code.
type ErrorCode string

const (
	ErrAmbiguousAddressing ErrorCode = "AMBIGUOUS_ADDRESSING" // 400
	ErrInvalidRequest      ErrorCode = "INVALID_REQUEST"      // 400
	ErrParse               ErrorCode = "PARSE_ERROR"          // 400
	ErrNotFound            ErrorCode = "NOT_FOUND"            // 404
	ErrNameAlreadyExists   ErrorCode = "NAME_ALREADY_EXISTS"  // 409
	ErrConflict            ErrorCode = "CONFLICT"             // 409
	ErrTooManyItems        ErrorCode = "TOO_MANY_ITEMS"       // 413
	ErrFileNotFound        ErrorCode = "FILE_NOT_FOUND"       // 404
	ErrCancelled           ErrorCode = "CANCELLED"            // 499
	ErrInternal            ErrorCode = "INTERNAL"             // 500
)

// SkupError represents a structured error with code, status, and details.
type SkupError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *SkupError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAmbiguousAddressing creates a 400 error for when both ID and name are provided.
func NewAmbiguousAddressing() *SkupError {
	return &SkupError{
		Code:    ErrAmbiguousAddressing,
		Status:  400,
		Message: "cannot specify both id and name; use one addressing mode",
	}
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *SkupError {
	return &SkupError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewParse wraps a SKU parse failure. The parse error's own code and
// offending input land in Details so callers can surface them verbatim.
func NewParse(input string, err error) *SkupError {
	return &SkupError{
		Code:    ErrParse,
		Status:  400,
		Message: fmt.Sprintf("invalid sku %q: %v", input, err),
		Details: map[string]any{"input": input, "cause": err.Error()},
	}
}

// NewNotFound creates a 404 error for when an item cannot be found.
func NewNotFound(identifier string) *SkupError {
	return &SkupError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("item not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewNameAlreadyExists creates a 409 error for name collisions.
func NewNameAlreadyExists(name string) *SkupError {
	return &SkupError{
		Code:    ErrNameAlreadyExists,
		Status:  409,
		Message: fmt.Sprintf("item with name %q already exists", name),
		Details: map[string]any{"name": name},
	}
}

// NewConflict creates a 409 error for general conflicts.
func NewConflict(msg string) *SkupError {
	return &SkupError{
		Code:    ErrConflict,
		Status:  409,
		Message: msg,
	}
}

// NewTooManyItems creates a 413 error when an import exceeds the item limit.
func NewTooManyItems(max, actual int) *SkupError {
	return &SkupError{
		Code:    ErrTooManyItems,
		Status:  413,
		Message: fmt.Sprintf("import exceeds maximum item count: %d items (max %d)", actual, max),
		Details: map[string]any{"max_items": max, "actual_items": actual},
	}
}

// NewFileNotFound creates a 404 error for a missing file path.
func NewFileNotFound(path string) *SkupError {
	return &SkupError{
		Code:    ErrFileNotFound,
		Status:  404,
		Message: fmt.Sprintf("file not found: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewCancelled creates a 499 error for operations interrupted by
// context cancellation.
func NewCancelled(operation string) *SkupError {
	return &SkupError{
		Code:    ErrCancelled,
		Status:  499,
		Message: fmt.Sprintf("%s cancelled", operation),
		Details: map[string]any{"operation": operation},
	}
}

// NewInternal creates a 500 error for unexpected internal errors. The
// message stays generic; the cause goes into Details for logging.
func NewInternal(err error) *SkupError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &SkupError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
	}
}

// Is checks if an error is (or wraps) a SkupError with the given code.
func Is(err error, code ErrorCode) bool {
	var sErr *SkupError
	if stderrors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}
