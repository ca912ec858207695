package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

// AppError is the application error carried from services to the HTTP layer.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets sentinel AppErrors match wrapped copies of themselves.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !stderrors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails returns a copy carrying structured details, so that
// mutating a sentinel in one request cannot leak into another.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithError returns a copy carrying the underlying cause.
func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predeclared errors.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
	ErrFileTooLarge     = New(CodeFileTooLarge, "File too large", http.StatusBadRequest)
	ErrInvalidFileType  = New(CodeInvalidFileType, "Invalid file type", http.StatusBadRequest)
	ErrFileRequired     = New(CodeFileRequired, "A file is required for this resource", http.StatusBadRequest)

	// Storage. Unconfigured storage is reported before any network call
	// is attempted; a failed upload never leaves a document mutation behind.
	ErrStorageNotConfigured = New(CodeStorageNotConfigured, "File storage is not configured", http.StatusServiceUnavailable)
	ErrUploadFailed         = New(CodeUploadFailed, "Failed to upload file to storage", http.StatusInternalServerError)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// PersistError wraps a document-store failure. Surfaced as 500; when it
// happens after a successful upload the staged blob is discarded best-effort.
func PersistError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "Failed to persist record", http.StatusInternalServerError)
}

func UploadError(err error) *AppError {
	return ErrUploadFailed.WithError(err)
}

func NewConflictError(message string) *AppError {
	return New(CodeAlreadyExists, message, http.StatusConflict)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewInternalError(message string) *AppError {
	return New(CodeInternalError, message, http.StatusInternalServerError)
}
