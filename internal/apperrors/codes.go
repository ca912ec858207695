package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeFileTooLarge     ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFileType  ErrorCode = "INVALID_FILE_TYPE"
	CodeFileRequired     ErrorCode = "FILE_REQUIRED"

	// Resources
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Storage
	CodeStorageNotConfigured ErrorCode = "STORAGE_NOT_CONFIGURED"
	CodeUploadFailed         ErrorCode = "UPLOAD_FAILED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeEmailError    ErrorCode = "EMAIL_ERROR"
)
