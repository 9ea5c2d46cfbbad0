package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword       ErrorCode = "WEAK_PASSWORD"
	CodePasswordMismatch   ErrorCode = "PASSWORD_MISMATCH"
	CodeInvalidAccountRole ErrorCode = "INVALID_ACCOUNT_ROLE"

	// Resources
	CodeAccountNotFound ErrorCode = "ACCOUNT_NOT_FOUND"
	CodeIdeaNotFound    ErrorCode = "IDEA_NOT_FOUND"
	CodeJobNotFound     ErrorCode = "JOB_NOT_FOUND"
	CodeProjectNotFound ErrorCode = "PROJECT_NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
