package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class across the API.
type ErrorCode string

// AppError is the application error carried from services up to handlers.
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

// WithDetails returns a copy carrying per-field details, so the predefined
// errors below stay immutable.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
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

// Predefined errors.
var (
	// Authentication. A wrong role at login deliberately produces the same
	// error as a wrong password so callers cannot probe which emails exist
	// or which role they registered under.
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Accounts
	ErrAccountNotFound    = New(CodeAccountNotFound, "Account not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrPasswordMismatch   = New(CodePasswordMismatch, "Passwords do not match", http.StatusBadRequest)
	ErrInvalidAccountRole = New(CodeInvalidAccountRole, "Invalid account role", http.StatusBadRequest)

	// Content
	ErrIdeaNotFound = New(CodeIdeaNotFound, "Idea not found", http.StatusNotFound)
	ErrJobNotFound  = New(CodeJobNotFound, "Job not found", http.StatusNotFound)
	// Project lookups that miss return ErrForbidden instead, see the project
	// service; ErrProjectNotFound exists for internal logging only.
	ErrProjectNotFound = New(CodeProjectNotFound, "Project not found", http.StatusNotFound)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}
