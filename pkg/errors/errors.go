package errors

import (
	"errors"
	"net/http"
)

// AppError is a custom error type that includes an HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Common HTTP errors
var (
	ErrInvalidRequest = NewAppError(http.StatusBadRequest, "Invalid request parameters")
	ErrUnauthorized   = NewAppError(http.StatusUnauthorized, "Unauthorized access")
	ErrForbidden      = NewAppError(http.StatusForbidden, "Access denied")
	ErrNotFound       = NewAppError(http.StatusNotFound, "Resource not found")
	ErrInternalServer = NewAppError(http.StatusInternalServerError, "Internal server error")
	ErrRateLimit      = NewAppError(http.StatusTooManyRequests, "Rate limit exceeded")
)

// Domain errors for the gamification core. Handlers map these to HTTP
// responses; services return them as plain sentinel values.
var (
	// ErrNotUnlocked means the badge's unlock condition is not met yet.
	// Re-claiming an already-claimed badge is a no-op success, not an error.
	ErrNotUnlocked = errors.New("badge not unlocked")

	// ErrStaleMissionDate means a stored mission row belongs to a prior
	// calendar day. Triggers silent reassignment, never surfaced to clients.
	ErrStaleMissionDate = errors.New("mission progress belongs to a prior day")

	// ErrQuestionFetchFailed means today's question could not be resolved.
	// Retryable; mission state must not advance.
	ErrQuestionFetchFailed = errors.New("failed to fetch daily question")

	// ErrJudgeExecutionFailed wraps judge-side failures. Does not affect
	// XP or streaks.
	ErrJudgeExecutionFailed = errors.New("code execution failed")
)

// Helper functions to create specific errors
func BadRequest(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, msg)
}

func NotFound(msg string) *AppError {
	return NewAppError(http.StatusNotFound, msg)
}

func Unauthorized(msg string) *AppError {
	return NewAppError(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) *AppError {
	return NewAppError(http.StatusForbidden, msg)
}

func Internal(msg string) *AppError {
	return NewAppError(http.StatusInternalServerError, msg)
}
