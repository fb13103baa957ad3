// Package apperror defines the application error taxonomy and its HTTP mapping.
package apperror

import (
	"errors"
	"net/http"
)

var (
	// ErrConfig marks fatal misconfiguration, such as a missing secret.
	ErrConfig = errors.New("configuration error")
	// ErrBadRequest marks malformed or incomplete caller input.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized marks a shared-secret mismatch.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstream marks a downstream store or model-provider failure.
	ErrUpstream = errors.New("upstream failure")
	// ErrVerification marks a failed webhook signature check. The
	// cryptographic reason is carried in the chain for logging but the
	// message stays generic so it is safe to echo.
	ErrVerification = errors.New("verification failed")
)

// AppError pairs a taxonomy sentinel with a human-readable message.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Config reports fatal misconfiguration.
func Config(message string) *AppError {
	return &AppError{Err: ErrConfig, Message: message}
}

// BadRequest reports invalid caller input.
func BadRequest(message string) *AppError {
	return &AppError{Err: ErrBadRequest, Message: message}
}

// Unauthorized reports a shared-secret mismatch.
func Unauthorized(message string) *AppError {
	return &AppError{Err: ErrUnauthorized, Message: message}
}

// Upstream wraps a downstream failure with a best-effort message.
func Upstream(message string, cause error) *AppError {
	return &AppError{Err: errors.Join(ErrUpstream, cause), Message: message}
}

// Verification wraps a signature failure without exposing the reason.
func Verification(cause error) *AppError {
	return &AppError{Err: errors.Join(ErrVerification, cause), Message: "verification failed"}
}

// Status maps an error to its HTTP status code. Unknown errors map to 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrVerification):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
