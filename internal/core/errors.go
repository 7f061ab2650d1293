// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// AppError is the wire form of a handled failure: a short machine-readable
// code, an optional human message, and the HTTP status to respond with.
type AppError struct {
	Err     error
	Code    string
	Message string
	Status  int
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:     err,
		Code:    code,
		Message: message,
		Status:  status,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(
		ErrUnauthorized,
		message,
		http.StatusUnauthorized,
		"unauthorized",
	)
}

// InvalidTokenError marks structurally broken claims (e.g. no tenant id),
// distinct from a plain verification failure.
func InvalidTokenError() *AppError {
	return NewAppError(
		ErrTokenInvalid,
		"token claims are invalid",
		http.StatusUnauthorized,
		"invalid_token",
	)
}

// InvalidTenantError marks a tenant identifier that does not match the
// store's canonical id format. Forged or malformed claims stop here, before
// any data-layer query sees them.
func InvalidTenantError() *AppError {
	return NewAppError(
		ErrTokenInvalid,
		"tenant identifier is malformed",
		http.StatusUnauthorized,
		"invalid_tenant",
	)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(
		ErrForbidden,
		message,
		http.StatusForbidden,
		"forbidden",
	)
}

func NotFoundError() *AppError {
	return NewAppError(ErrNotFound, "", http.StatusNotFound, "not_found")
}

func ConflictError(code string) *AppError {
	return NewAppError(ErrDuplicateKey, "", http.StatusConflict, code)
}

func BadRequestError(code string) *AppError {
	return NewAppError(ErrInvalidInput, "", http.StatusBadRequest, code)
}
