package core

import "fmt"

type ErrorCode string

const (
	ErrBadRequest     ErrorCode = "GZT_BAD_REQUEST"
	ErrUnauthorized   ErrorCode = "GZT_UNAUTHORIZED"
	ErrNotFound       ErrorCode = "GZT_NOT_FOUND"
	ErrNotConfigured  ErrorCode = "GZT_NOT_CONFIGURED"
	ErrUpstreamFailed ErrorCode = "GZT_UPSTREAM_FAILED"
	ErrInternal       ErrorCode = "GZT_INTERNAL"
)

// HTTPStatus returns the HTTP status code for this error code.
func (e ErrorCode) HTTPStatus() int {
	switch e {
	case ErrBadRequest:
		return 400
	case ErrUnauthorized:
		return 401
	case ErrNotFound:
		return 404
	case ErrUpstreamFailed:
		return 502
	default:
		return 500
	}
}

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}
