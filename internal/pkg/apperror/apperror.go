package apperror

import (
	"errors"
	"fmt"
)

const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInvalidState   = "INVALID_STATE"
	CodeTooManyRequest = "TOO_MANY_REQUESTS"
	CodeUpstream       = "UPSTREAM_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

// AppError is an error that knows how it should be reported to the browser.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func New(code, message string, status int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: status,
	}
}

// Wrap attaches the reporting metadata to an underlying error.
func Wrap(err error, code, message string, status int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: status,
		Err:        err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches two AppErrors by code and message so that wrapped copies of a
// sentinel still satisfy errors.Is.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}
