package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// StatusMapper lets errors from other packages (the backend client for
// example) describe themselves without importing this package's AppError.
type StatusMapper interface {
	HTTPStatus() int
	ErrorCode() string
	PublicMessage() string
}

func ToHTTP(err error) *HTTPError {
	if err == nil {
		return &HTTPError{
			Status:  http.StatusOK,
			Code:    "",
			Message: "",
			Details: nil,
		}
	}

	var appErr *AppError
	// errors.As looks for an AppError anywhere in the chain
	if errors.As(err, &appErr) {
		return &HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: nil,
		}
	}

	var mapper StatusMapper
	if errors.As(err, &mapper) {
		return &HTTPError{
			Status:  mapper.HTTPStatus(),
			Code:    mapper.ErrorCode(),
			Message: mapper.PublicMessage(),
			Details: nil,
		}
	}

	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "internal server error",
		Details: nil,
	}
}
