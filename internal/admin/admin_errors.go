package admin

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrInvalidPrice = apperror.New(
		apperror.CodeInvalidInput,
		"Price must be a non-negative number",
		http.StatusBadRequest,
	)

	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Product id is required",
		http.StatusBadRequest,
	)

	ErrUploadUnavailable = apperror.New(
		apperror.CodeInvalidState,
		"Image upload is not configured",
		http.StatusServiceUnavailable,
	)

	ErrUploadFailed = apperror.New(
		apperror.CodeUpstream,
		"Failed to upload product image",
		http.StatusBadGateway,
	)
)
