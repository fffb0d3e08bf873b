package cart

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be at least 1",
		http.StatusBadRequest,
	)

	ErrInvalidItemID = apperror.New(
		apperror.CodeInvalidInput,
		"Cart item id is required",
		http.StatusBadRequest,
	)

	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Product id is required",
		http.StatusBadRequest,
	)
)
