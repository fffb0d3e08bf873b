package checkout

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrNothingSelected = apperror.New(
		apperror.CodeInvalidInput,
		"Select at least one cart item to check out",
		http.StatusBadRequest,
	)

	ErrMissingPaymentSession = apperror.New(
		apperror.CodeInvalidInput,
		"Payment session id is required",
		http.StatusBadRequest,
	)

	ErrCheckoutNotFound = apperror.New(
		apperror.CodeNotFound,
		"Checkout not found",
		http.StatusNotFound,
	)

	ErrPaymentNotCompleted = apperror.New(
		apperror.CodeInvalidState,
		"Payment has not been completed",
		http.StatusConflict,
	)
)
