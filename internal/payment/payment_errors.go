package payment

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

const (
	ProviderStripe   = "stripe"
	ProviderMidtrans = "midtrans"
)

var (
	ErrNoRedirect = apperror.New(
		apperror.CodeUpstream,
		"Payment provider returned no checkout page",
		http.StatusBadGateway,
	)

	ErrProviderUnavailable = apperror.New(
		apperror.CodeUpstream,
		"Payment provider is unavailable, please try again",
		http.StatusBadGateway,
	)

	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payment session not found",
		http.StatusNotFound,
	)
)
