package session

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrSessionNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Session not found, please sign in",
		http.StatusUnauthorized,
	)

	ErrSessionStore = apperror.New(
		apperror.CodeInternalError,
		"Failed to access session storage",
		http.StatusInternalServerError,
	)
)
