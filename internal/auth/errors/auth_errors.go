package autherrors

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid authentication token",
		http.StatusBadRequest,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication token expired",
		http.StatusUnauthorized,
	)

	ErrMissingUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Token does not identify a user",
		http.StatusBadRequest,
	)

	ErrSessionSaveFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not start your session, please try again",
		http.StatusInternalServerError,
	)

	ErrNotSignedIn = apperror.New(
		apperror.CodeUnauthorized,
		"Please sign in to continue",
		http.StatusUnauthorized,
	)
)
