package catalog

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var ErrInvalidProductID = apperror.New(
	apperror.CodeInvalidInput,
	"Product id is required",
	http.StatusBadRequest,
)
