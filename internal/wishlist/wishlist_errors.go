package wishlist

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

const retryMessage = "Something went wrong. Please try again!"

var (
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)
)

// syncFailed keeps the backend error in the chain but shows the generic
// retry notification.
func syncFailed(err error) error {
	httpErr := apperror.ToHTTP(err)
	return apperror.Wrap(err, httpErr.Code, retryMessage, httpErr.Status)
}
