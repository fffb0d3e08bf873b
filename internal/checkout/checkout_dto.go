package checkout

import (
	"time"

	"go-storefront/internal/storeapi"

	"github.com/shopspring/decimal"
)

// Summary is what the checkout page shows before paying.
type Summary struct {
	Items   []storeapi.CartItem `json:"items"`
	Address *storeapi.Address   `json:"shipping_address"`
	Total   decimal.Decimal     `json:"total"`
}

type BeginResponse struct {
	PaymentSessionID string          `json:"payment_session_id"`
	RedirectURL      string          `json:"redirect_url"`
	Provider         string          `json:"provider"`
	Total            decimal.Decimal `json:"total"`
}

type CompleteResponse struct {
	Navigate      string   `json:"navigate"`
	DeletedItems  []string `json:"deleted_items"`
	FailedItems   []string `json:"failed_items"`
	AlreadyClosed bool     `json:"already_closed,omitempty"`
}

// PendingCheckout is remembered between the payment redirect and the
// browser's return from the provider.
type PendingCheckout struct {
	PaymentSessionID string
	SessionID        string
	UserID           string
	ItemIDs          []storeapi.ID
	Total            decimal.Decimal
	CreatedAt        time.Time

	completed   *CompleteResponse
	completedAt time.Time
}

type completedPayload struct {
	PaymentSessionID string   `json:"payment_session_id"`
	UserID           string   `json:"user_id"`
	Total            string   `json:"total"`
	DeletedItemIDs   []string `json:"deleted_item_ids"`
	FailedItemIDs    []string `json:"failed_item_ids"`
}

type unmatchedPayload struct {
	PaymentSessionID string `json:"payment_session_id"`
	UserID           string `json:"user_id"`
	Reason           string `json:"reason"`
}

type cleanupFailedPayload struct {
	PaymentSessionID string   `json:"payment_session_id"`
	UserID           string   `json:"user_id"`
	FailedItemIDs    []string `json:"failed_item_ids"`
}
