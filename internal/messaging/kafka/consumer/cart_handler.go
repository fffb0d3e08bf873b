package consumer

import (
	"encoding/json"
	"errors"

	"go-storefront/internal/storeapi"

	"go.uber.org/zap"
)

const (
	EventCartChanged = "CART_CHANGED"
	EventDeleteCart  = "DELETE_CART"
)

// CartInvalidator is implemented by cart.Service.
type CartInvalidator interface {
	MarkUserStale(userID string) int
}

type cartEventPayload struct {
	UserID storeapi.ID `json:"user_id"`
}

var errMissingUserID = errors.New("cart event without user_id")

func handleCartEvent(payload []byte, carts CartInvalidator, log *zap.Logger) error {
	var data cartEventPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}
	if data.UserID == "" {
		return errMissingUserID
	}

	n := carts.MarkUserStale(data.UserID.String())
	log.Debug("cart invalidated",
		zap.String("user_id", data.UserID.String()),
		zap.Int("sessions", n),
	)
	return nil
}
