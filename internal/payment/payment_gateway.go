package payment

import (
	"context"
	"fmt"
	"strings"

	"go-storefront/internal/storeapi"

	"go.uber.org/zap"
)

// Gateway is the payment provider the backend opened the session with.
//
//go:generate mockgen -source=payment_gateway.go -destination=../mock/payment/payment_gateway_mock.go -package=mock
type Gateway interface {
	Name() string
	// RedirectURL is where the browser goes to pay for the order session.
	RedirectURL(ctx context.Context, order storeapi.OrderSession) (string, error)
	// IsPaid reports whether the provider considers the session paid.
	IsPaid(ctx context.Context, sessionID string) (bool, error)
	// Reference returns what the provider recorded about who opened the
	// session and for which cart lines. Empty fields mean unknown.
	Reference(ctx context.Context, sessionID string) (Reference, error)
}

// Reference ties a provider session back to a storefront user.
type Reference struct {
	UserID      string
	CartItemIDs []storeapi.ID
}

// Owns reports whether the session was opened by userID and names the cart
// lines it paid for.
func (r Reference) Owns(userID string) bool {
	return userID != "" && r.UserID == userID && len(r.CartItemIDs) > 0
}

type Config struct {
	Provider             string
	StripeSecretKey      string
	MidtransServerKey    string
	MidtransIsProduction bool
}

func NewGateway(cfg Config, log *zap.Logger) (Gateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderStripe:
		return NewStripeGateway(cfg.StripeSecretKey, log), nil
	case ProviderMidtrans:
		return NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransIsProduction, log), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.Provider)
	}
}
