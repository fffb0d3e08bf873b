package payment

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/storeapi"

	"github.com/stripe/stripe-go/v80"
	checkoutsession "github.com/stripe/stripe-go/v80/checkout/session"
	"go.uber.org/zap"
)

type checkoutSessionGetter interface {
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeGateway struct {
	sessions checkoutSessionGetter
	log      *zap.Logger
}

func NewStripeGateway(secretKey string, log *zap.Logger) *StripeGateway {
	return NewStripeGatewayWithBackend(secretKey, stripe.GetBackend(stripe.APIBackend), log)
}

// NewStripeGatewayWithBackend lets callers point the client at another API
// host.
func NewStripeGatewayWithBackend(secretKey string, backend stripe.Backend, log *zap.Logger) *StripeGateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &StripeGateway{
		sessions: &checkoutsession.Client{B: backend, Key: secretKey},
		log:      log,
	}
}

func (g *StripeGateway) Name() string { return ProviderStripe }

func (g *StripeGateway) get(ctx context.Context, id string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := g.sessions.Get(id, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			return nil, apperror.Wrap(err, ErrSessionNotFound.Code, ErrSessionNotFound.Message, ErrSessionNotFound.HTTPStatus)
		}
		g.log.Error("stripe checkout session lookup failed", zap.String("session_id", id), zap.Error(err))
		return nil, apperror.Wrap(err, ErrProviderUnavailable.Code, ErrProviderUnavailable.Message, ErrProviderUnavailable.HTTPStatus)
	}
	return sess, nil
}

func (g *StripeGateway) RedirectURL(ctx context.Context, order storeapi.OrderSession) (string, error) {
	if order.RedirectURL != "" {
		return order.RedirectURL, nil
	}
	sess, err := g.get(ctx, order.SessionID)
	if err != nil {
		return "", err
	}
	if sess.URL == "" {
		return "", ErrNoRedirect
	}
	return sess.URL, nil
}

func (g *StripeGateway) IsPaid(ctx context.Context, sessionID string) (bool, error) {
	sess, err := g.get(ctx, sessionID)
	if err != nil {
		return false, err
	}
	g.log.Debug("stripe checkout session status",
		zap.String("session_id", sessionID),
		zap.String("payment_status", string(sess.PaymentStatus)),
	)
	return sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}

const (
	metadataUserID      = "user_id"
	metadataCartItemIDs = "cart_item_ids"
)

// Reference reads client_reference_id (or metadata user_id) and the
// comma-separated cart_item_ids metadata the backend attaches.
func (g *StripeGateway) Reference(ctx context.Context, sessionID string) (Reference, error) {
	sess, err := g.get(ctx, sessionID)
	if err != nil {
		return Reference{}, err
	}

	ref := Reference{UserID: sess.ClientReferenceID}
	if ref.UserID == "" {
		ref.UserID = sess.Metadata[metadataUserID]
	}
	for _, id := range strings.Split(sess.Metadata[metadataCartItemIDs], ",") {
		if id = strings.TrimSpace(id); id != "" {
			ref.CartItemIDs = append(ref.CartItemIDs, storeapi.ID(id))
		}
	}
	return ref, nil
}
