package payment

import (
	"context"
	"net/http"

	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/storeapi"

	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"go.uber.org/zap"
)

const (
	snapRedirectSandbox    = "https://app.sandbox.midtrans.com/snap/v2/vtweb/"
	snapRedirectProduction = "https://app.midtrans.com/snap/v2/vtweb/"
)

type transactionChecker interface {
	CheckTransaction(param string) (*coreapi.TransactionStatusResponse, *midtransgo.Error)
}

type MidtransGateway struct {
	client       transactionChecker
	isProduction bool
	log          *zap.Logger
}

func NewMidtransGateway(serverKey string, isProduction bool, log *zap.Logger) *MidtransGateway {
	if log == nil {
		log = zap.NewNop()
	}

	var env midtransgo.EnvironmentType
	if isProduction {
		env = midtransgo.Production
	} else {
		env = midtransgo.Sandbox
	}

	c := &coreapi.Client{}
	c.New(serverKey, env)

	return &MidtransGateway{
		client:       c,
		isProduction: isProduction,
		log:          log,
	}
}

func (g *MidtransGateway) Name() string { return ProviderMidtrans }

// RedirectURL prefers the URL the backend handed out and otherwise builds
// the Snap page from the token.
func (g *MidtransGateway) RedirectURL(_ context.Context, order storeapi.OrderSession) (string, error) {
	if order.RedirectURL != "" {
		return order.RedirectURL, nil
	}
	if order.SnapToken == "" {
		return "", ErrNoRedirect
	}
	if g.isProduction {
		return snapRedirectProduction + order.SnapToken, nil
	}
	return snapRedirectSandbox + order.SnapToken, nil
}

// IsPaid checks the order id with the Core API. The midtrans client takes
// no context, so cancellation is only honoured before the call.
func (g *MidtransGateway) IsPaid(ctx context.Context, orderID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	res, mErr := g.client.CheckTransaction(orderID)
	if mErr != nil {
		if mErr.StatusCode == http.StatusNotFound {
			return false, apperror.Wrap(mErr, ErrSessionNotFound.Code, ErrSessionNotFound.Message, ErrSessionNotFound.HTTPStatus)
		}
		g.log.Error("midtrans status check failed", zap.String("order_id", orderID), zap.Error(mErr))
		return false, apperror.Wrap(mErr, ErrProviderUnavailable.Code, ErrProviderUnavailable.Message, ErrProviderUnavailable.HTTPStatus)
	}
	if res == nil {
		return false, ErrProviderUnavailable
	}

	g.log.Debug("midtrans transaction status",
		zap.String("order_id", orderID),
		zap.String("transaction_status", res.TransactionStatus),
		zap.String("fraud_status", res.FraudStatus),
	)

	switch res.TransactionStatus {
	case "settlement":
		return true, nil
	case "capture":
		return res.FraudStatus == "" || res.FraudStatus == "accept", nil
	default:
		return false, nil
	}
}

// Reference is always empty: the Core API status response carries nothing
// that identifies the storefront user.
func (g *MidtransGateway) Reference(ctx context.Context, _ string) (Reference, error) {
	return Reference{}, ctx.Err()
}
