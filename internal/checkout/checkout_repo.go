package checkout

import (
	"context"

	"go-storefront/internal/storeapi"
)

//go:generate mockgen -source=checkout_repo.go -destination=../mock/checkout/checkout_repo_mock.go -package=mock
type Repository interface {
	CreateOrder(ctx context.Context, token string, req storeapi.OrderRequest) (*storeapi.OrderSession, error)
	FetchAddress(ctx context.Context, token string) (*storeapi.Address, error)
}
