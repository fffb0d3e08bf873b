package cart

import (
	"context"

	"go-storefront/internal/storeapi"
)

// Repository is the remote cart. *storeapi.Client satisfies it.
//
//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_repo_mock.go -package=mock
type Repository interface {
	FetchCart(ctx context.Context, token string) ([]storeapi.CartItem, error)
	FetchSelectedCart(ctx context.Context, token string) ([]storeapi.CartItem, error)
	AddToCart(ctx context.Context, token string, productID storeapi.ID, quantity int) (string, error)
	UpdateCartQuantity(ctx context.Context, token string, itemID storeapi.ID, quantity int) (int, error)
	DeleteCartItem(ctx context.Context, token string, itemID storeapi.ID) error
}
