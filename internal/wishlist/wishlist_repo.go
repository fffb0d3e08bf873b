package wishlist

import (
	"context"

	"go-storefront/internal/storeapi"
)

//go:generate mockgen -source=wishlist_repo.go -destination=../mock/wishlist/wishlist_repo_mock.go -package=mock
type Repository interface {
	FetchWishlist(ctx context.Context, token string) ([]storeapi.WishlistItem, error)
	AddToWishlist(ctx context.Context, token string, productID storeapi.ID) (*storeapi.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, token string, productID storeapi.ID) error
}
