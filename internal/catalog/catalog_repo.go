package catalog

import (
	"context"

	"go-storefront/internal/storeapi"
)

//go:generate mockgen -source=catalog_repo.go -destination=../mock/catalog/catalog_repo_mock.go -package=mock
type Repository interface {
	ListProducts(ctx context.Context, token string) ([]storeapi.Product, error)
	GetProduct(ctx context.Context, token string, id storeapi.ID) (*storeapi.Product, error)
	ListCategories(ctx context.Context, token string) ([]storeapi.Category, error)
}
