package admin

import (
	"context"

	"go-storefront/internal/storeapi"
)

//go:generate mockgen -source=admin_repo.go -destination=../mock/admin/admin_repo_mock.go -package=mock
type Repository interface {
	GetProduct(ctx context.Context, token string, id storeapi.ID) (*storeapi.Product, error)
	CreateProduct(ctx context.Context, token string, in storeapi.ProductInput) (*storeapi.Product, error)
	UpdateProduct(ctx context.Context, token string, id storeapi.ID, in storeapi.ProductInput) (*storeapi.Product, error)
	DeleteProduct(ctx context.Context, token string, id storeapi.ID) error
	CreateCategory(ctx context.Context, token string, in storeapi.CategoryInput) (*storeapi.Category, error)
}
