package catalog

import (
	"context"
	"strings"

	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"go.uber.org/zap"
)

const allCategories = "all"

//go:generate mockgen -source=catalog_service.go -destination=../mock/catalog/catalog_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, sess session.Session, category string) (ProductListResponse, error)
	Detail(ctx context.Context, sess session.Session, id string) (*storeapi.Product, error)
	Categories(ctx context.Context, sess session.Session) ([]storeapi.Category, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	if repo == nil {
		panic("catalog repository cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, logger: logger}
}

// List returns every product, or only those of one category when a category
// other than "all" is given. The backend has no filter, so it is applied here.
func (s *service) List(ctx context.Context, sess session.Session, category string) (ProductListResponse, error) {
	products, err := s.repo.ListProducts(ctx, sess.Token)
	if err != nil {
		s.logger.Warn("list products failed", zap.Error(err))
		return ProductListResponse{}, err
	}

	category = strings.TrimSpace(category)
	filtered := FilterByCategory(products, category)
	if category == "" {
		category = allCategories
	}
	return ProductListResponse{
		Category: category,
		Products: filtered,
		Count:    len(filtered),
	}, nil
}

func (s *service) Detail(ctx context.Context, sess session.Session, id string) (*storeapi.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidProductID
	}
	p, err := s.repo.GetProduct(ctx, sess.Token, storeapi.ID(id))
	if err != nil {
		s.logger.Warn("get product failed", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (s *service) Categories(ctx context.Context, sess session.Session) ([]storeapi.Category, error) {
	cats, err := s.repo.ListCategories(ctx, sess.Token)
	if err != nil {
		s.logger.Warn("list categories failed", zap.Error(err))
		return nil, err
	}
	if cats == nil {
		cats = []storeapi.Category{}
	}
	return cats, nil
}

// FilterByCategory keeps products whose category matches, ignoring case.
// An empty category or "all" keeps everything.
func FilterByCategory(products []storeapi.Product, category string) []storeapi.Product {
	out := make([]storeapi.Product, 0, len(products))
	if category == "" || strings.EqualFold(category, allCategories) {
		return append(out, products...)
	}
	for _, p := range products {
		if strings.EqualFold(strings.TrimSpace(p.Category), category) {
			out = append(out, p)
		}
	}
	return out
}
