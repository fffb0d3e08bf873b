package admin

import (
	"context"
	"strings"

	"go-storefront/internal/cloudinary"
	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=admin_service.go -destination=../mock/admin/admin_service_mock.go -package=mock
type Service interface {
	CreateProduct(ctx context.Context, sess session.Session, form ProductForm, img *Image) (*storeapi.Product, error)
	UpdateProduct(ctx context.Context, sess session.Session, id string, form ProductForm, img *Image) (*storeapi.Product, error)
	DeleteProduct(ctx context.Context, sess session.Session, id string) error
	CreateCategory(ctx context.Context, sess session.Session, req CategoryRequest) (*storeapi.Category, error)
}

type Deps struct {
	Repo     Repository
	Uploader cloudinary.Service
	Logger   *zap.Logger
}

type service struct {
	repo     Repository
	uploader cloudinary.Service
	logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("admin repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		repo:     deps.Repo,
		uploader: deps.Uploader,
		logger:   deps.Logger,
	}
}

func (s *service) CreateProduct(ctx context.Context, sess session.Session, form ProductForm, img *Image) (*storeapi.Product, error) {
	in, err := form.toInput()
	if err != nil {
		return nil, err
	}

	if img != nil {
		url, err := s.upload(ctx, img)
		if err != nil {
			return nil, err
		}
		in.ImageURL = url
	}

	p, err := s.repo.CreateProduct(ctx, sess.Token, in)
	if err != nil {
		s.logger.Warn("create product failed", zap.String("name", in.Name), zap.Error(err))
		s.discard(ctx, img, in.ImageURL)
		return nil, err
	}

	s.logger.Info("product created", zap.String("product_id", p.ID.String()), zap.String("user_id", sess.User.ID))
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, sess session.Session, id string, form ProductForm, img *Image) (*storeapi.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidProductID
	}
	in, err := form.toInput()
	if err != nil {
		return nil, err
	}

	if img != nil {
		url, err := s.upload(ctx, img)
		if err != nil {
			return nil, err
		}
		in.ImageURL = url
	}

	p, err := s.repo.UpdateProduct(ctx, sess.Token, storeapi.ID(id), in)
	if err != nil {
		s.logger.Warn("update product failed", zap.String("product_id", id), zap.Error(err))
		s.discard(ctx, img, in.ImageURL)
		return nil, err
	}
	return p, nil
}

// DeleteProduct removes the product and then, best effort, its uploaded image.
func (s *service) DeleteProduct(ctx context.Context, sess session.Session, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}

	imageURL := ""
	if s.uploader != nil {
		if p, err := s.repo.GetProduct(ctx, sess.Token, storeapi.ID(id)); err == nil && p != nil {
			imageURL = p.ImageURL
		}
	}

	if err := s.repo.DeleteProduct(ctx, sess.Token, storeapi.ID(id)); err != nil {
		s.logger.Warn("delete product failed", zap.String("product_id", id), zap.Error(err))
		return err
	}

	if imageURL != "" {
		if err := s.uploader.DeleteImage(ctx, imageURL); err != nil {
			s.logger.Warn("delete product image failed", zap.String("product_id", id), zap.Error(err))
		}
	}
	return nil
}

func (s *service) CreateCategory(ctx context.Context, sess session.Session, req CategoryRequest) (*storeapi.Category, error) {
	cat, err := s.repo.CreateCategory(ctx, sess.Token, storeapi.CategoryInput{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		s.logger.Warn("create category failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return cat, nil
}

func (s *service) upload(ctx context.Context, img *Image) (string, error) {
	if s.uploader == nil {
		return "", ErrUploadUnavailable
	}

	name := img.Filename
	if name == "" {
		name = uuid.NewString()
	}
	url, err := s.uploader.UploadImage(ctx, img.File, name)
	if err != nil {
		s.logger.Error("image upload failed", zap.String("filename", name), zap.Error(err))
		return "", apperror.Wrap(err, ErrUploadFailed.Code, ErrUploadFailed.Message, ErrUploadFailed.HTTPStatus)
	}
	return url, nil
}

// discard drops an image uploaded for a request the backend then refused.
func (s *service) discard(ctx context.Context, img *Image, url string) {
	if img == nil || url == "" || s.uploader == nil {
		return
	}
	if err := s.uploader.DeleteImage(ctx, url); err != nil {
		s.logger.Warn("discard uploaded image failed", zap.Error(err))
	}
}
