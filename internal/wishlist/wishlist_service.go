package wishlist

import (
	"context"
	"time"

	"go-storefront/internal/pkg/registry"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"go.uber.org/zap"
)

//go:generate mockgen -source=wishlist_service.go -destination=../mock/wishlist/wishlist_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, sess session.Session) (WishlistResponse, error)
	Toggle(ctx context.Context, sess session.Session, req ToggleRequest) (ToggleResponse, error)
	Remove(ctx context.Context, sess session.Session, productID string) (WishlistResponse, error)
	Reset(sessionID string)
	Sweep() int
}

type Deps struct {
	Repo       Repository
	Logger     *zap.Logger
	SessionTTL time.Duration
}

type service struct {
	repo     Repository
	logger   *zap.Logger
	sessions *registry.Registry[*Sync]
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("wishlist repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	s := &service{repo: deps.Repo, logger: deps.Logger}
	s.sessions = registry.New(deps.SessionTTL, s.newSync,
		registry.WithEvict(func(sy *Sync) { sy.Reset() }),
	)
	return s
}

func (s *service) newSync() *Sync {
	return NewSync(s.repo, s.logger)
}

func (s *service) syncFor(sess session.Session) *Sync {
	if sess.ID == "" {
		return s.newSync()
	}
	return s.sessions.Get(sess.ID, sess.User.ID)
}

func (s *service) List(ctx context.Context, sess session.Session) (WishlistResponse, error) {
	sy := s.syncFor(sess)
	if err := sy.Fetch(ctx, sess); err != nil {
		return WishlistResponse{}, err
	}
	return toWishlistResponse(sy.Items()), nil
}

func (s *service) Toggle(ctx context.Context, sess session.Session, req ToggleRequest) (ToggleResponse, error) {
	sy := s.syncFor(sess)
	added, err := sy.Toggle(ctx, sess, req.ProductID, req.ProductName)
	if err != nil {
		return ToggleResponse{}, err
	}
	return ToggleResponse{
		ProductID:  req.ProductID.String(),
		InWishlist: added,
		Wishlist:   toWishlistResponse(sy.Items()),
	}, nil
}

func (s *service) Remove(ctx context.Context, sess session.Session, productID string) (WishlistResponse, error) {
	sy := s.syncFor(sess)
	if err := sy.Remove(ctx, sess, storeapi.ID(productID)); err != nil {
		return WishlistResponse{}, err
	}
	return toWishlistResponse(sy.Items()), nil
}

func (s *service) Reset(sessionID string) {
	s.sessions.Drop(sessionID)
}

func (s *service) Sweep() int {
	return s.sessions.Sweep()
}
