package cart

import (
	"context"
	"time"

	"go-storefront/internal/pkg/registry"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"go.uber.org/zap"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, sess session.Session, refresh bool) (CartResponse, error)
	Total(ctx context.Context, sess session.Session) (TotalResponse, error)
	AddItem(ctx context.Context, sess session.Session, req AddItemRequest) (CartResponse, error)
	UpdateQty(ctx context.Context, sess session.Session, itemID string, req UpdateQtyRequest) (CartResponse, error)
	DeleteItem(ctx context.Context, sess session.Session, itemID string) (CartResponse, error)

	// Used by checkout.
	Selected(ctx context.Context, sess session.Session) ([]storeapi.CartItem, error)
	RemoveItem(ctx context.Context, sess session.Session, itemID storeapi.ID) error

	MarkUserStale(userID string) int
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
		panic("cart repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	s := &service{
		repo:   deps.Repo,
		logger: deps.Logger,
	}
	s.sessions = registry.New(deps.SessionTTL, s.newSync,
		registry.WithEvict(func(sy *Sync) { sy.Reset() }),
	)
	return s
}

func (s *service) newSync() *Sync {
	return NewSync(s.repo, s.logger)
}

// syncFor returns the session's mirror. Anonymous requests get a throwaway
// one so the backend still answers (and rejects) them.
func (s *service) syncFor(sess session.Session) *Sync {
	if sess.ID == "" {
		return s.newSync()
	}
	return s.sessions.Get(sess.ID, sess.User.ID)
}

func (s *service) Detail(ctx context.Context, sess session.Session, refresh bool) (CartResponse, error) {
	sy := s.syncFor(sess)

	var err error
	if refresh {
		err = sy.Fetch(ctx, sess)
	} else {
		err = sy.EnsureFresh(ctx, sess)
	}
	if err != nil {
		return CartResponse{}, err
	}
	return toCartResponse(sy), nil
}

func (s *service) Total(ctx context.Context, sess session.Session) (TotalResponse, error) {
	sy := s.syncFor(sess)
	if err := sy.EnsureFresh(ctx, sess); err != nil {
		return TotalResponse{}, err
	}
	return TotalResponse{Total: sy.Total(), Count: sy.Count()}, nil
}

func (s *service) AddItem(ctx context.Context, sess session.Session, req AddItemRequest) (CartResponse, error) {
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sy := s.syncFor(sess)
	msg, err := sy.Add(ctx, sess, req.ProductID, req.Quantity)
	if err != nil {
		return CartResponse{}, err
	}

	res := toCartResponse(sy)
	res.Message = msg
	return res, nil
}

func (s *service) UpdateQty(ctx context.Context, sess session.Session, itemID string, req UpdateQtyRequest) (CartResponse, error) {
	sy := s.syncFor(sess)
	if err := sy.EnsureFresh(ctx, sess); err != nil {
		return CartResponse{}, err
	}
	if err := sy.UpdateQuantity(ctx, sess, storeapi.ID(itemID), req.Quantity); err != nil {
		return CartResponse{}, err
	}
	return toCartResponse(sy), nil
}

func (s *service) DeleteItem(ctx context.Context, sess session.Session, itemID string) (CartResponse, error) {
	sy := s.syncFor(sess)
	if err := sy.EnsureFresh(ctx, sess); err != nil {
		return CartResponse{}, err
	}
	if err := sy.Delete(ctx, sess, storeapi.ID(itemID)); err != nil {
		return CartResponse{}, err
	}
	return toCartResponse(sy), nil
}

func (s *service) Selected(ctx context.Context, sess session.Session) ([]storeapi.CartItem, error) {
	return s.syncFor(sess).FetchSelected(ctx, sess)
}

func (s *service) RemoveItem(ctx context.Context, sess session.Session, itemID storeapi.ID) error {
	return s.syncFor(sess).Delete(ctx, sess, itemID)
}

func (s *service) MarkUserStale(userID string) int {
	syncs := s.sessions.ForUser(userID)
	for _, sy := range syncs {
		sy.MarkStale()
	}
	return len(syncs)
}

func (s *service) Reset(sessionID string) {
	s.sessions.Drop(sessionID)
}

func (s *service) Sweep() int {
	return s.sessions.Sweep()
}
