package checkout

import (
	"context"
	"encoding/json"
	"time"

	"go-storefront/internal/cart"
	"go-storefront/internal/outbox"
	"go-storefront/internal/payment"
	"go-storefront/internal/pkg/keylock"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"
)

const defaultOrdersPath = "/orders"

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	Prepare(ctx context.Context, sess session.Session) (Summary, error)
	Begin(ctx context.Context, sess session.Session, summary Summary) (BeginResponse, error)
	Complete(ctx context.Context, sess session.Session, paymentSessionID string) (CompleteResponse, error)
}

type Deps struct {
	Repo       Repository
	CartSvc    cart.Service
	Gateway    payment.Gateway
	Outbox     outbox.Recorder
	Logger     *zap.Logger
	OrdersPath string
	PendingTTL time.Duration
	Now        func() time.Time

	// CompletedTTL is how long a completed checkout answers replays.
	CompletedTTL time.Duration
}

type service struct {
	repo       Repository
	cartSvc    cart.Service
	gateway    payment.Gateway
	outbox     outbox.Recorder
	logger     *zap.Logger
	ordersPath string
	now        func() time.Time

	pending *pendingStore
	locks   *keylock.KeyedMutex
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("checkout repository cannot be nil")
	}
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.Gateway == nil {
		panic("payment gateway cannot be nil")
	}
	if deps.Outbox == nil {
		deps.Outbox = outbox.NewService(outbox.Deps{Logger: deps.Logger})
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.OrdersPath == "" {
		deps.OrdersPath = defaultOrdersPath
	}
	if deps.PendingTTL <= 0 {
		deps.PendingTTL = 24 * time.Hour
	}
	if deps.CompletedTTL <= 0 {
		deps.CompletedTTL = 30 * 24 * time.Hour
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &service{
		repo:       deps.Repo,
		cartSvc:    deps.CartSvc,
		gateway:    deps.Gateway,
		outbox:     deps.Outbox,
		logger:     deps.Logger,
		ordersPath: deps.OrdersPath,
		now:        deps.Now,
		pending:    newPendingStore(deps.PendingTTL, deps.CompletedTTL, deps.Now),
		locks:      keylock.New(),
	}
}

// Prepare loads the selected items and the shipping address concurrently.
func (s *service) Prepare(ctx context.Context, sess session.Session) (Summary, error) {
	var (
		items   []storeapi.CartItem
		address *storeapi.Address
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.cartSvc.Selected(gctx, sess)
		return err
	})
	g.Go(func() error {
		var err error
		address, err = s.repo.FetchAddress(gctx, sess.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("checkout prepare failed", zap.String("session_id", sess.ID), zap.Error(err))
		return Summary{}, err
	}

	return Summary{
		Items:   items,
		Address: address,
		Total:   cart.Total(items),
	}, nil
}

// Begin opens the order on the backend and returns where to pay. The cart
// is not touched here.
func (s *service) Begin(ctx context.Context, sess session.Session, summary Summary) (BeginResponse, error) {
	if len(summary.Items) == 0 {
		return BeginResponse{}, ErrNothingSelected
	}

	total := cart.Total(summary.Items)
	req := storeapi.OrderRequest{
		CartItems:       make([]json.RawMessage, 0, len(summary.Items)),
		TotalPrice:      json.Number(total.String()),
		ShippingAddress: summary.Address,
	}
	ids := make([]storeapi.ID, 0, len(summary.Items))
	for _, it := range summary.Items {
		req.CartItems = append(req.CartItems, it.Raw())
		ids = append(ids, it.ID)
	}

	order, err := s.repo.CreateOrder(ctx, sess.Token, req)
	if err != nil {
		s.logger.Warn("create order failed", zap.String("session_id", sess.ID), zap.Error(err))
		return BeginResponse{}, err
	}

	redirect, err := s.gateway.RedirectURL(ctx, *order)
	if err != nil {
		s.logger.Warn("payment redirect failed",
			zap.String("payment_session_id", order.SessionID),
			zap.String("provider", s.gateway.Name()),
			zap.Error(err),
		)
		return BeginResponse{}, err
	}

	s.pending.put(&PendingCheckout{
		PaymentSessionID: order.SessionID,
		SessionID:        sess.ID,
		UserID:           sess.User.ID,
		ItemIDs:          ids,
		Total:            total,
		CreatedAt:        s.now(),
	})

	s.logger.Info("checkout started",
		zap.String("payment_session_id", order.SessionID),
		zap.String("user_id", sess.User.ID),
		zap.Int("items", len(ids)),
		zap.String("total", total.String()),
	)

	return BeginResponse{
		PaymentSessionID: order.SessionID,
		RedirectURL:      redirect,
		Provider:         s.gateway.Name(),
		Total:            total,
	}, nil
}

// Complete runs after the provider sends the browser back. Once the session
// is paid the cart lines it paid for are deleted one by one; a failed
// deletion is logged and recorded, and the rest still run.
func (s *service) Complete(ctx context.Context, sess session.Session, paymentSessionID string) (CompleteResponse, error) {
	if paymentSessionID == "" {
		return CompleteResponse{}, ErrMissingPaymentSession
	}

	unlock := s.locks.Lock(paymentSessionID)
	defer unlock()

	pc, ok := s.pending.get(paymentSessionID)
	if ok && pc.SessionID != "" && pc.SessionID != sess.ID {
		return CompleteResponse{}, ErrCheckoutNotFound
	}
	if ok && pc.completed != nil {
		res := *pc.completed
		res.AlreadyClosed = true
		return res, nil
	}

	paid, err := s.gateway.IsPaid(ctx, paymentSessionID)
	if err != nil {
		s.logger.Warn("payment status check failed", zap.String("payment_session_id", paymentSessionID), zap.Error(err))
		return CompleteResponse{}, err
	}
	if !paid {
		return CompleteResponse{}, ErrPaymentNotCompleted
	}

	var ids []storeapi.ID
	if ok {
		ids = pc.ItemIDs
	} else {
		// no record of this checkout here, trust only what the provider
		// says the session paid for
		ids, err = s.paidItems(ctx, sess, paymentSessionID)
		if err != nil {
			return CompleteResponse{}, err
		}
	}

	res := CompleteResponse{
		Navigate:     s.ordersPath,
		DeletedItems: make([]string, 0, len(ids)),
		FailedItems:  []string{},
	}
	for _, id := range ids {
		if err := s.cartSvc.RemoveItem(ctx, sess, id); err != nil {
			s.logger.Error("cart cleanup failed",
				zap.String("payment_session_id", paymentSessionID),
				zap.String("item_id", id.String()),
				zap.Error(err),
			)
			res.FailedItems = append(res.FailedItems, id.String())
			continue
		}
		res.DeletedItems = append(res.DeletedItems, id.String())
	}

	s.record(ctx, sess, paymentSessionID, pc, res)

	if !ok {
		pc = &PendingCheckout{
			PaymentSessionID: paymentSessionID,
			SessionID:        sess.ID,
			UserID:           sess.User.ID,
			ItemIDs:          ids,
			CreatedAt:        s.now(),
		}
	}
	s.pending.markCompleted(pc, res)
	return res, nil
}

// paidItems resolves the cart lines of a paid session that has no local
// record. The provider must name the signed-in user as the owner and list
// the lines; otherwise nothing is deleted.
func (s *service) paidItems(ctx context.Context, sess session.Session, paymentSessionID string) ([]storeapi.ID, error) {
	ref, err := s.gateway.Reference(ctx, paymentSessionID)
	if err != nil {
		s.logger.Warn("payment reference lookup failed", zap.String("payment_session_id", paymentSessionID), zap.Error(err))
		return nil, err
	}
	if ref.Owns(sess.User.ID) {
		return ref.CartItemIDs, nil
	}

	reason := "owner_mismatch"
	if ref.UserID == "" {
		reason = "owner_unknown"
	} else if ref.UserID == sess.User.ID {
		reason = "items_unknown"
	}
	s.logger.Warn("paid checkout not matched to session",
		zap.String("payment_session_id", paymentSessionID),
		zap.String("user_id", sess.User.ID),
		zap.String("reason", reason),
	)
	err = s.outbox.Record(ctx, outbox.AggregateCheckout, paymentSessionID, outbox.EventCheckoutUnmatched, unmatchedPayload{
		PaymentSessionID: paymentSessionID,
		UserID:           sess.User.ID,
		Reason:           reason,
	})
	if err != nil {
		s.logger.Error("record unmatched checkout failed", zap.String("payment_session_id", paymentSessionID), zap.Error(err))
	}
	return nil, ErrCheckoutNotFound
}

func (s *service) record(ctx context.Context, sess session.Session, paymentSessionID string, pc *PendingCheckout, res CompleteResponse) {
	total := ""
	if pc != nil {
		total = pc.Total.String()
	}

	err := s.outbox.Record(ctx, outbox.AggregateCheckout, paymentSessionID, outbox.EventCheckoutCompleted, completedPayload{
		PaymentSessionID: paymentSessionID,
		UserID:           sess.User.ID,
		Total:            total,
		DeletedItemIDs:   res.DeletedItems,
		FailedItemIDs:    res.FailedItems,
	})
	if err != nil {
		s.logger.Error("record checkout event failed", zap.String("payment_session_id", paymentSessionID), zap.Error(err))
	}

	if len(res.FailedItems) == 0 {
		return
	}
	err = s.outbox.Record(ctx, outbox.AggregateCheckout, paymentSessionID, outbox.EventCartCleanupFailed, cleanupFailedPayload{
		PaymentSessionID: paymentSessionID,
		UserID:           sess.User.ID,
		FailedItemIDs:    res.FailedItems,
	})
	if err != nil {
		s.logger.Error("record cleanup event failed", zap.String("payment_session_id", paymentSessionID), zap.Error(err))
	}
}
