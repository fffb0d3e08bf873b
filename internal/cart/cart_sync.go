package cart

import (
	"context"
	"sync"

	"go-storefront/internal/pkg/keylock"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Sync mirrors one session's remote cart. The backend is the source of
// truth: local items change only after the backend accepted a mutation.
type Sync struct {
	repo Repository
	log  *zap.Logger

	mu     sync.Mutex
	items  []storeapi.CartItem
	loaded bool
	stale  bool
	epoch  uint64
	gen    uint64

	locks *keylock.KeyedMutex
}

func NewSync(repo Repository, log *zap.Logger) *Sync {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sync{
		repo:  repo,
		log:   log,
		locks: keylock.New(),
	}
}

func (s *Sync) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Fetch replaces the local collection with the backend's. On failure the
// previous collection is kept. An invalidation that lands while the request
// is in flight keeps the mirror stale.
func (s *Sync) Fetch(ctx context.Context, sess session.Session) error {
	s.mu.Lock()
	gen, epoch := s.gen, s.epoch
	s.mu.Unlock()

	items, err := s.repo.FetchCart(ctx, sess.Token)
	if err != nil {
		s.log.Warn("fetch cart failed", zap.String("session_id", sess.ID), zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		s.log.Debug("dropping cart response after reset", zap.String("session_id", sess.ID))
		return nil
	}
	s.items = items
	s.loaded = true
	if s.epoch == epoch {
		s.stale = false
	}
	return nil
}

// EnsureFresh fetches only when nothing was loaded yet or the cart was
// invalidated.
func (s *Sync) EnsureFresh(ctx context.Context, sess session.Session) error {
	s.mu.Lock()
	fresh := s.loaded && !s.stale
	s.mu.Unlock()
	if fresh {
		return nil
	}
	return s.Fetch(ctx, sess)
}

// FetchSelected returns the items chosen for checkout. They are not
// mirrored locally.
func (s *Sync) FetchSelected(ctx context.Context, sess session.Session) ([]storeapi.CartItem, error) {
	items, err := s.repo.FetchSelectedCart(ctx, sess.Token)
	if err != nil {
		s.log.Warn("fetch selected cart failed", zap.String("session_id", sess.ID), zap.Error(err))
		return nil, err
	}
	return items, nil
}

// Add never appends optimistically; the new line comes from a refetch.
func (s *Sync) Add(ctx context.Context, sess session.Session, productID storeapi.ID, quantity int) (string, error) {
	if productID == "" {
		return "", ErrInvalidProductID
	}
	if quantity < 1 {
		return "", ErrInvalidQuantity
	}

	msg, err := s.repo.AddToCart(ctx, sess.Token, productID, quantity)
	if err != nil {
		s.log.Warn("add to cart failed",
			zap.String("session_id", sess.ID),
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
		return "", err
	}
	return msg, s.Fetch(ctx, sess)
}

func (s *Sync) UpdateQuantity(ctx context.Context, sess session.Session, itemID storeapi.ID, quantity int) error {
	if itemID == "" {
		return ErrInvalidItemID
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	unlock := s.locks.Lock(itemID.String())
	defer unlock()

	gen := s.generation()
	q, err := s.repo.UpdateCartQuantity(ctx, sess.Token, itemID, quantity)
	if err != nil {
		s.log.Warn("update cart quantity failed",
			zap.String("session_id", sess.ID),
			zap.String("item_id", itemID.String()),
			zap.Error(err),
		)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity = q
			break
		}
	}
	return nil
}

func (s *Sync) Delete(ctx context.Context, sess session.Session, itemID storeapi.ID) error {
	if itemID == "" {
		return ErrInvalidItemID
	}

	unlock := s.locks.Lock(itemID.String())
	defer unlock()

	gen := s.generation()
	if err := s.repo.DeleteCartItem(ctx, sess.Token, itemID); err != nil {
		if storeapi.IsNotFound(err) {
			s.log.Info("cart item already gone",
				zap.String("session_id", sess.ID),
				zap.String("item_id", itemID.String()),
			)
			s.Forget(itemID)
			return nil
		}
		s.log.Warn("delete cart item failed",
			zap.String("session_id", sess.ID),
			zap.String("item_id", itemID.String()),
			zap.Error(err),
		)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}
	s.removeLocked(itemID)
	return nil
}

func (s *Sync) removeLocked(itemID storeapi.ID) {
	kept := s.items[:0:0]
	for _, it := range s.items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

// Forget drops items from the local mirror that the backend no longer has.
func (s *Sync) Forget(ids ...storeapi.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.removeLocked(id)
	}
}

func (s *Sync) Items() []storeapi.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]storeapi.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Sync) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Total is recomputed from the current items on every call.
func (s *Sync) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Total(s.items)
}

func (s *Sync) MarkStale() {
	s.mu.Lock()
	s.stale = true
	s.epoch++
	s.mu.Unlock()
}

func (s *Sync) Stale() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stale
}

// Reset empties the mirror. Responses to requests issued before the reset
// are discarded when they arrive.
func (s *Sync) Reset() {
	s.mu.Lock()
	s.gen++
	s.items = nil
	s.loaded = false
	s.stale = false
	s.mu.Unlock()
}

// Total sums unit price times quantity.
func Total(items []storeapi.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.UnitPrice().Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}
