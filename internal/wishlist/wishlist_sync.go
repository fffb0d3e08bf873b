package wishlist

import (
	"context"
	"sync"

	"go-storefront/internal/pkg/keylock"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sync mirrors one session's wishlist with optimistic toggles. At most one
// item exists per product.
type Sync struct {
	repo Repository
	log  *zap.Logger

	mu     sync.Mutex
	items  []Item
	loaded bool
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

func (s *Sync) indexLocked(productID storeapi.ID) int {
	for i, it := range s.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Sync) indexByIDLocked(id storeapi.ID) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s *Sync) deleteLocked(i int) {
	s.items = append(s.items[:i:i], s.items[i+1:]...)
}

// Fetch merges the server list with entries that are still in flight.
func (s *Sync) Fetch(ctx context.Context, sess session.Session) error {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	remote, err := s.repo.FetchWishlist(ctx, sess.Token)
	if err != nil {
		s.log.Warn("fetch wishlist failed", zap.String("session_id", sess.ID), zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}

	pending := make(map[storeapi.ID]Item)
	for _, it := range s.items {
		if it.State != Synced {
			pending[it.ProductID] = it
		}
	}

	merged := make([]Item, 0, len(remote)+len(pending))
	seen := make(map[storeapi.ID]struct{}, len(remote))
	for _, w := range remote {
		if _, dup := seen[w.ProductID]; dup {
			continue
		}
		seen[w.ProductID] = struct{}{}

		it := fromServer(w)
		if p, ok := pending[w.ProductID]; ok && p.State == PendingRemove {
			it.State = PendingRemove
		}
		merged = append(merged, it)
	}
	for _, p := range s.items {
		if p.State != PendingAdd {
			continue
		}
		if _, ok := seen[p.ProductID]; !ok {
			merged = append(merged, p)
		}
	}
	s.items = merged
	s.loaded = true
	return nil
}

// EnsureFresh loads the server list once so membership checks never run
// against an empty mirror.
func (s *Sync) EnsureFresh(ctx context.Context, sess session.Session) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	if err := s.Fetch(ctx, sess); err != nil {
		return syncFailed(err)
	}
	return nil
}

// Toggle adds the product when absent and removes it when present. It
// reports whether the product ends up in the wishlist.
func (s *Sync) Toggle(ctx context.Context, sess session.Session, productID storeapi.ID, productName string) (bool, error) {
	if productID == "" {
		return false, ErrInvalidProductID
	}

	unlock := s.locks.Lock(productID.String())
	defer unlock()

	if err := s.EnsureFresh(ctx, sess); err != nil {
		return false, err
	}

	s.mu.Lock()
	present := s.indexLocked(productID) >= 0
	s.mu.Unlock()

	if present {
		return false, s.remove(ctx, sess, productID)
	}
	return true, s.add(ctx, sess, productID, productName)
}

// Remove deletes the product directly, as the wishlist page does.
func (s *Sync) Remove(ctx context.Context, sess session.Session, productID storeapi.ID) error {
	if productID == "" {
		return ErrInvalidProductID
	}
	unlock := s.locks.Lock(productID.String())
	defer unlock()
	if err := s.EnsureFresh(ctx, sess); err != nil {
		return err
	}
	return s.remove(ctx, sess, productID)
}

func (s *Sync) remove(ctx context.Context, sess session.Session, productID storeapi.ID) error {
	s.mu.Lock()
	gen := s.gen
	var prev *Item
	if i := s.indexLocked(productID); i >= 0 {
		p := s.items[i]
		prev = &p
		s.items[i].State = PendingRemove
	}
	s.mu.Unlock()

	err := s.repo.RemoveFromWishlist(ctx, sess.Token, productID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return nil
	}
	i := s.indexLocked(productID)
	if err != nil {
		s.log.Warn("remove from wishlist failed",
			zap.String("session_id", sess.ID),
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
		if i >= 0 && prev != nil {
			s.items[i].State = prev.State
		}
		return syncFailed(err)
	}
	if i >= 0 {
		s.deleteLocked(i)
	}
	return nil
}

func (s *Sync) add(ctx context.Context, sess session.Session, productID storeapi.ID, productName string) error {
	placeholder := Item{
		ID:          storeapi.ID(placeholderPrefix + uuid.NewString()),
		ProductID:   productID,
		ProductName: productName,
		State:       PendingAdd,
	}

	s.mu.Lock()
	gen := s.gen
	s.items = append(s.items, placeholder)
	s.mu.Unlock()

	created, err := s.repo.AddToWishlist(ctx, sess.Token, productID)
	if err != nil {
		s.log.Warn("add to wishlist failed",
			zap.String("session_id", sess.ID),
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
		s.mu.Lock()
		if s.gen == gen {
			if i := s.indexByIDLocked(placeholder.ID); i >= 0 {
				s.deleteLocked(i)
			}
		}
		s.mu.Unlock()
		return syncFailed(err)
	}

	if created != nil {
		s.mu.Lock()
		if s.gen == gen {
			if i := s.indexByIDLocked(placeholder.ID); i >= 0 {
				it := fromServer(*created)
				if it.ProductName == "" {
					it.ProductName = productName
				}
				s.items[i] = it
			}
		}
		s.mu.Unlock()
		return nil
	}

	// the backend did not echo the row, learn its id from the list
	if err := s.Fetch(ctx, sess); err != nil {
		s.log.Warn("wishlist refetch after add failed", zap.String("session_id", sess.ID), zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		if i := s.indexByIDLocked(placeholder.ID); i >= 0 {
			s.items[i].State = Synced
		}
	}
	return nil
}

// Items returns the visible items; pending removals are hidden.
func (s *Sync) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if it.State != PendingRemove {
			out = append(out, it)
		}
	}
	return out
}

func (s *Sync) Contains(productID storeapi.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(productID)
	return i >= 0 && s.items[i].State != PendingRemove
}

func (s *Sync) Reset() {
	s.mu.Lock()
	s.gen++
	s.items = nil
	s.loaded = false
	s.mu.Unlock()
}
