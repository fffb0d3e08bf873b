package cart_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-storefront/internal/cart"
	mock "go-storefront/internal/mock/cart"
	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func item(id string, unit int64, qty int) storeapi.CartItem {
	return storeapi.CartItem{ID: storeapi.ID(id), ProductID: storeapi.ID("p" + id), Quantity: qty, Price: price(unit)}
}

var testSess = session.Session{ID: "sess-1", Token: "tok", User: session.User{ID: "u1"}}

func TestSync_Fetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	s := cart.NewSync(repo, nil)
	ctx := context.Background()

	t.Run("success_replaces_wholesale", func(t *testing.T) {
		repo.EXPECT().FetchCart(ctx, "tok").Return([]storeapi.CartItem{item("1", 100, 2)}, nil)
		require.NoError(t, s.Fetch(ctx, testSess))

		repo.EXPECT().FetchCart(ctx, "tok").Return([]storeapi.CartItem{item("2", 50, 1)}, nil)
		require.NoError(t, s.Fetch(ctx, testSess))

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, storeapi.ID("2"), items[0].ID)
	})

	t.Run("error_keeps_previous_collection", func(t *testing.T) {
		before := s.Items()
		repo.EXPECT().FetchCart(ctx, "tok").Return(nil, &storeapi.NetworkError{Op: "fetch cart", Err: errors.New("dial tcp")})

		err := s.Fetch(ctx, testSess)
		require.Error(t, err)
		var netErr *storeapi.NetworkError
		assert.ErrorAs(t, err, &netErr)
		assert.Equal(t, before, s.Items())
	})
}

func TestSync_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("success_then_fetch_reflects_quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		s := cart.NewSync(repo, nil)

		repo.EXPECT().FetchCart(ctx, "tok").Return([]storeapi.CartItem{item("1", 100, 1), item("2", 50, 1)}, nil)
		require.NoError(t, s.Fetch(ctx, testSess))

		repo.EXPECT().UpdateCartQuantity(ctx, "tok", storeapi.ID("1"), 4).Return(4, nil)
		require.NoError(t, s.UpdateQuantity(ctx, testSess, "1", 4))

		items := s.Items()
		assert.Equal(t, 4, items[0].Quantity)
		assert.Equal(t, 1, items[1].Quantity)

		repo.EXPECT().FetchCart(ctx, "tok").Return([]storeapi.CartItem{item("1", 100, 4), item("2", 50, 1)}, nil)
		require.NoError(t, s.Fetch(ctx, testSess))
		assert.Equal(t, 4, s.Items()[0].Quantity)
	})

	t.Run("success_uses_server_quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		s := cart.NewSync(repo, nil)

		repo.EXPECT().FetchCart(ctx, "tok").Return([]storeapi.CartItem{item("1", 100, 1)}, nil)
		require.NoError(t, s.Fetch(ctx, testSess))

		repo.EXPECT().UpdateCartQuantity(ctx, "tok", storeapi.ID("1"), 9).Return(5, nil)
		require.NoError(t, s.UpdateQuantity(ctx, testSess, "1", 9))
		assert.Equal(t, 5, s.Items()[0].Quantity)
	})

	t.Run("error_zero_rejected_without_request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		s := cart.NewSync(repo, nil)

		// no EXPECT: any backend call fails the test
		err := s.UpdateQuantity(ctx, testSess, "1", 0)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
		assert.Equal(t, apperror.CodeInvalidInput, apperror.ToHTTP(err).Code)
	})

	t.Run("error_rejection_leaves_state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		s := cart.NewSync(repo, nil)

		repo.EXPECT().FetchCart(ctx, "tok").Return([]storeapi.CartItem{item("1", 100, 2)}, nil)
		require.NoError(t, s.Fetch(ctx, testSess))

		repo.EXPECT().UpdateCartQuantity(ctx, "tok", storeapi.ID("1"), 3).
			Return(0, &storeapi.ServerRejection{Op: "update cart quantity", Status: 400, Message: "Out of stock"})

		err := s.UpdateQuantity(ctx, testSess, "1", 3)
		var rej *storeapi.ServerRejection
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, 2, s.Items()[0].Quantity)
	})
}

func TestSync_AddRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	s := cart.NewSync(repo, nil)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().AddToCart(ctx, "tok", storeapi.ID("p9"), 1).Return("Added to cart", nil),
		repo.EXPECT().FetchCart(ctx, "tok").Return([]storeapi.CartItem{item("9", 10, 1)}, nil),
	)

	msg, err := s.Add(ctx, testSess, "p9", 1)
	require.NoError(t, err)
	assert.Equal(t, "Added to cart", msg)
	assert.Equal(t, 1, s.Count())

	t.Run("error_leaves_state", func(t *testing.T) {
		repo.EXPECT().AddToCart(ctx, "tok", storeapi.ID("p10"), 1).Return("", errors.New("boom"))
		_, err := s.Add(ctx, testSess, "p10", 1)
		assert.Error(t, err)
		assert.Equal(t, 1, s.Count())
	})
}

func TestSync_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	s := cart.NewSync(repo, nil)
	ctx := context.Background()

	repo.EXPECT().FetchCart(ctx, "tok").Return([]storeapi.CartItem{item("1", 100, 1), item("2", 50, 1)}, nil)
	require.NoError(t, s.Fetch(ctx, testSess))

	t.Run("error_keeps_item", func(t *testing.T) {
		repo.EXPECT().DeleteCartItem(ctx, "tok", storeapi.ID("1")).Return(errors.New("boom"))
		assert.Error(t, s.Delete(ctx, testSess, "1"))
		assert.Equal(t, 2, s.Count())
	})

	t.Run("success_removes_item", func(t *testing.T) {
		repo.EXPECT().DeleteCartItem(ctx, "tok", storeapi.ID("1")).Return(nil)
		require.NoError(t, s.Delete(ctx, testSess, "1"))
		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, storeapi.ID("2"), items[0].ID)
	})

	t.Run("success_not_found_forgets_item", func(t *testing.T) {
		repo.EXPECT().DeleteCartItem(ctx, "tok", storeapi.ID("2")).
			Return(&storeapi.ServerRejection{Op: "delete cart item", Status: 404, Message: "Cart item not found"})
		require.NoError(t, s.Delete(ctx, testSess, "2"))
		assert.Equal(t, 0, s.Count())
	})
}

func TestSync_StaleDuringFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("success_invalidation_in_flight_keeps_stale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		s := cart.NewSync(repo, nil)

		started := make(chan struct{})
		release := make(chan struct{})
		repo.EXPECT().FetchCart(ctx, "tok").DoAndReturn(func(context.Context, string) ([]storeapi.CartItem, error) {
			close(started)
			<-release
			return []storeapi.CartItem{item("1", 100, 1)}, nil
		})

		done := make(chan error, 1)
		go func() { done <- s.Fetch(ctx, testSess) }()

		<-started
		s.MarkStale()
		close(release)

		require.NoError(t, <-done)
		assert.Equal(t, 1, s.Count())
		assert.True(t, s.Stale())

		repo.EXPECT().FetchCart(ctx, "tok").Return([]storeapi.CartItem{item("1", 100, 2)}, nil)
		require.NoError(t, s.EnsureFresh(ctx, testSess))
		assert.False(t, s.Stale())
		assert.Equal(t, 2, s.Items()[0].Quantity)
	})

	t.Run("success_invalidation_before_fetch_cleared", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		s := cart.NewSync(repo, nil)

		s.MarkStale()
		repo.EXPECT().FetchCart(ctx, "tok").Return([]storeapi.CartItem{}, nil)
		require.NoError(t, s.Fetch(ctx, testSess))
		assert.False(t, s.Stale())
	})
}

func TestTotal(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(cart.Total(nil)))

	total := cart.Total([]storeapi.CartItem{item("1", 100, 2), item("2", 50, 1)})
	assert.True(t, decimal.NewFromInt(250).Equal(total), "got %s", total)

	t.Run("product_price_fallback", func(t *testing.T) {
		it := storeapi.CartItem{ID: "3", Quantity: 3, Product: &storeapi.CartProduct{Price: decimal.RequireFromString("0.10")}}
		assert.Equal(t, "0.3", cart.Total([]storeapi.CartItem{it}).String())
	})
}

func TestSync_TotalTracksMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	s := cart.NewSync(repo, nil)
	ctx := context.Background()

	assert.True(t, s.Total().IsZero())

	repo.EXPECT().FetchCart(ctx, "tok").Return([]storeapi.CartItem{item("1", 100, 2), item("2", 50, 1)}, nil)
	require.NoError(t, s.Fetch(ctx, testSess))
	assert.True(t, decimal.NewFromInt(250).Equal(s.Total()))

	repo.EXPECT().UpdateCartQuantity(ctx, "tok", storeapi.ID("2"), 3).Return(3, nil)
	require.NoError(t, s.UpdateQuantity(ctx, testSess, "2", 3))
	assert.True(t, decimal.NewFromInt(350).Equal(s.Total()))
}

func TestSync_ResetDropsLateResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	s := cart.NewSync(repo, nil)
	ctx := context.Background()

	release := make(chan struct{})
	repo.EXPECT().FetchCart(ctx, "tok").DoAndReturn(func(context.Context, string) ([]storeapi.CartItem, error) {
		<-release
		return []storeapi.CartItem{item("1", 100, 1)}, nil
	})

	done := make(chan error, 1)
	go func() { done <- s.Fetch(ctx, testSess) }()

	// give the fetch time to start before resetting
	time.Sleep(20 * time.Millisecond)
	s.Reset()
	close(release)

	require.NoError(t, <-done)
	assert.Equal(t, 0, s.Count())
}

func TestSync_SameItemMutationsSerialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	s := cart.NewSync(repo, nil)
	ctx := context.Background()

	repo.EXPECT().FetchCart(ctx, "tok").Return([]storeapi.CartItem{item("1", 10, 1)}, nil)
	require.NoError(t, s.Fetch(ctx, testSess))

	var (
		mu       sync.Mutex
		inFlight int
		maxSeen  int
	)
	repo.EXPECT().UpdateCartQuantity(ctx, "tok", storeapi.ID("1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ storeapi.ID, q int) (int, error) {
			mu.Lock()
			inFlight++
			if inFlight > maxSeen {
				maxSeen = inFlight
			}
			mu.Unlock()
			time.Sleep(5 * time.Millisecond)
			mu.Lock()
			inFlight--
			mu.Unlock()
			return q, nil
		}).Times(5)

	var wg sync.WaitGroup
	for q := 1; q <= 5; q++ {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			assert.NoError(t, s.UpdateQuantity(ctx, testSess, "1", q))
		}(q)
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}
