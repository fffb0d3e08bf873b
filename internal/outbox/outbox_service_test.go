package outbox_test

import (
	"context"
	"testing"
	"time"

	mock "go-storefront/internal/mock/outbox"
	"go-storefront/internal/outbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecorder_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := outbox.NewService(outbox.Deps{Repo: repo, Now: func() time.Time { return now }})
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e outbox.Event) error {
			assert.Equal(t, outbox.AggregateCheckout, e.AggregateType)
			assert.Equal(t, "cs_1", e.AggregateID)
			assert.Equal(t, outbox.EventCartCleanupFailed, e.EventType)
			assert.Equal(t, outbox.StatusPending, e.Status)
			assert.Equal(t, now, e.CreatedAt)
			assert.JSONEq(t, `{"failed_item_ids":["2"]}`, string(e.Payload))
			return nil
		})

		err := rec.Record(ctx, outbox.AggregateCheckout, "cs_1", outbox.EventCartCleanupFailed,
			map[string][]string{"failed_item_ids": {"2"}})
		require.NoError(t, err)
	})

	t.Run("error_unencodable_payload", func(t *testing.T) {
		err := rec.Record(ctx, outbox.AggregateCheckout, "cs_1", outbox.EventCheckoutCompleted, make(chan int))
		assert.Error(t, err)
	})
}

func TestRecorder_WithoutDatabase(t *testing.T) {
	rec := outbox.NewService(outbox.Deps{})
	assert.NoError(t, rec.Record(context.Background(), "checkout", "cs_1", outbox.EventCheckoutCompleted, map[string]int{"deleted": 1}))
}
