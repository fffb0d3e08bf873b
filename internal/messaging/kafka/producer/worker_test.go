package producer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-storefront/internal/messaging/kafka/producer"
	mock "go-storefront/internal/mock/outbox"
	"go-storefront/internal/outbox"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeWriter struct {
	written []kafka.Message
	failFor map[string]bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		if w.failFor[string(m.Key)] {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func header(m kafka.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestRelay_ProcessPending(t *testing.T) {
	ctx := context.Background()

	t.Run("success_marks_sent_and_failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		writer := &fakeWriter{failFor: map[string]bool{"cs_bad": true}}
		relay := producer.NewRelay(repo, writer, time.Second, 10, nil)

		ok := outbox.Event{ID: uuid.New(), AggregateType: "checkout", AggregateID: "cs_1", EventType: outbox.EventCheckoutCompleted, Payload: json.RawMessage(`{}`)}
		bad := outbox.Event{ID: uuid.New(), AggregateType: "checkout", AggregateID: "cs_bad", EventType: outbox.EventCartCleanupFailed, Payload: json.RawMessage(`{}`)}

		repo.EXPECT().ListPending(ctx, int32(10)).Return([]outbox.Event{ok, bad}, nil)
		repo.EXPECT().MarkSent(ctx, ok.ID).Return(nil)
		repo.EXPECT().MarkFailed(ctx, bad.ID).Return(nil)

		sent, err := relay.ProcessPending(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, sent)

		require.Len(t, writer.written, 1)
		m := writer.written[0]
		assert.Equal(t, "cs_1", string(m.Key))
		assert.Equal(t, outbox.EventCheckoutCompleted, header(m, "event_type"))
		assert.Equal(t, "checkout", header(m, "aggregate_type"))
	})

	t.Run("empty_batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		relay := producer.NewRelay(repo, &fakeWriter{}, time.Second, 5, nil)

		repo.EXPECT().ListPending(ctx, int32(5)).Return(nil, nil)
		sent, err := relay.ProcessPending(ctx)
		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("error_list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockRepository(ctrl)
		relay := producer.NewRelay(repo, &fakeWriter{}, time.Second, 10, nil)

		repo.EXPECT().ListPending(ctx, int32(10)).Return(nil, errors.New("db down"))
		_, err := relay.ProcessPending(ctx)
		assert.Error(t, err)
	})
}

func TestRelay_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().ListPending(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	relay := producer.NewRelay(repo, &fakeWriter{}, 10*time.Millisecond, 10, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		relay.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
}
