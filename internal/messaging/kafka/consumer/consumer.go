package consumer

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Fetch failures back off starting at FetchRetryDelay, doubling up to
// MaxFetchRetryDelay.
var (
	FetchRetryDelay    = 500 * time.Millisecond
	MaxFetchRetryDelay = 30 * time.Second
)

// ConsumeMessages marks mirrored carts stale whenever the backend reports a
// change to a user's cart. It returns when ctx is done.
func ConsumeMessages(ctx context.Context, reader MessageReader, carts CartInvalidator, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("cart invalidation consumer started")

	delay := FetchRetryDelay
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("cart invalidation consumer stopped")
				return
			}
			log.Warn("fetch message failed", zap.Duration("retry_in", delay), zap.Error(err))
			select {
			case <-ctx.Done():
				log.Info("cart invalidation consumer stopped")
				return
			case <-time.After(delay):
			}
			delay = min(delay*2, MaxFetchRetryDelay)
			continue
		}
		delay = FetchRetryDelay

		switch eventType := getHeader(msg.Headers, "event_type"); eventType {
		case EventCartChanged, EventDeleteCart:
			if err := handleCartEvent(msg.Value, carts, log); err != nil {
				// a poison message would block the partition, so it is
				// logged and committed
				log.Error("cart event rejected",
					zap.String("event_type", eventType),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
			}
		default:
			// Skip unknown event types
		}

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Warn("commit message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}
