package app

import (
	"context"

	"go-storefront/internal/config"
	"go-storefront/internal/messaging/kafka/consumer"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func newCartReader(cfg config.Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.KafkaCartTopic,
		GroupID: cfg.KafkaCartGroup,
	})
}

// runCartConsumer runs inside the API process: the mirrored carts it marks
// stale live in this process's memory.
func runCartConsumer(ctx context.Context, reader consumer.MessageReader, carts consumer.CartInvalidator, log *zap.Logger) {
	log = log.Named("cart.consumer")
	log.Info("cart consumer started")
	consumer.ConsumeMessages(ctx, reader, carts, log)
	log.Info("cart consumer stopped")
}
