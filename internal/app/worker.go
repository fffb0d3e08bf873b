package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"go-storefront/internal/config"
	"go-storefront/internal/messaging/kafka/producer"
	"go-storefront/internal/outbox"
	"go-storefront/internal/shared/connection"
	"go-storefront/internal/shared/database"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunWorker relays pending storefront events from postgres to kafka until
// SIGINT/SIGTERM.
func RunWorker(cfg config.Config, log *zap.Logger) error {
	log = log.Named("worker")
	if cfg.DBURL == "" || cfg.KafkaBroker == "" {
		return errors.New("worker needs DB_URL and KAFKA_BROKER")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Database
	db, err := connection.ConnectDBWithRetry(ctx, cfg.DBURL, connectRetries, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(db, log); err != nil {
		return err
	}

	// 2. Kafka writer
	if err := connection.WaitForKafka(ctx, cfg.KafkaBroker, connectRetries, log); err != nil {
		return err
	}
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.KafkaEventsTopic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	// 3. Relay
	relay := producer.NewRelay(outbox.NewRepository(db), writer, cfg.OutboxInterval, cfg.OutboxBatchSize, log)
	log.Info("outbox relay started", zap.String("topic", cfg.KafkaEventsTopic))
	relay.Run(ctx)

	log.Info("outbox relay stopped")
	return nil
}
