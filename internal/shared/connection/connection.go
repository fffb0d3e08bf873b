package connection

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RetryDelay is the pause between connection attempts.
var RetryDelay = 5 * time.Second

func ConnectDBWithRetry(ctx context.Context, dsn string, maxRetries int, log *zap.Logger) (*sql.DB, error) {
	var err error
	for i := 1; i <= maxRetries; i++ {
		var db *sql.DB
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			err = db.PingContext(ctx)
			if err == nil {
				log.Info("connected to database")
				return db, nil
			}
			_ = db.Close()
		}

		log.Warn("database not ready", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		if !wait(ctx, i, maxRetries) {
			break
		}
	}
	return nil, fmt.Errorf("connect database: %w", err)
}

func ConnectRedisWithRetry(ctx context.Context, addr string, maxRetries int, log *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	var err error
	for i := 1; i <= maxRetries; i++ {
		if err = rdb.Ping(ctx).Err(); err == nil {
			log.Info("connected to redis", zap.String("addr", addr))
			return rdb, nil
		}

		log.Warn("redis not ready", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		if !wait(ctx, i, maxRetries) {
			break
		}
	}
	_ = rdb.Close()
	return nil, fmt.Errorf("connect redis: %w", err)
}

// WaitForKafka dials the broker until it answers.
func WaitForKafka(ctx context.Context, broker string, maxRetries int, log *zap.Logger) error {
	var err error
	for i := 1; i <= maxRetries; i++ {
		var conn *kafka.Conn
		conn, err = kafka.DialContext(ctx, "tcp", broker)
		if err == nil {
			_ = conn.Close()
			log.Info("connected to kafka", zap.String("broker", broker))
			return nil
		}

		log.Warn("kafka not ready", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		if !wait(ctx, i, maxRetries) {
			break
		}
	}
	return fmt.Errorf("connect kafka: %w", err)
}

func wait(ctx context.Context, attempt, maxRetries int) bool {
	if attempt == maxRetries {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(RetryDelay):
		return true
	}
}
