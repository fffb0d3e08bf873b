package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "storefront:session:"

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *RedisStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisStore{rdb: rdb, ttl: ttl, log: log}
}

func (r *RedisStore) key(id string) string {
	return redisKeyPrefix + id
}

func (r *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	raw, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, errors.Join(ErrSessionStore, err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return Session{}, errors.Join(ErrSessionStore, err)
	}

	if r.ttl > 0 {
		// a failed refresh only shortens the session, the read still counts
		if err := r.rdb.Expire(ctx, r.key(id), r.ttl).Err(); err != nil {
			r.log.Warn("refresh session ttl failed", zap.String("session_id", id), zap.Error(err))
		}
	}
	return sess, nil
}

func (r *RedisStore) Save(ctx context.Context, sess Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, r.key(sess.ID), raw, r.ttl).Err(); err != nil {
		return errors.Join(ErrSessionStore, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, r.key(id)).Err(); err != nil {
		return errors.Join(ErrSessionStore, err)
	}
	return nil
}
