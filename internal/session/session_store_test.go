package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-storefront/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func sampleSession() session.Session {
	return session.Session{
		ID:    "sess-1",
		Token: "token-abc",
		User: session.User{
			ID:    "42",
			Email: "buyer@example.com",
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save_get_delete", func(t *testing.T) {
		store := session.NewMemoryStore(time.Hour)
		require.NoError(t, store.Save(ctx, sampleSession()))

		got, err := store.Get(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "token-abc", got.Token)
		assert.True(t, got.Authenticated())

		require.NoError(t, store.Delete(ctx, "sess-1"))
		_, err = store.Get(ctx, "sess-1")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("missing_session", func(t *testing.T) {
		store := session.NewMemoryStore(time.Hour)
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	store := session.NewRedisStore(rdb, 30*time.Minute, nil)

	t.Run("round_trip", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sampleSession()))

		got, err := store.Get(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, sampleSession().User, got.User)
		assert.True(t, sampleSession().CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("expires_after_ttl", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sampleSession()))
		mr.FastForward(31 * time.Minute)

		_, err := store.Get(ctx, "sess-1")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sampleSession()))
		require.NoError(t, store.Delete(ctx, "sess-1"))

		_, err := store.Get(ctx, "sess-1")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("redis_down", func(t *testing.T) {
		broken := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
		defer broken.Close()

		_, err := session.NewRedisStore(broken, time.Minute, nil).Get(ctx, "sess-1")
		assert.ErrorIs(t, err, session.ErrSessionStore)
	})
}

// failExpire makes every EXPIRE command fail while other commands pass.
type failExpire struct{}

func (failExpire) DialHook(next redis.DialHook) redis.DialHook { return next }

func (failExpire) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if cmd.Name() == "expire" {
			err := errors.New("READONLY You can't write against a read only replica")
			cmd.SetErr(err)
			return err
		}
		return next(ctx, cmd)
	}
}

func (failExpire) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestRedisStore_RefreshFailureLogged(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	core, logs := observer.New(zapcore.WarnLevel)
	store := session.NewRedisStore(rdb, 30*time.Minute, zap.New(core))
	require.NoError(t, store.Save(ctx, sampleSession()))

	rdb.AddHook(failExpire{})

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", got.Token)

	entries := logs.FilterMessage("refresh session ttl failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "sess-1", entries[0].ContextMap()["session_id"])
	assert.Contains(t, entries[0].ContextMap()["error"], "READONLY")
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := session.Session{Token: "t"}
	assert.False(t, s.Expired(now))

	s.TokenExpiresAt = now.Add(-time.Minute)
	assert.True(t, s.Expired(now))
}
